package cli

import (
	"errors"
	"strings"
	"syscall"

	"github.com/rshade/gridgallery/internal/config"
)

// resolveFormat returns the --output value or the configured default.
func resolveFormat(flagValue string) string {
	return config.GetOutputFormat(flagValue)
}

// isBrokenPipe checks if an error is a broken pipe error (SIGPIPE).
// This occurs when output is piped to commands like `head` that close the pipe early.
func isBrokenPipe(err error) bool {
	if err == nil {
		return false
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return errno == syscall.EPIPE
	}
	return strings.Contains(err.Error(), "broken pipe")
}
