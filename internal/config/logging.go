package config

import (
	"fmt"
	"slices"

	"github.com/rs/zerolog"

	"github.com/rshade/gridgallery/internal/logging"
)

//nolint:gochecknoglobals // Read-only lookup table.
var logFormats = []string{logging.FormatJSON, logging.FormatConsole}

// LoggingConfig is the logging section of the configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"          json:"level"`
	Format string `yaml:"format"         json:"format"`
	File   string `yaml:"file,omitempty" json:"file,omitempty"`
}

// Validate checks the level and format names.
func (lc *LoggingConfig) Validate() error {
	if _, err := zerolog.ParseLevel(lc.Level); err != nil || lc.Level == "" {
		return fmt.Errorf("logging.level: %w: %q", ErrInvalidLogLevel, lc.Level)
	}
	if !slices.Contains(logFormats, lc.Format) {
		return fmt.Errorf("logging.format: %w: %q (use json or console)", ErrInvalidLogFormat, lc.Format)
	}
	return nil
}

// ToLoggingConfig converts the section for the logging package. A set File
// switches the output to the file.
func (lc *LoggingConfig) ToLoggingConfig() logging.Config {
	output := logging.OutputStderr
	if lc.File != "" {
		output = logging.OutputFile
	}

	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
	}
}

// GetLoggingConfig returns the logging section of the global configuration.
// Flag overrides such as --debug are applied by the caller.
func GetLoggingConfig() LoggingConfig {
	return GetGlobalConfig().Logging
}
