// Package version reports the gridgallery build version. The variables are
// overridden at build time with -ldflags "-X".
package version

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Name is the binary name.
const Name = "gridgallery"

//nolint:gochecknoglobals // Set via -ldflags at build time.
var (
	version   = "0.1.0-dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"buildDate"`
	Platform  string `json:"platform"`
	GoVersion string `json:"goVersion"`
}

// GetVersion returns the version string.
func GetVersion() string {
	return version
}

// GetGitCommit returns the commit the binary was built from.
func GetGitCommit() string {
	return gitCommit
}

// GetBuildDate returns the build timestamp.
func GetBuildDate() string {
	return buildDate
}

// Info collects the build information.
func Info() BuildInfo {
	return BuildInfo{
		Version:   version,
		Commit:    gitCommit,
		BuildDate: buildDate,
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
		GoVersion: runtime.Version(),
	}
}

// Parse parses a version string as semver. A leading "v" is accepted and a
// bare major number is read as major.0.0.
func Parse(s string) (*semver.Version, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "v")
	v, err := semver.NewVersion(s)
	if err == nil {
		return v, nil
	}
	if s != "" && !strings.Contains(s, ".") {
		return semver.NewVersion(s + ".0.0")
	}
	return nil, fmt.Errorf("parsing version %q: %w", s, err)
}

// IsDev reports whether v is a development build: unparsable, or with a
// "dev" prerelease tag.
func IsDev(v string) bool {
	sv, err := Parse(v)
	if err != nil {
		return true
	}
	return strings.Contains(sv.Prerelease(), "dev")
}
