// Package version provides version information for the crc CLI.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Build-time variables set via ldflags.
var (
	// Version is the CLI version (set via ldflags).
	Version = "v0.0.0-dev"

	// GitCommit is the git commit hash.
	GitCommit = "unknown"

	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)

const devVersion = "v0.0.0-dev"

// Info contains version information.
type Info struct {
	// Version is the CLI version.
	Version string `json:"version"`

	// GitCommit is the git commit hash.
	GitCommit string `json:"gitCommit"`

	// BuildDate is the build timestamp.
	BuildDate string `json:"buildDate"`

	// GoVersion is the Go version used to build.
	GoVersion string `json:"goVersion"`

	// Platform is GOOS/GOARCH.
	Platform string `json:"platform"`
}

// Get returns the current version information.
// Binaries installed with `go install` carry no ldflags, so the module
// version from the build info is used when Version was not set.
func Get() Info {
	info := Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	if info.Version == devVersion {
		if bi, ok := debug.ReadBuildInfo(); ok {
			info.Version = moduleVersion(bi, info.Version)
		}
	}
	return info
}

func moduleVersion(bi *debug.BuildInfo, fallback string) string {
	if bi == nil || bi.Main.Version == "" || bi.Main.Version == "(devel)" {
		return fallback
	}
	return bi.Main.Version
}

// String returns a human-readable version string.
func (i Info) String() string {
	return fmt.Sprintf("crc version %s\n  Commit:    %s\n  Built:     %s\n  Go:        %s\n  Platform:  %s",
		i.Version, i.GitCommit, i.BuildDate, i.GoVersion, i.Platform)
}
