package version

import (
	"fmt"
	"runtime"
	"time"
)

// These variables are set at build time via -ldflags
var (
	Version   = "dev"     // Set via: -ldflags "-X github.com/bitwild/webstack/internal/version.Version=v1.0.0"
	BuildTime = "unknown" // Set via: -ldflags "-X github.com/bitwild/webstack/internal/version.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
	GitCommit = "unknown" // Set via: -ldflags "-X github.com/bitwild/webstack/internal/version.GitCommit=$(git rev-parse HEAD)"
)

// BuildInfo contains the build information baked into the binary.
type BuildInfo struct {
	Version   string `json:"version"`
	BuildTime string `json:"build_time"`
	GitCommit string `json:"git_commit"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetBuildInfo returns complete build information.
func GetBuildInfo() BuildInfo {
	return BuildInfo{
		Version:   Version,
		BuildTime: BuildTime,
		GitCommit: GitCommit,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// Info returns a formatted version string for CLI output and startup logs.
func Info() string {
	if BuildTime == "unknown" {
		return fmt.Sprintf("%s (development build)", Version)
	}

	buildTime, err := time.Parse(time.RFC3339, BuildTime)
	if err != nil {
		return fmt.Sprintf("%s (built %s)", Version, BuildTime)
	}

	commit := GitCommit
	if len(commit) > 8 {
		commit = commit[:8]
	}

	return fmt.Sprintf("%s (built %s, commit %s)", Version, buildTime.Format("2006-01-02 15:04:05 UTC"), commit)
}
