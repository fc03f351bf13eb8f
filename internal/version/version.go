package version

import "fmt"

var (
	// Version is the current version of awsls
	Version = "0.1.0"

	// GitCommit is the git commit hash, injected at build time
	GitCommit string

	// BuildTime is the build timestamp, injected at build time
	BuildTime string

	// GoVersion is the Go runtime version, injected at build time
	GoVersion string
)

// String returns the full version string
func String() string {
	if GitCommit != "" && BuildTime != "" {
		return fmt.Sprintf("%s (commit: %s, built: %s, %s)",
			Version, shortCommit(GitCommit), BuildTime, GoVersion)
	}
	return Version
}

func shortCommit(commit string) string {
	if len(commit) > 8 {
		return commit[:8]
	}
	return commit
}
