// Package version holds build information stamped in with -ldflags, e.g.
//
//	go build -ldflags "-X visbio-overlays/internal/version.GitCommit=$(git rev-parse --short HEAD)"
package version

import "fmt"

var (
	Version   = "0.1.0"
	BuildTime = "unknown" // UTC
	GitCommit = "unknown"
)

// String formats the build information for a program name.
func String(name string) string {
	return fmt.Sprintf("%s v%s (commit %s, built %s)", name, Version, GitCommit, BuildTime)
}
