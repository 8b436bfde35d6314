// Package buildinfo holds build-time variables injected via ldflags:
//
//	go build -ldflags "-X github.com/go-ports/bm/internal/buildinfo.Version=v0.1.0"
package buildinfo

import "fmt"

// Defaults are used for local builds.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Summary formats the build variables for `bm --version`.
func Summary() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, GitCommit, BuildDate)
}
