// Package version reports the acacia build.
package version

import "fmt"

// Set at build time via -ldflags "-X github.com/example/acacia/internal/version.Version=..."
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// String returns the version line printed by --version.
func String() string {
	if Commit == "unknown" {
		return fmt.Sprintf("acacia %s", Version)
	}
	return fmt.Sprintf("acacia %s (commit: %s, built: %s)", Version, shortCommit(), BuildTime)
}

func shortCommit() string {
	if len(Commit) > 7 {
		return Commit[:7]
	}
	return Commit
}
