package version

import (
	"fmt"
)

// Populated at build time via -ldflags "-X github.com/faizmokh/remind/internal/version.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info returns the version, followed by commit and build date when the build
// recorded them.
func Info() string {
	if Commit == "none" && Date == "unknown" {
		return Version
	}
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, Date)
}
