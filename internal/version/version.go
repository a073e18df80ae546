// Package version exposes build metadata injected at link time.
package version

import (
	"fmt"
	"runtime"
)

// Set by ldflags during release builds.
var (
	version   = "dev"
	buildDate = "unknown"
	gitCommit = "unknown"
)

// String formats the version line printed by --version.
func String() string {
	return fmt.Sprintf("%s (built: %s, commit: %s, %s)", version, buildDate, gitCommit, runtime.Version())
}
