// Package version exposes build metadata stamped in via -ldflags:
//
//	go build -ldflags "-X github.com/faizmokh/amigos/internal/version.Version=v1.2.0"
package version

import (
	"fmt"
	"runtime/debug"
)

// These variables are populated at build time via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info returns a human-friendly version string that surfaces build metadata.
// Builds installed with `go install` fall back to the module version.
func Info() string {
	v := Version
	if v == "dev" {
		if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			v = bi.Main.Version
		}
	}
	return fmt.Sprintf("%s (commit %s, built %s)", v, Commit, Date)
}
