// Package version holds the build version for seedsearch.
package version

import "runtime/debug"

// Version is set at build time via -ldflags.
var Version = "dev"

// Commit is the git commit SHA, set at build time via -ldflags.
var Commit = ""

// readBuildInfo is replaced in tests.
var readBuildInfo = debug.ReadBuildInfo

// FullVersion returns the version string with commit if available.
// Format: "vX.Y.Z (commit <shortsha>)". Builds without ldflags fall back
// to the module version recorded by `go install`, then to "dev".
func FullVersion() string {
	v := Version
	if v == "dev" {
		if info, ok := readBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
			v = info.Main.Version
		}
	}
	if Commit != "" {
		return v + " (commit " + Commit + ")"
	}
	return v
}
