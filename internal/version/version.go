// Package version reports the cumprod release.
package version

import "runtime/debug"

// Version is set at build time:
//
//	go build -ldflags "-X github.com/mfridman/cumprod/internal/version.Version=v1.2.3"
var Version string

const fallback = "0.0.1"

// String returns the build-time version, the module version recorded in the binary, or a
// fallback, in that order.
func String() string {
	if Version != "" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}
	return fallback
}
