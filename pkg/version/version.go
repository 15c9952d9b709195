// Package version reports the pagenav build version.
package version

import "runtime/debug"

// Set at build time with -ldflags "-X github.com/rshade/pagenav/pkg/version.version=v1.2.3".
var version = "" //nolint:gochecknoglobals // Populated by the linker.

// GetVersion returns the linker-provided version, the module version recorded
// in the build info, or "dev".
func GetVersion() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev"
}
