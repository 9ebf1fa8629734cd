// Package version exposes the vspec build version.
package version

// Version is the current vspec version. Overridden at build time via
// -ldflags "-X github.com/vspec-dev/vspec/internal/version.Version=...".
var Version = "0.1.0"

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}
