// Package build holds build-time information.
package build

// These default to development values and are overwritten by linker
// flags in release builds.
var (
	// Version is the application version.
	Version = "dev"

	// Commit is the VCS revision the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)
