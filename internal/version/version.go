// Package version provides version information for the fwver binary.
//
// Both values are overridden at build time with -ldflags "-X ...".
package version

var (
	Version  = "0.1.0"
	Revision = "unknown"
)
