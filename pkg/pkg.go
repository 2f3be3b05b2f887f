// Package mibigtaxa holds application-wide metadata for the mibigtaxa
// command-line tool.
package mibigtaxa

var (
	// Version is the application version. Set by build flags.
	Version = "v0.1.0"

	// Build is the build timestamp. Set by build flags.
	Build = "n/a"
)
