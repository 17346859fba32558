// Package graphs holds the release version of the graphs module.
package graphs

// Version is the current version of graphs.
const Version = "0.1.0"

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}
