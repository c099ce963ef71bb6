package types

import "runtime"

// Version information for the htmldown library.
const (
	Version = "0.1.0"
	Name    = "htmldown"
)

// BuildInfo contains version and build information for the htmldown library.
type BuildInfo struct {
	Version   string
	Name      string
	GoVersion string
}

// GetBuildInfo returns the current version information for the htmldown
// library. This is useful for displaying version information in logs or
// help output.
func GetBuildInfo() BuildInfo {
	return BuildInfo{
		Version:   Version,
		Name:      Name,
		GoVersion: runtime.Version(),
	}
}
