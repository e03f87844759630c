// Package version reports build metadata stamped at link time
package version

import "runtime"

// BuildInfo holds version information about the build
type BuildInfo struct {
	Service   string `json:"service"`
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
}

// Set with -ldflags, e.g.
// -X 'surveyscope/internal/core/version.version=v0.1.0' -X 'surveyscope/internal/core/version.commit=abcd'
var (
	service = "surveyscope-api"
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Info returns the build information for the API binary
func Info() BuildInfo { return For(service) }

// For returns the build information labeled with another binary name
func For(name string) BuildInfo {
	return BuildInfo{
		Service:   name,
		Version:   version,
		Commit:    commit,
		Date:      date,
		GoVersion: runtime.Version(),
	}
}
