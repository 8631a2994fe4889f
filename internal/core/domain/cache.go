package domain

import "strings"

// CacheState describes whether the tool cache matches the current tool version.
type CacheState string

const (
	// CacheStateMissing indicates the tool cache directory does not exist.
	CacheStateMissing CacheState = "missing"
	// CacheStateStale indicates the tool cache exists but the marker for the current version is absent.
	CacheStateStale CacheState = "stale"
	// CacheStateFresh indicates the marker for the current version is present.
	CacheStateFresh CacheState = "fresh"
)

// CacheStatus is a snapshot of a cache root.
type CacheStatus struct {
	Root         string     `json:"root"`
	ToolCacheDir string     `json:"toolCacheDir"`
	Version      string     `json:"version"`
	State        CacheState `json:"state"`
	// Markers lists the versions of every marker file found in the root.
	Markers []string `json:"markers"`
}

// VersionFromMarker extracts the version from a marker file name.
// It returns false if name is not a marker.
func VersionFromMarker(name string) (string, bool) {
	if !strings.HasPrefix(name, MarkerPrefix) {
		return "", false
	}
	return strings.TrimPrefix(name, MarkerPrefix), true
}
