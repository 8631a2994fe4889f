package ports

import "go.trai.ch/nbuild/internal/core/domain"

// LinkerFlagsWriter persists linker flags for the native-build tool.
//
//go:generate mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type LinkerFlagsWriter interface {
	// WriteLinkerFlags writes flags to the linker flags file inside toolCacheDir
	// and returns the file path.
	WriteLinkerFlags(toolCacheDir, flags string) (string, error)
}

// CacheManager maintains the versioned tool cache inside a cache root.
type CacheManager interface {
	LinkerFlagsWriter

	// Prepare clears the tool cache if it was populated by another version,
	// then prepares it for version.
	Prepare(cacheRoot, version string) error

	// ClearIfVersionDiffers removes the tool cache when the marker for version is absent.
	ClearIfVersionDiffers(cacheRoot, version string) error

	// PrepareDirectory creates the tool cache and leaves exactly one marker, for version.
	PrepareDirectory(cacheRoot, version string) error

	// Status reports the state of the cache root for version.
	Status(cacheRoot, version string) (*domain.CacheStatus, error)

	// Clean removes the tool cache and every marker.
	Clean(cacheRoot string) error
}
