// Package cache maintains the versioned tool cache of the native-build tool.
//
// A cache root holds the tool cache directory and one empty marker file whose
// name carries the tool version that populated the cache. When the marker for
// the current version is missing, the tool cache is discarded and rebuilt.
package cache

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/nbuild/internal/core/domain"
	"go.trai.ch/nbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CacheManager = (*Manager)(nil)

// Manager implements ports.CacheManager on the host file system.
// It assumes a single writer per cache root.
type Manager struct {
	logger ports.Logger
}

// NewManager creates a new Manager.
func NewManager(logger ports.Logger) *Manager {
	return &Manager{logger: logger}
}

// Prepare clears the tool cache if another version populated it, then prepares it for version.
func (m *Manager) Prepare(cacheRoot, version string) error {
	if err := m.ClearIfVersionDiffers(cacheRoot, version); err != nil {
		return err
	}
	return m.PrepareDirectory(cacheRoot, version)
}

// ClearIfVersionDiffers removes the tool cache recursively when it exists and
// the marker for version does not.
func (m *Manager) ClearIfVersionDiffers(cacheRoot, version string) error {
	if err := validate(cacheRoot, version); err != nil {
		return err
	}

	toolCache := domain.ToolCachePath(cacheRoot)
	exists, err := dirExists(toolCache)
	if err != nil {
		return err
	}
	if !exists {
		return nil
	}

	fresh, err := fileExists(domain.MarkerPath(cacheRoot, version))
	if err != nil {
		return err
	}
	if fresh {
		return nil
	}

	m.logger.Info("tool version changed, clearing " + toolCache)
	if err := os.RemoveAll(toolCache); err != nil {
		err = zerr.Wrap(err, domain.ErrCacheClearFailed.Error())
		return zerr.With(err, "path", toolCache)
	}
	return nil
}

// PrepareDirectory creates the tool cache, removes every marker of another
// version and creates the marker for version if it is absent.
func (m *Manager) PrepareDirectory(cacheRoot, version string) error {
	if err := validate(cacheRoot, version); err != nil {
		return err
	}

	toolCache := domain.ToolCachePath(cacheRoot)
	if err := os.MkdirAll(toolCache, domain.DirPerm); err != nil {
		err = zerr.Wrap(err, domain.ErrCacheCreateFailed.Error())
		return zerr.With(err, "path", toolCache)
	}

	markers, err := listMarkers(cacheRoot)
	if err != nil {
		return err
	}
	for _, marker := range markers {
		if marker == version {
			continue
		}
		path := domain.MarkerPath(cacheRoot, marker)
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			err = zerr.Wrap(err, domain.ErrMarkerRemoveFailed.Error())
			return zerr.With(err, "path", path)
		}
	}

	if slices.Contains(markers, version) {
		return nil
	}

	path := domain.MarkerPath(cacheRoot, version)
	//nolint:gosec // Path is built from the configured cache root
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, domain.FilePerm)
	if err != nil {
		err = zerr.Wrap(err, domain.ErrMarkerWriteFailed.Error())
		return zerr.With(err, "path", path)
	}
	if err := f.Close(); err != nil {
		err = zerr.Wrap(err, domain.ErrMarkerWriteFailed.Error())
		return zerr.With(err, "path", path)
	}
	return nil
}

// Status reports the state of the cache root for version.
func (m *Manager) Status(cacheRoot, version string) (*domain.CacheStatus, error) {
	if cacheRoot == "" {
		return nil, domain.ErrMissingCacheDirectory
	}

	status := &domain.CacheStatus{
		Root:         cacheRoot,
		ToolCacheDir: domain.ToolCachePath(cacheRoot),
		Version:      version,
		State:        domain.CacheStateMissing,
		Markers:      []string{},
	}

	exists, err := dirExists(status.ToolCacheDir)
	if err != nil {
		return nil, err
	}
	if !exists {
		return status, nil
	}

	markers, err := listMarkers(cacheRoot)
	if err != nil {
		return nil, err
	}
	if len(markers) > 0 {
		status.Markers = markers
	}

	status.State = domain.CacheStateStale
	if version != "" && slices.Contains(markers, version) {
		status.State = domain.CacheStateFresh
	}
	return status, nil
}

// Clean removes the tool cache and every marker in the cache root.
func (m *Manager) Clean(cacheRoot string) error {
	if cacheRoot == "" {
		return domain.ErrMissingCacheDirectory
	}

	toolCache := domain.ToolCachePath(cacheRoot)
	if err := os.RemoveAll(toolCache); err != nil {
		err = zerr.Wrap(err, domain.ErrCacheClearFailed.Error())
		return zerr.With(err, "path", toolCache)
	}

	markers, err := listMarkers(cacheRoot)
	if err != nil {
		return err
	}
	for _, marker := range markers {
		path := domain.MarkerPath(cacheRoot, marker)
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			err = zerr.Wrap(err, domain.ErrMarkerRemoveFailed.Error())
			return zerr.With(err, "path", path)
		}
	}

	m.logger.Info("removed " + toolCache)
	return nil
}

// WriteLinkerFlags writes flags to the linker flags file in toolCacheDir.
// An existing file with identical content is left untouched so its
// modification time does not force the tool to relink.
func (m *Manager) WriteLinkerFlags(toolCacheDir, flags string) (string, error) {
	path := domain.LinkerFlagsPath(toolCacheDir)
	content := []byte(flags)

	if sum, size, ok := fingerprint(path); ok && size == int64(len(content)) && sum == xxhash.Sum64(content) {
		return path, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		err = zerr.Wrap(err, domain.ErrLinkerFlagsWriteFailed.Error())
		return "", zerr.With(err, "path", path)
	}

	//nolint:gosec // Path is built from the configured cache root
	if err := os.WriteFile(path, content, domain.FilePerm); err != nil {
		err = zerr.Wrap(err, domain.ErrLinkerFlagsWriteFailed.Error())
		return "", zerr.With(err, "path", path)
	}
	return path, nil
}

// fingerprint streams the file at path through xxhash and returns the digest
// and the number of bytes read. ok is false when the file cannot be read.
func fingerprint(path string) (sum uint64, size int64, ok bool) {
	f, err := os.Open(path) //nolint:gosec // Path is built from the configured cache root
	if err != nil {
		return 0, 0, false
	}
	defer func() { _ = f.Close() }()

	h := xxhash.New()
	size, err = io.Copy(h, f)
	if err != nil {
		return 0, 0, false
	}
	return h.Sum64(), size, true
}

func validate(cacheRoot, version string) error {
	if cacheRoot == "" {
		return domain.ErrMissingCacheDirectory
	}
	if version == "" {
		return domain.ErrMissingToolVersion
	}
	return nil
}

// listMarkers returns the versions of all marker files in cacheRoot, sorted.
// A missing cache root has no markers.
func listMarkers(cacheRoot string) ([]string, error) {
	entries, err := os.ReadDir(cacheRoot)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		err = zerr.Wrap(err, domain.ErrCacheReadFailed.Error())
		return nil, zerr.With(err, "path", cacheRoot)
	}

	var versions []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if version, ok := domain.VersionFromMarker(entry.Name()); ok {
			versions = append(versions, version)
		}
	}
	slices.Sort(versions)
	return versions, nil
}

func dirExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		err = zerr.Wrap(err, domain.ErrCacheReadFailed.Error())
		return false, zerr.With(err, "path", path)
	}
	return info.IsDir(), nil
}

func fileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		err = zerr.Wrap(err, domain.ErrCacheReadFailed.Error())
		return false, zerr.With(err, "path", path)
	}
	return !info.IsDir(), nil
}
