// Package fs provides file system adapters for resolving tool paths.
package fs

import (
	"path/filepath"

	"go.trai.ch/nbuild/internal/core/domain"
	"go.trai.ch/nbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PathResolver = (*Resolver)(nil)

// Resolver implements ports.PathResolver on the host file system.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Abs resolves path against base unless it is already absolute.
// The result is cleaned. Paths are not required to exist.
func (r *Resolver) Abs(base, path string) (string, error) {
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}

	joined := path
	if base != "" {
		joined = filepath.Join(base, path)
	}

	abs, err := filepath.Abs(joined)
	if err != nil {
		err = zerr.Wrap(err, domain.ErrPathResolutionFailed.Error())
		return "", zerr.With(err, "path", path)
	}
	return abs, nil
}

// ShortPath returns the platform short form of path.
// If no short form exists, path is returned unchanged.
func (r *Resolver) ShortPath(path string) string {
	return shortPathName(path)
}
