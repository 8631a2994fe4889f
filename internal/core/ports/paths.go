package ports

// PathResolver turns configured paths into the form the native-build tool expects.
//
//go:generate mockgen -source=paths.go -destination=mocks/mock_paths.go -package=mocks
type PathResolver interface {
	// Abs resolves path against base unless it is already absolute.
	// An empty base means the process working directory.
	Abs(base, path string) (string, error)

	// ShortPath returns a form of path without spaces where the platform supports one.
	ShortPath(path string) string
}
