//go:build !windows

package fs

// shortPathName is the identity outside Windows: paths with spaces are passed quoted.
func shortPathName(path string) string {
	return path
}
