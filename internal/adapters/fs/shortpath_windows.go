//go:build windows

package fs

import "golang.org/x/sys/windows"

// shortPathName returns the 8.3 form of path. Only existing paths have one,
// so any failure falls back to path.
func shortPathName(path string) string {
	long, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return path
	}

	n, err := windows.GetShortPathName(long, nil, 0)
	if err != nil || n == 0 {
		return path
	}

	buf := make([]uint16, n)
	n, err = windows.GetShortPathName(long, &buf[0], uint32(len(buf)))
	if err != nil || n == 0 || int(n) > len(buf) {
		return path
	}
	return windows.UTF16ToString(buf[:n])
}
