package domain

import "path/filepath"

const (
	// ToolCacheDirName is the name of the tool cache directory inside the cache root.
	ToolCacheDirName = "il2cpp_cache"

	// LinkerFlagsDirName is the directory holding the linker flags file inside the tool cache.
	LinkerFlagsDirName = "linkerflags"

	// LinkerFlagsFileName is the name of the linker flags file.
	LinkerFlagsFileName = "linkerflags.txt"

	// MarkerPrefix starts the name of every version marker file.
	MarkerPrefix = ToolCacheDirName + " "

	// ConfigFileName is the name of the YAML project configuration file.
	ConfigFileName = "nbuild.yaml"

	// TOMLConfigFileName is the name of the TOML project configuration file.
	TOMLConfigFileName = "nbuild.toml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// ToolCachePath returns the tool cache directory for the given cache root.
func ToolCachePath(cacheRoot string) string {
	return filepath.Join(cacheRoot, ToolCacheDirName)
}

// ObjectFilePath returns the directory the tool writes object files to.
// It is the tool cache directory itself.
func ObjectFilePath(cacheRoot string) string {
	return ToolCachePath(cacheRoot)
}

// MarkerFileName returns the name of the version marker for version.
func MarkerFileName(version string) string {
	return MarkerPrefix + version
}

// MarkerPath returns the path of the version marker for version.
func MarkerPath(cacheRoot, version string) string {
	return filepath.Join(cacheRoot, MarkerFileName(version))
}

// LinkerFlagsPath returns the path of the linker flags file for a tool cache directory.
func LinkerFlagsPath(toolCacheDir string) string {
	return filepath.Join(toolCacheDir, LinkerFlagsDirName, LinkerFlagsFileName)
}
