// Package domain contains the core domain models for native-build invocations.
package domain

// BuilderConfig describes one invocation of the native-build tool.
// String fields are either empty or meaningful; empty optional fields are omitted
// from the generated arguments.
type BuilderConfig struct {
	// Tool is the path or name of the native-build executable.
	Tool string

	// ToolVersion is the host tool version recorded in the cache marker.
	ToolVersion string

	// BaseDir is the directory relative output and include paths are resolved against.
	// An empty BaseDir means the process working directory.
	BaseDir string

	Platform      string
	Architecture  string
	Configuration CompilerConfiguration

	// OutputPath is the output file, relative to BaseDir unless absolute.
	OutputPath string

	// CacheDirectory is the cache root. The tool cache and the version markers live in it.
	CacheDirectory string

	// OverriddenCacheDirectory means the caller manages the cache itself and
	// no cache directory is passed to the tool.
	OverriddenCacheDirectory bool

	// LinkStatically links the tool's runtime library statically.
	LinkStatically bool

	CompilerFlags string

	// LinkerFlags are written to a file in the tool cache and passed by reference.
	LinkerFlags string

	PluginPath string

	// IncludePaths are additional include directories, relative to BaseDir unless absolute.
	IncludePaths []string

	AdditionalLibraries []string

	BaselibDirectory string

	// ExtraArguments are appended to the generated arguments verbatim.
	ExtraArguments []string

	// Environment holds extra environment variables for the tool process.
	Environment map[string]string
}

// UsesCacheDirectory reports whether the tool cache is managed by nbuild
// and passed to the tool.
func (c *BuilderConfig) UsesCacheDirectory() bool {
	return c.CacheDirectory != "" && !c.OverriddenCacheDirectory
}
