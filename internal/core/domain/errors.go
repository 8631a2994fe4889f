package domain

import "go.trai.ch/zerr"

var (
	// ErrLinkerFlagsWithoutCache is returned when linker flags are configured but no cache directory is passed to the tool.
	ErrLinkerFlagsWithoutCache = zerr.New("if you pass linker flags, a cache directory also needs to be passed")

	// ErrInvalidConfiguration is returned when a compiler configuration name is not recognized.
	ErrInvalidConfiguration = zerr.New("invalid compiler configuration, expected 'Debug', 'Release' or 'Master'")

	// ErrMissingToolVersion is returned when a cache operation runs without a tool version.
	ErrMissingToolVersion = zerr.New("tool version is required to manage the cache directory")

	// ErrMissingCacheDirectory is returned when a cache operation runs without a cache directory.
	ErrMissingCacheDirectory = zerr.New("cache directory is not configured")

	// ErrMissingTool is returned when a build is requested without a native-build tool.
	ErrMissingTool = zerr.New("native-build tool is not configured")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigNotFound is returned when no config file exists in the given directory.
	ErrConfigNotFound = zerr.New("could not find nbuild.yaml or nbuild.toml")

	// ErrUnsupportedConfigFormat is returned when the config file extension is unknown.
	ErrUnsupportedConfigFormat = zerr.New("unsupported config format, expected .yaml, .yml or .toml")

	// ErrUnsupportedConfigVersion is returned when the config file declares an unknown schema version.
	ErrUnsupportedConfigVersion = zerr.New("unsupported config version, expected \"1\"")

	// ErrCacheCreateFailed is returned when the tool cache directory cannot be created.
	ErrCacheCreateFailed = zerr.New("failed to create cache directory")

	// ErrCacheClearFailed is returned when the tool cache directory cannot be removed.
	ErrCacheClearFailed = zerr.New("failed to clear cache directory")

	// ErrCacheReadFailed is returned when the cache root cannot be listed.
	ErrCacheReadFailed = zerr.New("failed to read cache directory")

	// ErrMarkerRemoveFailed is returned when a stale version marker cannot be removed.
	ErrMarkerRemoveFailed = zerr.New("failed to remove version marker")

	// ErrMarkerWriteFailed is returned when the version marker cannot be created.
	ErrMarkerWriteFailed = zerr.New("failed to write version marker")

	// ErrLinkerFlagsWriteFailed is returned when the linker flags file cannot be written.
	ErrLinkerFlagsWriteFailed = zerr.New("failed to write linker flags file")

	// ErrPathResolutionFailed is returned when a relative path cannot be made absolute.
	ErrPathResolutionFailed = zerr.New("failed to resolve path")

	// ErrToolExecutionFailed is returned when the native-build tool exits with an error.
	ErrToolExecutionFailed = zerr.New("native-build tool execution failed")
)
