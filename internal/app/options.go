package app

// Options selects the configuration an operation works on.
type Options struct {
	// ConfigPath is the config file or the directory holding it.
	// Empty means the working directory.
	ConfigPath string

	// ToolVersion overrides the tool version from the config file.
	ToolVersion string

	// Configuration overrides the compiler configuration from the config file.
	Configuration string
}

// BuildOptions configuration for the Build method.
type BuildOptions struct {
	Options

	// DryRun stops after the arguments are built.
	DryRun bool
}
