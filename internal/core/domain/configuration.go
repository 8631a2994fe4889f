package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// CompilerConfiguration selects the optimization profile of the native build.
type CompilerConfiguration int

const (
	// ConfigurationDebug builds without optimizations.
	ConfigurationDebug CompilerConfiguration = iota
	// ConfigurationRelease builds with optimizations.
	ConfigurationRelease
	// ConfigurationMaster builds with full optimizations and link-time code generation.
	ConfigurationMaster
)

// masterConfigurationName is what the native-build tool calls the Master configuration.
const masterConfigurationName = "ReleasePlus"

// String returns the configuration's own name.
func (c CompilerConfiguration) String() string {
	switch c {
	case ConfigurationDebug:
		return "Debug"
	case ConfigurationRelease:
		return "Release"
	case ConfigurationMaster:
		return "Master"
	default:
		return "Release"
	}
}

// ToolName returns the name the native-build tool expects on its command line.
func (c CompilerConfiguration) ToolName() string {
	if c == ConfigurationMaster {
		return masterConfigurationName
	}
	return c.String()
}

// ParseCompilerConfiguration converts a name to a CompilerConfiguration.
// Matching is case-insensitive and an empty name means Release.
func ParseCompilerConfiguration(name string) (CompilerConfiguration, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return ConfigurationDebug, nil
	case "", "release":
		return ConfigurationRelease, nil
	case "master", strings.ToLower(masterConfigurationName):
		return ConfigurationMaster, nil
	default:
		return ConfigurationRelease, zerr.With(ErrInvalidConfiguration, "configuration", name)
	}
}
