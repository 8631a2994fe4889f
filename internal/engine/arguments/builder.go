// Package arguments assembles the command line of the native-build tool.
package arguments

import (
	"go.trai.ch/nbuild/internal/core/domain"
	"go.trai.ch/nbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// Flags without a value.
const (
	FlagCompileCpp              = "--compile-cpp"
	FlagStaticRuntime           = "--libil2cpp-static"
	FlagAvoidDynamicLibraryCopy = "--avoid-dynamic-library-copy"
)

// Names of flags rendered with domain.FormatArgument.
const (
	ArgPlatform          = "platform"
	ArgArchitecture      = "architecture"
	ArgConfiguration     = "configuration"
	ArgOutputPath        = "outputpath"
	ArgCacheDirectory    = "cachedirectory"
	ArgCompilerFlags     = "compiler-flags"
	ArgLinkerFlagsFile   = "linker-flags-file"
	ArgPlugin            = "plugin"
	ArgIncludeDirectory  = "additional-include-directories"
	ArgAdditionalLibrary = "additional-libraries"
	ArgBaselibDirectory  = "baselib-directory"
)

// Builder produces the ordered argument list for one tool invocation.
type Builder struct {
	paths  ports.PathResolver
	writer ports.LinkerFlagsWriter
}

// NewBuilder creates a new Builder.
func NewBuilder(paths ports.PathResolver, writer ports.LinkerFlagsWriter) *Builder {
	return &Builder{
		paths:  paths,
		writer: writer,
	}
}

// BuildFromConfig builds the arguments using the output path, include paths,
// libraries and configuration stored in cfg.
func (b *Builder) BuildFromConfig(cfg *domain.BuilderConfig) ([]string, error) {
	return b.Build(cfg, cfg.OutputPath, cfg.IncludePaths, cfg.AdditionalLibraries, cfg.Configuration)
}

// Build returns the tool arguments in their fixed order. When cfg carries
// linker flags they are written to the tool cache first, so Build requires
// the cache directory to be passed to the tool.
//
// The result is deterministic for a given input.
func (b *Builder) Build(
	cfg *domain.BuilderConfig,
	outputRelativePath string,
	includeRelativePaths []string,
	additionalLibs []string,
	configuration domain.CompilerConfiguration,
) ([]string, error) {
	args := make([]string, 0, 8+len(includeRelativePaths)+len(additionalLibs)+len(cfg.ExtraArguments))

	args = append(args, FlagCompileCpp)
	if cfg.LinkStatically {
		args = append(args, FlagStaticRuntime)
	}
	args = append(args,
		domain.FormatArgument(ArgPlatform, cfg.Platform),
		domain.FormatArgument(ArgArchitecture, cfg.Architecture),
		domain.FormatArgument(ArgConfiguration, configuration.ToolName()),
	)

	outputPath, err := b.paths.Abs(cfg.BaseDir, outputRelativePath)
	if err != nil {
		return nil, err
	}
	args = append(args, domain.FormatArgument(ArgOutputPath, outputPath))

	var cacheDir string
	if cfg.UsesCacheDirectory() {
		toolCache, err := b.paths.Abs(cfg.BaseDir, domain.ToolCachePath(cfg.CacheDirectory))
		if err != nil {
			return nil, err
		}
		cacheDir = b.paths.ShortPath(toolCache)
		args = append(args, domain.FormatArgument(ArgCacheDirectory, cacheDir))
	}

	if cfg.CompilerFlags != "" {
		args = append(args, domain.FormatArgument(ArgCompilerFlags, cfg.CompilerFlags))
	}

	if cfg.LinkerFlags != "" {
		if cacheDir == "" {
			return nil, zerr.With(domain.ErrLinkerFlagsWithoutCache, "overridden_cache", cfg.OverriddenCacheDirectory)
		}

		flagsFile, err := b.writer.WriteLinkerFlags(cacheDir, cfg.LinkerFlags)
		if err != nil {
			return nil, err
		}
		args = append(args, domain.FormatArgument(ArgLinkerFlagsFile, flagsFile))
	}

	if cfg.PluginPath != "" {
		args = append(args, domain.FormatArgument(ArgPlugin, cfg.PluginPath))
	}

	for _, include := range includeRelativePaths {
		includePath, err := b.paths.Abs(cfg.BaseDir, include)
		if err != nil {
			return nil, err
		}
		args = append(args, domain.FormatArgument(ArgIncludeDirectory, includePath))
	}

	for _, library := range additionalLibs {
		args = append(args, domain.FormatArgument(ArgAdditionalLibrary, library))
	}

	if cfg.BaselibDirectory != "" {
		args = append(args, domain.FormatArgument(ArgBaselibDirectory, cfg.BaselibDirectory))
	}

	args = append(args, FlagAvoidDynamicLibraryCopy)

	return append(args, cfg.ExtraArguments...), nil
}
