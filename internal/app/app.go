// Package app implements the application layer for nbuild.
package app

import (
	"context"
	"path/filepath"

	"go.trai.ch/nbuild/internal/core/domain"
	"go.trai.ch/nbuild/internal/core/ports"
	"go.trai.ch/nbuild/internal/engine/arguments"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	cache        ports.CacheManager
	builder      *arguments.Builder
	executor     ports.Executor
	telemetry    ports.Telemetry
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	cache ports.CacheManager,
	builder *arguments.Builder,
	executor ports.Executor,
	telemetry ports.Telemetry,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		cache:        cache,
		builder:      builder,
		executor:     executor,
		telemetry:    telemetry,
		logger:       log,
	}
}

// Args returns the tool arguments for the selected configuration.
// The linker flags file is written when linker flags are configured.
func (a *App) Args(_ context.Context, opts Options) ([]string, error) {
	cfg, err := a.loadConfig(opts)
	if err != nil {
		return nil, err
	}
	return a.builder.BuildFromConfig(cfg)
}

// PrepareCache clears a tool cache built by another tool version and marks
// the cache with the current one. It does nothing when the cache directory
// is managed by the caller.
func (a *App) PrepareCache(_ context.Context, opts Options) error {
	cfg, err := a.loadConfig(opts)
	if err != nil {
		return err
	}

	if cfg.CacheDirectory == "" {
		return domain.ErrMissingCacheDirectory
	}
	if cfg.OverriddenCacheDirectory {
		a.logger.Info("cache directory is managed externally, skipping preparation")
		return nil
	}

	if err := a.cache.Prepare(cfg.CacheDirectory, cfg.ToolVersion); err != nil {
		return err
	}
	a.logger.Info("cache ready for tool version " + cfg.ToolVersion)
	return nil
}

// Status reports the state of the configured cache.
func (a *App) Status(_ context.Context, opts Options) (*domain.CacheStatus, error) {
	cfg, err := a.loadConfig(opts)
	if err != nil {
		return nil, err
	}

	if cfg.CacheDirectory == "" {
		return nil, domain.ErrMissingCacheDirectory
	}
	return a.cache.Status(cfg.CacheDirectory, cfg.ToolVersion)
}

// Clean removes the tool cache and every version marker.
func (a *App) Clean(_ context.Context, opts Options) error {
	cfg, err := a.loadConfig(opts)
	if err != nil {
		return err
	}

	if cfg.CacheDirectory == "" {
		return domain.ErrMissingCacheDirectory
	}
	return a.cache.Clean(cfg.CacheDirectory)
}

// Build prepares the cache, builds the arguments and runs the tool.
// It returns the invocation, which is not executed on a dry run.
func (a *App) Build(ctx context.Context, opts BuildOptions) (inv *domain.Invocation, err error) {
	defer func() {
		if cerr := a.telemetry.Close(); cerr != nil && err == nil {
			err = zerr.Wrap(cerr, "failed to flush telemetry")
		}
	}()

	cfg, err := a.loadConfig(opts.Options)
	if err != nil {
		return nil, err
	}

	if !opts.DryRun && cfg.Tool == "" {
		return nil, domain.ErrMissingTool
	}

	if cfg.UsesCacheDirectory() {
		if err := a.prepareStep(ctx, cfg); err != nil {
			return nil, err
		}
	}

	args, err := a.argumentsStep(ctx, cfg)
	if err != nil {
		return nil, err
	}

	inv = &domain.Invocation{
		Tool:        cfg.Tool,
		Args:        args,
		WorkingDir:  cfg.BaseDir,
		Environment: cfg.Environment,
	}
	if opts.DryRun {
		return inv, nil
	}

	vctx, vertex := a.telemetry.Record(ctx, "run "+filepath.Base(cfg.Tool))
	err = a.executor.Execute(vctx, inv)
	vertex.Complete(err)
	return inv, err
}

func (a *App) prepareStep(ctx context.Context, cfg *domain.BuilderConfig) error {
	_, vertex := a.telemetry.Record(ctx, "prepare cache")

	status, err := a.cache.Status(cfg.CacheDirectory, cfg.ToolVersion)
	if err != nil {
		vertex.Complete(err)
		return err
	}

	if err := a.cache.Prepare(cfg.CacheDirectory, cfg.ToolVersion); err != nil {
		vertex.Complete(err)
		return err
	}

	if status.State == domain.CacheStateFresh {
		vertex.Cached()
		return nil
	}
	vertex.Complete(nil)
	return nil
}

func (a *App) argumentsStep(ctx context.Context, cfg *domain.BuilderConfig) ([]string, error) {
	_, vertex := a.telemetry.Record(ctx, "build arguments", ports.WithInternal())

	args, err := a.builder.BuildFromConfig(cfg)
	vertex.Complete(err)
	return args, err
}

// loadConfig loads the configuration and applies the overrides in opts.
func (a *App) loadConfig(opts Options) (*domain.BuilderConfig, error) {
	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	if opts.ToolVersion != "" {
		cfg.ToolVersion = opts.ToolVersion
	}

	if opts.Configuration != "" {
		configuration, err := domain.ParseCompilerConfiguration(opts.Configuration)
		if err != nil {
			return nil, err
		}
		cfg.Configuration = configuration
	}

	return cfg, nil
}
