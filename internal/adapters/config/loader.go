// Package config provides the configuration loader for nbuild.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"go.trai.ch/nbuild/internal/core/domain"
	"go.trai.ch/nbuild/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader for YAML and TOML files.
type Loader struct {
	logger ports.Logger
}

var _ ports.ConfigLoader = (*Loader)(nil)

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the configuration at path. An empty path means the current
// working directory.
func (l *Loader) Load(path string) (*domain.BuilderConfig, error) {
	if path == "" {
		path = "."
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	if info.IsDir() {
		found, err := discover(path)
		if err != nil {
			return nil, err
		}
		path = found
	}

	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	if cfg.ToolVersion == "" && cfg.UsesCacheDirectory() {
		l.logger.Warn("toolVersion is not set in " + path + ", the cache cannot be versioned")
	}
	return cfg, nil
}

// discover returns the first config file found in dir.
func discover(dir string) (string, error) {
	for _, name := range []string{domain.ConfigFileName, domain.TOMLConfigFileName} {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return "", zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", candidate)
		}
	}
	return "", zerr.With(domain.ErrConfigNotFound, "dir", dir)
}

// Load reads and decodes the config file at path, selecting the format by
// extension, and returns the resulting domain.BuilderConfig.
func Load(path string) (*domain.BuilderConfig, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	file, err := decode(path, data)
	if err != nil {
		return nil, err
	}

	if file.Version != "" && file.Version != SchemaVersion {
		return nil, zerr.With(domain.ErrUnsupportedConfigVersion, "version", file.Version)
	}

	// Paths in the config are relative to its directory, not to the caller.
	configDir, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		err = zerr.Wrap(err, domain.ErrPathResolutionFailed.Error())
		return nil, zerr.With(err, "path", path)
	}

	return toDomain(file, configDir)
}

func decode(path string, data []byte) (*Nbuildfile, error) {
	var file Nbuildfile

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
		}
	case ".toml":
		meta, err := toml.Decode(string(data), &file)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			err := zerr.With(domain.ErrConfigParseFailed, "unknown_key", undecoded[0].String())
			return nil, zerr.With(err, "path", path)
		}
	default:
		return nil, zerr.With(domain.ErrUnsupportedConfigFormat, "path", path)
	}

	return &file, nil
}

func toDomain(file *Nbuildfile, configDir string) (*domain.BuilderConfig, error) {
	configuration, err := domain.ParseCompilerConfiguration(file.Configuration)
	if err != nil {
		return nil, err
	}

	baseDir := configDir
	if file.BaseDir != "" {
		baseDir = resolveAgainst(configDir, file.BaseDir)
	}

	return &domain.BuilderConfig{
		Tool:                     file.Tool,
		ToolVersion:              file.ToolVersion,
		BaseDir:                  baseDir,
		Platform:                 file.Platform,
		Architecture:             file.Architecture,
		Configuration:            configuration,
		OutputPath:               file.Output,
		CacheDirectory:           resolveAgainst(baseDir, file.CacheDir),
		OverriddenCacheDirectory: file.OverrideCacheDir,
		LinkStatically:           file.LinkStatic,
		CompilerFlags:            file.CompilerFlags,
		LinkerFlags:              file.LinkerFlags,
		PluginPath:               file.Plugin,
		IncludePaths:             file.Includes,
		AdditionalLibraries:      file.Libraries,
		BaselibDirectory:         file.BaselibDir,
		ExtraArguments:           file.ExtraArgs,
		Environment:              file.Environment,
	}, nil
}

// resolveAgainst joins a relative path onto base. Empty paths stay empty.
func resolveAgainst(base, path string) string {
	switch {
	case path == "":
		return ""
	case filepath.IsAbs(path):
		return filepath.Clean(path)
	default:
		return filepath.Join(base, path)
	}
}
