package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/nbuild/internal/core/domain"
)

func TestLayout(t *testing.T) {
	root := filepath.Join("var", "cache")

	assert.Equal(t, filepath.Join(root, "il2cpp_cache"), domain.ToolCachePath(root))
	assert.Equal(t, domain.ToolCachePath(root), domain.ObjectFilePath(root))
	assert.Equal(t, "il2cpp_cache 2023.2.1f1", domain.MarkerFileName("2023.2.1f1"))
	assert.Equal(t, filepath.Join(root, "il2cpp_cache 2023.2.1f1"), domain.MarkerPath(root, "2023.2.1f1"))
	assert.Equal(t,
		filepath.Join(root, "il2cpp_cache", "linkerflags", "linkerflags.txt"),
		domain.LinkerFlagsPath(domain.ToolCachePath(root)),
	)
}

func TestVersionFromMarker(t *testing.T) {
	version, ok := domain.VersionFromMarker("il2cpp_cache 6000.0.1f1")
	assert.True(t, ok)
	assert.Equal(t, "6000.0.1f1", version)

	_, ok = domain.VersionFromMarker("il2cpp_cache")
	assert.False(t, ok)

	_, ok = domain.VersionFromMarker("other 1.0")
	assert.False(t, ok)
}

func TestBuilderConfig_UsesCacheDirectory(t *testing.T) {
	cfg := domain.BuilderConfig{}
	assert.False(t, cfg.UsesCacheDirectory())

	cfg.CacheDirectory = "cache"
	assert.True(t, cfg.UsesCacheDirectory())

	cfg.OverriddenCacheDirectory = true
	assert.False(t, cfg.UsesCacheDirectory())
}
