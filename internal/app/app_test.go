package app_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nbuild/internal/adapters/fs"
	"go.trai.ch/nbuild/internal/app"
	"go.trai.ch/nbuild/internal/core/domain"
	"go.trai.ch/nbuild/internal/core/ports"
	"go.trai.ch/nbuild/internal/core/ports/mocks"
	"go.trai.ch/nbuild/internal/engine/arguments"
	"go.uber.org/mock/gomock"
)

type testMocks struct {
	loader    *mocks.MockConfigLoader
	cache     *mocks.MockCacheManager
	executor  *mocks.MockExecutor
	telemetry *mocks.MockTelemetry
	logger    *mocks.MockLogger
}

func newTestApp(t *testing.T) (*app.App, *testMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &testMocks{
		loader:    mocks.NewMockConfigLoader(ctrl),
		cache:     mocks.NewMockCacheManager(ctrl),
		executor:  mocks.NewMockExecutor(ctrl),
		telemetry: mocks.NewMockTelemetry(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
	}

	builder := arguments.NewBuilder(fs.NewResolver(), m.cache)
	a := app.New(m.loader, m.cache, builder, m.executor, m.telemetry, m.logger)
	return a, m
}

// expectVertices makes every Record call return a context carrying a vertex
// mock that accepts any completion.
func expectVertices(t *testing.T, m *testMocks) *mocks.MockVertex {
	t.Helper()
	vertex := mocks.NewMockVertex(gomock.NewController(t))
	vertex.EXPECT().Complete(gomock.Any()).AnyTimes()
	vertex.EXPECT().Cached().AnyTimes()

	m.telemetry.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, _ ...ports.VertexOption) (context.Context, ports.Vertex) {
			return ports.ContextWithVertex(ctx, vertex), vertex
		}).AnyTimes()
	m.telemetry.EXPECT().Close().Return(nil).AnyTimes()
	return vertex
}

func baseConfig(dir string) *domain.BuilderConfig {
	return &domain.BuilderConfig{
		Tool:          "il2cpp",
		ToolVersion:   "2022.3.10f1",
		BaseDir:       dir,
		Platform:      "Android",
		Architecture:  "ARM64",
		Configuration: domain.ConfigurationRelease,
		OutputPath:    "out/libgame.so",
	}
}

func TestApp_Args(t *testing.T) {
	a, m := newTestApp(t)
	dir := t.TempDir()

	m.loader.EXPECT().Load("nbuild.yaml").Return(baseConfig(dir), nil)

	args, err := a.Args(context.Background(), app.Options{ConfigPath: "nbuild.yaml"})
	require.NoError(t, err)
	assert.Equal(t, "--compile-cpp", args[0])
	assert.Contains(t, args, `--outputpath="`+filepath.Join(dir, "out/libgame.so")+`"`)
}

func TestApp_Args_ConfigurationOverride(t *testing.T) {
	a, m := newTestApp(t)

	m.loader.EXPECT().Load("").Return(baseConfig(t.TempDir()), nil)

	args, err := a.Args(context.Background(), app.Options{Configuration: "master"})
	require.NoError(t, err)
	assert.Contains(t, args, `--configuration="ReleasePlus"`)
}

func TestApp_Args_InvalidConfigurationOverride(t *testing.T) {
	a, m := newTestApp(t)

	m.loader.EXPECT().Load("").Return(baseConfig(t.TempDir()), nil)

	_, err := a.Args(context.Background(), app.Options{Configuration: "Profile"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid compiler configuration")
}

func TestApp_Args_ConfigLoaderError(t *testing.T) {
	a, m := newTestApp(t)

	m.loader.EXPECT().Load("").Return(nil, errors.New("config load error"))

	_, err := a.Args(context.Background(), app.Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
	assert.Contains(t, err.Error(), "config load error")
}

func TestApp_PrepareCache(t *testing.T) {
	a, m := newTestApp(t)
	cfg := baseConfig(t.TempDir())
	cfg.CacheDirectory = "/cache"

	m.loader.EXPECT().Load("").Return(cfg, nil)
	m.cache.EXPECT().Prepare("/cache", "6000.0.1f1").Return(nil)
	m.logger.EXPECT().Info("cache ready for tool version 6000.0.1f1")

	err := a.PrepareCache(context.Background(), app.Options{ToolVersion: "6000.0.1f1"})
	require.NoError(t, err)
}

func TestApp_PrepareCache_Overridden(t *testing.T) {
	a, m := newTestApp(t)
	cfg := baseConfig(t.TempDir())
	cfg.CacheDirectory = "/cache"
	cfg.OverriddenCacheDirectory = true

	m.loader.EXPECT().Load("").Return(cfg, nil)
	m.cache.EXPECT().Prepare(gomock.Any(), gomock.Any()).Times(0)
	m.logger.EXPECT().Info(gomock.Any())

	require.NoError(t, a.PrepareCache(context.Background(), app.Options{}))
}

func TestApp_PrepareCache_NoCacheDirectory(t *testing.T) {
	a, m := newTestApp(t)

	m.loader.EXPECT().Load("").Return(baseConfig(t.TempDir()), nil)

	err := a.PrepareCache(context.Background(), app.Options{})
	require.ErrorIs(t, err, domain.ErrMissingCacheDirectory)
}

func TestApp_Status(t *testing.T) {
	a, m := newTestApp(t)
	cfg := baseConfig(t.TempDir())
	cfg.CacheDirectory = "/cache"

	want := &domain.CacheStatus{Root: "/cache", State: domain.CacheStateStale}
	m.loader.EXPECT().Load("").Return(cfg, nil)
	m.cache.EXPECT().Status("/cache", "2022.3.10f1").Return(want, nil)

	got, err := a.Status(context.Background(), app.Options{})
	require.NoError(t, err)
	assert.Same(t, want, got)
}

func TestApp_Clean(t *testing.T) {
	a, m := newTestApp(t)
	cfg := baseConfig(t.TempDir())
	cfg.CacheDirectory = "/cache"

	m.loader.EXPECT().Load("").Return(cfg, nil)
	m.cache.EXPECT().Clean("/cache").Return(nil)

	require.NoError(t, a.Clean(context.Background(), app.Options{}))
}

func TestApp_Clean_NoCacheDirectory(t *testing.T) {
	a, m := newTestApp(t)

	m.loader.EXPECT().Load("").Return(baseConfig(t.TempDir()), nil)

	err := a.Clean(context.Background(), app.Options{})
	require.ErrorIs(t, err, domain.ErrMissingCacheDirectory)
}

func TestApp_Build(t *testing.T) {
	a, m := newTestApp(t)
	dir := t.TempDir()
	cfg := baseConfig(dir)
	cfg.CacheDirectory = filepath.Join(dir, "Library")
	cfg.Environment = map[string]string{"ANDROID_NDK_ROOT": "/opt/ndk"}

	vertex := expectVertices(t, m)

	m.loader.EXPECT().Load("").Return(cfg, nil)
	gomock.InOrder(
		m.cache.EXPECT().Status(cfg.CacheDirectory, cfg.ToolVersion).
			Return(&domain.CacheStatus{State: domain.CacheStateMissing}, nil),
		m.cache.EXPECT().Prepare(cfg.CacheDirectory, cfg.ToolVersion).Return(nil),
	)
	m.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, inv *domain.Invocation) error {
			got, ok := ports.VertexFromContext(ctx)
			assert.True(t, ok)
			assert.Same(t, vertex, got)
			assert.Equal(t, "il2cpp", inv.Tool)
			assert.Equal(t, dir, inv.WorkingDir)
			assert.Equal(t, "/opt/ndk", inv.Environment["ANDROID_NDK_ROOT"])
			assert.Contains(t, inv.Args, "--compile-cpp")
			return nil
		})

	inv, err := a.Build(context.Background(), app.BuildOptions{})
	require.NoError(t, err)
	require.NotNil(t, inv)
}

func TestApp_Build_FreshCacheIsCached(t *testing.T) {
	a, m := newTestApp(t)
	dir := t.TempDir()
	cfg := baseConfig(dir)
	cfg.CacheDirectory = filepath.Join(dir, "Library")

	ctrl := gomock.NewController(t)
	prepareVertex := mocks.NewMockVertex(ctrl)
	prepareVertex.EXPECT().Cached().Times(1)
	prepareVertex.EXPECT().Complete(gomock.Any()).Times(0)

	otherVertex := mocks.NewMockVertex(ctrl)
	otherVertex.EXPECT().Complete(nil).AnyTimes()

	m.telemetry.EXPECT().Record(gomock.Any(), "prepare cache").Return(context.Background(), prepareVertex)
	m.telemetry.EXPECT().Record(gomock.Any(), "build arguments", gomock.Any()).Return(context.Background(), otherVertex)
	m.telemetry.EXPECT().Close().Return(nil)

	m.loader.EXPECT().Load("").Return(cfg, nil)
	m.cache.EXPECT().Status(gomock.Any(), gomock.Any()).Return(&domain.CacheStatus{State: domain.CacheStateFresh}, nil)
	m.cache.EXPECT().Prepare(gomock.Any(), gomock.Any()).Return(nil)

	_, err := a.Build(context.Background(), app.BuildOptions{DryRun: true})
	require.NoError(t, err)
}

func TestApp_Build_DryRun(t *testing.T) {
	a, m := newTestApp(t)
	cfg := baseConfig(t.TempDir())
	cfg.Tool = ""

	expectVertices(t, m)
	m.loader.EXPECT().Load("").Return(cfg, nil)
	m.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).Times(0)

	inv, err := a.Build(context.Background(), app.BuildOptions{DryRun: true})
	require.NoError(t, err)
	assert.Equal(t, "--compile-cpp", inv.Args[0])
}

func TestApp_Build_MissingTool(t *testing.T) {
	a, m := newTestApp(t)
	cfg := baseConfig(t.TempDir())
	cfg.Tool = ""

	expectVertices(t, m)
	m.loader.EXPECT().Load("").Return(cfg, nil)

	_, err := a.Build(context.Background(), app.BuildOptions{})
	require.ErrorIs(t, err, domain.ErrMissingTool)
}

func TestApp_Build_LinkerFlagsWithoutCache(t *testing.T) {
	a, m := newTestApp(t)
	cfg := baseConfig(t.TempDir())
	cfg.LinkerFlags = "-lm"

	expectVertices(t, m)
	m.loader.EXPECT().Load("").Return(cfg, nil)
	m.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).Times(0)

	_, err := a.Build(context.Background(), app.BuildOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrLinkerFlagsWithoutCache.Error())
}

func TestApp_Build_ExecutionFailed(t *testing.T) {
	a, m := newTestApp(t)

	expectVertices(t, m)
	m.loader.EXPECT().Load("").Return(baseConfig(t.TempDir()), nil)
	m.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(errors.New("exit status 1"))

	inv, err := a.Build(context.Background(), app.BuildOptions{})
	require.EqualError(t, err, "exit status 1")
	assert.NotNil(t, inv)
}

func TestApp_Build_TelemetryCloseError(t *testing.T) {
	a, m := newTestApp(t)

	vertex := mocks.NewMockVertex(gomock.NewController(t))
	vertex.EXPECT().Complete(gomock.Any()).AnyTimes()
	m.telemetry.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any()).Return(context.Background(), vertex).AnyTimes()
	m.telemetry.EXPECT().Close().Return(errors.New("flush failed"))

	m.loader.EXPECT().Load("").Return(baseConfig(t.TempDir()), nil)

	_, err := a.Build(context.Background(), app.BuildOptions{DryRun: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to flush telemetry")
}
