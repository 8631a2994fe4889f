package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nbuild/internal/adapters/cache"
	"go.trai.ch/nbuild/internal/adapters/config"
	"go.trai.ch/nbuild/internal/adapters/fs"
	"go.trai.ch/nbuild/internal/app"
	"go.trai.ch/nbuild/internal/core/domain"
	"go.trai.ch/nbuild/internal/core/ports/mocks"
	"go.trai.ch/nbuild/internal/engine/arguments"
	"go.uber.org/mock/gomock"
)

func newProvider(t *testing.T, logger *mocks.MockLogger) ComponentProvider {
	t.Helper()
	ctrl := gomock.NewController(t)

	manager := cache.NewManager(logger)
	application := app.New(
		config.NewLoader(logger),
		manager,
		arguments.NewBuilder(fs.NewResolver(), manager),
		mocks.NewMockExecutor(ctrl),
		mocks.NewMockTelemetry(ctrl),
		logger,
	)

	return func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: application, Logger: logger}, func() {}, nil
	}
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, new(bytes.Buffer), newProvider(t, mockLogger))

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "nbuild version")
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run returns 1 and logs when the command fails.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Error(gomock.Any()).Times(1)

	missing := filepath.Join(t.TempDir(), "nbuild.yaml")
	exitCode := run(context.Background(), []string{"args", "-c", missing}, new(bytes.Buffer), new(bytes.Buffer), newProvider(t, mockLogger))

	assert.Equal(t, 1, exitCode)
}

// TestRun_ArgsAndCache runs the args and cache commands against a real config file.
func TestRun_ArgsAndCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	dir := t.TempDir()
	content := `version: "1"
tool: il2cpp
toolVersion: "2022.3.10f1"
platform: Android
architecture: ARM64
configuration: Master
output: out/libgame.so
cacheDir: Library
linkerFlags: -Wl,--gc-sections
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nbuild.yaml"), []byte(content), 0o600))
	provider := newProvider(t, mockLogger)

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"cache", "prepare", "-c", dir}, stdout, new(bytes.Buffer), provider)
	require.Equal(t, 0, exitCode)

	_, err := os.Stat(domain.MarkerPath(filepath.Join(dir, "Library"), "2022.3.10f1"))
	require.NoError(t, err)

	exitCode = run(context.Background(), []string{"args", "-c", dir}, stdout, new(bytes.Buffer), provider)
	require.Equal(t, 0, exitCode)

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	assert.Equal(t, "--compile-cpp", lines[0])
	assert.Contains(t, lines, `--configuration="ReleasePlus"`)
	assert.Contains(t, stdout.String(), "--linker-flags-file=")

	exitCode = run(context.Background(), []string{"cache", "clean", "-c", dir}, stdout, new(bytes.Buffer), provider)
	require.Equal(t, 0, exitCode)

	_, err = os.Stat(filepath.Join(dir, "Library", domain.ToolCacheDirName))
	assert.True(t, os.IsNotExist(err))
}
