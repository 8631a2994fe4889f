package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/nbuild/internal/adapters/logger"
)

func TestPrettyHandler_Levels(t *testing.T) {
	tests := []struct {
		name       string
		level      slog.Level
		msg        string
		goldenName string
	}{
		{name: "info", level: slog.LevelInfo, msg: "cache ready for tool version 2022.3.1", goldenName: "handler_info"},
		{name: "warn", level: slog.LevelWarn, msg: "tool version is empty", goldenName: "handler_warn"},
		{name: "error", level: slog.LevelError, msg: "tool exited", goldenName: "handler_error"},
		{name: "debug below level", level: slog.LevelDebug, msg: "hidden", goldenName: "handler_debug_filtered"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")

			buf := &bytes.Buffer{}
			lg := slog.New(logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

			lg.Log(t.Context(), tt.level, tt.msg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestPrettyHandler_WithAttrs(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	handler := logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	lg := slog.New(handler.WithAttrs([]slog.Attr{slog.String("version", "2022.3.1")}))

	lg.Info("removed marker", "path", "/cache/il2cpp_cache 2021.3.0")

	g := goldie.New(t)
	g.Assert(t, "handler_with_attrs", buf.Bytes())
}

func TestPrettyHandler_WithGroup(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	handler := logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	lg := slog.New(handler.WithGroup("cache"))

	lg.Info("prepared", "root", "/cache")

	g := goldie.New(t)
	g.Assert(t, "handler_with_group", buf.Bytes())
}

func TestPrettyHandler_Enabled(t *testing.T) {
	handler := logger.NewPrettyHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelWarn})

	assert.False(t, handler.Enabled(t.Context(), slog.LevelInfo))
	assert.True(t, handler.Enabled(t.Context(), slog.LevelWarn))
	assert.True(t, handler.Enabled(t.Context(), slog.LevelError))
}

func TestPrettyHandler_Debug(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := slog.New(logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	lg.Debug("resolved tool", "path", "/opt/il2cpp/il2cpp")

	g := goldie.New(t)
	g.Assert(t, "handler_debug", buf.Bytes())
}

func TestPrettyHandler_MultilineIndentsPastIcon(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := slog.New(logger.NewPrettyHandler(buf, nil))

	lg.Warn("tool wrote to stderr\nline two\n\nline four")

	g := goldie.New(t)
	g.Assert(t, "handler_multiline", buf.Bytes())
}

func TestPrettyHandler_NestedGroups(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	handler := logger.NewPrettyHandler(buf, nil)
	lg := slog.New(handler.WithGroup("cache").WithGroup("marker"))

	lg.Info("found", "version", "2022.3.1", "flags", "")

	assert.Equal(t, "found cache.marker.version=2022.3.1 cache.marker.flags=\"\"\n", buf.String())
}

func TestPrettyHandler_WithGroup_EmptyName(t *testing.T) {
	handler := logger.NewPrettyHandler(&bytes.Buffer{}, nil)

	assert.Same(t, handler, handler.WithGroup(""))
}
