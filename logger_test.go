package pixel

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	if l.Enabled(nil, slog.LevelError) {
		t.Error("default logger must be disabled at every level")
	}
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	Logger().Debug("probe", "k", "v")
	if !strings.Contains(buf.String(), "probe") {
		t.Errorf("custom logger saw no output: %q", buf.String())
	}

	SetLogger(nil)
	if Logger().Enabled(nil, slog.LevelError) {
		t.Error("SetLogger(nil) must restore the silent default")
	}
}

func TestSlowPathLogging(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	src := NewVolume(1, 1, 1, FormatRGBA8)
	src.AllocateBuffer()
	dst := NewVolume(1, 1, 1, FormatRGB32F)
	dst.AllocateBuffer()
	if err := Convert(src, dst); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "per-pixel") {
		t.Errorf("per-pixel conversion did not log at debug level: %q", buf.String())
	}
}
