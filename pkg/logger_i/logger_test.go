package logger_i

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestErrorRecordsCallerSource(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	var buf bytes.Buffer
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: true,
	})))

	log := NewLogger("test-component")
	log.Error("boom", "key", "value")

	out := buf.String()
	if !strings.Contains(out, "boom") || !strings.Contains(out, "test-component") {
		t.Fatalf("log line incomplete: %s", out)
	}
	// the source must point at this test, not at the wrapper
	if !strings.Contains(out, "logger_test.go") {
		t.Errorf("source location missing or wrong: %s", out)
	}
	if strings.Contains(out, "logger_i/logger.go") {
		t.Errorf("source points at the wrapper: %s", out)
	}
}

func TestDisabledLevelEmitsNothing(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	var buf bytes.Buffer
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	NewLogger("test-component").Debug("should not appear")
	if buf.Len() != 0 {
		t.Errorf("debug line emitted below handler level: %s", buf.String())
	}
}
