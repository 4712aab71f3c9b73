package observe

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"bogus", LevelInfo},
		{"", LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLogLevel(tt.in); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v (output: %q)", err, buf.String())
	}
	return entry
}

func TestLogger_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("info", &buf)

	logger.Info(context.Background(), "check completed", Field{Key: "duration_ms", Value: 12.0})

	entry := decodeLine(t, &buf)
	if entry["level"] != "info" {
		t.Errorf("level = %v, want 'info'", entry["level"])
	}
	if entry["msg"] != "check completed" {
		t.Errorf("msg = %v, want 'check completed'", entry["msg"])
	}
	if entry["duration_ms"] != 12.0 {
		t.Errorf("duration_ms = %v, want 12", entry["duration_ms"])
	}
	if entry["timestamp"] == nil {
		t.Error("timestamp should be set")
	}
}

func TestLogger_LevelGating(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("warn", &buf)

	logger.Debug(context.Background(), "too quiet")
	logger.Info(context.Background(), "still too quiet")
	if buf.Len() != 0 {
		t.Errorf("output = %q, want nothing below warn", buf.String())
	}

	logger.Warn(context.Background(), "loud enough")
	if buf.Len() == 0 {
		t.Error("warn should be logged at warn level")
	}
}

func TestLogger_WithCheck(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("info", &buf)

	logger.WithCheck("database").Error(context.Background(), "check failed")

	entry := decodeLine(t, &buf)
	if entry["check.name"] != "database" {
		t.Errorf("check.name = %v, want 'database'", entry["check.name"])
	}
}

func TestLogger_WithCheck_DoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("info", &buf)

	_ = logger.WithCheck("database")
	logger.Info(context.Background(), "plain entry")

	if strings.Contains(buf.String(), "database") {
		t.Error("parent logger should not inherit the child's check name")
	}
}
