package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelWarn)

	l.Debug("debug %d", 1)
	l.Info("info %d", 2)
	if buf.Len() != 0 {
		t.Fatalf("messages below the level were written: %q", buf.String())
	}

	l.Warn("loaded %d packages", 3)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not a JSON line: %v (%q)", err, buf.String())
	}
	if entry["level"] != "warn" {
		t.Errorf("level = %v; want warn", entry["level"])
	}
	if entry["message"] != "loaded 3 packages" {
		t.Errorf("message = %v", entry["message"])
	}
	if entry["component"] != "fhirgen" {
		t.Errorf("component = %v; want fhirgen", entry["component"])
	}
}

func TestLoggerSetLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelNone)

	l.Error("hidden")
	if buf.Len() != 0 {
		t.Fatalf("LevelNone should discard everything, got %q", buf.String())
	}

	l.SetLevel(LevelDebug)
	l.Debug("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("output = %q; want debug message", buf.String())
	}
	if l.Level() != LevelDebug {
		t.Errorf("Level() = %v; want DEBUG", l.Level())
	}
}

func TestLoggerWith(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelInfo).With("release", "R4B")

	l.Info("generated")
	if !strings.Contains(buf.String(), `"release":"R4B"`) {
		t.Errorf("output = %q; want release field", buf.String())
	}
}

func TestDefaultLogger(t *testing.T) {
	prev := Default()
	defer SetDefault(prev)

	var buf bytes.Buffer
	SetDefault(New(&buf, LevelInfo))

	Info("from default")
	if !strings.Contains(buf.String(), "from default") {
		t.Errorf("output = %q", buf.String())
	}

	Disable()
	Error("after disable")
	if strings.Contains(buf.String(), "after disable") {
		t.Error("Disable() should silence the default logger")
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"debug":   LevelDebug,
		"info":    LevelInfo,
		"warning": LevelWarn,
		"error":   LevelError,
		"none":    LevelNone,
		"bogus":   LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v; want %v", in, got, want)
		}
	}
}
