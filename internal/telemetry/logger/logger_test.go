package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func newJSONLogger(t *testing.T, level string) (Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	l, err := New(Config{Level: level, Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return l, &buf
}

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to parse JSON log %q: %v", buf.String(), err)
	}
	return entry
}

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"default config", DefaultConfig()},
		{"json format", Config{Level: "info", Format: "json"}},
		{"console format", Config{Level: "debug", Format: "console"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(tt.cfg)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if l == nil {
				t.Fatal("New() returned nil logger")
			}
		})
	}
}

func TestLogger_Levels(t *testing.T) {
	l, buf := newJSONLogger(t, "warn")
	defer SetLevel("info")

	l.Debug("debug message")
	l.Info("info message")
	if buf.Len() != 0 {
		t.Errorf("messages below warn should be dropped, got %q", buf.String())
	}

	l.Warn("warn message")
	entry := decodeEntry(t, buf)
	if entry["level"] != "WARN" {
		t.Errorf("level = %v, want WARN", entry["level"])
	}
	if entry["msg"] != "warn message" {
		t.Errorf("msg = %v, want %q", entry["msg"], "warn message")
	}
}

func TestLogger_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: "info", Format: "text", Output: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	l.Info("generated", "count", 3)
	out := buf.String()
	if !strings.Contains(out, "msg=generated") || !strings.Contains(out, "count=3") {
		t.Errorf("unexpected text output: %q", out)
	}
}

func TestLogger_With(t *testing.T) {
	l, buf := newJSONLogger(t, "info")

	l.With("component", "codec").Info("ready")
	entry := decodeEntry(t, buf)
	if entry["component"] != "codec" {
		t.Errorf("component = %v, want codec", entry["component"])
	}
}

func TestSetLevel(t *testing.T) {
	defer SetLevel("info")

	tests := []struct {
		in   string
		want string
	}{
		{"debug", "debug"},
		{"INFO", "info"},
		{"warning", "warn"},
		{"error", "error"},
		{"bogus", "info"},
	}

	for _, tt := range tests {
		SetLevel(tt.in)
		if got := GetLevel(); got != tt.want {
			t.Errorf("SetLevel(%q): GetLevel() = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidLevel(t *testing.T) {
	for _, l := range []string{"debug", "info", "warn", "warning", "ERROR"} {
		if !ValidLevel(l) {
			t.Errorf("ValidLevel(%q) = false", l)
		}
	}
	for _, l := range []string{"", "trace", "fatal"} {
		if ValidLevel(l) {
			t.Errorf("ValidLevel(%q) = true", l)
		}
	}
}

func TestDefault(t *testing.T) {
	if Default() == nil {
		t.Fatal("Default() returned nil")
	}

	prev := Default()
	defer SetDefault(prev)

	l, buf := newJSONLogger(t, "info")
	SetDefault(l)
	Default().Info("via default")
	if buf.Len() == 0 {
		t.Error("SetDefault logger should receive output")
	}
}
