package logger

import (
	"testing"
)

// resetSensitivePrefixes clears the registered prefixes now and again when
// the test ends, so tests never see each other's registrations.
func resetSensitivePrefixes(t *testing.T) {
	t.Helper()
	reset := func() {
		prefixMu.Lock()
		sensitivePrefix = nil
		prefixMu.Unlock()
	}
	reset()
	t.Cleanup(reset)
}

func TestRedact_RegisteredPrefix(t *testing.T) {
	resetSensitivePrefixes(t)
	RegisterSensitivePrefix("zugriff")
	l, buf := newJSONLogger(t, "info")

	l.Info("token issued", "value", "zugriff_icnocrRLDoZ3uCPosLA0277hQ58ob379X43U")

	entry := decodeEntry(t, buf)
	if got := entry["value"]; got != "zugriff_icn...43U" {
		t.Errorf("value = %v, want %q", got, "zugriff_icn...43U")
	}
}

func TestRedact_PrefixBeatsKey(t *testing.T) {
	resetSensitivePrefixes(t)
	RegisterSensitivePrefix("zugriff")
	l, buf := newJSONLogger(t, "info")

	l.Info("token issued", "token", "zugriff_icnocrRLDoZ3uCPosLA0277hQ58ob379X43U")

	entry := decodeEntry(t, buf)
	if got := entry["token"]; got != "zugriff_icn...43U" {
		t.Errorf("token = %v, want partial mask", got)
	}
}

func TestRedact_SensitiveKey(t *testing.T) {
	resetSensitivePrefixes(t)
	l, buf := newJSONLogger(t, "info")

	l.Info("config", "secret_hex", "3ac1b0", "prefix", "zugriff")

	entry := decodeEntry(t, buf)
	if entry["secret_hex"] != redactedValue {
		t.Errorf("secret_hex = %v, want %q", entry["secret_hex"], redactedValue)
	}
	if entry["prefix"] != "zugriff" {
		t.Errorf("prefix = %v, want unchanged", entry["prefix"])
	}
}

func TestRedact_EmptySensitiveValue(t *testing.T) {
	resetSensitivePrefixes(t)
	l, buf := newJSONLogger(t, "info")

	l.Info("config", "token", "")

	entry := decodeEntry(t, buf)
	if entry["token"] != "" {
		t.Errorf("empty token = %v, want empty", entry["token"])
	}
}

func TestRedactString(t *testing.T) {
	resetSensitivePrefixes(t)
	RegisterSensitivePrefix("ghp")

	tests := []struct {
		in   string
		want string
	}{
		{"ghp_ABCDEFGHIJ", "ghp_ABC...HIJ"},
		{"ghp_short", "ghp_***"},
		{"plain text", "plain text"},
		{"ghpx_ABCDEFGHIJ", "ghpx_ABCDEFGHIJ"},
	}

	for _, tt := range tests {
		if got := RedactString(tt.in); got != tt.want {
			t.Errorf("RedactString(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRegisterSensitivePrefix_Idempotent(t *testing.T) {
	resetSensitivePrefixes(t)
	RegisterSensitivePrefix("dup")
	RegisterSensitivePrefix("dup")
	RegisterSensitivePrefix("")

	count := 0
	prefixMu.RLock()
	for _, p := range sensitivePrefix {
		if p == "dup_" {
			count++
		}
		if p == "_" {
			t.Error("empty prefix must not be registered")
		}
	}
	prefixMu.RUnlock()

	if count != 1 {
		t.Errorf("dup_ registered %d times, want 1", count)
	}
}

func TestRedactString_Unregistered(t *testing.T) {
	resetSensitivePrefixes(t)

	token := "zugriff_icnocrRLDoZ3uCPosLA0277hQ58ob379X43U"
	if got := RedactString(token); got != token {
		t.Errorf("RedactString() = %q, want unchanged without a registered prefix", got)
	}

	RegisterSensitivePrefix("zugriff")
	if got := RedactString(token); got != "zugriff_icn...43U" {
		t.Errorf("RedactString() = %q, want masked after registration", got)
	}
}

func TestIsSensitiveKey(t *testing.T) {
	for _, k := range []string{"token", "Secret", "api_password", "bearer_value"} {
		if !IsSensitiveKey(k) {
			t.Errorf("IsSensitiveKey(%q) = false", k)
		}
	}
	for _, k := range []string{"prefix", "version", "count"} {
		if IsSensitiveKey(k) {
			t.Errorf("IsSensitiveKey(%q) = true", k)
		}
	}
}
