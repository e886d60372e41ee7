// Package logger provides structured logging for cybertoken.
package logger

import (
	"log/slog"
	"strings"
	"sync"
)

// Key fragments that mark an attribute as sensitive.
var sensitiveKeyPatterns = []string{
	"password",
	"secret",
	"token",
	"credential",
	"bearer",
}

const redactedValue = "***REDACTED***"

var (
	prefixMu        sync.RWMutex
	sensitivePrefix []string
)

// RegisterSensitivePrefix marks values beginning with prefix followed by the
// token delimiter as token material. Registering the same prefix twice is a
// no-op.
func RegisterSensitivePrefix(prefix string) {
	if prefix == "" {
		return
	}
	p := prefix + "_"

	prefixMu.Lock()
	defer prefixMu.Unlock()
	for _, existing := range sensitivePrefix {
		if existing == p {
			return
		}
	}
	sensitivePrefix = append(sensitivePrefix, p)
}

func matchPrefix(value string) (string, bool) {
	prefixMu.RLock()
	defer prefixMu.RUnlock()
	for _, p := range sensitivePrefix {
		if strings.HasPrefix(value, p) {
			return p, true
		}
	}
	return "", false
}

// redactSensitive masks token values and blanks sensitive keys.
// A recognised token prefix takes priority over key-based detection.
func redactSensitive(a slog.Attr) slog.Attr {
	switch a.Value.Kind() {
	case slog.KindString:
		s := a.Value.String()
		if p, ok := matchPrefix(s); ok {
			return slog.String(a.Key, maskValue(s, p))
		}
		if s != "" && IsSensitiveKey(a.Key) {
			return slog.String(a.Key, redactedValue)
		}
	case slog.KindGroup:
		attrs := a.Value.Group()
		out := make([]slog.Attr, len(attrs))
		for i, attr := range attrs {
			out[i] = redactSensitive(attr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(out...)}
	}
	return a
}

// maskValue keeps the prefix and three characters at each end of the body.
func maskValue(value, prefix string) string {
	body := value[len(prefix):]
	if len(body) <= 6 {
		return prefix + "***"
	}
	return prefix + body[:3] + "..." + body[len(body)-3:]
}

// RedactString masks value if it carries a registered token prefix.
func RedactString(value string) string {
	if p, ok := matchPrefix(value); ok {
		return maskValue(value, p)
	}
	return value
}

// IsSensitiveKey checks if a key name suggests sensitive content.
func IsSensitiveKey(key string) bool {
	k := strings.ToLower(key)
	for _, pattern := range sensitiveKeyPatterns {
		if strings.Contains(k, pattern) {
			return true
		}
	}
	return false
}
