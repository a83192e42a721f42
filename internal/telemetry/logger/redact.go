// Package logger provides structured logging for TeachWhat.
package logger

import (
	"log/slog"
	"strings"
)

// Keys whose values are personal contact details. They are partially masked.
var contactKeyPatterns = []string{
	"phone",
	"email",
	"address",
}

// Keys whose values must never be logged.
var secretKeyPatterns = []string{
	"passphrase",
	"password",
	"secret",
}

// redactedValue is the placeholder for fully redacted data.
const redactedValue = "***REDACTED***"

// redactSensitive masks an attribute when its key names a contact detail
// or a secret. Groups are walked recursively.
func redactSensitive(a slog.Attr) slog.Attr {
	switch a.Value.Kind() {
	case slog.KindString:
		v := a.Value.String()
		if v == "" {
			return a
		}
		if IsSecretKey(a.Key) {
			return slog.String(a.Key, redactedValue)
		}
		if IsContactKey(a.Key) {
			return slog.String(a.Key, MaskContact(a.Key, v))
		}
	case slog.KindGroup:
		attrs := a.Value.Group()
		newAttrs := make([]slog.Attr, len(attrs))
		for i, attr := range attrs {
			newAttrs[i] = redactSensitive(attr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(newAttrs...)}
	}
	return a
}

// MaskContact masks a contact value according to its kind:
//
//	email   "alice@example.com" -> "a***@example.com"
//	phone   "94351253"          -> "******53"
//	other   "311, Clementi Ave" -> "311***"
func MaskContact(key, value string) string {
	k := strings.ToLower(key)
	switch {
	case strings.Contains(k, "email"):
		at := strings.LastIndex(value, "@")
		if at <= 0 {
			return redactedValue
		}
		return value[:1] + "***" + value[at:]
	case strings.Contains(k, "phone"):
		if len(value) <= 2 {
			return strings.Repeat("*", len(value))
		}
		return strings.Repeat("*", len(value)-2) + value[len(value)-2:]
	default:
		if len(value) <= 3 {
			return "***"
		}
		return value[:3] + "***"
	}
}

// IsContactKey reports whether key names a contact detail.
func IsContactKey(key string) bool {
	return containsAny(strings.ToLower(key), contactKeyPatterns)
}

// IsSecretKey reports whether key names a secret.
func IsSecretKey(key string) bool {
	return containsAny(strings.ToLower(key), secretKeyPatterns)
}

func containsAny(s string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}
