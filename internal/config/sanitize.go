// Package config defines the TeachWhat configuration structure.
package config

import "strings"

// Sanitize returns a copy of the config with the passphrase masked.
func Sanitize(cfg *Config) *Config {
	sanitized := *cfg
	if sanitized.Data.Passphrase != "" {
		sanitized.Data.Passphrase = maskSecret(sanitized.Data.Passphrase)
	}
	return &sanitized
}

// maskSecret masks a secret value for safe display.
func maskSecret(s string) string {
	if len(s) <= 4 {
		return "****"
	}
	return s[:2] + strings.Repeat("*", len(s)-4) + s[len(s)-2:]
}
