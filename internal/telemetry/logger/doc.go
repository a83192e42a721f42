// Package logger provides structured logging for TeachWhat.
//
// It wraps the standard library log/slog:
//
//   - logger.go: Logger interface, handler setup, global default and level
//   - context.go: context propagation with per-line IDs
//   - redact.go: masking of contact details and secrets
//
// Features:
//
//   - JSON and text output formats
//   - Log level filtering, adjustable at runtime
//   - Automatic masking of phone, email, address and passphrase fields
package logger
