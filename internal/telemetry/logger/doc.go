// Package logger provides structured logging for cybertoken.
//
// It wraps log/slog:
//
//   - logger.go: handler selection, level control, default logger
//   - context.go: context propagation of the logger and the run ID
//   - redact.go: masking of token values and sensitive keys
//
// Tokens are recognised by registered prefixes (see RegisterSensitivePrefix),
// so any value shaped like "<prefix>_..." is partially masked before it
// reaches the output.
package logger
