// Package logger provides structured logging for FleetDesk.
//
// It wraps the standard library log/slog to provide structured JSON
// logging with automatic sensitive data redaction.
//
// Features:
//   - JSON structured logging (default)
//   - Automatic redaction of credentials and bearer tokens
//   - Context-aware logging with request ID propagation
//   - Dynamic log level adjustment
package logger
