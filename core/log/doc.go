// Package log provides structured logging for the labzen command line tool.
//
// Package: log
// Title: Structured Logging
// Description: Leveled logger with persistent fields, JSON, text, console and
//              logfmt output, severity-aware logging of structured errors and
//              timers for measuring operations. The utility packages never
//              log; the CLI builds a logger from configuration.
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-08
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-08 v0.2.0: lipgloss console styles, stable field order
//
// Usage:
//
//	logger := log.New().
//		WithLevel(log.LevelDebug).
//		WithFormat(log.FormatConsole).
//		WithField("command", "hex")
//
//	logger.Info("decoded", log.Field("bytes", 16))
//	logger.LogError(err) // level follows the error severity
//
//	timer := logger.StartTimer("serialize")
//	defer timer.Stop()
package log
