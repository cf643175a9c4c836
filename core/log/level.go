// File: level.go
// Title: Log Level Definitions
// Description: Log levels used to filter output. Audit entries bypass the
//              minimum level.
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-08
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation with standard log levels
// - 2026-10-08 v0.2.0: Colors moved to the console formatter styles

package log

import (
	"strings"

	lzerror "github.com/labzen/tool/core/error"
)

// Level represents the importance level of a log message
type Level int

const (
	// LevelTrace is the most verbose level
	LevelTrace Level = iota

	// LevelDebug is for details useful when diagnosing a command
	LevelDebug

	// LevelInfo is the default level
	LevelInfo

	// LevelWarn indicates a recoverable problem
	LevelWarn

	// LevelError indicates a failed operation
	LevelError

	// LevelFatal is logged right before the process exits
	LevelFatal

	// LevelAudit is always written regardless of the minimum level
	LevelAudit
)

var levelNames = map[Level][2]string{
	LevelTrace: {"trace", "TRC"},
	LevelDebug: {"debug", "DBG"},
	LevelInfo:  {"info", "INF"},
	LevelWarn:  {"warn", "WRN"},
	LevelError: {"error", "ERR"},
	LevelFatal: {"fatal", "FTL"},
	LevelAudit: {"audit", "AUD"},
}

// String returns the string representation of the log level
func (l Level) String() string {
	if names, ok := levelNames[l]; ok {
		return names[0]
	}
	return "unknown"
}

// ShortString returns the three letter tag of the log level
func (l Level) ShortString() string {
	if names, ok := levelNames[l]; ok {
		return names[1]
	}
	return "???"
}

// ShouldLog returns true if this level should be logged given the minimum level
func (l Level) ShouldLog(minLevel Level) bool {
	if l == LevelAudit {
		return true
	}
	return l >= minLevel
}

// ParseLevel parses a string into a log level
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "trc":
		return LevelTrace, nil
	case "debug", "dbg":
		return LevelDebug, nil
	case "info", "inf", "information":
		return LevelInfo, nil
	case "warn", "wrn", "warning":
		return LevelWarn, nil
	case "error", "err":
		return LevelError, nil
	case "fatal", "ftl":
		return LevelFatal, nil
	case "audit", "aud":
		return LevelAudit, nil
	default:
		return LevelInfo, parseError("level", level)
	}
}

// LevelForSeverity maps an error severity to the level LogError uses
func LevelForSeverity(severity lzerror.Severity) Level {
	switch severity {
	case lzerror.SeverityLow:
		return LevelInfo
	case lzerror.SeverityMedium:
		return LevelWarn
	default:
		return LevelError
	}
}

// AllLevels returns all available log levels
func AllLevels() []Level {
	return []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError, LevelFatal, LevelAudit}
}

// DefaultLevel returns the default log level
func DefaultLevel() Level {
	return LevelInfo
}

func parseError(kind, input string) error {
	return lzerror.New("invalid log "+kind+": "+input).
		WithCode(lzerror.CodeInvalidConfig).
		WithOperation("log.Parse").
		WithDetail("input", input)
}
