// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. The logger maps severities
//              to log levels when it records an *Error.
// Version: v0.1.0
// Created: 2026-09-28
// Modified: 2026-09-28
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a caller mistake such as an index out of range
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects the current operation only
	SeverityMedium

	// SeverityHigh indicates a failure in a dependency such as a codec or file
	SeverityHigh

	// SeverityCritical indicates the process cannot continue
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeSerializationFailed, CodeConfigError:
		return SeverityHigh
	case CodeValidationFailed, CodeInvalidFormat, CodeValueOutOfRange,
		CodeInvalidLength, CodeNullArgument, CodeInvalidInput:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
