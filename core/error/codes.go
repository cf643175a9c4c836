// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across the labzen tool packages.
//              Codes classify failures so callers can branch on the kind of
//              constraint that was violated instead of parsing messages.
// Version: v0.1.0
// Created: 2026-09-28
// Modified: 2026-10-03
//
// Change History:
// - 2026-09-28 v0.1.0: Initial code set for validation and serialization failures

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeUnsupported  Code = "UNSUPPORTED"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
	CodeInvalidLength    Code = "INVALID_LENGTH"
	CodeNullArgument     Code = "NULL_ARGUMENT"

	// Encoding
	CodeSerializationFailed Code = "SERIALIZATION_FAILED"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValidation reports whether the code belongs to the validation category.
// Validation errors are recoverable and caused by the caller's input.
func (c Code) IsValidation() bool {
	switch c {
	case CodeValidationFailed, CodeInvalidFormat, CodeValueOutOfRange,
		CodeInvalidLength, CodeNullArgument, CodeInvalidInput:
		return true
	default:
		return false
	}
}
