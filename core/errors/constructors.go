// File: constructors.go
// Title: Standard Error Constructors
// Description: Constructors for the failure kinds the utility packages report.
//              Use these instead of fmt.Errorf or errors.New inside the module.
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-06
//
// Change History:
// - 2026-09-28 v0.1.0: OutOfRange, InvalidInput, InvalidFormat, NotFound
// - 2026-10-06 v0.2.0: NullArgument, SerializationFailed, ConfigFailed

package errors

import (
	"fmt"

	lzerror "github.com/labzen/tool/core/error"
)

// OutOfRange reports an index, length or window outside the permitted bounds.
// The message is used verbatim so callers can match well-known texts.
func OutOfRange(module, operation, message string, value, min, max interface{}) *lzerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(message).
		Code(lzerror.CodeValueOutOfRange).
		Detail("value", value).
		Detail("min", min).
		Detail("max", max).
		Build()
}

// InvalidInput reports an argument combination the operation cannot accept
func InvalidInput(module, operation, message string, input interface{}) *lzerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(message).
		Code(lzerror.CodeInvalidInput).
		Detail("input", input).
		Build()
}

// InvalidFormat reports input text that does not follow the expected format
func InvalidFormat(module, operation string, input interface{}, expectedFormat string) *lzerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid format in %s.%s: expected %s", module, operation, expectedFormat).
		Code(lzerror.CodeInvalidFormat).
		Detail("input", input).
		Detail("expected_format", expectedFormat).
		Build()
}

// ValidationFailed reports a violated precondition that is not a plain range check
func ValidationFailed(module, operation, message string, details map[string]interface{}) *lzerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(message).
		Code(lzerror.CodeValidationFailed).
		Details(details).
		Build()
}

// NullArgument reports a nil value where the operation requires one
func NullArgument(module, operation, argument string) *lzerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s must not be nil", argument).
		Code(lzerror.CodeNullArgument).
		Detail("argument", argument).
		Build()
}

// SerializationFailed wraps a codec failure
func SerializationFailed(module, operation, codec string, cause error) *lzerror.Error {
	b := NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s serialization failed", codec).
		Code(lzerror.CodeSerializationFailed).
		Detail("codec", codec)
	if cause != nil {
		b = b.Cause(cause)
	}
	return b.Build()
}

// NotFound reports a missing item
func NotFound(module, operation string, identifier interface{}) *lzerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("%v not found", identifier)).
		Code(lzerror.CodeNotFound).
		Detail("identifier", identifier).
		Build()
}

// ConfigFailed wraps a configuration load or parse failure
func ConfigFailed(operation, message string, cause error) *lzerror.Error {
	b := NewErrorBuilder(ModuleConfig).
		Operation(operation).
		Message(message).
		Code(lzerror.CodeConfigError)
	if cause != nil {
		b = b.Cause(cause)
	}
	return b.Build()
}
