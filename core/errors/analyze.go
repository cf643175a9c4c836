// File: analyze.go
// Title: Error Analysis Helpers
// Description: Predicates and extractors for errors built by this package.
// Version: v0.1.0
// Created: 2026-09-28
// Modified: 2026-09-28
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation

package errors

import (
	"errors"

	lzerror "github.com/labzen/tool/core/error"
)

// IsOutOfRange reports whether err carries CodeValueOutOfRange
func IsOutOfRange(err error) bool {
	return lzerror.HasCode(err, lzerror.CodeValueOutOfRange)
}

// IsInvalidInput reports whether err carries CodeInvalidInput
func IsInvalidInput(err error) bool {
	return lzerror.HasCode(err, lzerror.CodeInvalidInput)
}

// IsInvalidFormat reports whether err carries CodeInvalidFormat
func IsInvalidFormat(err error) bool {
	return lzerror.HasCode(err, lzerror.CodeInvalidFormat)
}

// IsValidationFailed reports whether err carries CodeValidationFailed
func IsValidationFailed(err error) bool {
	return lzerror.HasCode(err, lzerror.CodeValidationFailed)
}

// IsNullArgument reports whether err carries CodeNullArgument
func IsNullArgument(err error) bool {
	return lzerror.HasCode(err, lzerror.CodeNullArgument)
}

// IsSerializationFailed reports whether err carries CodeSerializationFailed
func IsSerializationFailed(err error) bool {
	return lzerror.HasCode(err, lzerror.CodeSerializationFailed)
}

// IsNotFound reports whether err carries CodeNotFound
func IsNotFound(err error) bool {
	return lzerror.HasCode(err, lzerror.CodeNotFound)
}

// IsCallerError reports whether err stems from invalid caller input
func IsCallerError(err error) bool {
	var lzErr *lzerror.Error
	if errors.As(err, &lzErr) {
		return lzErr.Code().IsValidation()
	}
	return false
}

// ExtractDetails extracts all details from the outermost structured error
func ExtractDetails(err error) map[string]interface{} {
	var lzErr *lzerror.Error
	if errors.As(err, &lzErr) {
		return lzErr.Details()
	}
	return nil
}

// GetErrorModule extracts the module name from a standardized error
func GetErrorModule(err error) string {
	if module, ok := ExtractDetails(err)["module"].(string); ok {
		return module
	}
	return ""
}

// GetErrorOperation extracts the operation name from a standardized error
func GetErrorOperation(err error) string {
	if operation, ok := ExtractDetails(err)["operation"].(string); ok {
		return operation
	}
	return ""
}

// IsModuleError checks if an error belongs to a specific module
func IsModuleError(err error, module string) bool {
	return GetErrorModule(err) == module
}

// IsModuleOperation checks if error is from specific module and operation
func IsModuleOperation(err error, module, operation string) bool {
	return GetErrorModule(err) == module && GetErrorOperation(err) == operation
}
