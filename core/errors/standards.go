// File: standards.go
// Title: Error Standards for the labzen tool packages
// Description: Module identifiers and the ErrorBuilder every utility package
//              uses to create errors with consistent codes and details.
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-06
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation for error standardization
// - 2026-10-06 v0.2.0: Builder takes typed codes, module list follows the utils tree

package errors

import (
	"fmt"

	lzerror "github.com/labzen/tool/core/error"
)

// Module identifiers for error categorization
const (
	ModuleStringx = "stringx"
	ModuleBytex   = "bytex"
	ModuleSlicex  = "slicex"
	ModuleTuple   = "tuple"
	ModuleRandx   = "randx"
	ModuleTimex   = "timex"
	ModuleObjectx = "objectx"
	ModuleConfig  = "config"
	ModuleCLI     = "cli"
	ModuleVersion = "version"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	severity  *lzerror.Severity
	code      lzerror.Code
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:  module,
		details: make(map[string]interface{}),
		code:    lzerror.CodeUnknown,
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Details sets multiple details at once
func (eb *ErrorBuilder) Details(details map[string]interface{}) *ErrorBuilder {
	for k, v := range details {
		eb.details[k] = v
	}
	return eb
}

// Severity overrides the severity derived from the code
func (eb *ErrorBuilder) Severity(severity lzerror.Severity) *ErrorBuilder {
	eb.severity = &severity
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code lzerror.Code) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *lzerror.Error {
	if eb.message == "" {
		if eb.operation != "" {
			eb.message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			eb.message = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	eb.details["module"] = eb.module
	if eb.operation != "" {
		eb.details["operation"] = eb.operation
	}

	var err *lzerror.Error
	if eb.cause != nil {
		err = lzerror.Wrap(eb.cause, eb.message)
	} else {
		err = lzerror.New(eb.message)
	}

	// Wrap may have inherited a severity from the cause
	err = err.WithSeverity(lzerror.SeverityMedium).WithCode(eb.code)
	if eb.severity != nil {
		err = err.WithSeverity(*eb.severity)
	}

	return err.
		WithDetails(eb.details).
		WithOperation(qualify(eb.module, eb.operation))
}

func qualify(module, operation string) string {
	if operation == "" {
		return module
	}
	return module + "." + operation
}
