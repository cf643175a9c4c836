// File: errors_test.go
// Title: Standard Error Handling Tests
// Description: Tests for the builder, the constructors and the analysis helpers.
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-06

package errors

import (
	"errors"
	"fmt"
	"testing"

	lzerror "github.com/labzen/tool/core/error"
)

func TestErrorBuilder(t *testing.T) {
	t.Run("basic error creation", func(t *testing.T) {
		err := NewErrorBuilder(ModuleStringx).
			Operation("Sub").
			Message("test error").
			Detail("key", "value").
			Severity(lzerror.SeverityHigh).
			Build()

		details := err.Details()
		if details["module"] != ModuleStringx {
			t.Errorf("module = %v, want %v", details["module"], ModuleStringx)
		}
		if details["operation"] != "Sub" {
			t.Errorf("operation = %v, want Sub", details["operation"])
		}
		if details["key"] != "value" {
			t.Errorf("key = %v, want value", details["key"])
		}
		if err.Severity() != lzerror.SeverityHigh {
			t.Errorf("Severity() = %v, want high", err.Severity())
		}
		if err.Operation() != "stringx.Sub" {
			t.Errorf("Operation() = %q, want stringx.Sub", err.Operation())
		}
	})

	t.Run("error with cause", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := NewErrorBuilder(ModuleBytex).Operation("HexToBytes").Cause(cause).Build()
		if !errors.Is(err, cause) {
			t.Error("expected error to wrap the cause")
		}
	})

	t.Run("auto-generated message", func(t *testing.T) {
		err := NewErrorBuilder(ModuleSlicex).Operation("Clone").Build()
		if err.Error() != "slicex.Clone failed" {
			t.Errorf("Error() = %q", err.Error())
		}
		if err.Code() != lzerror.CodeUnknown {
			t.Errorf("Code() = %v, want unknown", err.Code())
		}
	})

	t.Run("severity follows code", func(t *testing.T) {
		err := NewErrorBuilder(ModuleRandx).Code(lzerror.CodeValidationFailed).Build()
		if err.Severity() != lzerror.SeverityLow {
			t.Errorf("Severity() = %v, want low", err.Severity())
		}
	})

	t.Run("cause severity does not leak", func(t *testing.T) {
		cause := lzerror.New("boom").WithCode(lzerror.CodeInternal)
		err := NewErrorBuilder(ModuleBytex).Cause(cause).Code(lzerror.CodeSerializationFailed).Build()
		if err.Severity() != lzerror.SeverityHigh {
			t.Errorf("Severity() = %v, want high", err.Severity())
		}
	})
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name      string
		err       *lzerror.Error
		code      lzerror.Code
		predicate func(error) bool
		module    string
		message   string
	}{
		{
			name:      "out of range",
			err:       OutOfRange(ModuleStringx, "RemoveRange", "delete index out of range", 12, 0, 10),
			code:      lzerror.CodeValueOutOfRange,
			predicate: IsOutOfRange,
			module:    ModuleStringx,
			message:   "delete index out of range",
		},
		{
			name:      "invalid input",
			err:       InvalidInput(ModuleBytex, "BigIntToBytes", "negative value", -1),
			code:      lzerror.CodeInvalidInput,
			predicate: IsInvalidInput,
			module:    ModuleBytex,
			message:   "negative value",
		},
		{
			name:      "invalid format",
			err:       InvalidFormat(ModuleBytex, "HexToBytes", "zz", "hex digits"),
			code:      lzerror.CodeInvalidFormat,
			predicate: IsInvalidFormat,
			module:    ModuleBytex,
			message:   "invalid format in bytex.HexToBytes: expected hex digits",
		},
		{
			name:      "validation failed",
			err:       ValidationFailed(ModuleRandx, "Int", "min must be less than max", map[string]interface{}{"min": 3}),
			code:      lzerror.CodeValidationFailed,
			predicate: IsValidationFailed,
			module:    ModuleRandx,
			message:   "min must be less than max",
		},
		{
			name:      "null argument",
			err:       NullArgument(ModuleTuple, "NewStrictPair", "first"),
			code:      lzerror.CodeNullArgument,
			predicate: IsNullArgument,
			module:    ModuleTuple,
			message:   "first must not be nil",
		},
		{
			name:      "not found",
			err:       NotFound(ModuleBytex, "codec", "xml"),
			code:      lzerror.CodeNotFound,
			predicate: IsNotFound,
			module:    ModuleBytex,
			message:   "xml not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code() != tt.code {
				t.Errorf("Code() = %v, want %v", tt.err.Code(), tt.code)
			}
			if !tt.predicate(tt.err) {
				t.Error("predicate should match")
			}
			if !tt.predicate(fmt.Errorf("outer: %w", tt.err)) {
				t.Error("predicate should match through fmt.Errorf wrapping")
			}
			if GetErrorModule(tt.err) != tt.module {
				t.Errorf("GetErrorModule() = %q, want %q", GetErrorModule(tt.err), tt.module)
			}
			if tt.err.Error() != tt.message {
				t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.message)
			}
			if !IsCallerError(tt.err) && tt.code.IsValidation() {
				t.Error("IsCallerError should match validation codes")
			}
		})
	}
}

func TestSerializationFailedWrapsCause(t *testing.T) {
	cause := errors.New("gob: type not registered")
	err := SerializationFailed(ModuleBytex, "ObjectToBytes", "gob", cause)

	if !IsSerializationFailed(err) {
		t.Error("IsSerializationFailed should match")
	}
	if errors.Unwrap(err) != cause {
		t.Errorf("Unwrap() = %v, want %v", errors.Unwrap(err), cause)
	}
	if IsCallerError(err) {
		t.Error("serialization failures are not caller errors")
	}
	if d, _ := err.Detail("codec"); d != "gob" {
		t.Errorf("codec detail = %v", d)
	}
}

func TestConfigFailed(t *testing.T) {
	err := ConfigFailed("Load", "cannot read config", nil)
	if err.Code() != lzerror.CodeConfigError {
		t.Errorf("Code() = %v", err.Code())
	}
	if err.Unwrap() != nil {
		t.Error("nil cause should not be wrapped")
	}
}

func TestAnalysisOnForeignErrors(t *testing.T) {
	plain := errors.New("plain")

	if GetErrorModule(plain) != "" {
		t.Error("plain errors carry no module")
	}
	if GetErrorOperation(plain) != "" {
		t.Error("plain errors carry no operation")
	}
	if ExtractDetails(plain) != nil {
		t.Error("plain errors carry no details")
	}
	if IsOutOfRange(plain) || IsCallerError(plain) {
		t.Error("plain errors match no predicate")
	}
	if IsModuleError(nil, ModuleStringx) {
		t.Error("nil error belongs to no module")
	}
}

func TestIsModuleOperation(t *testing.T) {
	err := InvalidInput(ModuleTimex, "Parse", "bad", "x")
	if !IsModuleOperation(err, ModuleTimex, "Parse") {
		t.Error("IsModuleOperation should match")
	}
	if IsModuleOperation(err, ModuleTimex, "Format") {
		t.Error("IsModuleOperation should not match another operation")
	}
	if !IsModuleError(err, ModuleTimex) {
		t.Error("IsModuleError should match")
	}
}
