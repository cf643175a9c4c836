// Package error provides the structured error type used by the labzen tool packages.
//
// Package: error
// Title: labzen Error Handling
// Description: Structured errors with a code, a severity, details and the name
//              of the failing operation. Every fallible utility in the module
//              returns an *Error so callers can branch on the code.
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-06
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-06 v0.2.0: Chain-aware lookups
//
// Usage:
//
//	import lzerror "github.com/labzen/tool/core/error"
//
//	err := lzerror.New("index out of range").
//		WithCode(lzerror.CodeValueOutOfRange).
//		WithOperation("stringx.Sub").
//		WithDetail("start", 12)
//
//	if lzerror.HasCode(err, lzerror.CodeValueOutOfRange) {
//		// caller input problem
//	}
package error
