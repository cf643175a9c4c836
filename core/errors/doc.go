// Package errors provides the standard error constructors for the labzen tool
// packages.
//
// Package: errors
// Title: Standard Error Handling API
// Description: Common error patterns and analysis helpers on top of the core
//              error package. Every utility package reports failures through
//              these constructors so codes and details stay uniform.
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-06
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation for cross-module error standardization
// - 2026-10-06 v0.2.0: Typed codes, predicates per failure kind
//
// # Error Creation
//
//   - OutOfRange: index, length or window outside its bounds
//   - InvalidInput: argument combination the operation rejects
//   - InvalidFormat: text that does not parse
//   - ValidationFailed: other violated preconditions
//   - NullArgument: nil where a value is required
//   - SerializationFailed: codec failures, wrapping the codec error
//   - NotFound, ConfigFailed
//
// Every constructed error records "module" and "operation" details and the
// qualified operation name ("stringx.Sub").
//
// # Error Analysis
//
//	if errors.IsOutOfRange(err) {
//		// report the bad index to the user
//	}
//	module := errors.GetErrorModule(err) // "stringx"
//
// Import it under an alias when the standard library errors package is also needed:
//
//	lzerrors "github.com/labzen/tool/core/errors"
package errors
