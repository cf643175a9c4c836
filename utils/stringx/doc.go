// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides rune based string operations that the
//              standard strings package does not cover.
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-11
//
// Change History:
// - 2026-09-28 v0.1.0: Initial documentation
// - 2026-10-11 v0.2.0: Positional, search and template operations

// Package stringx provides rune based string operations for the labzen tool.
//
// Overview
//
// Every index and length in this package counts runes, never bytes, so
// "默认逻辑" has length 4. Negative indexes count from the end of the string.
// Operations that can be handed an impossible window return an *error.Error
// built through core/errors; everything else is total.
//
// The package is organized into functional groups:
//
//   - Emptiness and defaults: IsBlank, FirstNonBlank, FromDefault, NilTo (stringx.go)
//   - Positional access: At, Sub, Insert, RemoveRange, LastUntil (slice.go)
//   - Searching: Times, HaveAll, HaveAny, StartsWithAny (search.go)
//   - Templates and padding: Format, Brief, Fill, RepeatUntil (format.go)
//   - Naming conventions: StudlyCase, CamelCase, SnakeCase, KebabCase (case.go)
//
// Usage Examples
//
//	s, err := stringx.Sub("0123456789", -3, -3) // "567"
//
//	msg := stringx.Format("user={} id={}", "dean", 42) // "user=dean id=42"
//
//	name := stringx.SnakeCase("ThereIsAWord", stringx.UpperCase) // "THERE_IS_A_WORD"
//
//	short, err := stringx.Brief("Install the plugin; Restart", 20, "...")
//
// Error Handling
//
// Index errors carry lzerror.CodeValueOutOfRange and can be tested with
// errors.IsOutOfRange from core/errors.
package stringx
