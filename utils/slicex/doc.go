// File: doc.go
// Title: Package Documentation for slicex
// Description: Package slicex provides generic slice helpers.
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-28 v0.1.0: Initial documentation
// - 2026-10-14 v0.2.0: Nil filtering and idempotent insertion

// Package slicex provides generic slice helpers for the labzen tool.
//
// Filters never return nil for a non-nil input, so callers can range over
// the result or check its length without extra nil handling:
//
//	names := slicex.RemoveBlankElement([]*string{&a, nil, &blank, &b}) // [a b]
//
// InsureContains and OnValueAtLeast never modify their argument. They return
// either the argument itself or a new slice:
//
//	tags = slicex.InsureContains(tags, "x")
//	tags = slicex.InsureContains(tags, "x") // no duplicate
//
// AllSame compares a derived key of every non-nil element:
//
//	same := slicex.AllSame(beans, func(b *Bean) bool { return b.Enabled })
package slicex
