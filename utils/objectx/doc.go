// Package objectx provides nil predicates, ordered fallbacks and strict
// integer parse checks.
//
// Nil checks look through interfaces: a nil *T stored in an interface{} is
// nil for IsNil, unlike a plain == nil comparison.
package objectx
