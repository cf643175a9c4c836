// File: objectx.go
// Title: Nil and Zero Value Helpers
// Description: Predicates over nil values, ordered fallbacks and equality
//              guards. A value is nil when it is an untyped nil or a nil
//              pointer, map, slice, channel, func or interface.
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation

package objectx

import (
	"reflect"
)

// IsNil reports whether v is nil, including typed nils held in an interface.
func IsNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// IsAllNil reports whether every value is nil. It is true for no values.
func IsAllNil(values ...interface{}) bool {
	for _, v := range values {
		if !IsNil(v) {
			return false
		}
	}
	return true
}

// IsAllNotNil reports whether no value is nil. It is true for no values.
func IsAllNotNil(values ...interface{}) bool {
	for _, v := range values {
		if IsNil(v) {
			return false
		}
	}
	return true
}

// IsAllNilOrNot reports whether the values are either all nil or all non-nil.
func IsAllNilOrNot(values ...interface{}) bool {
	return IsAllNil(values...) || IsAllNotNil(values...)
}

// IsAnyNil reports whether at least one value is nil.
func IsAnyNil(values ...interface{}) bool {
	return !IsAllNotNil(values...)
}

// IsAnyNotNil reports whether at least one value is not nil.
func IsAnyNotNil(values ...interface{}) bool {
	return !IsAllNil(values...)
}

// IsNilAt reports whether the value at index exists and is nil.
func IsNilAt(index int, values ...interface{}) bool {
	return index >= 0 && index < len(values) && IsNil(values[index])
}

// IsLeftNil reports whether left is nil and right is not.
func IsLeftNil(left, right interface{}) bool {
	return IsNil(left) && !IsNil(right)
}

// IsRightNil reports whether left is not nil and right is.
func IsRightNil(left, right interface{}) bool {
	return !IsNil(left) && IsNil(right)
}

// FirstNonNil returns the first non-nil value. The boolean is false when all
// values are nil.
func FirstNonNil[T any](values ...T) (T, bool) {
	for _, v := range values {
		if !IsNil(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// FirstNonZero returns the first value that differs from the zero value of T,
// or the zero value.
func FirstNonZero[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}

// ValueOr dereferences v, or returns def when v is nil.
func ValueOr[T any](v *T, def T) T {
	if v == nil {
		return def
	}
	return *v
}

// EqualsOrError returns the error produced by onMismatch when a and b differ.
func EqualsOrError[T comparable](a, b T, onMismatch func() error) error {
	if a != b {
		return onMismatch()
	}
	return nil
}

// EqualsOrElse runs orElse when a and b differ and returns its result. The
// boolean is false when the values are equal and orElse did not run.
func EqualsOrElse[T comparable, R any](a, b T, orElse func() R) (R, bool) {
	if a != b {
		return orElse(), true
	}
	var zero R
	return zero, false
}

// NotNilOrError returns the error produced by onNil when v is nil.
func NotNilOrError(v interface{}, onNil func() error) error {
	if IsNil(v) {
		return onNil()
	}
	return nil
}
