// File: slicex.go
// Title: Core Slice Utilities
// Description: Generic helpers for slices: nil and blank filtering, sameness
//              checks, idempotent insertion and a few functional operations.
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-28 v0.1.0: Filter, Map, Contains, Unique
// - 2026-10-14 v0.2.0: Nil and blank filtering, AllSame, InsureContains

package slicex

import (
	"slices"

	"github.com/labzen/tool/utils/objectx"
	"github.com/labzen/tool/utils/stringx"
)

// ===============================
// Filtering
// ===============================

// Filter returns a new slice containing only elements that match the predicate
func Filter[T any](slice []T, predicate func(T) bool) []T {
	if slice == nil || predicate == nil {
		return nil
	}

	result := make([]T, 0, len(slice))
	for _, item := range slice {
		if predicate(item) {
			result = append(result, item)
		}
	}
	return result
}

// RemoveNilElement drops the nil pointers of list and dereferences the rest.
// The result is never nil.
func RemoveNilElement[T any](list []*T) []T {
	result := make([]T, 0, len(list))
	for _, item := range list {
		if item != nil {
			result = append(result, *item)
		}
	}
	return result
}

// RemoveBlankElement drops nil pointers and blank strings. The result is
// never nil.
func RemoveBlankElement(list []*string) []string {
	result := make([]string, 0, len(list))
	for _, item := range list {
		if item != nil && !stringx.IsBlank(*item) {
			result = append(result, *item)
		}
	}
	return result
}

// RemoveBlankString drops blank strings. The result is never nil.
func RemoveBlankString(list []string) []string {
	result := make([]string, 0, len(list))
	for _, item := range list {
		if !stringx.IsBlank(item) {
			result = append(result, item)
		}
	}
	return result
}

// ===============================
// Sameness
// ===============================

// AllSame reports whether every non-nil element of list maps to the same key.
// Lists with at most one non-nil element are all the same.
func AllSame[E any, K comparable](list []E, key func(E) K) bool {
	var (
		first K
		seen  bool
	)
	for _, item := range list {
		if objectx.IsNil(item) {
			continue
		}
		k := key(item)
		if !seen {
			first, seen = k, true
			continue
		}
		if k != first {
			return false
		}
	}
	return true
}

// AllSameValue reports whether every element of list is equal.
func AllSameValue[E comparable](list []E) bool {
	return AllSame(list, func(e E) E { return e })
}

// ===============================
// Membership
// ===============================

// IsNilOrEmpty reports whether the slice has no elements
func IsNilOrEmpty[T any](slice []T) bool {
	return len(slice) == 0
}

// Contains checks if slice contains the specified element
func Contains[T comparable](slice []T, element T) bool {
	return slices.Contains(slice, element)
}

// IndexOf returns the index of the first occurrence of element, or -1
func IndexOf[T comparable](slice []T, element T) int {
	return slices.Index(slice, element)
}

// InsureContains returns list unchanged when it already contains v, and a
// new slice with v appended otherwise. The argument is never modified, so
// repeated calls never duplicate v.
func InsureContains[E comparable](list []E, v E) []E {
	if slices.Contains(list, v) {
		return list
	}
	result := make([]E, len(list), len(list)+1)
	copy(result, list)
	return append(result, v)
}

// OnValueAtLeast returns [v] for an empty list and list unchanged otherwise.
func OnValueAtLeast[E any](list []E, v E) []E {
	if len(list) == 0 {
		return []E{v}
	}
	return list
}

// ===============================
// Transformation
// ===============================

// Map transforms each element using the mapper function
func Map[T, R any](slice []T, mapper func(T) R) []R {
	if slice == nil || mapper == nil {
		return nil
	}

	result := make([]R, len(slice))
	for i, item := range slice {
		result[i] = mapper(item)
	}
	return result
}

// Unique returns the distinct elements of slice in first-seen order
func Unique[T comparable](slice []T) []T {
	if slice == nil {
		return nil
	}

	seen := make(map[T]struct{}, len(slice))
	result := make([]T, 0, len(slice))
	for _, item := range slice {
		if _, ok := seen[item]; !ok {
			seen[item] = struct{}{}
			result = append(result, item)
		}
	}
	return result
}

// Clone creates a shallow copy of the slice
func Clone[T any](slice []T) []T {
	if slice == nil {
		return nil
	}
	return slices.Clone(slice)
}

// Equal checks if two slices have the same elements in the same order
func Equal[T comparable](slice1, slice2 []T) bool {
	return slices.Equal(slice1, slice2)
}
