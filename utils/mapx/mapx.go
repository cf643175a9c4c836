// File: mapx.go
// Title: Core Map Utilities
// Description: Key and value extraction, ordered iteration and entry
//              conversion to tuple pairs for Go maps.
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-17
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation with key and value helpers
// - 2026-10-17 v0.2.0: Entries as tuple pairs, sorted keys

package mapx

import (
	"cmp"
	"slices"

	"github.com/labzen/tool/utils/tuple"
)

// Keys returns a slice of all keys from the map in iteration order
func Keys[K comparable, V any](m map[K]V) []K {
	if m == nil {
		return nil
	}

	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// SortedKeys returns the keys of the map in ascending order
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := Keys(m)
	slices.Sort(keys)
	return keys
}

// Values returns a slice of all values from the map in iteration order
func Values[K comparable, V any](m map[K]V) []V {
	if m == nil {
		return nil
	}

	values := make([]V, 0, len(m))
	for _, v := range m {
		values = append(values, v)
	}
	return values
}

// Entries converts a map to key value pairs in iteration order
func Entries[K comparable, V any](m map[K]V) []tuple.Pair[K, V] {
	if m == nil {
		return nil
	}

	result := make([]tuple.Pair[K, V], 0, len(m))
	for k, v := range m {
		result = append(result, tuple.NewPair(k, v))
	}
	return result
}

// SortedEntries converts a map to key value pairs ordered by key
func SortedEntries[K cmp.Ordered, V any](m map[K]V) []tuple.Pair[K, V] {
	entries := Entries(m)
	slices.SortFunc(entries, func(a, b tuple.Pair[K, V]) int {
		return cmp.Compare(a.First(), b.First())
	})
	return entries
}

// FromEntries creates a map from key value pairs; later keys win
func FromEntries[K comparable, V any](entries []tuple.Pair[K, V]) map[K]V {
	if entries == nil {
		return nil
	}

	result := make(map[K]V, len(entries))
	for _, entry := range entries {
		result[entry.First()] = entry.Second()
	}
	return result
}

// Merge creates a new map by merging multiple maps
// Later maps override values from earlier maps for duplicate keys
func Merge[K comparable, V any](maps ...map[K]V) map[K]V {
	totalSize := 0
	for _, m := range maps {
		totalSize += len(m)
	}

	result := make(map[K]V, totalSize)
	for _, m := range maps {
		for k, v := range m {
			result[k] = v
		}
	}
	return result
}

// IsNilOrEmpty checks if the map is nil or has no entries
func IsNilOrEmpty[K comparable, V any](m map[K]V) bool {
	return len(m) == 0
}
