// File: stringx.go
// Title: Core String Utility Functions
// Description: Emptiness checks, defaults and other small helpers on Go
//              strings. All lengths and indexes in this package count runes.
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-17
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation with core utilities
// - 2026-10-10 v0.2.0: Nil-aware helpers, token trimming, regexp replacement
// - 2026-10-17 v0.2.1: Cached ReplaceIfMatch patterns

package stringx

import (
	"regexp"
	"strings"
	"unicode"

	lzerrors "github.com/labzen/tool/core/errors"
	"github.com/labzen/tool/pkg/core/cache"
)

// IsEmpty returns true if the string is empty (length 0).
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNotEmpty returns true if the string is not empty.
func IsNotEmpty(s string) bool {
	return len(s) > 0
}

// IsNotBlank returns true if the string contains a non-whitespace character.
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// IsAnyBlank returns true if at least one of the strings is blank.
// With no arguments it returns false.
func IsAnyBlank(sources ...string) bool {
	for _, s := range sources {
		if IsBlank(s) {
			return true
		}
	}
	return false
}

// IsAllBlank returns true if every string is blank.
// With no arguments it returns true.
func IsAllBlank(sources ...string) bool {
	for _, s := range sources {
		if !IsBlank(s) {
			return false
		}
	}
	return true
}

// FirstNonEmpty returns the first non-empty string, or "".
func FirstNonEmpty(strs ...string) string {
	for _, s := range strs {
		if s != "" {
			return s
		}
	}
	return ""
}

// FirstNonBlank returns the first non-blank string, or "".
func FirstNonBlank(strs ...string) string {
	for _, s := range strs {
		if !IsBlank(s) {
			return s
		}
	}
	return ""
}

// FromDefault returns defaultValue when s is empty.
func FromDefault(s, defaultValue string) string {
	if s == "" {
		return defaultValue
	}
	return s
}

// FromBlankDefault returns defaultValue when s is blank.
func FromBlankDefault(s, defaultValue string) string {
	if IsBlank(s) {
		return defaultValue
	}
	return s
}

// NilTo dereferences s, or returns replacement when s is nil.
func NilTo(s *string, replacement string) string {
	if s == nil {
		return replacement
	}
	return *s
}

// EmptyToNil returns nil for an empty string and a pointer to s otherwise.
func EmptyToNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// BlankToNil returns nil for a blank string and a pointer to s otherwise.
func BlankToNil(s string) *string {
	if IsBlank(s) {
		return nil
	}
	return &s
}

// matchers holds compiled whole-string patterns of ReplaceIfMatch
var matchers = cache.New[string, *regexp.Regexp](cache.Config{MaxItems: 128})

// ReplaceIfMatch returns replacement when the whole of source matches
// pattern, and source unchanged otherwise.
func ReplaceIfMatch(source, pattern, replacement string) (string, error) {
	re, err := matchers.GetOrSet(pattern, func() (*regexp.Regexp, error) {
		return regexp.Compile(`^(?:` + pattern + `)$`)
	})
	if err != nil {
		return source, lzerrors.InvalidFormat(lzerrors.ModuleStringx, "ReplaceIfMatch", pattern, "regular expression").
			WithDetail("cause", err.Error())
	}
	if re.MatchString(source) {
		return replacement, nil
	}
	return source, nil
}

// JoinNonNil joins the non-nil parts with sep. Empty strings are kept.
func JoinNonNil(sep string, parts ...*string) string {
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != nil {
			values = append(values, *p)
		}
	}
	return strings.Join(values, sep)
}

// TrimPlace selects which end Trim strips
type TrimPlace int

const (
	// TrimBoth strips both ends
	TrimBoth TrimPlace = 0
	// TrimLeading strips the start only
	TrimLeading TrimPlace = 1
	// TrimTrailing strips the end only
	TrimTrailing TrimPlace = -1
)

// Trim strips repeated occurrences of the token redundant from the selected
// end(s) of source: Trim("===123===", "=", TrimLeading) == "123===".
func Trim(source, redundant string, place TrimPlace) string {
	if redundant == "" {
		return source
	}

	start, end := 0, len(source)
	if place >= 0 {
		for start < end && strings.HasPrefix(source[start:end], redundant) {
			start += len(redundant)
		}
	}
	if place <= 0 {
		for start < end && strings.HasSuffix(source[start:end], redundant) {
			end -= len(redundant)
		}
	}
	return source[start:end]
}

// Simplify collapses every whitespace run to a single space and trims both ends.
func Simplify(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Reverse reverses a string rune by rune.
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// ContainsIgnoreCase returns true if substr is within s, ignoring case.
func ContainsIgnoreCase(s, substr string) bool {
	return indexRunes([]rune(s), []rune(substr), 0, true) >= 0
}

// EqualsAny returns true if source equals one of the targets.
func EqualsAny(source string, targets ...string) bool {
	for _, t := range targets {
		if source == t {
			return true
		}
	}
	return false
}

// EqualsAnyIgnoreCase returns true if source equals one of the targets under
// Unicode case folding.
func EqualsAnyIgnoreCase(source string, targets ...string) bool {
	for _, t := range targets {
		if strings.EqualFold(source, t) {
			return true
		}
	}
	return false
}
