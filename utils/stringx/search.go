// File: search.go
// Title: Rune Based Searching
// Description: Occurrence counting, containment checks, prefixes and suffixes.
//              Each function takes a caseSensitive flag; case-insensitive
//              matching compares runes under simple case folding.
// Version: v0.1.0
// Created: 2026-10-10
// Modified: 2026-10-10
//
// Change History:
// - 2026-10-10 v0.1.0: Initial implementation

package stringx

import (
	"unicode"
)

func foldEqual(a, b rune) bool {
	if a == b {
		return true
	}
	for f := unicode.SimpleFold(a); f != a; f = unicode.SimpleFold(f) {
		if f == b {
			return true
		}
	}
	return false
}

func runesEqual(a, b []rune, fold bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] && !(fold && foldEqual(a[i], b[i])) {
			return false
		}
	}
	return true
}

// indexRunes returns the rune index of the first occurrence of sub in s at or
// after from, or -1. An empty sub matches at from.
func indexRunes(s, sub []rune, from int, fold bool) int {
	if from < 0 {
		from = 0
	}
	for i := from; i+len(sub) <= len(s); i++ {
		if runesEqual(s[i:i+len(sub)], sub, fold) {
			return i
		}
	}
	return -1
}

func lastIndexRunes(s, sub []rune, fold bool) int {
	for i := len(s) - len(sub); i >= 0; i-- {
		if runesEqual(s[i:i+len(sub)], sub, fold) {
			return i
		}
	}
	return -1
}

// Times counts the non-overlapping occurrences of token in text, scanning
// left to right. An empty token occurs zero times.
func Times(text, token string, caseSensitive bool) int {
	if token == "" {
		return 0
	}

	s, sub := []rune(text), []rune(token)
	count := 0
	for pos := indexRunes(s, sub, 0, !caseSensitive); pos >= 0; pos = indexRunes(s, sub, pos+len(sub), !caseSensitive) {
		count++
	}
	return count
}

// HaveAll reports whether text contains every token. With overlap false each
// matched token is removed before looking for the next one, so tokens may not
// share characters. Empty text or an empty token list yields true.
func HaveAll(text string, tokens []string, caseSensitive, overlap bool) bool {
	if text == "" || len(tokens) == 0 {
		return true
	}

	remaining := text
	for _, token := range tokens {
		if indexRunes([]rune(remaining), []rune(token), 0, !caseSensitive) < 0 {
			return false
		}
		if !overlap {
			remaining = RemoveTokens(remaining, []string{token}, 0, caseSensitive)
		}
	}
	return true
}

// HaveAny reports whether text contains at least one token. An empty token
// list yields true.
func HaveAny(text string, tokens []string, caseSensitive bool) bool {
	if len(tokens) == 0 {
		return true
	}
	s := []rune(text)
	for _, token := range tokens {
		if indexRunes(s, []rune(token), 0, !caseSensitive) >= 0 {
			return true
		}
	}
	return false
}

func hasPrefix(s, prefix []rune, fold bool) bool {
	return len(prefix) <= len(s) && runesEqual(s[:len(prefix)], prefix, fold)
}

func hasSuffix(s, suffix []rune, fold bool) bool {
	return len(suffix) <= len(s) && runesEqual(s[len(s)-len(suffix):], suffix, fold)
}

// StartsWithAny reports whether text starts with one of the prefixes.
func StartsWithAny(text string, caseSensitive bool, prefixes ...string) bool {
	s := []rune(text)
	for _, p := range prefixes {
		if hasPrefix(s, []rune(p), !caseSensitive) {
			return true
		}
	}
	return false
}

// EndsWithAny reports whether text ends with one of the suffixes.
func EndsWithAny(text string, caseSensitive bool, suffixes ...string) bool {
	s := []rune(text)
	for _, p := range suffixes {
		if hasSuffix(s, []rune(p), !caseSensitive) {
			return true
		}
	}
	return false
}

// InsureStartsWith prepends prefix unless text already starts with it.
func InsureStartsWith(text, prefix string, caseSensitive bool) string {
	if hasPrefix([]rune(text), []rune(prefix), !caseSensitive) {
		return text
	}
	return prefix + text
}

// InsureEndsWith appends suffix unless text already ends with it.
func InsureEndsWith(text, suffix string, caseSensitive bool) string {
	if hasSuffix([]rune(text), []rune(suffix), !caseSensitive) {
		return text
	}
	return text + suffix
}
