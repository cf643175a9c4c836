// File: slice.go
// Title: Positional String Operations
// Description: Index based access, windows, insertion and removal. Negative
//              indexes count from the end of the string.
// Version: v0.1.0
// Created: 2026-10-10
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-10 v0.1.0: Initial implementation
// - 2026-10-12 v0.1.1: Backward windows may reach index 0

package stringx

import (
	lzerrors "github.com/labzen/tool/core/errors"
	"github.com/labzen/tool/utils/tuple"
)

// At returns the rune at index. A negative index counts from the end.
// The boolean is false when the index lies outside the string.
func At(text string, index int) (rune, bool) {
	runes := []rune(text)
	if index < 0 {
		index += len(runes)
	}
	if index < 0 || index >= len(runes) {
		return 0, false
	}
	return runes[index], true
}

// Sub returns length runes of text starting at start. A negative start counts
// from the end. A negative length walks leftwards and includes the start rune:
//
//	Sub("0123456789", 3, 3)   // "345"
//	Sub("0123456789", 3, -3)  // "123"
//	Sub("0123456789", -3, -3) // "567"
func Sub(text string, start, length int) (string, error) {
	runes := []rune(text)
	size := len(runes)
	if length == 0 || size == 0 {
		return "", nil
	}
	if abs(length) > size {
		return "", lzerrors.OutOfRange(lzerrors.ModuleStringx, "Sub",
			"substring length exceeds text length", length, -size, size)
	}

	from := start
	if start < 0 {
		from = size + start
	}
	if from < 0 || from >= size {
		return "", lzerrors.OutOfRange(lzerrors.ModuleStringx, "Sub",
			"substring start index out of range", start, -size, size-1)
	}

	to := from + length
	if length > 0 {
		if to > size {
			return "", lzerrors.OutOfRange(lzerrors.ModuleStringx, "Sub",
				"substring end index out of range", to, 0, size)
		}
		return string(runes[from:to]), nil
	}
	if to < -1 {
		return "", lzerrors.OutOfRange(lzerrors.ModuleStringx, "Sub",
			"substring end index out of range", to+1, 0, size)
	}
	return string(runes[to+1 : from+1]), nil
}

// Between returns the contents of every open/close pair in text, in order.
// An unclosed trailing pair is dropped.
func Between(text string, open, close rune) []string {
	var (
		result  []string
		current []rune
		opened  bool
	)
	for _, r := range text {
		switch {
		case !opened && r == open:
			opened = true
			current = current[:0]
		case opened && r == close:
			opened = false
			result = append(result, string(current))
		case opened:
			current = append(current, r)
		}
	}
	return result
}

// Cut splits text around sep when sep occurs exactly once. The boolean is
// false otherwise.
func Cut(text, sep string, caseSensitive bool) (tuple.Pair[string, string], bool) {
	if Times(text, sep, caseSensitive) != 1 {
		return tuple.Pair[string, string]{}, false
	}
	runes, sub := []rune(text), []rune(sep)
	idx := indexRunes(runes, sub, 0, !caseSensitive)
	return tuple.NewPair(string(runes[:idx]), string(runes[idx+len(sub):])), true
}

// Insert places fragment before the rune at index. A negative index counts
// from the end; index len(text) appends.
func Insert(text string, index int, fragment string) (string, error) {
	if fragment == "" {
		return text, nil
	}
	runes := []rune(text)
	if abs(index) > len(runes) {
		return "", lzerrors.OutOfRange(lzerrors.ModuleStringx, "Insert",
			"insert index out of range", index, -len(runes), len(runes))
	}
	if index < 0 {
		index += len(runes)
	}
	return string(runes[:index]) + fragment + string(runes[index:]), nil
}

// RemoveRange deletes the runes in [start, end).
func RemoveRange(text string, start, end int) (string, error) {
	if text == "" || start == end {
		return text, nil
	}
	runes := []rune(text)
	if start < 0 || end > len(runes) {
		return "", lzerrors.OutOfRange(lzerrors.ModuleStringx, "RemoveRange",
			"delete index out of range", []int{start, end}, 0, len(runes))
	}
	if start > end {
		return "", lzerrors.InvalidInput(lzerrors.ModuleStringx, "RemoveRange",
			"start index cannot exceed end index", []int{start, end})
	}
	return string(runes[:start]) + string(runes[end:]), nil
}

// RemoveTokens deletes occurrences of each token. A zero limit removes every
// occurrence, a positive limit the first limit occurrences of each token and
// a negative limit the last ones.
func RemoveTokens(text string, tokens []string, limit int, caseSensitive bool) string {
	runes := []rune(text)
	fold := !caseSensitive

	if limit == 0 {
		for _, token := range tokens {
			sub := []rune(token)
			if len(sub) == 0 {
				continue
			}
			for idx := indexRunes(runes, sub, 0, fold); idx >= 0; idx = indexRunes(runes, sub, idx, fold) {
				runes = append(runes[:idx:idx], runes[idx+len(sub):]...)
			}
		}
		return string(runes)
	}

	for round := 0; round < abs(limit); round++ {
		for _, token := range tokens {
			sub := []rune(token)
			if len(sub) == 0 {
				continue
			}
			idx := -1
			if limit < 0 {
				idx = lastIndexRunes(runes, sub, fold)
			} else {
				idx = indexRunes(runes, sub, 0, fold)
			}
			if idx >= 0 {
				runes = append(runes[:idx:idx], runes[idx+len(sub):]...)
			}
		}
	}
	return string(runes)
}

// LastUntil returns what follows the last occurrence of token. With extend the
// token itself is kept. Without an occurrence text is returned unchanged.
func LastUntil(text, token string, extend bool) string {
	runes, sub := []rune(text), []rune(token)
	idx := lastIndexRunes(runes, sub, false)
	if idx < 0 {
		return text
	}
	if extend {
		return string(runes[idx:])
	}
	return string(runes[idx+len(sub):])
}

// FrontUntil returns what precedes the first occurrence of token. With extend
// the token itself is kept. Without an occurrence text is returned unchanged.
func FrontUntil(text, token string, extend bool) string {
	runes, sub := []rune(text), []rune(token)
	idx := indexRunes(runes, sub, 0, false)
	if idx < 0 {
		return text
	}
	if extend {
		return string(runes[:idx+len(sub)])
	}
	return string(runes[:idx])
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
