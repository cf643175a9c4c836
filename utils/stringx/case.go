// File: case.go
// Title: Case Conversion Functions
// Description: Converts strings between naming conventions and changes the case
//              of a rune window.
// Version: v0.2.1
// Created: 2026-09-28
// Modified: 2026-10-19
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation with naming conventions
// - 2026-10-11 v0.2.0: Shared word slicing with case modes, window conversion
// - 2026-10-19 v0.2.1: StudlyCase capitalizes only the first rune of a word

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	lzerrors "github.com/labzen/tool/core/errors"
)

// CaseMode selects how the words of a converted string are cased
type CaseMode int

const (
	// KeepCase leaves every word as it is
	KeepCase CaseMode = iota
	// LowerCase lowers every word
	LowerCase
	// UpperCase uppers every word
	UpperCase
)

// ToLowerCase lowers length runes of text starting at start. Length 0 means
// up to the end, a negative start counts from the end. A negative length
// leaves text unchanged.
func ToLowerCase(text string, start, length int) (string, error) {
	return convertWindow("ToLowerCase", text, start, length, unicode.ToLower)
}

// ToUpperCase uppers length runes of text starting at start, with the window
// rules of ToLowerCase.
func ToUpperCase(text string, start, length int) (string, error) {
	return convertWindow("ToUpperCase", text, start, length, unicode.ToUpper)
}

func convertWindow(op, text string, start, length int, convert func(rune) rune) (string, error) {
	runes := []rune(text)
	size := len(runes)
	if length < 0 || size == 0 {
		return text, nil
	}
	if length > size {
		return "", lzerrors.OutOfRange(lzerrors.ModuleStringx, op,
			"case window exceeds text length", length, 0, size)
	}

	from := start
	if start < 0 {
		from = size + start
	}
	to := size
	if length > 0 {
		to = from + length
	}
	if from < 0 || from > size || to > size {
		return "", lzerrors.OutOfRange(lzerrors.ModuleStringx, op,
			"case window out of range", []int{start, length}, 0, size)
	}

	for i := from; i < to; i++ {
		runes[i] = convert(runes[i])
	}
	return string(runes), nil
}

func isWordSeparator(r rune) bool {
	switch r {
	case ' ', '-', '_', '\r', '\n', '\t':
		return true
	}
	return false
}

// Words splits text into words at separators and in front of every upper-case
// letter that follows a non-empty word, then applies mode to each word.
func Words(text string, mode CaseMode) []string {
	var (
		words   []string
		current strings.Builder
	)
	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}

	for _, r := range text {
		if isWordSeparator(r) {
			flush()
			continue
		}
		if unicode.IsUpper(r) && current.Len() > 0 {
			flush()
		}
		current.WriteRune(r)
	}
	flush()

	switch mode {
	case LowerCase:
		lower := cases.Lower(language.Und)
		for i, w := range words {
			words[i] = lower.String(w)
		}
	case UpperCase:
		upper := cases.Upper(language.Und)
		for i, w := range words {
			words[i] = upper.String(w)
		}
	}
	return words
}

// StudlyCase converts text to StudlyCase: "there_is_a_word" -> "ThereIsAWord".
// Only the first rune of each word is upper-cased.
func StudlyCase(text string) string {
	var b strings.Builder
	for _, w := range Words(text, LowerCase) {
		first, size := utf8.DecodeRuneInString(w)
		b.WriteRune(unicode.ToUpper(first))
		b.WriteString(w[size:])
	}
	return b.String()
}

// CamelCase converts text to camelCase: "there_is_a_word" -> "thereIsAWord".
func CamelCase(text string) string {
	studly := []rune(StudlyCase(text))
	if len(studly) == 0 {
		return ""
	}
	studly[0] = unicode.ToLower(studly[0])
	return string(studly)
}

// SnakeCase joins the words of text with underscores.
func SnakeCase(text string, mode CaseMode) string {
	return strings.Join(Words(text, mode), "_")
}

// KebabCase joins the words of text with hyphens.
func KebabCase(text string, mode CaseMode) string {
	return strings.Join(Words(text, mode), "-")
}
