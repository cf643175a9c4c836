// File: format.go
// Title: Formatting and Padding
// Description: Positional {} templates, truncation with an ellipsis, token
//              wrapping, repetition and padding.
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-11
//
// Change History:
// - 2026-09-28 v0.1.0: Truncate and padding helpers
// - 2026-10-11 v0.2.0: Format templates, Brief replaces Truncate, Fill replaces padding

package stringx

import (
	"fmt"
	"strings"

	lzerrors "github.com/labzen/tool/core/errors"
	"github.com/labzen/tool/utils/objectx"
)

const (
	placeholder = "{}"
	escapeChar  = '\\'
	nilArgument = "[null]"
)

// Format substitutes args into the {} placeholders of template, left to right.
// Surplus args are ignored and placeholders without an arg stay as they are.
// A nil arg renders as [null]. \{} yields a literal {} and keeps the arg for
// the next placeholder, \\{} yields a backslash followed by the arg.
func Format(template string, args ...interface{}) string {
	if template == "" || len(args) == 0 {
		return template
	}

	var buf strings.Builder
	buf.Grow(len(template) + 16*len(args))

	start := 0
	for ai := 0; ai < len(args); ai++ {
		cur := strings.Index(template[start:], placeholder)
		if cur < 0 {
			break
		}
		cur += start

		if cur > 0 && template[cur-1] == escapeChar {
			if cur > 1 && template[cur-2] == escapeChar {
				buf.WriteString(template[start : cur-1])
				writeArgument(&buf, args[ai])
				start = cur + 2
			} else {
				ai--
				buf.WriteString(template[start : cur-1])
				buf.WriteByte('{')
				start = cur + 1
			}
			continue
		}

		buf.WriteString(template[start:cur])
		writeArgument(&buf, args[ai])
		start = cur + 2
	}

	buf.WriteString(template[start:])
	return buf.String()
}

func writeArgument(buf *strings.Builder, arg interface{}) {
	if objectx.IsNil(arg) {
		buf.WriteString(nilArgument)
		return
	}
	fmt.Fprint(buf, arg)
}

// Brief shortens text to maxLength runes, the ellipsis included.
// Text that already fits is returned unchanged.
func Brief(text string, maxLength int, ellipsis string) (string, error) {
	runes := []rune(text)
	if len(runes) <= maxLength {
		return text, nil
	}
	el := len([]rune(ellipsis))
	if maxLength < el || maxLength < 0 {
		return "", lzerrors.OutOfRange(lzerrors.ModuleStringx, "Brief",
			"max length is shorter than the ellipsis", maxLength, el, len(runes))
	}
	return string(runes[:maxLength-el]) + ellipsis, nil
}

// Wrap surrounds every occurrence of token with prefix and suffix.
func Wrap(text, token, prefix, suffix string) string {
	if text == "" || token == "" {
		return text
	}
	return strings.ReplaceAll(text, token, prefix+token+suffix)
}

// RepeatUntil repeats text until the result is length runes long, cutting the
// last repetition short when needed.
func RepeatUntil(text string, length int) (string, error) {
	if length < 0 {
		return "", lzerrors.ValidationFailed(lzerrors.ModuleStringx, "RepeatUntil",
			"repeat length cannot be negative", map[string]interface{}{"length": length})
	}
	unit := []rune(text)
	if length == 0 || len(unit) == 0 {
		return "", nil
	}

	result := make([]rune, length)
	for i := range result {
		result[i] = unit[i%len(unit)]
	}
	return string(result), nil
}

// Fill pads text with filler until it is |length| runes long. A positive
// length pads on the left, a negative one on the right. Text that is already
// long enough, or an empty filler, leaves text unchanged.
func Fill(text, filler string, length int) string {
	size := len([]rune(text))
	target := abs(length)
	if target <= size || filler == "" {
		return text
	}

	// target-size is positive here, so RepeatUntil cannot fail
	pad, _ := RepeatUntil(filler, target-size)
	if length < 0 {
		return text + pad
	}
	return pad + text
}
