// File: stringx_test.go
// Title: Tests for Core String Utilities
// Description: Table-driven tests for emptiness checks, defaults, trimming
//              and comparison helpers.
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-11
//
// Change History:
// - 2026-09-28 v0.1.0: Initial tests
// - 2026-10-11 v0.2.0: Trim, nil helpers and regexp replacement

package stringx

import (
	"testing"

	lzerrors "github.com/labzen/tool/core/errors"
)

func TestIsBlank(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"empty", "", true},
		{"spaces", "   ", true},
		{"mixed whitespace", " \t\n\r ", true},
		{"text", "a", false},
		{"padded text", "  a  ", false},
		{"unicode space", "　", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBlank(tt.input); got != tt.want {
				t.Errorf("IsBlank(%q) = %v; want %v", tt.input, got, tt.want)
			}
			if got := IsNotBlank(tt.input); got == tt.want {
				t.Errorf("IsNotBlank(%q) = %v; want %v", tt.input, got, !tt.want)
			}
		})
	}
}

func TestIsEmpty(t *testing.T) {
	if !IsEmpty("") || IsEmpty(" ") {
		t.Error("IsEmpty should only accept the empty string")
	}
	if IsNotEmpty("") || !IsNotEmpty(" ") {
		t.Error("IsNotEmpty should reject only the empty string")
	}
}

func TestIsAnyBlankIsAllBlank(t *testing.T) {
	if IsAnyBlank() {
		t.Error("IsAnyBlank() = true; want false")
	}
	if !IsAllBlank() {
		t.Error("IsAllBlank() = false; want true")
	}
	if !IsAnyBlank("a", " ", "b") {
		t.Error("IsAnyBlank(a, ' ', b) = false; want true")
	}
	if IsAllBlank("a", " ") {
		t.Error("IsAllBlank(a, ' ') = true; want false")
	}
	if !IsAllBlank("", "\t") {
		t.Error("IsAllBlank('', tab) = false; want true")
	}
}

func TestDefaults(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"FirstNonEmpty", FirstNonEmpty("", " ", "a"), " "},
		{"FirstNonEmpty none", FirstNonEmpty("", ""), ""},
		{"FirstNonBlank", FirstNonBlank("", " ", "a"), "a"},
		{"FromDefault empty", FromDefault("", "def"), "def"},
		{"FromDefault value", FromDefault(" ", "def"), " "},
		{"FromBlankDefault blank", FromBlankDefault(" ", "def"), "def"},
		{"FromBlankDefault value", FromBlankDefault("x", "def"), "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %q; want %q", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestNilHelpers(t *testing.T) {
	value := "v"
	if got := NilTo(nil, "fallback"); got != "fallback" {
		t.Errorf("NilTo(nil) = %q; want fallback", got)
	}
	if got := NilTo(&value, "fallback"); got != "v" {
		t.Errorf("NilTo(&v) = %q; want v", got)
	}
	if EmptyToNil("") != nil {
		t.Error("EmptyToNil(\"\") should be nil")
	}
	if p := EmptyToNil(" "); p == nil || *p != " " {
		t.Error("EmptyToNil(' ') should keep the value")
	}
	if BlankToNil(" ") != nil {
		t.Error("BlankToNil(' ') should be nil")
	}
}

func TestJoinNonNil(t *testing.T) {
	one, empty, two, three := "1", "", "2", "3"
	if got := JoinNonNil(":", &one, &empty, &two, nil, &three); got != "1::2:3" {
		t.Errorf("JoinNonNil = %q; want %q", got, "1::2:3")
	}
	if got := JoinNonNil("", &one, nil, &two); got != "12" {
		t.Errorf("JoinNonNil without separator = %q; want %q", got, "12")
	}
}

func TestReplaceIfMatch(t *testing.T) {
	tests := []struct {
		source, pattern, replacement string
		want                         string
	}{
		{"null", "null", "value", "value"},
		{"a123456b", `\d+`, "numbers", "a123456b"},
		{"123456", `\d+`, "numbers", "numbers"},
	}

	for _, tt := range tests {
		got, err := ReplaceIfMatch(tt.source, tt.pattern, tt.replacement)
		if err != nil {
			t.Fatalf("ReplaceIfMatch(%q, %q) unexpected error: %v", tt.source, tt.pattern, err)
		}
		if got != tt.want {
			t.Errorf("ReplaceIfMatch(%q, %q) = %q; want %q", tt.source, tt.pattern, got, tt.want)
		}
	}

	if _, err := ReplaceIfMatch("x", "(", "y"); !lzerrors.IsInvalidFormat(err) {
		t.Errorf("ReplaceIfMatch with a bad pattern: got %v; want invalid format", err)
	}
}

func TestTrim(t *testing.T) {
	tests := []struct {
		name      string
		source    string
		redundant string
		place     TrimPlace
		want      string
	}{
		{"both", "===123===", "=", TrimBoth, "123"},
		{"leading", "===123===", "=", TrimLeading, "123==="},
		{"trailing", "===123===", "=", TrimTrailing, "===123"},
		{"multi rune token", "ababxab", "ab", TrimBoth, "x"},
		{"empty token", "==x", "", TrimBoth, "==x"},
		{"only tokens", "====", "=", TrimBoth, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Trim(tt.source, tt.redundant, tt.place); got != tt.want {
				t.Errorf("Trim(%q, %q, %d) = %q; want %q", tt.source, tt.redundant, tt.place, got, tt.want)
			}
		})
	}
}

func TestSimplify(t *testing.T) {
	if got := Simplify("  sample   english \t sentence.   "); got != "sample english sentence." {
		t.Errorf("Simplify = %q; want %q", got, "sample english sentence.")
	}
}

func TestReverse(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"abc_xyz", "zyx_cba"},
		{"", ""},
		{"世界", "界世"},
	}

	for _, tt := range tests {
		if got := Reverse(tt.input); got != tt.want {
			t.Errorf("Reverse(%q) = %q; want %q", tt.input, got, tt.want)
		}
	}
}

func TestEqualsAny(t *testing.T) {
	if !EqualsAny("1", "1", "2", "3") {
		t.Error("EqualsAny(1, 1, 2, 3) = false; want true")
	}
	if EqualsAny("abc", "Abc", "ABC") {
		t.Error("EqualsAny is case sensitive")
	}
	if !EqualsAnyIgnoreCase("abc", "Abc", "xyz") {
		t.Error("EqualsAnyIgnoreCase(abc, Abc) = false; want true")
	}
	if EqualsAny("x") {
		t.Error("EqualsAny without targets should be false")
	}
}

func TestContainsIgnoreCase(t *testing.T) {
	if !ContainsIgnoreCase("Hello World", "WORLD") {
		t.Error("ContainsIgnoreCase should match WORLD")
	}
	if ContainsIgnoreCase("Hello", "xyz") {
		t.Error("ContainsIgnoreCase should not match xyz")
	}
}
