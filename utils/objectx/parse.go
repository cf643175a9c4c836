// File: parse.go
// Title: Numeric Parse Checks
// Description: Strict decimal checks for 32 and 64 bit integers.
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation

package objectx

import (
	"strconv"
)

// CanBeLong parses s as a strict base 10 int64. Only a leading '-' is
// accepted as sign; blanks, '+', underscores and overflow all yield false.
func CanBeLong(s string) (int64, bool) {
	if !isStrictDecimal(s) {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// CanBeInt parses s as a strict base 10 int32 under the rules of CanBeLong.
func CanBeInt(s string) (int32, bool) {
	if !isStrictDecimal(s) {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(n), true
}

func isStrictDecimal(s string) bool {
	if len(s) > 0 && s[0] == '-' {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
