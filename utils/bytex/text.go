// File: text.go
// Title: Textual Byte Representations
// Description: Hex strings, binary digit strings and Latin-1 text.
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation

package bytex

import (
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"

	lzerrors "github.com/labzen/tool/core/errors"
)

// HexToBytes decodes a hex string. Surrounding whitespace is ignored and both
// letter cases are accepted.
func HexToBytes(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if len(s)%2 != 0 {
		return nil, lzerrors.InvalidFormat(lzerrors.ModuleBytex, "HexToBytes", s, "even number of hex digits")
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, lzerrors.InvalidFormat(lzerrors.ModuleBytex, "HexToBytes", s, "hex digits").
			WithDetail("cause", err.Error())
	}
	return b, nil
}

// BytesToHex encodes b as two hex digits per byte.
func BytesToHex(b []byte, uppercase bool) string {
	s := hex.EncodeToString(b)
	if uppercase {
		return strings.ToUpper(s)
	}
	return s
}

// HexToBinaryString expands every hex digit into four binary digits:
// "03" -> "00000011".
func HexToBinaryString(s string) (string, error) {
	s = strings.TrimSpace(s)
	var b strings.Builder
	b.Grow(len(s) * 4)
	for _, r := range s {
		v, ok := hexDigit(r)
		if !ok {
			return "", lzerrors.InvalidFormat(lzerrors.ModuleBytex, "HexToBinaryString", s, "hex digits")
		}
		fmt.Fprintf(&b, "%04b", v)
	}
	return b.String(), nil
}

func hexDigit(r rune) (byte, bool) {
	switch {
	case r >= '0' && r <= '9':
		return byte(r - '0'), true
	case r >= 'a' && r <= 'f':
		return byte(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return byte(r-'A') + 10, true
	}
	return 0, false
}

// BytesToASCII decodes b as ISO-8859-1, mapping every byte to one character.
func BytesToASCII(b []byte) string {
	// every byte is valid ISO-8859-1
	s, _ := charmap.ISO8859_1.NewDecoder().Bytes(b)
	return string(s)
}

// ASCIIToBytes encodes s as ISO-8859-1. Characters above U+00FF cannot be
// represented and yield an invalid-format error.
func ASCIIToBytes(s string) ([]byte, error) {
	b, err := charmap.ISO8859_1.NewEncoder().String(s)
	if err != nil {
		return nil, lzerrors.InvalidFormat(lzerrors.ModuleBytex, "ASCIIToBytes", s, "ISO-8859-1 text").
			WithDetail("cause", err.Error())
	}
	return []byte(b), nil
}
