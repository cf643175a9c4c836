// File: number.go
// Title: Integer Byte Codecs
// Description: Fixed width big-endian encodings for int32 and int64, and an
//              unsigned encoding for big integers padded to 32 bytes.
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation

package bytex

import (
	"encoding/binary"
	"math/big"

	lzerrors "github.com/labzen/tool/core/errors"
)

const (
	// IntSize is the encoded length of an int32
	IntSize = 4
	// LongSize is the encoded length of an int64
	LongSize = 8
	// BigIntSize is the minimum encoded length of a big integer
	BigIntSize = 32
)

// IntToBytes encodes n as 4 big-endian bytes.
func IntToBytes(n int32) []byte {
	b := make([]byte, IntSize)
	binary.BigEndian.PutUint32(b, uint32(n))
	return b
}

// BytesToInt decodes 4 big-endian bytes.
func BytesToInt(b []byte) (int32, error) {
	if len(b) != IntSize {
		return 0, lzerrors.OutOfRange(lzerrors.ModuleBytex, "BytesToInt",
			"int buffer must be 4 bytes", len(b), IntSize, IntSize)
	}
	return int32(binary.BigEndian.Uint32(b)), nil
}

// LongToBytes encodes n as 8 big-endian bytes.
func LongToBytes(n int64) []byte {
	b := make([]byte, LongSize)
	binary.BigEndian.PutUint64(b, uint64(n))
	return b
}

// BytesToLong decodes 8 big-endian bytes.
func BytesToLong(b []byte) (int64, error) {
	if len(b) != LongSize {
		return 0, lzerrors.OutOfRange(lzerrors.ModuleBytex, "BytesToLong",
			"long buffer must be 8 bytes", len(b), LongSize, LongSize)
	}
	return int64(binary.BigEndian.Uint64(b)), nil
}

// BigIntToBytes encodes a non-negative n as unsigned big-endian bytes,
// left-padded with zeros to 32 bytes. Values wider than 256 bits keep their
// natural length.
func BigIntToBytes(n *big.Int) ([]byte, error) {
	if n == nil {
		return nil, lzerrors.InvalidInput(lzerrors.ModuleBytex, "BigIntToBytes",
			"big integer must not be nil", nil)
	}
	if n.Sign() < 0 {
		return nil, lzerrors.InvalidInput(lzerrors.ModuleBytex, "BigIntToBytes",
			"big integer must not be negative", n.String())
	}

	raw := n.Bytes()
	if len(raw) >= BigIntSize {
		return raw, nil
	}
	b := make([]byte, BigIntSize)
	copy(b[BigIntSize-len(raw):], raw)
	return b, nil
}

// BytesToBigInt decodes unsigned big-endian bytes. An empty buffer is zero.
func BytesToBigInt(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}
