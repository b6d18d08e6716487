package bsl

import (
	"encoding/binary"
	"math"

	safeconversion "github.com/bsv-blockchain/go-safe-conversion"
	"github.com/sat20-labs/satsnet-slices/errors"
)

const (
	lenMarker16 = 0xfd
	lenMarker32 = 0xfe
	lenMarker64 = 0xff
)

// Len is a decoded CompactLength (Bitcoin CompactSize) together with the width of its encoding.
type Len struct {
	n        uint64
	consumed int
}

// N returns the decoded value.
func (l Len) N() uint64 {
	return l.n
}

// Consumed returns the encoded width: 1, 3, 5 or 9.
func (l Len) Consumed() int {
	return l.consumed
}

// Int64 narrows the value, failing instead of wrapping.
func (l Len) Int64() (int64, error) {
	n, err := safeconversion.Uint64ToInt64(l.n)
	if err != nil {
		return 0, errors.NewInvalidEncodingError("[Len] %d overflows int64", l.n, err)
	}

	return n, nil
}

// Uint16 narrows the value, failing instead of wrapping.
func (l Len) Uint16() (uint16, error) {
	if l.n > math.MaxUint16 {
		return 0, errors.NewInvalidEncodingError("[Len] %d overflows uint16", l.n)
	}

	return uint16(l.n), nil
}

// Int narrows the value, failing instead of wrapping.
func (l Len) Int() (int, error) {
	n, err := safeconversion.Uint64ToInt(l.n)
	if err != nil {
		return 0, errors.NewInvalidEncodingError("[Len] %d overflows int", l.n, err)
	}

	return n, nil
}

func lenWidth(marker byte) int {
	switch marker {
	case lenMarker16:
		return 3
	case lenMarker32:
		return 5
	case lenMarker64:
		return 9
	default:
		return 1
	}
}

// ParseLen decodes a CompactLength from the front of slice. Values below 0xfd are stored in the
// first byte, the markers 0xfd, 0xfe and 0xff select a following little endian uint16, uint32
// or uint64. Encodings that are wider than necessary are accepted.
func ParseLen(slice []byte) (Len, error) {
	if len(slice) == 0 {
		return Len{}, errors.NewInsufficientBytesError(1, 0, "[ParseLen] empty input")
	}

	marker := slice[0]

	width := lenWidth(marker)
	if len(slice) < width {
		return Len{}, errors.NewInsufficientBytesError(width, len(slice), "[ParseLen] marker 0x%02x needs %d bytes, %d available", marker, width, len(slice))
	}

	switch width {
	case 3:
		return Len{n: uint64(binary.LittleEndian.Uint16(slice[1:3])), consumed: 3}, nil
	case 5:
		return Len{n: uint64(binary.LittleEndian.Uint32(slice[1:5])), consumed: 5}, nil
	case 9:
		return Len{n: binary.LittleEndian.Uint64(slice[1:9]), consumed: 9}, nil
	default:
		return Len{n: uint64(marker), consumed: 1}, nil
	}
}

// ParseLenCanonical is ParseLen that also rejects values not encoded in their shortest form.
func ParseLenCanonical(slice []byte) (Len, error) {
	l, err := ParseLen(slice)
	if err != nil {
		return Len{}, err
	}

	if l.consumed != LenSize(l.n) {
		return Len{}, errors.NewInvalidEncodingError("[ParseLenCanonical] %d encoded in %d bytes is not canonical", l.n, l.consumed)
	}

	return l, nil
}

// ParseCompactLength is ParseLen shaped as a ParseFunc, so a CompactLength composes with the
// other parsers through its remaining suffix.
func ParseCompactLength(slice []byte) (ParseResult[Len], error) {
	l, err := ParseLen(slice)
	if err != nil {
		return ParseResult[Len]{}, err
	}

	return NewParseResult(slice[l.consumed:], l, l.consumed), nil
}

// ParseCompactLengthCanonical is ParseLenCanonical shaped as a ParseFunc.
func ParseCompactLengthCanonical(slice []byte) (ParseResult[Len], error) {
	l, err := ParseLenCanonical(slice)
	if err != nil {
		return ParseResult[Len]{}, err
	}

	return NewParseResult(slice[l.consumed:], l, l.consumed), nil
}

// LenSize returns the number of bytes the shortest encoding of n occupies.
func LenSize(n uint64) int {
	switch {
	case n < lenMarker16:
		return 1
	case n <= math.MaxUint16:
		return 3
	case n <= math.MaxUint32:
		return 5
	default:
		return 9
	}
}

// AppendLen appends the shortest encoding of n to dst.
func AppendLen(dst []byte, n uint64) []byte {
	switch LenSize(n) {
	case 1:
		return append(dst, byte(n))
	case 3:
		return binary.LittleEndian.AppendUint16(append(dst, lenMarker16), uint16(n))
	case 5:
		return binary.LittleEndian.AppendUint32(append(dst, lenMarker32), uint32(n))
	default:
		return binary.LittleEndian.AppendUint64(append(dst, lenMarker64), n)
	}
}

func EncodeLen(n uint64) []byte {
	return AppendLen(make([]byte, 0, LenSize(n)), n)
}
