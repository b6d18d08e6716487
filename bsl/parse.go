package bsl

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/sat20-labs/satsnet-slices/errors"
)

// ParseResult pairs a parsed value with the suffix of the input that was not consumed.
type ParseResult[T any] struct {
	remaining []byte
	parsed    T
	consumed  int
}

func NewParseResult[T any](remaining []byte, parsed T, consumed int) ParseResult[T] {
	return ParseResult[T]{
		remaining: remaining,
		parsed:    parsed,
		consumed:  consumed,
	}
}

// Parsed returns the parsed value.
func (r ParseResult[T]) Parsed() T {
	return r.parsed
}

// Remaining returns the unconsumed suffix of the input. It aliases the input.
func (r ParseResult[T]) Remaining() []byte {
	return r.remaining
}

// Consumed returns the number of bytes read from the front of the input.
func (r ParseResult[T]) Consumed() int {
	return r.consumed
}

// ParseFunc is implemented by every record parser in this package.
type ParseFunc[T any] func(slice []byte) (ParseResult[T], error)

// Raw is implemented by every record, it returns the bytes the record was parsed from.
type Raw interface {
	Bytes() []byte
}

// Clone returns an owned copy of the bytes backing r.
func Clone(r Raw) []byte {
	return bytes.Clone(r.Bytes())
}

// readSlice is the only place fixed width reads are bounds checked. The returned sub-slice
// has its capacity capped so appending to it can not overwrite the bytes that follow.
func readSlice(slice []byte, n uint64) (ParseResult[[]byte], error) {
	if n > uint64(len(slice)) {
		return ParseResult[[]byte]{}, insufficientBytes(n, len(slice), "[readSlice] need %d bytes, %d available", n, len(slice))
	}

	size := int(n)

	return NewParseResult(slice[size:], slice[:size:size], size), nil
}

func readUint16(slice []byte) (ParseResult[uint16], error) {
	r, err := readSlice(slice, 2)
	if err != nil {
		return ParseResult[uint16]{}, err
	}

	return NewParseResult(r.remaining, binary.LittleEndian.Uint16(r.parsed), r.consumed), nil
}

func readUint32(slice []byte) (ParseResult[uint32], error) {
	r, err := readSlice(slice, 4)
	if err != nil {
		return ParseResult[uint32]{}, err
	}

	return NewParseResult(r.remaining, binary.LittleEndian.Uint32(r.parsed), r.consumed), nil
}

func readUint64(slice []byte) (ParseResult[uint64], error) {
	r, err := readSlice(slice, 8)
	if err != nil {
		return ParseResult[uint64]{}, err
	}

	return NewParseResult(r.remaining, binary.LittleEndian.Uint64(r.parsed), r.consumed), nil
}

func readInt32(slice []byte) (ParseResult[int32], error) {
	r, err := readUint32(slice)
	if err != nil {
		return ParseResult[int32]{}, err
	}

	return NewParseResult(r.remaining, int32(r.parsed), r.consumed), nil //nolint:gosec // two's complement reinterpretation
}

func readInt64(slice []byte) (ParseResult[int64], error) {
	r, err := readUint64(slice)
	if err != nil {
		return ParseResult[int64]{}, err
	}

	return NewParseResult(r.remaining, int64(r.parsed), r.consumed), nil //nolint:gosec // two's complement reinterpretation
}

func insufficientBytes(needed uint64, available int, message string, params ...interface{}) error {
	n := math.MaxInt
	if needed < uint64(math.MaxInt) {
		n = int(needed)
	}

	return errors.NewInsufficientBytesError(n, available, message, params...)
}
