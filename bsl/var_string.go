package bsl

import (
	"bytes"
	"unicode/utf8"

	"github.com/sat20-labs/satsnet-slices/errors"
)

// VarString is a CompactLength prefixed byte string. The text decode is deferred to String.
type VarString struct {
	slice    []byte
	strIndex int
}

func ParseVarString(slice []byte) (ParseResult[VarString], error) {
	return parseVarString(slice, ParseCompactLength)
}

// ParseVarStringCanonical is ParseVarString with a canonical length prefix.
func ParseVarStringCanonical(slice []byte) (ParseResult[VarString], error) {
	return parseVarString(slice, ParseCompactLengthCanonical)
}

func parseVarString(slice []byte, parseLen ParseFunc[Len]) (ParseResult[VarString], error) {
	l, err := parseLen(slice)
	if err != nil {
		return ParseResult[VarString]{}, err
	}

	payload, err := readSlice(l.remaining, l.parsed.n)
	if err != nil {
		return ParseResult[VarString]{}, err
	}

	consumed := l.consumed + payload.consumed

	return NewParseResult(payload.remaining, VarString{
		slice:    slice[:consumed:consumed],
		strIndex: l.consumed,
	}, consumed), nil
}

// Bytes returns the full encoding, length prefix included.
func (v VarString) Bytes() []byte {
	return v.slice
}

// Payload returns the string bytes without the length prefix. They are not validated.
func (v VarString) Payload() []byte {
	return v.slice[v.strIndex:]
}

func (v VarString) Len() int {
	return len(v.slice) - v.strIndex
}

// String decodes the payload as UTF-8.
func (v VarString) String() (string, error) {
	payload := v.Payload()
	if !utf8.Valid(payload) {
		return "", errors.NewInvalidTextError("[VarString] payload of %d bytes is not valid utf-8", len(payload))
	}

	return string(payload), nil
}

func (v VarString) Equal(other VarString) bool {
	return bytes.Equal(v.slice, other.slice)
}
