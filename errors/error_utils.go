// Package errors provides the coded error type used by the decoder and utilities for categorizing errors.
package errors

import (
	"errors"
)

// IsTruncated reports whether err was caused by a view holding fewer bytes than a field required.
func IsTruncated(err error) bool {
	if err == nil {
		return false
	}

	var tErr *Error
	if As(err, &tErr) {
		return tErr.Is(ErrInsufficientBytes)
	}

	return false
}

// IsMalformedInput reports whether err rejects the input bytes themselves, as opposed to a
// caller or configuration mistake. Malformed input is terminal for the parse attempt: the
// whole chunk should be discarded.
//
// Parameters:
//   - err: Error to check
//
// Returns:
//   - bool: true for truncated input, out of range values and undecodable text
func IsMalformedInput(err error) bool {
	if err == nil {
		return false
	}

	var tErr *Error
	if !As(err, &tErr) {
		return false
	}

	for e := tErr; e != nil; {
		switch e.Code() {
		case ERR_INSUFFICIENT_BYTES, ERR_INVALID_ENCODING, ERR_INVALID_TEXT:
			return true
		}

		next, ok := e.wrappedErr.(*Error)
		if !ok {
			break
		}

		e = next
	}

	return false
}

// ShortRead returns the needed/available counts attached to a truncation error.
func ShortRead(err error) (*ShortReadErrData, bool) {
	var data *ShortReadErrData
	if AsData(err, &data) {
		return data, true
	}

	return nil, false
}

// GetErrorCategory returns a string representing the category of the error.
// This is useful for logging.
//
// Returns:
//   - string: Error category ("none", "truncated", "encoding", "text", "config", "unknown")
func GetErrorCategory(err error) string {
	if err == nil {
		return "none"
	}

	var tErr *Error
	if !errors.As(err, &tErr) {
		return "unknown"
	}

	switch {
	case tErr.Is(ErrInsufficientBytes):
		return "truncated"
	case tErr.Is(ErrInvalidEncoding):
		return "encoding"
	case tErr.Is(ErrInvalidText):
		return "text"
	case tErr.Is(ErrConfiguration):
		return "config"
	}

	return "unknown"
}
