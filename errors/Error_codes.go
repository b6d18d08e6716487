package errors

import "strconv"

// ERR is the numeric code carried by every *Error.
type ERR int32

//nolint:revive,stylecheck // codes mirror the wire names used in logs
const (
	ERR_UNKNOWN          ERR = 0
	ERR_INVALID_ARGUMENT ERR = 1
	ERR_PROCESSING       ERR = 4
	ERR_CONFIGURATION    ERR = 5
	ERR_ERROR            ERR = 9

	// decoding
	ERR_INSUFFICIENT_BYTES ERR = 20
	ERR_INVALID_ENCODING   ERR = 21
	ERR_INVALID_TEXT       ERR = 22
)

var (
	ERR_name = map[int32]string{
		0:  "UNKNOWN",
		1:  "INVALID_ARGUMENT",
		4:  "PROCESSING",
		5:  "CONFIGURATION",
		9:  "ERROR",
		20: "INSUFFICIENT_BYTES",
		21: "INVALID_ENCODING",
		22: "INVALID_TEXT",
	}

	ERR_value = map[string]int32{
		"UNKNOWN":            0,
		"INVALID_ARGUMENT":   1,
		"PROCESSING":         4,
		"CONFIGURATION":      5,
		"ERROR":              9,
		"INSUFFICIENT_BYTES": 20,
		"INVALID_ENCODING":   21,
		"INVALID_TEXT":       22,
	}
)

func (x ERR) String() string {
	if name, ok := ERR_name[int32(x)]; ok {
		return name
	}

	return strconv.Itoa(int(x))
}

// Enum returns a pointer to a copy of x.
func (x ERR) Enum() *ERR {
	p := new(ERR)
	*p = x

	return p
}
