package bsl

import (
	"github.com/bsv-blockchain/go-bt/v2/bscript"
)

// Script is a CompactLength prefixed script, either a locking script or an unlocking one.
type Script struct {
	VarString
}

func ParseScript(slice []byte) (ParseResult[Script], error) {
	return parseScript(slice, ParseCompactLength)
}

func parseScript(slice []byte, parseLen ParseFunc[Len]) (ParseResult[Script], error) {
	r, err := parseVarString(slice, parseLen)
	if err != nil {
		return ParseResult[Script]{}, err
	}

	return NewParseResult(r.remaining, Script{VarString: r.parsed}, r.consumed), nil
}

// Script returns the script bytes without the length prefix.
func (s Script) Script() []byte {
	return s.Payload()
}

// IsProvablyUnspendable reports whether the script starts with OP_RETURN or OP_FALSE OP_RETURN.
func (s Script) IsProvablyUnspendable() bool {
	b := s.Payload()

	switch {
	case len(b) > 0 && b[0] == bscript.OpRETURN:
		return true
	case len(b) > 1 && b[0] == bscript.OpFALSE && b[1] == bscript.OpRETURN:
		return true
	default:
		return false
	}
}
