package bsl

import (
	"encoding/binary"

	"github.com/bsv-blockchain/go-bt/v2/chainhash"
)

const outPointSize = chainhash.HashSize + 4

// OutPoint references the output of a previous transaction.
type OutPoint struct {
	slice []byte
}

func ParseOutPoint(slice []byte) (ParseResult[OutPoint], error) {
	r, err := readSlice(slice, outPointSize)
	if err != nil {
		return ParseResult[OutPoint]{}, err
	}

	return NewParseResult(r.remaining, OutPoint{slice: r.parsed}, r.consumed), nil
}

func (o OutPoint) Bytes() []byte {
	return o.slice
}

// TxID returns the hash of the referenced transaction, in wire (little endian) byte order.
func (o OutPoint) TxID() chainhash.Hash {
	var h chainhash.Hash

	copy(h[:], o.slice[:chainhash.HashSize])

	return h
}

func (o OutPoint) Vout() uint32 {
	return binary.LittleEndian.Uint32(o.slice[chainhash.HashSize:])
}

// IsNull reports whether o is the coinbase outpoint: zero hash and index 0xffffffff.
func (o OutPoint) IsNull() bool {
	if o.Vout() != 0xffffffff {
		return false
	}

	for _, b := range o.slice[:chainhash.HashSize] {
		if b != 0 {
			return false
		}
	}

	return true
}
