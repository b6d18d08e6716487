package bsl

import (
	"encoding/binary"

	"github.com/bsv-blockchain/go-bt/v2/chainhash"
)

const BlockHeaderSize = 80

// BlockHeader is the fixed 80 byte block header.
type BlockHeader struct {
	slice []byte
}

func ParseBlockHeader(slice []byte) (ParseResult[BlockHeader], error) {
	r, err := readSlice(slice, BlockHeaderSize)
	if err != nil {
		return ParseResult[BlockHeader]{}, err
	}

	return NewParseResult(r.remaining, BlockHeader{slice: r.parsed}, r.consumed), nil
}

func (h BlockHeader) Bytes() []byte {
	return h.slice
}

func (h BlockHeader) Version() int32 {
	return int32(binary.LittleEndian.Uint32(h.slice[0:4])) //nolint:gosec // two's complement reinterpretation
}

func (h BlockHeader) PrevBlockHash() chainhash.Hash {
	var hash chainhash.Hash

	copy(hash[:], h.slice[4:36])

	return hash
}

func (h BlockHeader) MerkleRoot() chainhash.Hash {
	var hash chainhash.Hash

	copy(hash[:], h.slice[36:68])

	return hash
}

func (h BlockHeader) Time() uint32 {
	return binary.LittleEndian.Uint32(h.slice[68:72])
}

// Bits returns the compact difficulty target.
func (h BlockHeader) Bits() uint32 {
	return binary.LittleEndian.Uint32(h.slice[72:76])
}

func (h BlockHeader) Nonce() uint32 {
	return binary.LittleEndian.Uint32(h.slice[76:80])
}

func (h BlockHeader) Hash() chainhash.Hash {
	return chainhash.DoubleHashH(h.slice)
}
