package model

import (
	"bytes"
	"encoding/hex"
	"math/big"

	"github.com/bsv-blockchain/go-bc"
	"github.com/bsv-blockchain/go-bt/v2"
	"github.com/bsv-blockchain/go-bt/v2/chainhash"
	"github.com/bsv-blockchain/go-wire"
	"github.com/sat20-labs/satsnet-slices/bsl"
	"github.com/sat20-labs/satsnet-slices/errors"
)

type BlockHeader struct {
	// Version of the block.  This is not the same as the protocol version.
	Version uint32

	// Hash of the previous block header in the blockchain.
	HashPrevBlock *chainhash.Hash

	// Merkle tree reference to hash of all transactions for the block.
	HashMerkleRoot *chainhash.Hash

	// Time the block was created in unix time.
	Timestamp uint32

	// Difficulty target for the block.
	Bits NBit

	// Nonce used to generate the block.
	Nonce uint32
}

// NewBlockHeaderFromSlice copies a parsed header into an owned BlockHeader.
func NewBlockHeaderFromSlice(h bsl.BlockHeader) *BlockHeader {
	prev := h.PrevBlockHash()
	merkleRoot := h.MerkleRoot()

	return &BlockHeader{
		Version:        uint32(h.Version()), //nolint:gosec // same bits, unsigned on the model side
		HashPrevBlock:  &prev,
		HashMerkleRoot: &merkleRoot,
		Timestamp:      h.Time(),
		Bits:           NewNBitFromUint32(h.Bits()),
		Nonce:          h.Nonce(),
	}
}

func NewBlockHeaderFromBytes(headerBytes []byte) (*BlockHeader, error) {
	if len(headerBytes) != bsl.BlockHeaderSize {
		return nil, errors.NewInvalidArgumentError("block header should be %d bytes long, got %d", bsl.BlockHeaderSize, len(headerBytes))
	}

	r, err := bsl.ParseBlockHeader(headerBytes)
	if err != nil {
		return nil, err
	}

	return NewBlockHeaderFromSlice(r.Parsed()), nil
}

func NewBlockHeaderFromString(headerHex string) (*BlockHeader, error) {
	headerBytes, err := hex.DecodeString(headerHex)
	if err != nil {
		return nil, errors.NewInvalidArgumentError("error decoding hex string to bytes", err)
	}

	return NewBlockHeaderFromBytes(headerBytes)
}

func (bh *BlockHeader) Hash() *chainhash.Hash {
	hash := chainhash.DoubleHashH(bh.Bytes())
	return &hash
}

func (bh *BlockHeader) String() string {
	return bh.Hash().String()
}

// Valid reports whether the header hash meets the target encoded in Bits.
func (bh *BlockHeader) Valid() bool {
	target, err := bc.ExpandTargetFromAsInt(bh.Bits.String())
	if err != nil {
		return false
	}

	hash := bh.Hash()

	return new(big.Int).SetBytes(bt.ReverseBytes(hash[:])).Cmp(target) < 0
}

// HasMetTargetDifficulty is Valid with the hash and a reason when the target is missed.
func (bh *BlockHeader) HasMetTargetDifficulty() (bool, *chainhash.Hash, error) {
	hash := bh.Hash()
	target := bh.Bits.CalculateTarget()

	if new(big.Int).SetBytes(bt.ReverseBytes(hash[:])).Cmp(target) <= 0 {
		return true, hash, nil
	}

	return false, hash, errors.NewProcessingError("[HasMetTargetDifficulty][%s] block hash is above target %s", hash.String(), target.Text(16))
}

func (bh *BlockHeader) Bytes() []byte {
	var blockHeaderBytes []byte

	blockHeaderBytes = append(blockHeaderBytes, bc.UInt32ToBytes(bh.Version)...)
	blockHeaderBytes = append(blockHeaderBytes, bh.HashPrevBlock.CloneBytes()...)
	blockHeaderBytes = append(blockHeaderBytes, bh.HashMerkleRoot.CloneBytes()...)
	blockHeaderBytes = append(blockHeaderBytes, bc.UInt32ToBytes(bh.Timestamp)...)
	blockHeaderBytes = append(blockHeaderBytes, bh.Bits.CloneBytes()...)
	blockHeaderBytes = append(blockHeaderBytes, bc.UInt32ToBytes(bh.Nonce)...)

	return blockHeaderBytes
}

func (bh *BlockHeader) ToWireBlockHeader() (*wire.BlockHeader, error) {
	w := &wire.BlockHeader{}

	if err := w.Deserialize(bytes.NewReader(bh.Bytes())); err != nil {
		return nil, errors.NewProcessingError("[ToWireBlockHeader][%s] failed to deserialize header", bh.String(), err)
	}

	return w, nil
}
