package model

import (
	"encoding/binary"
	"math/big"

	"github.com/ordishs/go-utils"
	"github.com/sat20-labs/satsnet-slices/errors"
)

// NBit is the compact difficulty target, stored in wire (little endian) order.
type NBit [4]byte

// difficulty 1 target, bits 0x1d00ffff
var maxTarget = new(big.Int).Lsh(big.NewInt(0xffff), 208)

// NewNBitFromString parses bits as displayed, e.g. "207fffff".
func NewNBitFromString(s string) (*NBit, error) {
	b, err := utils.DecodeAndReverseHexString(s)
	if err != nil {
		return nil, errors.NewInvalidArgumentError("[NewNBitFromString] bits %q are not hex", s, err)
	}

	if len(b) != 4 {
		return nil, errors.NewInvalidArgumentError("[NewNBitFromString] bits %q should be 4 bytes", s)
	}

	return NewNBitFromSlice(b)
}

// NewNBitFromSlice takes bits in wire order.
func NewNBitFromSlice(b []byte) (*NBit, error) {
	if len(b) != 4 {
		return nil, errors.NewInvalidArgumentError("[NewNBitFromSlice] bits should be 4 bytes, got %d", len(b))
	}

	var n NBit

	copy(n[:], b)

	return &n, nil
}

func NewNBitFromUint32(bits uint32) NBit {
	var n NBit

	binary.LittleEndian.PutUint32(n[:], bits)

	return n
}

func (n NBit) Uint32() uint32 {
	return binary.LittleEndian.Uint32(n[:])
}

func (n NBit) String() string {
	return utils.ReverseAndHexEncodeSlice(n[:])
}

func (n NBit) CloneBytes() []byte {
	b := make([]byte, 4)
	copy(b, n[:])

	return b
}

// CalculateTarget expands the compact form: mantissa * 256^(exponent-3).
func (n NBit) CalculateTarget() *big.Int {
	bits := n.Uint32()
	exponent := uint(bits >> 24)
	target := big.NewInt(int64(bits & 0x007fffff))

	if exponent <= 3 {
		return target.Rsh(target, 8*(3-exponent))
	}

	return target.Lsh(target, 8*(exponent-3))
}

// CalculateDifficulty returns the difficulty relative to the difficulty 1 target.
func (n NBit) CalculateDifficulty() *big.Float {
	target := n.CalculateTarget()
	if target.Sign() == 0 {
		return new(big.Float)
	}

	return new(big.Float).Quo(new(big.Float).SetInt(maxTarget), new(big.Float).SetInt(target))
}
