package model

import (
	"testing"

	"github.com/sat20-labs/satsnet-slices/bsl"
	"github.com/sat20-labs/satsnet-slices/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBlockHeaderFromString(t *testing.T) {
	headerHex := block1Hex[:2*bsl.BlockHeaderSize]

	header, err := NewBlockHeaderFromString(headerHex)
	require.NoError(t, err)

	assert.Equal(t, uint32(0x20000000), header.Version)
	assert.Equal(t, "0f9188f13cb7b2c71f2a335e3a4fc328bf5beb436012afca590b1a11466e2206", header.HashPrevBlock.String())
	assert.Equal(t, "6a6c0ec8d4adfe242b17153b4f2723b0cb6f783b1ca0f1e17cbdaf699a813316", header.HashMerkleRoot.String())
	assert.Equal(t, uint32(1729251723), header.Timestamp)
	assert.Equal(t, "207fffff", header.Bits.String())
	assert.Equal(t, uint32(4), header.Nonce)
	assert.Equal(t, "4c74e0128fef1a01469380c05b215afaf4cfe51183461f4a7996a84295b6925a", header.String())

	assert.Equal(t, decodeHex(t, headerHex), header.Bytes())
}

func TestNewBlockHeaderFromBytesLength(t *testing.T) {
	_, err := NewBlockHeaderFromBytes(make([]byte, 79))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidArgument))

	_, err = NewBlockHeaderFromString("zz")
	require.Error(t, err)
}

func TestBlockHeaderMatchesSlice(t *testing.T) {
	input := decodeHex(t, block34424Hex)[:bsl.BlockHeaderSize]

	r, err := bsl.ParseBlockHeader(input)
	require.NoError(t, err)

	header := NewBlockHeaderFromSlice(r.Parsed())

	hash := r.Parsed().Hash()
	assert.Equal(t, &hash, header.Hash())
	assert.Equal(t, input, header.Bytes())
}

func TestBlockHeaderTargetDifficulty(t *testing.T) {
	for _, blockHex := range []string{block1Hex, block34424Hex} {
		header, err := NewBlockHeaderFromString(blockHex[:2*bsl.BlockHeaderSize])
		require.NoError(t, err)

		assert.True(t, header.Valid())

		ok, hash, err := header.HasMetTargetDifficulty()
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, header.Hash(), hash)
	}

	t.Run("missed target", func(t *testing.T) {
		header, err := NewBlockHeaderFromString(block1Hex[:2*bsl.BlockHeaderSize])
		require.NoError(t, err)

		// the lowest possible target, no real hash meets it
		header.Bits = NewNBitFromUint32(0x03000001)

		assert.False(t, header.Valid())

		ok, _, err := header.HasMetTargetDifficulty()
		require.Error(t, err)
		assert.False(t, ok)
	})
}

func TestToWireBlockHeader(t *testing.T) {
	header, err := NewBlockHeaderFromString(block34424Hex[:2*bsl.BlockHeaderSize])
	require.NoError(t, err)

	w, err := header.ToWireBlockHeader()
	require.NoError(t, err)

	assert.Equal(t, header.Hash().String(), w.BlockHash().String())
	assert.Equal(t, header.Nonce, w.Nonce)
	assert.Equal(t, header.Bits.Uint32(), w.Bits)
	assert.Equal(t, header.HashMerkleRoot.String(), w.MerkleRoot.String())
}
