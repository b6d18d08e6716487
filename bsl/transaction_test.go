package bsl

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/bsv-blockchain/go-bt/v2"
	"github.com/bsv-blockchain/go-bt/v2/chainhash"
	"github.com/sat20-labs/satsnet-slices/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// regtest coinbase, block 34424
const coinbaseHex = "02000000010000000000000000000000000000000000000000000000000000000000000000ffffffff06037886000101ffffffff01a82f000000000000232103a920b957d6d2268812e02dfd8799ed2a867e2df86c4f8d1eaecb4c35266692b5ac00000000"

var (
	p2pkh = []byte{0x76, 0xa9, 0x14, 0x62, 0xe9, 0x07, 0xb1, 0x5c, 0xbf, 0x27, 0xd5, 0x42, 0x53, 0x99, 0xeb, 0xf6, 0xf0, 0xfb, 0x50, 0xeb, 0xb8, 0x8f, 0x18, 0x88, 0xac}

	segwitWitness = []byte{0x02, 0x01, 0xaa, 0x02, 0xbb, 0xcc}
)

// segwitTx returns a one input, one output segwit transaction and its legacy serialisation.
func segwitTx() (full, legacy []byte) {
	version := le32(1)
	inputs := cat([]byte{0x01}, txIn(0x11, 3, nil, 0xfffffffe))
	outputs := cat([]byte{0x01}, txOut(1000, []byte{0x51}))
	locktime := le32(500)

	full = cat(version, []byte{0x00, 0x01}, inputs, outputs, segwitWitness, locktime)
	legacy = cat(version, inputs, outputs, locktime)

	return full, legacy
}

func TestParseOutPoint(t *testing.T) {
	input := outPoint(0x22, 7)

	o := requireExact(t, ParseOutPoint, input)

	assert.Equal(t, uint32(7), o.Vout())
	assert.Equal(t, chainhash.Hash(bytes.Repeat([]byte{0x22}, 32)), o.TxID())
	assert.False(t, o.IsNull())

	null := requireExact(t, ParseOutPoint, outPoint(0x00, 0xffffffff))
	assert.True(t, null.IsNull())

	assert.False(t, requireExact(t, ParseOutPoint, outPoint(0x00, 0)).IsNull())

	requireTruncationFails(t, ParseOutPoint, input)
}

func TestParseScript(t *testing.T) {
	s := requireExact(t, ParseScript, cat([]byte{byte(len(p2pkh))}, p2pkh))

	assert.Equal(t, p2pkh, s.Script())
	assert.False(t, s.IsProvablyUnspendable())

	assert.True(t, requireExact(t, ParseScript, []byte{0x02, 0x6a, 0x01}).IsProvablyUnspendable())
	assert.True(t, requireExact(t, ParseScript, []byte{0x02, 0x00, 0x6a}).IsProvablyUnspendable())
	assert.False(t, requireExact(t, ParseScript, []byte{0x00}).IsProvablyUnspendable())
}

func TestParseTxIn(t *testing.T) {
	input := txIn(0x33, 1, []byte{0x51, 0x52}, 0xffffffff)

	in := requireExact(t, ParseTxIn, input)

	assert.Equal(t, uint32(1), in.PrevOut().Vout())
	assert.Equal(t, []byte{0x51, 0x52}, in.UnlockingScript().Script())
	assert.Equal(t, uint32(0xffffffff), in.SequenceNumber())
	assert.Equal(t, input, cat(in.PrevOut().Bytes(), in.UnlockingScript().Bytes(), le32(in.SequenceNumber())))

	requireTruncationFails(t, ParseTxIn, input)
}

func TestParseTxOut(t *testing.T) {
	input := txOut(100_000_000, p2pkh)

	out := requireExact(t, ParseTxOut, input)

	assert.Equal(t, int64(100_000_000), out.Value())
	assert.Equal(t, p2pkh, out.LockingScript().Script())
	assert.True(t, out.Assets().IsEmpty())

	requireTruncationFails(t, ParseTxOut, input)

	outs := requireExact(t, ParseTxOuts, cat([]byte{0x02}, input, txOut(0, []byte{0x6a})))
	assert.Equal(t, 2, outs.N())
}

func TestParseSatsNetTxOut(t *testing.T) {
	assets := cat([]byte{0x02}, assetInfoCompact("ordx", "ft", "pearl", 1000, 1), assetInfoCompact("runes", "ft", "dog", 5, 0))
	input := cat(txOut(330, p2pkh), assets)

	out := requireExact(t, ParseSatsNetTxOut, input)

	assert.Equal(t, int64(330), out.Value())
	assert.Equal(t, assets, out.Assets().Bytes())
	require.Equal(t, 2, out.Assets().N())

	var names []string

	for info := range out.Assets().All() {
		name, err := info.Name().String()
		require.NoError(t, err)

		names = append(names, name)
	}

	assert.Equal(t, []string{"ordx:ft:pearl", "runes:ft:dog"}, names)

	requireTruncationFails(t, ParseSatsNetTxOut, input)

	t.Run("no assets", func(t *testing.T) {
		out := requireExact(t, ParseSatsNetTxOut, cat(txOut(1, nil), []byte{0x00}))
		assert.True(t, out.Assets().IsEmpty())
	})

	t.Run("fixed encoding", func(t *testing.T) {
		input := cat(txOut(330, p2pkh), []byte{0x01}, assetInfoFixed("ordx", "ft", "pearl", 1000, 1))

		out := requireExact(t, SatsNetTxOutParser(AssetInfoEncodingFixed), input)

		info, ok := out.Assets().Iter().Next()
		require.True(t, ok)
		assert.Equal(t, int64(1000), info.Amount())
	})
}

func TestParseTransactionLegacy(t *testing.T) {
	input, err := hex.DecodeString(coinbaseHex)
	require.NoError(t, err)

	tx := requireExact(t, ParseTransaction, input)

	assert.Equal(t, int32(2), tx.Version())
	assert.False(t, tx.IsSegwit())
	assert.True(t, tx.IsCoinbase())
	assert.Equal(t, 1, tx.Inputs().N())
	assert.Equal(t, 1, tx.Outputs().N())
	assert.True(t, tx.Witnesses().IsEmpty())
	assert.Equal(t, uint32(0), tx.Locktime())
	assert.Equal(t, "b2d725550ba419ef7452626f75faa8538bca695ab9284127b2210368455137d1", tx.TxID().String())
	assert.Equal(t, tx.TxID(), tx.WTxID())

	out, ok := tx.Outputs().Iter().Next()
	require.True(t, ok)
	assert.Equal(t, int64(12200), out.Value())

	btTx, err := bt.NewTxFromBytes(input)
	require.NoError(t, err)
	assert.Equal(t, btTx.TxID(), tx.TxID().String())

	requireTruncationFails(t, ParseTransaction, input)
}

func TestParseTransactionSegwit(t *testing.T) {
	full, legacy := segwitTx()

	tx := requireExact(t, ParseTransaction, full)

	assert.True(t, tx.IsSegwit())
	assert.False(t, tx.IsCoinbase())
	assert.Equal(t, int32(1), tx.Version())
	assert.Equal(t, uint32(500), tx.Locktime())
	assert.Equal(t, 1, tx.Inputs().N())
	assert.Equal(t, 1, tx.Outputs().N())
	require.Equal(t, 1, tx.Witnesses().N())
	assert.Equal(t, segwitWitness, tx.Witnesses().Bytes())

	witness, ok := tx.Witnesses().Iter().Next()
	require.True(t, ok)

	items, err := witness.Collect()
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, []byte{0xaa}, items[0].Payload())
	assert.Equal(t, []byte{0xbb, 0xcc}, items[1].Payload())

	legacyTx := requireExact(t, ParseTransaction, legacy)

	assert.Equal(t, chainhash.DoubleHashH(legacy), tx.TxID())
	assert.Equal(t, legacyTx.TxID(), tx.TxID())
	assert.Equal(t, chainhash.DoubleHashH(full), tx.WTxID())
	assert.NotEqual(t, tx.TxID(), tx.WTxID())

	btTx, err := bt.NewTxFromBytes(legacy)
	require.NoError(t, err)
	assert.Equal(t, btTx.TxID(), tx.TxID().String())

	requireTruncationFails(t, ParseTransaction, full)
}

func TestParseTransactionSegwitErrors(t *testing.T) {
	t.Run("bad flag", func(t *testing.T) {
		full, _ := segwitTx()
		full[5] = 0x02

		_, err := ParseTransaction(full)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrInvalidEncoding))
	})

	t.Run("no inputs after marker", func(t *testing.T) {
		input := cat(le32(1), []byte{0x00, 0x01, 0x00}, []byte{0x01}, txOut(1, nil), le32(0))

		_, err := ParseTransaction(input)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrInvalidEncoding))
	})

	t.Run("missing witness", func(t *testing.T) {
		full, _ := segwitTx()
		input := full[:len(full)-len(segwitWitness)-4]

		_, err := ParseTransaction(input)
		assert.True(t, errors.Is(err, errors.ErrInsufficientBytes))
	})
}

func TestParseSatsNetTransaction(t *testing.T) {
	assets := cat([]byte{0x01}, assetInfoCompact("ordx", "ft", "pearl", 1000, 1))
	input := cat(
		le32(2),
		[]byte{0x01}, txIn(0x44, 0, []byte{0x51}, 0xffffffff),
		[]byte{0x02}, txOut(330, p2pkh), assets, txOut(0, []byte{0x6a}), []byte{0x00},
		le32(0),
	)

	tx := requireExact(t, ParseSatsNetTransaction, input)

	outs, err := tx.Outputs().Collect()
	require.NoError(t, err)
	require.Len(t, outs, 2)
	assert.Equal(t, 1, outs[0].Assets().N())
	assert.True(t, outs[1].Assets().IsEmpty())
	assert.True(t, outs[1].LockingScript().IsProvablyUnspendable())

	requireTruncationFails(t, ParseSatsNetTransaction, input)

	// a satsnet transaction is not a valid bitcoin one
	r, err := ParseTransaction(input)
	assert.True(t, err != nil || r.Consumed() != len(input))

	parse := TransactionParser(true, AssetInfoEncodingCompact)
	same := requireExact(t, parse, input)
	assert.Equal(t, tx.TxID(), same.TxID())

	plain := TransactionParser(false, AssetInfoEncodingFixed)
	noOutputs := cat(le32(1), []byte{0x01}, txIn(0, 0, nil, 0), []byte{0x00}, le32(0))
	assert.Equal(t, int32(1), requireExact(t, plain, noOutputs).Version())
}
