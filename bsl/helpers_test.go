package bsl

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/sat20-labs/satsnet-slices/errors"
	"github.com/stretchr/testify/require"
)

var tail = []byte{0xde, 0xad}

// requireExact parses input followed by a two byte tail and checks the record covers exactly input.
func requireExact[T Raw](t *testing.T, parse ParseFunc[T], input []byte) T {
	t.Helper()

	withTail := append(bytes.Clone(input), tail...)

	r, err := parse(withTail)
	require.NoError(t, err)
	require.Equal(t, len(input), r.Consumed())
	require.Equal(t, tail, r.Remaining())
	require.Equal(t, len(withTail), r.Consumed()+len(r.Remaining()))
	require.Equal(t, input, r.Parsed().Bytes())

	return r.Parsed()
}

// requireTruncationFails checks every strict prefix of input fails with ErrInsufficientBytes.
func requireTruncationFails[T any](t *testing.T, parse ParseFunc[T], input []byte) {
	t.Helper()

	for i := 0; i < len(input); i++ {
		r, err := parse(input[:i])
		require.Error(t, err, "prefix of %d bytes", i)
		require.True(t, errors.Is(err, errors.ErrInsufficientBytes), "prefix of %d bytes: %v", i, err)
		require.Zero(t, r.Consumed())
		require.Nil(t, r.Remaining())
	}
}

func varStr(s string) []byte {
	return append(EncodeLen(uint64(len(s))), s...)
}

func cat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}

	return out
}

func le32(v uint32) []byte {
	return binary.LittleEndian.AppendUint32(nil, v)
}

func le64(v uint64) []byte {
	return binary.LittleEndian.AppendUint64(nil, v)
}

func assetName(protocol, typ, ticker string) []byte {
	return cat(varStr(protocol), varStr(typ), varStr(ticker))
}

func assetInfoCompact(protocol, typ, ticker string, amount, bindingSat uint64) []byte {
	return cat(assetName(protocol, typ, ticker), EncodeLen(amount), EncodeLen(bindingSat))
}

func assetInfoFixed(protocol, typ, ticker string, amount int64, bindingSat uint16) []byte {
	return cat(assetName(protocol, typ, ticker), le64(uint64(amount)), binary.LittleEndian.AppendUint16(nil, bindingSat))
}

func outPoint(fill byte, vout uint32) []byte {
	return cat(bytes.Repeat([]byte{fill}, 32), le32(vout))
}

func txIn(fill byte, vout uint32, script []byte, sequence uint32) []byte {
	return cat(outPoint(fill, vout), EncodeLen(uint64(len(script))), script, le32(sequence))
}

func txOut(value int64, script []byte) []byte {
	return cat(le64(uint64(value)), EncodeLen(uint64(len(script))), script)
}
