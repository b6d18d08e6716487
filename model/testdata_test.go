package model

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"testing"

	"github.com/sat20-labs/satsnet-slices/bsl"
	"github.com/stretchr/testify/require"
)

// regtest blocks
const (
	block1Hex = "0000002006226e46111a0b59caaf126043eb5bbf28c34f3a5e332a1fc7b2b73cf188910f1633819a69afbd7ce1f1a01c3b786fcbb023274f3b15172b24feadd4c80e6c6a8b491267ffff7f20040000000102000000010000000000000000000000000000000000000000000000000000000000000000ffffffff03510101ffffffff0100f2052a01000000232103656065e6886ca1e947de3471c9e723673ab6ba34724476417fa9fcef8bafa604ac00000000"

	// height 34424, 4 transactions
	block34424Hex = "00000020a324e51a37547c5957868beb9f97d34f9b32ae96427513f4fe79ab3ee30f271a8acb3554ad71fbdc6070e6358ea9048c05bc83f1b962cf24295d9d07583d81698b5e3b67ffff7f20010000000402000000010000000000000000000000000000000000000000000000000000000000000000ffffffff06037886000101ffffffff01a82f000000000000232103a920b957d6d2268812e02dfd8799ed2a867e2df86c4f8d1eaecb4c35266692b5ac000000000200000001afb41c129af22ca5c05cc677993e7d8e040b2610baaca5778e7f71549fa74b89010000006b483045022100914fac419890679f1f4ba2efe22ac9721416283f4fd150f0af169026056d2f780220109a8787d494d9aa71ac0198651458f4930cb998ed6029c0221a42e2044470334121030cfa8aaa20d16e6c1f8e42ca3a0a80c6b9496d2fa39182d7ea9a0c44298c6877feffffff0200e1f505000000001976a91462e907b15cbf27d5425399ebf6f0fb50ebb88f1888ac80d7b0c4000000001976a91432dd05fe95dbc4172cc6b8335f180cdd987f278588ac778600000200000001a11489634e961ebed5143033c539675cb0682fb30d4b42e2b3ff3b71f01f359b0000000049483045022100f051603a90395cd56ab752a1124838d18d1f56d5382889c22aaf298ee6b0cc89022046a23b5d21f45bba54bf3e33942c9305c3507f0da3aa16cc2ca869d3377ca7b441feffffff0200e1f505000000001976a91462e907b15cbf27d5425399ebf6f0fb50ebb88f1888ac00021024010000001976a91442f37d99df083ec79802c38e00a21fe6b1f4583588ac778600000200000001dc1011b70ec59e1e0d24d15018fae10e0428d03ced79d2bcdf855ecf3b4f1ff700000000494830450221008de2576427d3cdada7037dcc739391ed5a732b3b02fe727942d703bc2c9c4abf02201b2a563f313914727523f81890566a25bb760b21d704c8a5747b5a9847fb450e41feffffff0200021024010000001976a9144fb3e816665c1daf8130ba9bc446b29e15b1f83788ac00e1f505000000001976a91462e907b15cbf27d5425399ebf6f0fb50ebb88f1888ac77860000"
)

func decodeHex(t *testing.T, s string) []byte {
	t.Helper()

	b, err := hex.DecodeString(s)
	require.NoError(t, err)

	return b
}

func parseBlock(t *testing.T, parse bsl.ParseFunc[bsl.Block], input []byte) bsl.Block {
	t.Helper()

	r, err := parse(input)
	require.NoError(t, err)
	require.Equal(t, len(input), r.Consumed())

	return r.Parsed()
}

func varStr(s string) []byte {
	return append(bsl.EncodeLen(uint64(len(s))), s...)
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

func assetInfo(protocol, typ, ticker string, amount, bindingSat uint64) []byte {
	return cat(varStr(protocol), varStr(typ), varStr(ticker), bsl.EncodeLen(amount), bsl.EncodeLen(bindingSat))
}

func txOut(value uint64, script []byte) []byte {
	return cat(binary.LittleEndian.AppendUint64(nil, value), bsl.EncodeLen(uint64(len(script))), script)
}

// satsNetBlock returns the block 1 header followed by a single satsnet transaction whose first
// output carries two assets.
func satsNetBlock(t *testing.T) []byte {
	t.Helper()

	header := decodeHex(t, block1Hex)[:bsl.BlockHeaderSize]

	tx := cat(
		le32(2),
		[]byte{0x01}, bytes.Repeat([]byte{0x44}, 32), le32(0), []byte{0x01, 0x51}, le32(0xffffffff),
		[]byte{0x02},
		txOut(330, []byte{0x51}), []byte{0x02}, assetInfo("ordx", "ft", "pearl", 1000, 1), assetInfo("runes", "ft", "dog", 5, 0),
		txOut(0, []byte{0x6a}), []byte{0x00},
		le32(0),
	)

	return cat(header, []byte{0x01}, tx)
}
