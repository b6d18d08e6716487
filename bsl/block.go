package bsl

import (
	"github.com/bsv-blockchain/go-bt/v2/chainhash"
)

// Block is a header followed by a count prefixed list of transactions.
type Block struct {
	slice        []byte
	header       BlockHeader
	transactions Sequence[Transaction]
}

func ParseBlock(slice []byte) (ParseResult[Block], error) {
	return parseBlock(slice, ParseCompactLength, ParseTransaction)
}

func ParseSatsNetBlock(slice []byte) (ParseResult[Block], error) {
	return parseBlock(slice, ParseCompactLength, ParseSatsNetTransaction)
}

// BlockParser returns the block parser for the selected output dialect.
func BlockParser(satsNet bool, enc AssetInfoEncoding) ParseFunc[Block] {
	return Dialect{SatsNet: satsNet, AssetInfoEncoding: enc}.Block()
}

func parseBlock(slice []byte, parseLen ParseFunc[Len], parseTx ParseFunc[Transaction]) (ParseResult[Block], error) {
	header, err := ParseBlockHeader(slice)
	if err != nil {
		return ParseResult[Block]{}, err
	}

	transactions, err := parseSequence(header.remaining, parseLen, parseTx)
	if err != nil {
		return ParseResult[Block]{}, err
	}

	consumed := header.consumed + transactions.consumed

	return NewParseResult(transactions.remaining, Block{
		slice:        slice[:consumed:consumed],
		header:       header.parsed,
		transactions: transactions.parsed,
	}, consumed), nil
}

func (b Block) Bytes() []byte {
	return b.slice
}

func (b Block) Header() BlockHeader {
	return b.header
}

func (b Block) Transactions() Sequence[Transaction] {
	return b.transactions
}

func (b Block) Hash() chainhash.Hash {
	return b.header.Hash()
}
