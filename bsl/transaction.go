package bsl

import (
	"github.com/bsv-blockchain/go-bt/v2/chainhash"
	"github.com/sat20-labs/satsnet-slices/errors"
)

const segwitFlag = 0x01

// Transaction is a bitcoin or satsnet transaction in either the legacy or the segwit layout.
type Transaction struct {
	slice     []byte
	version   int32
	inputs    TxIns
	outputs   TxOuts
	witnesses Witnesses
	locktime  uint32
	segwit    bool
}

func ParseTransaction(slice []byte) (ParseResult[Transaction], error) {
	return legacyTransactionParsers.parse(slice)
}

func ParseSatsNetTransaction(slice []byte) (ParseResult[Transaction], error) {
	return satsNetTransactionParsers.parse(slice)
}

// TransactionParser returns the transaction parser for the selected output dialect.
func TransactionParser(satsNet bool, enc AssetInfoEncoding) ParseFunc[Transaction] {
	return Dialect{SatsNet: satsNet, AssetInfoEncoding: enc}.Transaction()
}

// transactionParsers holds the parsers a transaction delegates to, one set per Dialect.
type transactionParsers struct {
	parseLen     ParseFunc[Len]
	parseIn      ParseFunc[TxIn]
	parseOut     ParseFunc[TxOut]
	parseWitness ParseFunc[Witness]
}

var (
	legacyTransactionParsers = transactionParsers{
		parseLen:     ParseCompactLength,
		parseIn:      ParseTxIn,
		parseOut:     ParseTxOut,
		parseWitness: ParseWitness,
	}
	satsNetTransactionParsers = transactionParsers{
		parseLen:     ParseCompactLength,
		parseIn:      ParseTxIn,
		parseOut:     ParseSatsNetTxOut,
		parseWitness: ParseWitness,
	}
)

func (p transactionParsers) parse(slice []byte) (ParseResult[Transaction], error) {
	version, err := readInt32(slice)
	if err != nil {
		return ParseResult[Transaction]{}, err
	}

	inputs, err := parseSequence(version.remaining, p.parseLen, p.parseIn)
	if err != nil {
		return ParseResult[Transaction]{}, err
	}

	if !inputs.parsed.IsEmpty() {
		return p.parseBody(slice, version, inputs, false)
	}

	// zero inputs is the segwit marker, the flag follows
	flag, err := readSlice(inputs.remaining, 1)
	if err != nil {
		return ParseResult[Transaction]{}, err
	}

	if flag.parsed[0] != segwitFlag {
		return ParseResult[Transaction]{}, errors.NewInvalidEncodingError("[ParseTransaction] invalid segwit flag 0x%02x", flag.parsed[0])
	}

	inputs, err = parseSequence(flag.remaining, p.parseLen, p.parseIn)
	if err != nil {
		return ParseResult[Transaction]{}, err
	}

	if inputs.parsed.IsEmpty() {
		return ParseResult[Transaction]{}, errors.NewInvalidEncodingError("[ParseTransaction] segwit transaction has no inputs")
	}

	// account for marker and flag in the offsets that follow
	inputs.consumed += 1 + flag.consumed

	return p.parseBody(slice, version, inputs, true)
}

func (p transactionParsers) parseBody(slice []byte, version ParseResult[int32], inputs ParseResult[TxIns],
	segwit bool) (ParseResult[Transaction], error) {
	outputs, err := parseSequence(inputs.remaining, p.parseLen, p.parseOut)
	if err != nil {
		return ParseResult[Transaction]{}, err
	}

	consumed := version.consumed + inputs.consumed + outputs.consumed
	rest := outputs.remaining

	var witnesses ParseResult[Witnesses]

	if segwit {
		witnesses, err = ParseCountedSequence(rest, inputs.parsed.N(), p.parseWitness)
		if err != nil {
			return ParseResult[Transaction]{}, err
		}

		consumed += witnesses.consumed
		rest = witnesses.remaining
	}

	locktime, err := readUint32(rest)
	if err != nil {
		return ParseResult[Transaction]{}, err
	}

	consumed += locktime.consumed

	return NewParseResult(locktime.remaining, Transaction{
		slice:     slice[:consumed:consumed],
		version:   version.parsed,
		inputs:    inputs.parsed,
		outputs:   outputs.parsed,
		witnesses: witnesses.parsed,
		locktime:  locktime.parsed,
		segwit:    segwit,
	}, consumed), nil
}

func (t Transaction) Bytes() []byte {
	return t.slice
}

func (t Transaction) Version() int32 {
	return t.version
}

func (t Transaction) Inputs() TxIns {
	return t.inputs
}

func (t Transaction) Outputs() TxOuts {
	return t.outputs
}

// Witnesses returns one witness per input, or an empty sequence for a legacy transaction.
func (t Transaction) Witnesses() Witnesses {
	return t.witnesses
}

func (t Transaction) Locktime() uint32 {
	return t.locktime
}

func (t Transaction) IsSegwit() bool {
	return t.segwit
}

// IsCoinbase reports whether the transaction has a single input spending the null outpoint.
func (t Transaction) IsCoinbase() bool {
	if t.inputs.N() != 1 {
		return false
	}

	in, ok := t.inputs.Iter().Next()

	return ok && in.PrevOut().IsNull()
}

// TxID hashes the legacy serialisation: witnesses and the segwit marker are left out.
func (t Transaction) TxID() chainhash.Hash {
	if !t.segwit {
		return chainhash.DoubleHashH(t.slice)
	}

	inputs := t.inputs.Bytes()
	outputs := t.outputs.Bytes()

	buf := make([]byte, 0, 8+len(inputs)+len(outputs))
	buf = append(buf, t.slice[:4]...)
	buf = append(buf, inputs...)
	buf = append(buf, outputs...)
	buf = append(buf, t.slice[len(t.slice)-4:]...)

	return chainhash.DoubleHashH(buf)
}

// WTxID hashes the full serialisation. It equals TxID for legacy transactions.
func (t Transaction) WTxID() chainhash.Hash {
	return chainhash.DoubleHashH(t.slice)
}
