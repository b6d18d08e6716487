package bsl

// Dialect selects the wire variants accepted by the parsers it returns. The zero value is the
// bitcoin layout with lenient CompactLength values and compact asset infos, the same as the
// package level ParseX functions.
type Dialect struct {
	// SatsNet selects the satsnet output layout, outputs followed by their asset infos.
	SatsNet bool
	// AssetInfoEncoding selects the AssetInfo layout.
	AssetInfoEncoding AssetInfoEncoding
	// Canonical rejects every CompactLength that is not in its shortest form: counts, string
	// and script lengths, compact amounts and sats ranges.
	Canonical bool
}

// CompactLength returns the length parser every other parser of d uses.
func (d Dialect) CompactLength() ParseFunc[Len] {
	if d.Canonical {
		return ParseCompactLengthCanonical
	}

	return ParseCompactLength
}

func (d Dialect) VarString() ParseFunc[VarString] {
	parseLen := d.CompactLength()

	return func(slice []byte) (ParseResult[VarString], error) {
		return parseVarString(slice, parseLen)
	}
}

func (d Dialect) AssetName() ParseFunc[AssetName] {
	parseLen := d.CompactLength()

	return func(slice []byte) (ParseResult[AssetName], error) {
		return parseAssetName(slice, parseLen)
	}
}

func (d Dialect) AssetInfo() ParseFunc[AssetInfo] {
	parseLen := d.CompactLength()

	if d.AssetInfoEncoding == AssetInfoEncodingFixed {
		return func(slice []byte) (ParseResult[AssetInfo], error) {
			return parseAssetInfoFixed(slice, parseLen)
		}
	}

	return func(slice []byte) (ParseResult[AssetInfo], error) {
		return parseAssetInfoCompact(slice, parseLen)
	}
}

func (d Dialect) AssetInfos() ParseFunc[AssetInfos] {
	return SequenceParser(d.CompactLength(), d.AssetInfo())
}

func (d Dialect) SatsRange() ParseFunc[SatsRange] {
	parseLen := d.CompactLength()

	return func(slice []byte) (ParseResult[SatsRange], error) {
		return parseSatsRange(slice, parseLen)
	}
}

func (d Dialect) SatsRanges() ParseFunc[SatsRanges] {
	return SequenceParser(d.CompactLength(), d.SatsRange())
}

func (d Dialect) Script() ParseFunc[Script] {
	parseLen := d.CompactLength()

	return func(slice []byte) (ParseResult[Script], error) {
		return parseScript(slice, parseLen)
	}
}

func (d Dialect) TxIn() ParseFunc[TxIn] {
	parseScript := d.Script()

	return func(slice []byte) (ParseResult[TxIn], error) {
		return parseTxIn(slice, parseScript)
	}
}

// TxOut returns the output parser, satsnet or bitcoin depending on d.SatsNet.
func (d Dialect) TxOut() ParseFunc[TxOut] {
	parseScript := d.Script()
	emptyAssets := EmptySequence(d.AssetInfo())

	if !d.SatsNet {
		return func(slice []byte) (ParseResult[TxOut], error) {
			return parseTxOut(slice, parseScript, emptyAssets)
		}
	}

	parseAssets := d.AssetInfos()

	return func(slice []byte) (ParseResult[TxOut], error) {
		return parseSatsNetTxOut(slice, parseScript, emptyAssets, parseAssets)
	}
}

func (d Dialect) Witness() ParseFunc[Witness] {
	return SequenceParser(d.CompactLength(), d.VarString())
}

func (d Dialect) Transaction() ParseFunc[Transaction] {
	p := transactionParsers{
		parseLen:     d.CompactLength(),
		parseIn:      d.TxIn(),
		parseOut:     d.TxOut(),
		parseWitness: d.Witness(),
	}

	return p.parse
}

func (d Dialect) Block() ParseFunc[Block] {
	parseLen := d.CompactLength()
	parseTx := d.Transaction()

	return func(slice []byte) (ParseResult[Block], error) {
		return parseBlock(slice, parseLen, parseTx)
	}
}
