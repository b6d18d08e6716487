package bsl

// TxOut is a transaction output. Satsnet outputs also carry the assets bound to them, plain
// bitcoin outputs report an empty asset list.
type TxOut struct {
	slice         []byte
	value         int64
	lockingScript Script
	assets        AssetInfos
}

// ParseTxOut parses a bitcoin output: int64 value and locking script.
func ParseTxOut(slice []byte) (ParseResult[TxOut], error) {
	return parseTxOut(slice, ParseScript, EmptySequence(ParseAssetInfo))
}

func parseTxOut(slice []byte, parseScript ParseFunc[Script], emptyAssets AssetInfos) (ParseResult[TxOut], error) {
	value, err := readInt64(slice)
	if err != nil {
		return ParseResult[TxOut]{}, err
	}

	script, err := parseScript(value.remaining)
	if err != nil {
		return ParseResult[TxOut]{}, err
	}

	consumed := value.consumed + script.consumed

	return NewParseResult(script.remaining, TxOut{
		slice:         slice[:consumed:consumed],
		value:         value.parsed,
		lockingScript: script.parsed,
		assets:        emptyAssets,
	}, consumed), nil
}

// ParseSatsNetTxOut parses a satsnet output, a bitcoin output followed by canonically encoded
// asset infos.
func ParseSatsNetTxOut(slice []byte) (ParseResult[TxOut], error) {
	return parseSatsNetTxOut(slice, ParseScript, EmptySequence(ParseAssetInfo), ParseAssetInfos)
}

// SatsNetTxOutParser returns a satsnet output parser using enc for the asset infos.
func SatsNetTxOutParser(enc AssetInfoEncoding) ParseFunc[TxOut] {
	return Dialect{SatsNet: true, AssetInfoEncoding: enc}.TxOut()
}

func parseSatsNetTxOut(slice []byte, parseScript ParseFunc[Script], emptyAssets AssetInfos,
	parseAssets ParseFunc[AssetInfos]) (ParseResult[TxOut], error) {
	out, err := parseTxOut(slice, parseScript, emptyAssets)
	if err != nil {
		return ParseResult[TxOut]{}, err
	}

	assets, err := parseAssets(out.remaining)
	if err != nil {
		return ParseResult[TxOut]{}, err
	}

	consumed := out.consumed + assets.consumed

	txOut := out.parsed
	txOut.slice = slice[:consumed:consumed]
	txOut.assets = assets.parsed

	return NewParseResult(assets.remaining, txOut, consumed), nil
}

func (o TxOut) Bytes() []byte {
	return o.slice
}

// Value returns the amount in satoshis.
func (o TxOut) Value() int64 {
	return o.value
}

func (o TxOut) LockingScript() Script {
	return o.lockingScript
}

func (o TxOut) Assets() AssetInfos {
	return o.assets
}

type TxOuts = Sequence[TxOut]

func ParseTxOuts(slice []byte) (ParseResult[TxOuts], error) {
	return ParseSequence(slice, ParseTxOut)
}
