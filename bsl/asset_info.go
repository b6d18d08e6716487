package bsl

import (
	"strings"

	"github.com/sat20-labs/satsnet-slices/errors"
)

// AssetInfoEncoding selects one of the two wire variants of AssetInfo. They are not bit
// compatible, the choice has to be made by the caller.
type AssetInfoEncoding int

const (
	// AssetInfoEncodingCompact encodes amount and binding sat as CompactLength values. It is the
	// canonical encoding.
	AssetInfoEncodingCompact AssetInfoEncoding = iota
	// AssetInfoEncodingFixed encodes amount as int64 and binding sat as uint16, little endian.
	AssetInfoEncodingFixed
)

func (e AssetInfoEncoding) String() string {
	switch e {
	case AssetInfoEncodingCompact:
		return "compact"
	case AssetInfoEncodingFixed:
		return "fixed"
	default:
		return "unknown"
	}
}

// ParseFunc returns the AssetInfo parser for e with lenient CompactLength values. Unknown values
// fall back to the canonical encoding. Use Dialect for canonical lengths.
func (e AssetInfoEncoding) ParseFunc() ParseFunc[AssetInfo] {
	if e == AssetInfoEncodingFixed {
		return ParseAssetInfoFixed
	}

	return ParseAssetInfo
}

func ParseAssetInfoEncoding(s string) (AssetInfoEncoding, error) {
	switch strings.ToLower(s) {
	case "compact", "":
		return AssetInfoEncodingCompact, nil
	case "fixed":
		return AssetInfoEncodingFixed, nil
	default:
		return AssetInfoEncodingCompact, errors.NewInvalidArgumentError("unknown asset info encoding %q", s)
	}
}

// AssetInfo is an asset name with the amount held and the number of sats it is bound to.
type AssetInfo struct {
	slice      []byte
	name       AssetName
	amount     int64
	bindingSat uint16
}

// ParseAssetInfo parses the canonical compact encoding. Amounts above MaxInt64 and binding
// values above MaxUint16 are rejected.
func ParseAssetInfo(slice []byte) (ParseResult[AssetInfo], error) {
	return parseAssetInfoCompact(slice, ParseCompactLength)
}

func parseAssetInfoCompact(slice []byte, parseLen ParseFunc[Len]) (ParseResult[AssetInfo], error) {
	name, err := parseAssetName(slice, parseLen)
	if err != nil {
		return ParseResult[AssetInfo]{}, err
	}

	amountLen, err := parseLen(name.remaining)
	if err != nil {
		return ParseResult[AssetInfo]{}, err
	}

	amount, err := amountLen.parsed.Int64()
	if err != nil {
		return ParseResult[AssetInfo]{}, errors.NewInvalidEncodingError("[ParseAssetInfo] amount", err)
	}

	bindingLen, err := parseLen(amountLen.remaining)
	if err != nil {
		return ParseResult[AssetInfo]{}, err
	}

	bindingSat, err := bindingLen.parsed.Uint16()
	if err != nil {
		return ParseResult[AssetInfo]{}, errors.NewInvalidEncodingError("[ParseAssetInfo] binding sat", err)
	}

	consumed := name.consumed + amountLen.consumed + bindingLen.consumed

	return NewParseResult(bindingLen.remaining, AssetInfo{
		slice:      slice[:consumed:consumed],
		name:       name.parsed,
		amount:     amount,
		bindingSat: bindingSat,
	}, consumed), nil
}

// ParseAssetInfoFixed parses the fixed width encoding.
func ParseAssetInfoFixed(slice []byte) (ParseResult[AssetInfo], error) {
	return parseAssetInfoFixed(slice, ParseCompactLength)
}

// parseAssetInfoFixed applies parseLen to the name only, amount and binding sat are fixed width.
func parseAssetInfoFixed(slice []byte, parseLen ParseFunc[Len]) (ParseResult[AssetInfo], error) {
	name, err := parseAssetName(slice, parseLen)
	if err != nil {
		return ParseResult[AssetInfo]{}, err
	}

	amount, err := readInt64(name.remaining)
	if err != nil {
		return ParseResult[AssetInfo]{}, err
	}

	bindingSat, err := readUint16(amount.remaining)
	if err != nil {
		return ParseResult[AssetInfo]{}, err
	}

	consumed := name.consumed + amount.consumed + bindingSat.consumed

	return NewParseResult(bindingSat.remaining, AssetInfo{
		slice:      slice[:consumed:consumed],
		name:       name.parsed,
		amount:     amount.parsed,
		bindingSat: bindingSat.parsed,
	}, consumed), nil
}

func (a AssetInfo) Bytes() []byte {
	return a.slice
}

func (a AssetInfo) Name() AssetName {
	return a.name
}

func (a AssetInfo) Amount() int64 {
	return a.amount
}

func (a AssetInfo) BindingSat() uint16 {
	return a.bindingSat
}

// AssetInfos is the asset list of a satsnet output.
type AssetInfos = Sequence[AssetInfo]

// ParseAssetInfos parses a count prefixed list of canonically encoded AssetInfo.
func ParseAssetInfos(slice []byte) (ParseResult[AssetInfos], error) {
	return ParseSequence(slice, ParseAssetInfo)
}

func ParseAssetInfosWith(slice []byte, enc AssetInfoEncoding) (ParseResult[AssetInfos], error) {
	return Dialect{AssetInfoEncoding: enc}.AssetInfos()(slice)
}
