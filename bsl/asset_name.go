package bsl

import (
	"fmt"
)

// AssetName identifies an asset carried by a satsnet output.
type AssetName struct {
	slice []byte
	// protocol is required, e.g. ordx, ordinals, brc20, runes
	protocol VarString
	// typ defaults to "ft" when empty
	typ VarString
	// ticker is "collection#inscription" when typ is nft
	ticker VarString
}

func ParseAssetName(slice []byte) (ParseResult[AssetName], error) {
	return parseAssetName(slice, ParseCompactLength)
}

func parseAssetName(slice []byte, parseLen ParseFunc[Len]) (ParseResult[AssetName], error) {
	protocol, err := parseVarString(slice, parseLen)
	if err != nil {
		return ParseResult[AssetName]{}, err
	}

	typ, err := parseVarString(protocol.remaining, parseLen)
	if err != nil {
		return ParseResult[AssetName]{}, err
	}

	ticker, err := parseVarString(typ.remaining, parseLen)
	if err != nil {
		return ParseResult[AssetName]{}, err
	}

	consumed := protocol.consumed + typ.consumed + ticker.consumed

	return NewParseResult(ticker.remaining, AssetName{
		slice:    slice[:consumed:consumed],
		protocol: protocol.parsed,
		typ:      typ.parsed,
		ticker:   ticker.parsed,
	}, consumed), nil
}

func (a AssetName) Bytes() []byte {
	return a.slice
}

func (a AssetName) Protocol() VarString {
	return a.protocol
}

func (a AssetName) Type() VarString {
	return a.typ
}

func (a AssetName) Ticker() VarString {
	return a.ticker
}

// String renders the name as protocol:type:ticker.
func (a AssetName) String() (string, error) {
	protocol, err := a.protocol.String()
	if err != nil {
		return "", err
	}

	typ, err := a.typ.String()
	if err != nil {
		return "", err
	}

	ticker, err := a.ticker.String()
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s:%s:%s", protocol, typ, ticker), nil
}
