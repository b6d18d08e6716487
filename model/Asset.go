package model

import (
	"fmt"
	"math/bits"

	"github.com/sat20-labs/satsnet-slices/bsl"
	"github.com/sat20-labs/satsnet-slices/errors"
)

// Asset is an owned copy of a parsed AssetInfo.
type Asset struct {
	Protocol   string `json:"protocol"`
	Type       string `json:"type"`
	Ticker     string `json:"ticker"`
	Amount     int64  `json:"amount"`
	BindingSat uint16 `json:"bindingSat"`
}

func NewAssetFromSlice(info bsl.AssetInfo) (*Asset, error) {
	name := info.Name()

	protocol, err := name.Protocol().String()
	if err != nil {
		return nil, err
	}

	typ, err := name.Type().String()
	if err != nil {
		return nil, err
	}

	ticker, err := name.Ticker().String()
	if err != nil {
		return nil, err
	}

	return &Asset{
		Protocol:   protocol,
		Type:       typ,
		Ticker:     ticker,
		Amount:     info.Amount(),
		BindingSat: info.BindingSat(),
	}, nil
}

func NewAssetsFromSlice(infos bsl.AssetInfos) ([]*Asset, error) {
	parsed, err := infos.Collect()
	if err != nil {
		return nil, err
	}

	assets := make([]*Asset, 0, len(parsed))

	for _, info := range parsed {
		asset, err := NewAssetFromSlice(info)
		if err != nil {
			return nil, err
		}

		assets = append(assets, asset)
	}

	return assets, nil
}

// Name returns protocol:type:ticker.
func (a *Asset) Name() string {
	return fmt.Sprintf("%s:%s:%s", a.Protocol, a.Type, a.Ticker)
}

type SatsRange struct {
	Start uint64 `json:"start"`
	Size  uint64 `json:"size"`
}

func NewSatsRangesFromSlice(ranges bsl.SatsRanges) ([]SatsRange, error) {
	parsed, err := ranges.Collect()
	if err != nil {
		return nil, err
	}

	out := make([]SatsRange, 0, len(parsed))
	for _, r := range parsed {
		out = append(out, SatsRange{Start: r.Start(), Size: r.Size()})
	}

	return out, nil
}

// End returns the first ordinal after the range. A range running past the last ordinal is an
// encoding error.
func (r SatsRange) End() (uint64, error) {
	end, carry := bits.Add64(r.Start, r.Size, 0)
	if carry != 0 {
		return 0, errors.NewInvalidEncodingError("[SatsRange] start %d plus size %d overflows uint64", r.Start, r.Size)
	}

	return end, nil
}

// TotalSats sums the sizes of ranges.
func TotalSats(ranges []SatsRange) (uint64, error) {
	var total, carry uint64

	for i, r := range ranges {
		total, carry = bits.Add64(total, r.Size, 0)
		if carry != 0 {
			return 0, errors.NewInvalidEncodingError("[TotalSats] total overflows uint64 at range %d", i)
		}
	}

	return total, nil
}
