package bsl

// SatsRange is a run of satoshis given by its first ordinal and its length.
type SatsRange struct {
	slice []byte
	start uint64
	size  uint64
}

func ParseSatsRange(slice []byte) (ParseResult[SatsRange], error) {
	return parseSatsRange(slice, ParseCompactLength)
}

func parseSatsRange(slice []byte, parseLen ParseFunc[Len]) (ParseResult[SatsRange], error) {
	start, err := parseLen(slice)
	if err != nil {
		return ParseResult[SatsRange]{}, err
	}

	size, err := parseLen(start.remaining)
	if err != nil {
		return ParseResult[SatsRange]{}, err
	}

	consumed := start.consumed + size.consumed

	return NewParseResult(size.remaining, SatsRange{
		slice: slice[:consumed:consumed],
		start: start.parsed.n,
		size:  size.parsed.n,
	}, consumed), nil
}

func (r SatsRange) Bytes() []byte {
	return r.slice
}

func (r SatsRange) Start() uint64 {
	return r.start
}

func (r SatsRange) Size() uint64 {
	return r.size
}

type SatsRanges = Sequence[SatsRange]

func ParseSatsRanges(slice []byte) (ParseResult[SatsRanges], error) {
	return ParseSequence(slice, ParseSatsRange)
}
