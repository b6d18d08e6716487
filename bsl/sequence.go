package bsl

import (
	"iter"

	"github.com/sat20-labs/satsnet-slices/errors"
)

// Sequence is a run of records of one type, normally prefixed by their CompactLength count.
//
// The sequence keeps its backing slice, the count and the element parser. It does not keep the
// parsed elements: Iter and All parse them again from the slice, so a Sequence costs no
// allocation beyond its header.
type Sequence[T any] struct {
	slice    []byte
	n        int
	parse    ParseFunc[T]
	prefixed bool
}

// ParseSequence decodes a count and then exactly that many elements with parse. The first
// element that fails aborts the whole sequence.
func ParseSequence[T any](slice []byte, parse ParseFunc[T]) (ParseResult[Sequence[T]], error) {
	return parseSequence(slice, ParseCompactLength, parse)
}

// ParseSequenceCanonical is ParseSequence with a canonical count. The elements are parsed by
// parse, which decides for itself how strict it is.
func ParseSequenceCanonical[T any](slice []byte, parse ParseFunc[T]) (ParseResult[Sequence[T]], error) {
	return parseSequence(slice, ParseCompactLengthCanonical, parse)
}

// SequenceParser returns a sequence parser decoding its count with parseLen.
func SequenceParser[T any](parseLen ParseFunc[Len], parse ParseFunc[T]) ParseFunc[Sequence[T]] {
	return func(slice []byte) (ParseResult[Sequence[T]], error) {
		return parseSequence(slice, parseLen, parse)
	}
}

func parseSequence[T any](slice []byte, parseLen ParseFunc[Len], parse ParseFunc[T]) (ParseResult[Sequence[T]], error) {
	l, err := parseLen(slice)
	if err != nil {
		return ParseResult[Sequence[T]]{}, err
	}

	n, err := checkCount(l.parsed.n, len(l.remaining))
	if err != nil {
		return ParseResult[Sequence[T]]{}, err
	}

	consumed, err := parseElements(l.remaining, n, parse)
	if err != nil {
		return ParseResult[Sequence[T]]{}, err
	}

	consumed += l.consumed

	return NewParseResult(slice[consumed:], Sequence[T]{
		slice:    slice[:consumed:consumed],
		n:        n,
		parse:    parse,
		prefixed: true,
	}, consumed), nil
}

// ParseCountedSequence parses n elements that are not preceded by a count, as used by segwit
// witnesses whose count is the number of inputs.
func ParseCountedSequence[T any](slice []byte, n int, parse ParseFunc[T]) (ParseResult[Sequence[T]], error) {
	if n < 0 {
		return ParseResult[Sequence[T]]{}, errors.NewInvalidArgumentError("[ParseCountedSequence] negative count %d", n)
	}

	if _, err := checkCount(uint64(n), len(slice)); err != nil {
		return ParseResult[Sequence[T]]{}, err
	}

	consumed, err := parseElements(slice, n, parse)
	if err != nil {
		return ParseResult[Sequence[T]]{}, err
	}

	return NewParseResult(slice[consumed:], Sequence[T]{
		slice: slice[:consumed:consumed],
		n:     n,
		parse: parse,
	}, consumed), nil
}

// EmptySequence returns a sequence of no elements, encoded as a single zero count.
func EmptySequence[T any](parse ParseFunc[T]) Sequence[T] {
	return Sequence[T]{
		slice:    []byte{0x00},
		parse:    parse,
		prefixed: true,
	}
}

// checkCount rejects counts that can not fit in the available bytes, every element consumes at
// least one byte. This keeps a short input declaring a huge count from doing any work.
func checkCount(n uint64, available int) (int, error) {
	if n > uint64(available) {
		return 0, insufficientBytes(n, available, "[Sequence] %d elements declared, %d bytes available", n, available)
	}

	return int(n), nil
}

func parseElements[T any](slice []byte, n int, parse ParseFunc[T]) (int, error) {
	consumed := 0
	remaining := slice

	for i := 0; i < n; i++ {
		r, err := parse(remaining)
		if err != nil {
			return 0, err
		}

		remaining = r.remaining
		consumed += r.consumed
	}

	return consumed, nil
}

// N returns the element count captured at parse time.
func (s Sequence[T]) N() int {
	return s.n
}

func (s Sequence[T]) IsEmpty() bool {
	return s.n == 0
}

// Bytes returns the count prefix, if any, followed by every element.
func (s Sequence[T]) Bytes() []byte {
	return s.slice
}

// Iter returns a new iterator positioned at the first element.
func (s Sequence[T]) Iter() *Iterator[T] {
	it := &Iterator[T]{
		slice: s.slice,
		parse: s.parse,
		left:  s.n,
	}

	if !s.prefixed || s.n == 0 {
		return it
	}

	// the count is decoded again rather than trusted
	l, err := ParseLen(s.slice)
	if err != nil {
		it.fail(err)
		return it
	}

	if l.n != uint64(s.n) {
		it.fail(errors.NewInvalidEncodingError("[Sequence] count prefix %d does not match %d parsed elements", l.n, s.n))
		return it
	}

	it.offset = l.consumed

	return it
}

// All returns the elements as a range-over-func sequence. Decode errors end the sequence
// early; use Iter or Collect when they need to be observed.
func (s Sequence[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := s.Iter()

		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// Collect parses every element into a slice.
func (s Sequence[T]) Collect() ([]T, error) {
	out := make([]T, 0, s.n)

	it := s.Iter()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		out = append(out, v)
	}

	if err := it.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// Iterator re-derives the elements of a Sequence one at a time.
type Iterator[T any] struct {
	slice  []byte
	parse  ParseFunc[T]
	offset int
	left   int
	err    error
}

// Next parses the next element. It returns false once the captured count has been yielded or
// the end of the backing slice is reached, whichever comes first.
func (it *Iterator[T]) Next() (T, bool) {
	var zero T

	if it.left == 0 {
		return zero, false
	}

	if it.offset >= len(it.slice) {
		it.left = 0
		return zero, false
	}

	r, err := it.parse(it.slice[it.offset:])
	if err != nil {
		it.fail(err)
		return zero, false
	}

	it.offset += r.consumed
	it.left--

	return r.parsed, true
}

// Len returns the number of elements still to be yielded.
func (it *Iterator[T]) Len() int {
	return it.left
}

// Err returns the error that stopped the iterator, if any.
func (it *Iterator[T]) Err() error {
	return it.err
}

func (it *Iterator[T]) fail(err error) {
	it.err = err
	it.left = 0
}
