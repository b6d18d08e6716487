package bsl

import (
	"math"
	"testing"

	"github.com/sat20-labs/satsnet-slices/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseVarStrings(slice []byte) (ParseResult[Sequence[VarString]], error) {
	return ParseSequence(slice, ParseVarString)
}

func payloads(t *testing.T, s Sequence[VarString]) []string {
	t.Helper()

	var out []string

	it := s.Iter()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		out = append(out, string(v.Payload()))
	}

	require.NoError(t, it.Err())

	return out
}

func TestParseSequenceHelloFoo(t *testing.T) {
	input := []byte{0x02, 0x05, 'h', 'e', 'l', 'l', 'o', 0x03, 'f', 'o', 'o'}

	r, err := parseVarStrings(input)
	require.NoError(t, err)

	assert.Equal(t, 11, r.Consumed())
	assert.Empty(t, r.Remaining())

	s := r.Parsed()
	assert.Equal(t, 2, s.N())
	assert.False(t, s.IsEmpty())
	assert.Equal(t, input, s.Bytes())

	it := s.Iter()
	assert.Equal(t, 2, it.Len())

	hello, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, []byte("hello"), hello.Payload())
	assert.Equal(t, input[1:7], hello.Bytes())
	assert.Equal(t, 1, it.Len())

	foo, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, []byte("foo"), foo.Payload())
	assert.Equal(t, input[7:], foo.Bytes())
	assert.Equal(t, 0, it.Len())

	_, ok = it.Next()
	assert.False(t, ok)
	assert.NoError(t, it.Err())
}

func TestSequenceExactAndTruncation(t *testing.T) {
	input := cat([]byte{0x03}, varStr("a"), varStr(""), varStr("ccc"))

	s := requireExact(t, parseVarStrings, input)
	assert.Equal(t, 3, s.N())

	requireTruncationFails(t, parseVarStrings, input)
}

func TestSequenceCountAgreement(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		n     int
	}{
		{"empty", []byte{0x00}, 0},
		{"one", cat([]byte{0x01}, varStr("x")), 1},
		{"many", cat([]byte{0x04}, varStr("a"), varStr("b"), varStr("c"), varStr("d")), 4},
		{"wide count", cat(EncodeLen(0xfd), repeatVarStr("z", 0xfd)), 0xfd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := parseVarStrings(tt.input)
			require.NoError(t, err)

			s := r.Parsed()
			assert.Equal(t, tt.n, s.N())
			assert.Equal(t, tt.n == 0, s.IsEmpty())

			collected, err := s.Collect()
			require.NoError(t, err)
			assert.Len(t, collected, tt.n)

			count := 0
			for range s.All() {
				count++
			}

			assert.Equal(t, tt.n, count)
			assert.Equal(t, tt.n, s.Iter().Len())
		})
	}
}

func repeatVarStr(s string, n int) []byte {
	var out []byte
	for i := 0; i < n; i++ {
		out = append(out, varStr(s)...)
	}

	return out
}

func TestSequenceIteratorRestartable(t *testing.T) {
	r, err := parseVarStrings(cat([]byte{0x03}, varStr("one"), varStr("two"), varStr("three")))
	require.NoError(t, err)

	s := r.Parsed()

	first := payloads(t, s)
	second := payloads(t, s)

	assert.Equal(t, []string{"one", "two", "three"}, first)
	assert.Equal(t, first, second)

	// a partially consumed iterator does not affect a new one
	it := s.Iter()
	_, _ = it.Next()
	assert.Equal(t, first, payloads(t, s))
}

func TestSequenceAllStopsEarly(t *testing.T) {
	r, err := parseVarStrings(cat([]byte{0x03}, varStr("one"), varStr("two"), varStr("three")))
	require.NoError(t, err)

	var seen []string

	for v := range r.Parsed().All() {
		seen = append(seen, string(v.Payload()))
		if len(seen) == 2 {
			break
		}
	}

	assert.Equal(t, []string{"one", "two"}, seen)
}

func TestSequenceAdversarialCount(t *testing.T) {
	input := cat([]byte{0xff}, le64(1<<63), []byte("0123456789"))

	calls := 0
	parse := func(slice []byte) (ParseResult[VarString], error) {
		calls++
		return ParseVarString(slice)
	}

	r, err := ParseSequence(input, parse)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInsufficientBytes))
	assert.Zero(t, r.Consumed())
	assert.Zero(t, calls)

	data, ok := errors.ShortRead(err)
	require.True(t, ok)
	assert.Equal(t, 10, data.Available)
	assert.Equal(t, math.MaxInt, data.Needed)
}

func TestSequenceElementFailureAbortsAll(t *testing.T) {
	input := []byte{0x02, 0x01, 'a', 0x05, 'b'}

	r, err := parseVarStrings(input)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInsufficientBytes))
	assert.Zero(t, r.Parsed().N())
	assert.Nil(t, r.Parsed().Bytes())
}

func TestSequenceIteratorBounds(t *testing.T) {
	t.Run("stops at end of slice before count", func(t *testing.T) {
		s := Sequence[VarString]{
			slice:    cat([]byte{0x03}, varStr("a"), varStr("b")),
			n:        3,
			parse:    ParseVarString,
			prefixed: true,
		}

		assert.Equal(t, []string{"a", "b"}, payloads(t, s))

		it := s.Iter()
		assert.Equal(t, 3, it.Len())

		for _, ok := it.Next(); ok; _, ok = it.Next() {
		}

		assert.Equal(t, 0, it.Len())
		require.NoError(t, it.Err())
	})

	t.Run("stops at count before end of slice", func(t *testing.T) {
		s := Sequence[VarString]{
			slice:    cat([]byte{0x01}, varStr("a"), varStr("b")),
			n:        1,
			parse:    ParseVarString,
			prefixed: true,
		}

		assert.Equal(t, []string{"a"}, payloads(t, s))
	})

	t.Run("prefix disagreeing with count", func(t *testing.T) {
		s := Sequence[VarString]{
			slice:    cat([]byte{0x02}, varStr("a"), varStr("b")),
			n:        1,
			parse:    ParseVarString,
			prefixed: true,
		}

		it := s.Iter()
		_, ok := it.Next()
		assert.False(t, ok)
		assert.True(t, errors.Is(it.Err(), errors.ErrInvalidEncoding))

		_, err := s.Collect()
		assert.Error(t, err)
	})

	t.Run("element error stops iteration", func(t *testing.T) {
		s := Sequence[VarString]{
			slice:    []byte{0x02, 0x01, 'a', 0x05},
			n:        2,
			parse:    ParseVarString,
			prefixed: true,
		}

		it := s.Iter()
		_, ok := it.Next()
		require.True(t, ok)

		_, ok = it.Next()
		assert.False(t, ok)
		assert.True(t, errors.IsTruncated(it.Err()))
		assert.Equal(t, 0, it.Len())
	})
}

func TestEmptySequence(t *testing.T) {
	s := EmptySequence(ParseVarString)

	assert.True(t, s.IsEmpty())
	assert.Equal(t, 0, s.N())
	assert.Equal(t, []byte{0x00}, s.Bytes())
	assert.Empty(t, payloads(t, s))

	r, err := parseVarStrings(s.Bytes())
	require.NoError(t, err)
	assert.True(t, r.Parsed().IsEmpty())

	var zero Sequence[VarString]

	assert.True(t, zero.IsEmpty())
	assert.Empty(t, payloads(t, zero))

	collected, err := zero.Collect()
	require.NoError(t, err)
	assert.Empty(t, collected)
}

func TestParseCountedSequence(t *testing.T) {
	input := cat(varStr("a"), varStr("bb"))

	r, err := ParseCountedSequence(append(input, tail...), 2, ParseVarString)
	require.NoError(t, err)
	assert.Equal(t, len(input), r.Consumed())
	assert.Equal(t, tail, r.Remaining())
	assert.Equal(t, input, r.Parsed().Bytes())
	assert.Equal(t, []string{"a", "bb"}, payloads(t, r.Parsed()))

	r, err = ParseCountedSequence(input, 0, ParseVarString)
	require.NoError(t, err)
	assert.True(t, r.Parsed().IsEmpty())
	assert.Equal(t, input, r.Remaining())

	_, err = ParseCountedSequence(input, -1, ParseVarString)
	assert.True(t, errors.Is(err, errors.ErrInvalidArgument))

	_, err = ParseCountedSequence(input, 3, ParseVarString)
	assert.True(t, errors.Is(err, errors.ErrInsufficientBytes))
}

func BenchmarkSequenceIter(b *testing.B) {
	r, err := parseVarStrings(cat(EncodeLen(1000), repeatVarStr("benchmark", 1000)))
	require.NoError(b, err)

	s := r.Parsed()

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		for range s.All() {
		}
	}
}
