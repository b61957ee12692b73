package huffman

import (
	"fmt"
	"sort"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/exp/constraints"
)

// SymbolLength is one entry of a canonical code description: a symbol and
// its code length in bits.
type SymbolLength[S constraints.Ordered] struct {
	Symbol S   `cbor:"s"`
	Length int `cbor:"l"`
}

// maxCodeLength keeps the running code of CanonicalCodes inside a uint64.
const maxCodeLength = 63

func sortSymbolLengths[S constraints.Ordered](pairs []SymbolLength[S]) {
	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].Length < pairs[j].Length ||
			(pairs[i].Length == pairs[j].Length && pairs[i].Symbol < pairs[j].Symbol)
	})
}

// CanonicalCodes assigns canonical codes to the given (symbol, length)
// pairs: sorted by length and then by symbol, each code is the previous
// code plus one, shifted left by the growth in length. The result depends
// only on the multiset of pairs, so any two parties agreeing on lengths
// agree on codes. Lengths must lie in [1, 63]; a length multiset that
// overflows its width, that is one violating the Kraft inequality, is an
// ErrLengthOverflow.
func CanonicalCodes[S constraints.Ordered](lengths []SymbolLength[S]) (Codebook[S], error) {
	if len(lengths) == 0 {
		return nil, fmt.Errorf("%w: no symbol lengths", ErrEmptyInput)
	}

	pairs := make([]SymbolLength[S], len(lengths))
	copy(pairs, lengths)
	sortSymbolLengths(pairs)

	cb := make(Codebook[S], len(pairs))
	prevLen := 0
	code := uint64(0)
	for i, p := range pairs {
		if p.Length < 1 || p.Length > maxCodeLength {
			return nil, fmt.Errorf("huffman: code length %d for symbol %s outside [1, %d]",
				p.Length, symbolLabel(p.Symbol), maxCodeLength)
		}
		if i > 0 {
			code++
		}
		code <<= uint(p.Length - prevLen)
		prevLen = p.Length
		if code >= 1<<uint(p.Length) {
			return nil, fmt.Errorf("%w: no %d-bit code left for symbol %s",
				ErrLengthOverflow, p.Length, symbolLabel(p.Symbol))
		}
		cb[p.Symbol] = fmt.Sprintf("%0*b", p.Length, code)
	}
	return cb, nil
}

// MarshalLengths serializes the codebook's (symbol, length) pairs to CBOR
// in canonical order. The pairs are the only thing a receiver needs to
// rebuild the codebook: UnmarshalLengths followed by CanonicalCodes yields
// the canonical form, and NewTreeFromCodes a decoder for it.
func (cb Codebook[S]) MarshalLengths() ([]byte, error) {
	return cbor.Marshal(cb.Lengths())
}

// UnmarshalLengths decodes (symbol, length) pairs produced by
// MarshalLengths.
func UnmarshalLengths[S constraints.Ordered](data []byte) ([]SymbolLength[S], error) {
	var lengths []SymbolLength[S]
	if err := cbor.Unmarshal(data, &lengths); err != nil {
		return nil, fmt.Errorf("huffman: decoding symbol lengths: %w", err)
	}
	return lengths, nil
}
