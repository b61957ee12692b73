package huffman

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/icza/bitio"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Codebook maps each symbol to its code, a non-empty bitstring over '0'
// and '1'. Codebooks produced by this package are prefix-free.
type Codebook[S constraints.Ordered] map[S]string

// Encode concatenates the codes of msg's symbols into one bitstring.
// Symbols missing from the codebook are collected and reported together,
// sorted, in an error wrapping ErrUnknownSymbol; the returned string is
// then empty. An empty message encodes to "".
func (cb Codebook[S]) Encode(msg []S) (string, error) {
	var sb strings.Builder
	var missing []S
	for _, s := range msg {
		code, ok := cb[s]
		if !ok {
			missing = append(missing, s)
			continue
		}
		sb.WriteString(code)
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		missing = slices.Compact(missing)
		names := make([]string, len(missing))
		for i, s := range missing {
			names[i] = symbolLabel(s)
		}
		return "", fmt.Errorf("%w: no code for %s", ErrUnknownSymbol, strings.Join(names, ", "))
	}
	return sb.String(), nil
}

// Lengths returns the codebook's (symbol, length) pairs sorted by length
// and then by symbol, the order canonical code assignment expects. The
// pairs are all CanonicalCodes needs to reproduce a canonical codebook.
func (cb Codebook[S]) Lengths() []SymbolLength[S] {
	pairs := make([]SymbolLength[S], 0, len(cb))
	for s, code := range cb {
		pairs = append(pairs, SymbolLength[S]{Symbol: s, Length: len(code)})
	}
	sortSymbolLengths(pairs)
	return pairs
}

// WeightedLength returns the total encoded length of a corpus with the
// given frequencies: the sum over symbols of frequency times code length.
// Every symbol with a positive frequency must have a code.
func (cb Codebook[S]) WeightedLength(freq FreqTable[S]) (int, error) {
	total := 0
	for s, n := range freq {
		if n <= 0 {
			continue
		}
		code, ok := cb[s]
		if !ok {
			return 0, fmt.Errorf("%w: no code for %s", ErrUnknownSymbol, symbolLabel(s))
		}
		total += n * len(code)
	}
	return total, nil
}

// AverageLength returns the expected code length in bits per symbol under
// the given frequencies, 0 for an empty or all-zero table.
func (cb Codebook[S]) AverageLength(freq FreqTable[S]) (float64, error) {
	total := freq.Total()
	if total <= 0 {
		return 0, nil
	}
	weighted, err := cb.WeightedLength(freq)
	if err != nil {
		return 0, err
	}
	return float64(weighted) / float64(total), nil
}

// WriteSymbol appends the code for s to w bit by bit.
func (cb Codebook[S]) WriteSymbol(w *bitio.Writer, s S) error {
	code, ok := cb[s]
	if !ok {
		return fmt.Errorf("%w: no code for %s", ErrUnknownSymbol, symbolLabel(s))
	}
	for i := 0; i < len(code); i++ {
		if err := w.WriteBool(code[i] == '1'); err != nil {
			return err
		}
	}
	return nil
}

// Dump writes the codebook to w as a tab-separated table of symbol, code
// length, and code, sorted by length and then by symbol.
func (cb Codebook[S]) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	for _, p := range cb.Lengths() {
		fmt.Fprintf(&buf, "%s\t%d\t%s\n", symbolLabel(p.Symbol), p.Length, cb[p.Symbol])
	}
	return buf.WriteTo(w)
}

// symbolLabel formats a symbol for display and error messages. Runes print
// as quoted characters, everything else through %v.
func symbolLabel[S constraints.Ordered](s S) string {
	if r, ok := any(s).(rune); ok {
		return strconv.QuoteRune(r)
	}
	return fmt.Sprint(s)
}
