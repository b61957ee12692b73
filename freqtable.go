package huffman

import (
	"math"

	"golang.org/x/exp/constraints"
)

// FreqTable maps each symbol of an alphabet to its frequency. Frequencies
// are typically occurrence counts, but any non-negative relative weights
// work; symbols with frequency zero still receive codes.
type FreqTable[S constraints.Ordered] map[S]int

// Count builds a frequency table from a sequence of symbols.
func Count[S constraints.Ordered](seq []S) FreqTable[S] {
	freq := make(FreqTable[S])
	for _, s := range seq {
		freq[s]++
	}
	return freq
}

// CountString builds a rune frequency table from a string.
func CountString(s string) FreqTable[rune] {
	freq := make(FreqTable[rune])
	for _, r := range s {
		freq[r]++
	}
	return freq
}

// Total returns the sum of all frequencies.
func (f FreqTable[S]) Total() int {
	total := 0
	for _, n := range f {
		total += n
	}
	return total
}

// Entropy returns the zero-order entropy of the table in bits per symbol.
// Symbols with non-positive frequency contribute nothing; an empty table
// has entropy 0. The entropy is a lower bound on the average code length
// of any prefix code for the table.
func (f FreqTable[S]) Entropy() float64 {
	total := f.Total()
	if total <= 0 {
		return 0
	}
	h := 0.0
	for _, n := range f {
		if n <= 0 {
			continue
		}
		p := float64(n) / float64(total)
		h -= p * math.Log2(p)
	}
	return h
}
