// Package fixtures holds the classic frequency tables shared by the
// command line demo and the tests: the example from Huffman's 1952 paper
// and tables from chapter 5 of MacKay's "Information Theory, Inference,
// and Learning Algorithms". Each table comes with the weighted length,
// the sum over symbols of frequency times code length, that an optimal
// prefix code achieves on it.
package fixtures

// MacKay55 is the five-symbol alphabet of MacKay's exercise 5.5. The
// frequencies are percentages; an optimal code averages 2.30 bits.
var MacKay55 = map[rune]int{'a': 25, 'b': 25, 'c': 20, 'd': 15, 'e': 15}

// MacKay57 is the skewed seven-symbol table of MacKay's exercise 5.7,
// the book's canonical-code transmission example.
var MacKay57 = map[rune]int{'a': 1, 'b': 24, 'c': 5, 'd': 20, 'e': 47, 'f': 1, 'g': 2}

// MacKay56 is the 27-symbol English monogram distribution of MacKay's
// figure 5.6, counts per 10000 characters. The '–' rune stands for the
// space character, as in the book's tables.
var MacKay56 = map[rune]int{
	'a': 575,
	'b': 128,
	'c': 263,
	'd': 285,
	'e': 913,
	'f': 173,
	'g': 133,
	'h': 313,
	'i': 599,
	'j': 6,
	'k': 84,
	'l': 335,
	'm': 235,
	'n': 596,
	'o': 689,
	'p': 192,
	'q': 8,
	'r': 508,
	's': 567,
	't': 706,
	'u': 334,
	'v': 69,
	'w': 119,
	'x': 73,
	'y': 164,
	'z': 7,
	'–': 1928,
}

// HuffmanPaper is the thirteen-symbol example from Huffman's 1952 paper.
var HuffmanPaper = map[rune]int{
	'a': 20,
	'b': 18,
	'c': 10,
	'd': 10,
	'e': 10,
	'f': 6,
	'g': 6,
	'h': 4,
	'i': 4,
	'j': 4,
	'k': 4,
	'l': 3,
	'm': 1,
}

// Optimal weighted lengths for the tables above.
const (
	MacKay55Weighted     = 230
	MacKay56Weighted     = 41462
	MacKay57Weighted     = 197
	HuffmanPaperWeighted = 342
)
