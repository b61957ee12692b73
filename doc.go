// Package huffman builds minimum-redundancy prefix codes from symbol
// frequencies and translates symbol sequences to and from the bitstrings
// they encode to.
//
// A code is represented two ways: as a Tree, which decodes, and as a
// Codebook, which encodes. Trees are built from a FreqTable with NewTree or
// rebuilt from a Codebook with NewTreeFromCodes. CanonicalCodes assigns
// canonical codes from (symbol, length) pairs alone, so a code can be
// shipped as lengths only (see Codebook.MarshalLengths) and reconstructed
// on the receiving side.
//
// Bitstrings are ordinary Go strings over '0' and '1'. That keeps encoded
// output printable and easy to inspect, which suits the package's teaching
// bent; WriteSymbol and ReadSymbol provide a bit-packed path via icza/bitio
// when actual bits are wanted.
//
// References:
//
//	D.A. Huffman, "A Method for the Construction of Minimum-Redundancy
//	Codes", Proceedings of the I.R.E., September 1952.
//
//	D.J.C. MacKay, "Information Theory, Inference, and Learning
//	Algorithms", Cambridge University Press, 2003, chapter 5.
package huffman
