package huffman

import "errors"

// Sentinel errors returned by this package; test for them with errors.Is.
var (
	// ErrEmptyInput rejects an empty frequency table, codebook, or length list.
	ErrEmptyInput = errors.New("huffman: empty input")

	// ErrUnknownSymbol reports symbols that have no code.
	ErrUnknownSymbol = errors.New("huffman: unknown symbol")

	// ErrMalformedBitstream reports a byte other than '0' or '1' in a bitstring.
	ErrMalformedBitstream = errors.New("huffman: malformed bitstream")

	// ErrInvalidPath reports a bit sequence that is no prefix of any code.
	ErrInvalidPath = errors.New("huffman: invalid path")

	// ErrIncompleteStream reports a bitstream that ends inside a codeword.
	ErrIncompleteStream = errors.New("huffman: incomplete stream")

	// ErrInvalidCodebook reports a codebook that is not prefix-free or whose
	// codes are not bitstrings.
	ErrInvalidCodebook = errors.New("huffman: invalid codebook")

	// ErrLengthOverflow reports code lengths that violate the Kraft
	// inequality, leaving some code no room in its assigned width.
	ErrLengthOverflow = errors.New("huffman: code length overflow")
)
