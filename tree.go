package huffman

import (
	"errors"
	"fmt"
	"io"

	"github.com/icza/bitio"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// node is a code tree node. Leaves carry a symbol; internal nodes carry
// only children. The leaf flag is explicit so trees rebuilt from a codebook
// can mark leaves independently of their (possibly absent) children.
type node[S constraints.Ordered] struct {
	weight int
	seq    int // creation order, breaks weight ties
	symbol S
	leaf   bool
	left   *node[S]
	right  *node[S]
}

// Tree is a prefix-code tree. The zero bit selects the left child, the one
// bit the right; each leaf holds one symbol. A Tree is immutable once
// built and may be shared by concurrent readers after Codes has been
// called once.
type Tree[S constraints.Ordered] struct {
	root  *node[S]
	codes Codebook[S]
}

// NewTree builds a minimum-redundancy code tree for the given frequency
// table by repeatedly merging the two lightest subtrees, the lighter of
// the pair becoming the left child. Weight ties are broken by creation
// order, with the leaves created in ascending symbol order, so equal
// inputs always yield the same tree. A one-symbol table yields the
// one-bit code "0".
func NewTree[S constraints.Ordered](freq FreqTable[S]) (*Tree[S], error) {
	if len(freq) == 0 {
		return nil, fmt.Errorf("%w: frequency table has no symbols", ErrEmptyInput)
	}

	symbols := maps.Keys(freq)
	slices.Sort(symbols)

	nodes := make(minHeap[S], len(symbols), len(symbols)*2)
	for i, s := range symbols {
		if freq[s] < 0 {
			return nil, fmt.Errorf("huffman: negative frequency %d for symbol %s", freq[s], symbolLabel(s))
		}
		nodes[i] = &node[S]{weight: freq[s], seq: i, symbol: s, leaf: true}
	}
	nodes.heapify()

	seq := len(nodes)
	for len(nodes) > 1 {
		a := nodes[0]
		nodes.popHead()
		b := nodes[0]
		nodes.popHead()

		nodes.push(&node[S]{weight: a.weight + b.weight, seq: seq, left: a, right: b})
		seq++
	}

	return &Tree[S]{root: nodes[0]}, nil
}

// NewTreeFromCodes rebuilds a decoding tree from an existing codebook,
// typically one assigned by CanonicalCodes on the receiving side of a
// transmission. The codebook must be prefix-free: every code a non-empty
// string over '0' and '1', no code equal to or a prefix of another.
// The tree keeps a copy of cb as its codebook.
func NewTreeFromCodes[S constraints.Ordered](cb Codebook[S]) (*Tree[S], error) {
	if len(cb) == 0 {
		return nil, fmt.Errorf("%w: codebook has no symbols", ErrEmptyInput)
	}

	symbols := maps.Keys(cb)
	slices.Sort(symbols)

	root := &node[S]{}
	for _, s := range symbols {
		code := cb[s]
		if code == "" {
			return nil, fmt.Errorf("%w: empty code for symbol %s", ErrInvalidCodebook, symbolLabel(s))
		}
		curr := root
		for i := 0; i < len(code); i++ {
			if curr.leaf {
				return nil, fmt.Errorf("%w: code %q for symbol %s extends the code for %s",
					ErrInvalidCodebook, code, symbolLabel(s), symbolLabel(curr.symbol))
			}
			switch code[i] {
			case '0':
				if curr.left == nil {
					curr.left = &node[S]{}
				}
				curr = curr.left
			case '1':
				if curr.right == nil {
					curr.right = &node[S]{}
				}
				curr = curr.right
			default:
				return nil, fmt.Errorf("%w: code %q for symbol %s contains %q",
					ErrInvalidCodebook, code, symbolLabel(s), code[i])
			}
		}
		if curr.leaf {
			return nil, fmt.Errorf("%w: symbols %s and %s share the code %q",
				ErrInvalidCodebook, symbolLabel(curr.symbol), symbolLabel(s), code)
		}
		if curr.left != nil || curr.right != nil {
			return nil, fmt.Errorf("%w: code %q for symbol %s is a prefix of another code",
				ErrInvalidCodebook, code, symbolLabel(s))
		}
		curr.symbol = s
		curr.leaf = true
	}

	return &Tree[S]{root: root, codes: maps.Clone(cb)}, nil
}

// Codes returns the codebook mapping each symbol to its bitstring. The
// codebook is computed on first call and cached; callers must not mutate
// the returned map.
func (t *Tree[S]) Codes() Codebook[S] {
	if t.codes == nil {
		cb := make(Codebook[S])
		if t.root.leaf {
			// a one-symbol alphabet still gets a one-bit code
			cb[t.root.symbol] = "0"
		} else {
			t.root.walk("", cb)
		}
		t.codes = cb
	}
	return t.codes
}

func (n *node[S]) walk(prefix string, cb Codebook[S]) {
	if n.leaf {
		cb[n.symbol] = prefix
		return
	}
	if n.left != nil {
		n.left.walk(prefix+"0", cb)
	}
	if n.right != nil {
		n.right.walk(prefix+"1", cb)
	}
}

// Decode translates a bitstring produced by Encode back into the symbol
// sequence it encodes. The bitstring must consist entirely of whole
// codewords: a byte other than '0' or '1' is an ErrMalformedBitstream, a
// path that leaves the tree is an ErrInvalidPath, and trailing bits that
// stop short of a leaf are an ErrIncompleteStream. On error the returned
// sequence is nil; an empty bitstring decodes to an empty sequence.
func (t *Tree[S]) Decode(bits string) ([]S, error) {
	if t.root.leaf {
		return t.decodeSingle(bits)
	}
	msg := make([]S, 0)
	curr := t.root
	start := 0 // offset where the current codeword began
	for i := 0; i < len(bits); i++ {
		switch bits[i] {
		case '0':
			curr = curr.left
		case '1':
			curr = curr.right
		default:
			return nil, fmt.Errorf("%w: byte %q at offset %d", ErrMalformedBitstream, bits[i], i)
		}
		if curr == nil {
			return nil, fmt.Errorf("%w: no code begins with %q (offset %d)", ErrInvalidPath, bits[start:i+1], start)
		}
		if curr.leaf {
			msg = append(msg, curr.symbol)
			curr = t.root
			start = i + 1
		}
	}
	if curr != t.root {
		return nil, fmt.Errorf("%w: trailing bits %q do not form a code", ErrIncompleteStream, bits[start:])
	}
	return msg, nil
}

// decodeSingle handles the single-leaf tree, whose only code is "0".
func (t *Tree[S]) decodeSingle(bits string) ([]S, error) {
	msg := make([]S, 0, len(bits))
	for i := 0; i < len(bits); i++ {
		switch bits[i] {
		case '0':
			msg = append(msg, t.root.symbol)
		case '1':
			return nil, fmt.Errorf("%w: no code begins with %q (offset %d)", ErrInvalidPath, "1", i)
		default:
			return nil, fmt.Errorf("%w: byte %q at offset %d", ErrMalformedBitstream, bits[i], i)
		}
	}
	return msg, nil
}

// ReadSymbol consumes exactly one codeword from r and returns its symbol.
// io.EOF is returned only when the stream ends cleanly before the first
// bit of a codeword; an end of stream mid-codeword is an
// ErrIncompleteStream. Note that bitio writers pad the final byte with
// zero bits on Close, so callers reading until EOF are expected to know
// how many codewords the stream holds.
func (t *Tree[S]) ReadSymbol(r *bitio.Reader) (S, error) {
	var zero S
	curr := t.root
	if curr.leaf {
		// single-leaf tree: the one code is "0"
		bit, err := r.ReadBool()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return zero, io.EOF
			}
			return zero, err
		}
		if bit {
			return zero, fmt.Errorf("%w: no code on the read path", ErrInvalidPath)
		}
		return curr.symbol, nil
	}
	start := true
	for !curr.leaf {
		bit, err := r.ReadBool()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if start {
					return zero, io.EOF
				}
				return zero, fmt.Errorf("%w: stream ends inside a codeword", ErrIncompleteStream)
			}
			return zero, err
		}
		start = false
		if bit {
			curr = curr.right
		} else {
			curr = curr.left
		}
		if curr == nil {
			return zero, fmt.Errorf("%w: no code on the read path", ErrInvalidPath)
		}
	}
	return curr.symbol, nil
}
