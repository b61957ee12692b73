package huffman

import (
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jesper-olsen/huffman-go/internal/fixtures"
)

func mustTree(t *testing.T, freq map[rune]int) *Tree[rune] {
	t.Helper()
	tree, err := NewTree(FreqTable[rune](freq))
	require.NoError(t, err)
	return tree
}

// The tie-break rule pins down the whole codebook for the 1952 paper's
// table, not just the code lengths.
func TestNewTreeHuffmanPaper(t *testing.T) {
	tree := mustTree(t, fixtures.HuffmanPaper)
	want := Codebook[rune]{
		'a': "00",
		'b': "110",
		'c': "1111",
		'd': "010",
		'e': "011",
		'f': "1001",
		'g': "1010",
		'h': "10110",
		'i': "10111",
		'j': "11100",
		'k': "11101",
		'l': "10001",
		'm': "10000",
	}
	if diff := cmp.Diff(want, tree.Codes()); diff != "" {
		t.Errorf("codebook mismatch (-want +got):\n%s", diff)
	}
}

func TestNewTreeOptimalWeightedLengths(t *testing.T) {
	for _, tc := range []struct {
		name     string
		freq     map[rune]int
		weighted int
	}{
		{"huffman-1952", fixtures.HuffmanPaper, fixtures.HuffmanPaperWeighted},
		{"mackay-5.5", fixtures.MacKay55, fixtures.MacKay55Weighted},
		{"mackay-5.6", fixtures.MacKay56, fixtures.MacKay56Weighted},
		{"mackay-5.7", fixtures.MacKay57, fixtures.MacKay57Weighted},
	} {
		t.Run(tc.name, func(t *testing.T) {
			freq := FreqTable[rune](tc.freq)
			tree, err := NewTree(freq)
			require.NoError(t, err)
			weighted, err := tree.Codes().WeightedLength(freq)
			require.NoError(t, err)
			assert.Equal(t, tc.weighted, weighted)
		})
	}
}

func TestNewTreeDeterministic(t *testing.T) {
	first := mustTree(t, fixtures.MacKay56).Codes()
	second := mustTree(t, fixtures.MacKay56).Codes()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("same input, different codebooks (-first +second):\n%s", diff)
	}
}

func TestNewTreeSingleSymbol(t *testing.T) {
	tree := mustTree(t, map[rune]int{'x': 5})
	cb := tree.Codes()
	require.Equal(t, Codebook[rune]{'x': "0"}, cb)

	bits, err := cb.Encode([]rune("xxx"))
	require.NoError(t, err)
	assert.Equal(t, "000", bits)

	msg, err := tree.Decode(bits)
	require.NoError(t, err)
	assert.Equal(t, "xxx", string(msg))

	_, err = tree.Decode("1")
	assert.ErrorIs(t, err, ErrInvalidPath)
}

func TestNewTreeEmpty(t *testing.T) {
	_, err := NewTree(FreqTable[rune]{})
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestNewTreeNegativeFrequency(t *testing.T) {
	_, err := NewTree(FreqTable[rune]{'a': 3, 'b': -1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative frequency")
}

func TestZeroFrequencySymbolsGetCodes(t *testing.T) {
	tree := mustTree(t, map[rune]int{'a': 0, 'b': 0, 'c': 5})
	cb := tree.Codes()
	require.Len(t, cb, 3)
	for s, code := range cb {
		assert.NotEmpty(t, code, "symbol %q", s)
	}
}

func TestCodesMemoized(t *testing.T) {
	tree := mustTree(t, fixtures.MacKay55)
	first := tree.Codes()
	second := tree.Codes()
	// the cached map itself, not an equal copy
	assert.Equal(t, reflect.ValueOf(first).Pointer(), reflect.ValueOf(second).Pointer())
}

func testRoundTrip(t *testing.T, text string) {
	t.Helper()
	tree, err := NewTree(CountString(text))
	require.NoError(t, err)

	bits, err := tree.Codes().Encode([]rune(text))
	require.NoError(t, err)
	back, err := tree.Decode(bits)
	require.NoError(t, err)
	if string(back) != text {
		t.Fatalf("round trip failed: %q decoded to %q", text, string(back))
	}
}

func TestRoundTripExample(t *testing.T) {
	testRoundTrip(t, "this is an example of huffman encoding")
}

func TestRoundTripSkewed(t *testing.T) {
	testRoundTrip(t, "abbcccdddd")
}

func TestRoundTripUnicode(t *testing.T) {
	testRoundTrip(t, "rødgrød med fløde")
}

func TestRoundTripSingleRune(t *testing.T) {
	testRoundTrip(t, "aaaaaa")
}

func TestDecodeMalformed(t *testing.T) {
	tree := mustTree(t, fixtures.MacKay55)
	_, err := tree.Decode("012")
	assert.ErrorIs(t, err, ErrMalformedBitstream)
}

func TestDecodeIncomplete(t *testing.T) {
	tree := mustTree(t, fixtures.MacKay55)
	// "11" stops inside both three-bit codes
	_, err := tree.Decode("11")
	assert.ErrorIs(t, err, ErrIncompleteStream)
}

func TestDecodeInvalidPath(t *testing.T) {
	tree, err := NewTreeFromCodes(Codebook[rune]{'a': "00", 'b': "1"})
	require.NoError(t, err)
	_, err = tree.Decode("01")
	assert.ErrorIs(t, err, ErrInvalidPath)
}

func TestDecodeEmpty(t *testing.T) {
	tree := mustTree(t, fixtures.MacKay55)
	msg, err := tree.Decode("")
	require.NoError(t, err)
	assert.Empty(t, msg)
}

func TestNewTreeFromCodesRoundTrip(t *testing.T) {
	tree := mustTree(t, fixtures.HuffmanPaper)
	rebuilt, err := NewTreeFromCodes(tree.Codes())
	require.NoError(t, err)

	msg := []rune("abcdefghijklm")
	bits, err := tree.Codes().Encode(msg)
	require.NoError(t, err)
	back, err := rebuilt.Decode(bits)
	require.NoError(t, err)
	assert.Equal(t, string(msg), string(back))
}

func TestNewTreeFromCodesRejects(t *testing.T) {
	for _, tc := range []struct {
		name string
		cb   Codebook[rune]
	}{
		{"code extends another", Codebook[rune]{'a': "0", 'b': "01"}},
		{"code is a prefix of another", Codebook[rune]{'a': "01", 'b': "0"}},
		{"duplicate code", Codebook[rune]{'a': "01", 'b': "01"}},
		{"empty code", Codebook[rune]{'a': ""}},
		{"non-binary code", Codebook[rune]{'a': "0x1"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewTreeFromCodes(tc.cb)
			assert.ErrorIs(t, err, ErrInvalidCodebook)
		})
	}
}

func TestNewTreeFromCodesEmpty(t *testing.T) {
	_, err := NewTreeFromCodes(Codebook[rune]{})
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestNewTreeFromCodesCopiesInput(t *testing.T) {
	cb := Codebook[rune]{'a': "0", 'b': "10", 'c': "11"}
	tree, err := NewTreeFromCodes(cb)
	require.NoError(t, err)

	cb['a'] = "tampered"
	bits, err := tree.Codes().Encode([]rune("a"))
	require.NoError(t, err)
	assert.Equal(t, "0", bits)
}

func FuzzRoundTrip(f *testing.F) {
	f.Add("this is an example of huffman encoding")
	f.Add("abbcccdddd")
	f.Add("læsø")
	f.Fuzz(func(t *testing.T, text string) {
		if text == "" {
			t.Skip()
		}
		tree, err := NewTree(CountString(text))
		if err != nil {
			t.Fatal(err)
		}
		msg := []rune(text)
		bits, err := tree.Codes().Encode(msg)
		if err != nil {
			t.Fatal(err)
		}
		back, err := tree.Decode(bits)
		if err != nil {
			t.Fatal(err)
		}
		if string(back) != string(msg) {
			t.Fatalf("%q decoded to %q", string(msg), string(back))
		}
	})
}
