// Command huffman demonstrates the coding package. With -demo it runs the
// classic tables through tree construction, a canonical-code transmission,
// and the bit-packed wire path; without flags it reads lines from stdin
// and reports the code each line induces.
package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/icza/bitio"
	huffman "github.com/jesper-olsen/huffman-go"
	"github.com/jesper-olsen/huffman-go/internal/fixtures"
	"github.com/jesper-olsen/huffman-go/logger"
)

func main() {
	demo := flag.Bool("demo", false, "run the built-in examples and exit")
	quiet := flag.Bool("q", false, "disable logging")
	flag.Parse()

	if *quiet {
		logger.Disable()
	}

	if *demo {
		if err := runDemo(); err != nil {
			log := logger.Logger()
			log.Fatal().Err(err).Msg("demo failed")
		}
		return
	}
	if err := interact(os.Stdin); err != nil {
		log := logger.Logger()
		log.Fatal().Err(err).Msg("session failed")
	}
}

// runDemo reproduces the package's reference results: the optimal weighted
// lengths of the classic tables, a lengths-only canonical transmission,
// and a bit-packed round trip.
func runDemo() error {
	log := logger.Logger()

	tables := []struct {
		name     string
		freq     map[rune]int
		weighted int
	}{
		{"huffman-1952", fixtures.HuffmanPaper, fixtures.HuffmanPaperWeighted},
		{"mackay-5.5", fixtures.MacKay55, fixtures.MacKay55Weighted},
		{"mackay-5.6", fixtures.MacKay56, fixtures.MacKay56Weighted},
		{"mackay-5.7", fixtures.MacKay57, fixtures.MacKay57Weighted},
	}
	for _, tc := range tables {
		freq := huffman.FreqTable[rune](tc.freq)
		tree, err := huffman.NewTree(freq)
		if err != nil {
			return err
		}
		cb := tree.Codes()
		weighted, err := cb.WeightedLength(freq)
		if err != nil {
			return err
		}
		if weighted != tc.weighted {
			return fmt.Errorf("%s: weighted length %d, want %d", tc.name, weighted, tc.weighted)
		}
		avg, err := cb.AverageLength(freq)
		if err != nil {
			return err
		}
		log.Info().
			Str("table", tc.name).
			Int("symbols", len(freq)).
			Int("weighted", weighted).
			Float64("avg", avg).
			Float64("entropy", freq.Entropy()).
			Msg("optimal code")
	}

	// Transmit the mackay-5.7 code as (symbol, length) pairs only and
	// rebuild it canonically on the receiving side.
	freq := huffman.FreqTable[rune](fixtures.MacKay57)
	tree, err := huffman.NewTree(freq)
	if err != nil {
		return err
	}
	wire, err := tree.Codes().MarshalLengths()
	if err != nil {
		return err
	}
	lengths, err := huffman.UnmarshalLengths[rune](wire)
	if err != nil {
		return err
	}
	canonical, err := huffman.CanonicalCodes(lengths)
	if err != nil {
		return err
	}
	decoder, err := huffman.NewTreeFromCodes(canonical)
	if err != nil {
		return err
	}
	weighted, err := canonical.WeightedLength(freq)
	if err != nil {
		return err
	}
	if weighted != fixtures.MacKay57Weighted {
		return fmt.Errorf("mackay-5.7 canonical: weighted length %d, want %d", weighted, fixtures.MacKay57Weighted)
	}

	msg := []rune("cabbage")
	bits, err := canonical.Encode(msg)
	if err != nil {
		return err
	}
	back, err := decoder.Decode(bits)
	if err != nil {
		return err
	}
	if string(back) != string(msg) {
		return fmt.Errorf("canonical round trip: got %q, want %q", string(back), string(msg))
	}
	log.Info().
		Str("msg", string(msg)).
		Str("bits", bits).
		Int("wireBytes", len(wire)).
		Msg("canonical round trip")
	fmt.Println("canonical codes for mackay-5.7:")
	if _, err := canonical.Dump(os.Stdout); err != nil {
		return err
	}

	// The same message again, this time as actual bits.
	var bb bytes.Buffer
	w := bitio.NewWriter(&bb)
	for _, r := range msg {
		if err := canonical.WriteSymbol(w, r); err != nil {
			return err
		}
	}
	if err := w.Close(); err != nil {
		return err
	}
	r := bitio.NewReader(bytes.NewReader(bb.Bytes()))
	packed := make([]rune, 0, len(msg))
	for i := 0; i < len(msg); i++ {
		s, err := decoder.ReadSymbol(r)
		if err != nil {
			return err
		}
		packed = append(packed, s)
	}
	if string(packed) != string(msg) {
		return fmt.Errorf("bit-packed round trip: got %q, want %q", string(packed), string(msg))
	}
	log.Info().
		Int("textBytes", len(string(msg))).
		Int("packedBytes", bb.Len()).
		Msg("bit-packed round trip")
	return nil
}

// interact prompts for lines of text and reports the code each induces.
func interact(in io.Reader) error {
	log := logger.Logger()
	scanner := bufio.NewScanner(in)
	for {
		fmt.Println("\nInput a text to be Huffman encoded:")
		if !scanner.Scan() {
			break
		}
		text := scanner.Text()
		if text == "" {
			continue
		}
		if err := report(text); err != nil {
			log.Error().Err(err).Msg("skipping input")
		}
	}
	return scanner.Err()
}

func report(text string) error {
	freq := huffman.CountString(text)
	tree, err := huffman.NewTree(freq)
	if err != nil {
		return err
	}
	cb := tree.Codes()
	if _, err := cb.Dump(os.Stdout); err != nil {
		return err
	}
	bits, err := cb.Encode([]rune(text))
	if err != nil {
		return err
	}
	decoded, err := tree.Decode(bits)
	if err != nil {
		return err
	}
	fmt.Println("Original:", text)
	fmt.Println("Encoded:", bits)
	fmt.Println("Decoded:", string(decoded))
	if string(decoded) != text {
		return fmt.Errorf("round trip mismatch: %q decoded to %q", text, string(decoded))
	}
	avg, err := cb.AverageLength(freq)
	if err != nil {
		return err
	}
	log := logger.Logger()
	log.Info().
		Float64("avg", avg).
		Float64("entropy", freq.Entropy()).
		Int("textBits", 8*len(text)).
		Int("encodedBits", len(bits)).
		Msg("code stats")
	return nil
}
