package pkg

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Huffman compression using frequency-based encoding. Compress and
// Decompress are pure: each call builds its own frequency table, tree and
// buffers, so concurrent calls need no synchronization.

// CompressOptions tunes a Compress call.
type CompressOptions struct {
	// Workers sets the number of goroutines for frequency counting, the
	// only parallelizable stage. 0 means sequential.
	Workers int
}

// Compress encodes data into a container. Empty input is valid and produces
// a container with original length 0 and an empty body.
func Compress(data []byte) (*Container, error) {
	return CompressWithOptions(data, CompressOptions{})
}

// CompressWithOptions encodes data into a container.
func CompressWithOptions(data []byte, opts CompressOptions) (*Container, error) {
	freqs := CountFrequenciesParallel(data, opts.Workers)

	c := &Container{
		OriginalSize: uint64(len(data)),
		Checksum:     xxhash.Sum64(data),
		Freqs:        freqs,
	}

	tree, ok := BuildTree(freqs)
	if !ok {
		return c, nil
	}
	codes := BuildCodeTable(tree)

	var w BitWriter
	for _, b := range data {
		w.WriteCode(codes[b])
	}
	c.Body, c.PadBits = w.Finish()
	return c, nil
}

// Decompress reconstructs the original bytes from a container. The tree is
// rebuilt from the header's frequency table with the same deterministic
// algorithm the encoder used, then the body is walked bit by bit: 0 descends
// left, 1 descends right, and each leaf emits a symbol. Exactly original
// length symbols are decoded; the stored length, not the pad count, is the
// authoritative terminator.
func Decompress(c *Container) ([]byte, error) {
	if c.OriginalSize != c.Freqs.Total() {
		return nil, fmt.Errorf("%w: frequency total %d does not match original length %d",
			ErrCorruptedStream, c.Freqs.Total(), c.OriginalSize)
	}

	tree, ok := BuildTree(c.Freqs)
	if !ok {
		if len(c.Body) != 0 || c.PadBits != 0 {
			return nil, fmt.Errorf("%w: nonempty body for empty input", ErrCorruptedStream)
		}
		if c.Checksum != xxhash.Sum64(nil) {
			return nil, fmt.Errorf("%w: checksum mismatch", ErrCorruptedStream)
		}
		return []byte{}, nil
	}

	// Every symbol consumes at least one bit, so the header cannot honestly
	// declare more symbols than the body has bits. Checking before the
	// allocation keeps a hostile length from exhausting memory.
	if c.OriginalSize > uint64(len(c.Body))*8 {
		return nil, fmt.Errorf("%w: body has %d bits, fewer than the %d declared symbols",
			ErrCorruptedStream, len(c.Body)*8, c.OriginalSize)
	}

	r := NewBitReader(c.Body)
	out := make([]byte, 0, c.OriginalSize)
	for uint64(len(out)) < c.OriginalSize {
		i := tree.Root()
		for {
			sym, leaf := tree.Leaf(i)
			if leaf {
				out = append(out, sym)
				break
			}
			bit, err := r.ReadBit()
			if err != nil {
				return nil, fmt.Errorf("%w: bitstream exhausted after %d of %d symbols",
					ErrCorruptedStream, len(out), c.OriginalSize)
			}
			left, right := tree.Children(i)
			if bit {
				i = right
			} else {
				i = left
			}
			if i == noChild {
				return nil, fmt.Errorf("%w: walk descended past a leaf", ErrCorruptedStream)
			}
		}
	}

	if r.Remaining() != int(c.PadBits) {
		return nil, fmt.Errorf("%w: %d trailing bits, pad count says %d",
			ErrCorruptedStream, r.Remaining(), c.PadBits)
	}
	if sum := xxhash.Sum64(out); sum != c.Checksum {
		return nil, fmt.Errorf("%w: checksum mismatch", ErrCorruptedStream)
	}
	return out, nil
}
