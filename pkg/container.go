package pkg

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Container file format, little-endian, in stream order:
//
//	magic            [4]byte  "FZIP"
//	version          uint16
//	original length  uint64
//	pad bits         uint8    0-7
//	alphabet size    uint16   distinct symbols, <= 256
//	per symbol       uint8 value + uint64 frequency, ascending value order
//	checksum         uint64   XXH64 of the uncompressed input
//	body             rest of the stream, bit-packed codes
//
// The tree itself is never serialized; the decoder rebuilds it from the
// frequency pairs with the same deterministic merge order.

var Magic = [4]byte{'F', 'Z', 'I', 'P'}

const FormatVersion uint16 = 1

// Container holds everything needed to reconstruct the original bytes.
type Container struct {
	OriginalSize uint64
	PadBits      uint8
	Checksum     uint64
	Freqs        FrequencyTable
	Body         []byte
}

// EncodeContainer serializes the container to its binary form.
func EncodeContainer(c *Container) []byte {
	var out bytes.Buffer
	out.Write(Magic[:])
	binary.Write(&out, binary.LittleEndian, FormatVersion)
	binary.Write(&out, binary.LittleEndian, c.OriginalSize)
	out.WriteByte(c.PadBits)
	binary.Write(&out, binary.LittleEndian, uint16(c.Freqs.Distinct()))
	for _, sym := range c.Freqs.Symbols() {
		out.WriteByte(sym)
		binary.Write(&out, binary.LittleEndian, c.Freqs[sym])
	}
	binary.Write(&out, binary.LittleEndian, c.Checksum)
	out.Write(c.Body)
	return out.Bytes()
}

// DecodeContainer parses a container from r, validating the header. The body
// is read to EOF; its consistency with the declared original length is only
// checked during Decompress.
func DecodeContainer(r io.Reader) (*Container, error) {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, fmt.Errorf("%w: missing magic marker", ErrInvalidFormat)
	}
	if magic != Magic {
		return nil, fmt.Errorf("%w: bad magic marker %q", ErrInvalidFormat, magic[:])
	}

	var version uint16
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return nil, fmt.Errorf("%w: truncated header", ErrInvalidFormat)
	}
	if version != FormatVersion {
		return nil, fmt.Errorf("%w: version %d, want %d", ErrInvalidFormat, version, FormatVersion)
	}

	c := &Container{}
	if err := binary.Read(r, binary.LittleEndian, &c.OriginalSize); err != nil {
		return nil, fmt.Errorf("%w: truncated header", ErrCorruptedStream)
	}
	if err := binary.Read(r, binary.LittleEndian, &c.PadBits); err != nil {
		return nil, fmt.Errorf("%w: truncated header", ErrCorruptedStream)
	}
	if c.PadBits > 7 {
		return nil, fmt.Errorf("%w: pad-bit count %d out of range", ErrCorruptedStream, c.PadBits)
	}

	var alphabet uint16
	if err := binary.Read(r, binary.LittleEndian, &alphabet); err != nil {
		return nil, fmt.Errorf("%w: truncated header", ErrCorruptedStream)
	}
	if int(alphabet) > AlphabetSize {
		return nil, fmt.Errorf("%w: header declares %d distinct symbols", ErrUnsupportedAlphabet, alphabet)
	}

	lastSym := -1
	for i := 0; i < int(alphabet); i++ {
		var sym uint8
		var freq uint64
		if err := binary.Read(r, binary.LittleEndian, &sym); err != nil {
			return nil, fmt.Errorf("%w: header declares %d frequency pairs, found %d", ErrCorruptedStream, alphabet, i)
		}
		if err := binary.Read(r, binary.LittleEndian, &freq); err != nil {
			return nil, fmt.Errorf("%w: header declares %d frequency pairs, found %d", ErrCorruptedStream, alphabet, i)
		}
		if int(sym) <= lastSym {
			return nil, fmt.Errorf("%w: frequency pairs out of order at symbol %d", ErrCorruptedStream, sym)
		}
		if freq == 0 {
			return nil, fmt.Errorf("%w: zero frequency for symbol %d", ErrCorruptedStream, sym)
		}
		c.Freqs[sym] = freq
		lastSym = int(sym)
	}

	if err := binary.Read(r, binary.LittleEndian, &c.Checksum); err != nil {
		return nil, fmt.Errorf("%w: truncated header", ErrCorruptedStream)
	}

	body, err := io.ReadAll(r)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	c.Body = body
	return c, nil
}
