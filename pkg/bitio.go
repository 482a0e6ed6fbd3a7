package pkg

import (
	"io"

	"github.com/chronos-tachyon/assert"
)

// Bit packing convention: most significant bit first within each byte. The
// writer and reader must agree; both live here so the convention has exactly
// one home.

// BitWriter accumulates individual bits into a byte buffer.
type BitWriter struct {
	buf   []byte
	cur   byte
	nbits uint8
}

// WriteBit appends one bit.
func (w *BitWriter) WriteBit(bit bool) {
	if bit {
		w.cur |= 1 << (7 - w.nbits)
	}
	w.nbits++
	if w.nbits == 8 {
		w.buf = append(w.buf, w.cur)
		w.cur = 0
		w.nbits = 0
	}
}

// WriteCode appends a whole code, first bit first.
func (w *BitWriter) WriteCode(code []bool) {
	for _, bit := range code {
		w.WriteBit(bit)
	}
}

// Len returns the number of bits written so far.
func (w *BitWriter) Len() int {
	return len(w.buf)*8 + int(w.nbits)
}

// Finish zero-pads the final byte if it is partially filled and returns the
// packed bytes together with the pad-bit count (0-7). The writer must not be
// used afterwards.
func (w *BitWriter) Finish() ([]byte, uint8) {
	var pad uint8
	if w.nbits > 0 {
		pad = 8 - w.nbits
		w.buf = append(w.buf, w.cur)
		w.cur = 0
		w.nbits = 0
	}
	assert.Assertf(pad <= 7, "pad-bit count %d out of range", pad)
	return w.buf, pad
}

// BitReader consumes individual bits from a packed byte buffer.
type BitReader struct {
	data []byte
	pos  int
	bit  uint8
}

// NewBitReader returns a reader over the packed body.
func NewBitReader(data []byte) *BitReader {
	return &BitReader{data: data}
}

// ReadBit consumes the next bit. It returns io.ErrUnexpectedEOF when the
// buffer is exhausted; callers translate that into ErrCorruptedStream.
func (r *BitReader) ReadBit() (bool, error) {
	if r.pos >= len(r.data) {
		return false, io.ErrUnexpectedEOF
	}
	bit := r.data[r.pos]&(1<<(7-r.bit)) != 0
	r.bit++
	if r.bit == 8 {
		r.bit = 0
		r.pos++
	}
	return bit, nil
}

// Remaining returns the number of unread bits.
func (r *BitReader) Remaining() int {
	return (len(r.data)-r.pos)*8 - int(r.bit)
}
