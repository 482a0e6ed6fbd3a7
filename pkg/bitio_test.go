package pkg

import (
	"bytes"
	"errors"
	"io"
	"math/rand"
	"testing"
)

func TestBitWriterPacking(t *testing.T) {
	type testRow struct {
		name string
		bits []bool
		data []byte
		pad  uint8
	}

	testData := []testRow{
		{name: "empty", bits: nil, data: nil, pad: 0},
		{name: "single one", bits: []bool{true}, data: []byte{0x80}, pad: 7},
		{name: "four bits", bits: []bool{true, false, true, false}, data: []byte{0xa0}, pad: 4},
		{name: "full byte", bits: []bool{true, true, true, true, true, true, true, true}, data: []byte{0xff}, pad: 0},
		{name: "nine bits", bits: []bool{false, false, false, false, false, false, false, true, true}, data: []byte{0x01, 0x80}, pad: 7},
	}

	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			var w BitWriter
			w.WriteCode(row.bits)
			if got, want := w.Len(), len(row.bits); got != want {
				t.Errorf("Len() = %d, want %d", got, want)
			}
			data, pad := w.Finish()
			if !bytes.Equal(data, row.data) {
				t.Errorf("data = %x, want %x", data, row.data)
			}
			if pad != row.pad {
				t.Errorf("pad = %d, want %d", pad, row.pad)
			}
		})
	}
}

func TestBitWriterPadAlignment(t *testing.T) {
	// len(data)*8 must equal the bit count rounded up to a whole byte.
	for n := 0; n <= 64; n++ {
		var w BitWriter
		for i := 0; i < n; i++ {
			w.WriteBit(i%3 == 0)
		}
		data, pad := w.Finish()
		if len(data)*8 != n+int(pad) {
			t.Fatalf("n=%d: %d bytes with %d pad bits does not align", n, len(data), pad)
		}
		if pad > 7 {
			t.Fatalf("n=%d: pad = %d, want <= 7", n, pad)
		}
	}
}

func TestBitRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 20; trial++ {
		n := rng.Intn(200)
		bits := make([]bool, n)
		for i := range bits {
			bits[i] = rng.Intn(2) == 1
		}

		var w BitWriter
		w.WriteCode(bits)
		data, pad := w.Finish()

		r := NewBitReader(data)
		if got, want := r.Remaining(), n+int(pad); got != want {
			t.Fatalf("Remaining() = %d, want %d", got, want)
		}
		for i, want := range bits {
			got, err := r.ReadBit()
			if err != nil {
				t.Fatalf("ReadBit() error at bit %d: %v", i, err)
			}
			if got != want {
				t.Fatalf("bit %d = %v, want %v", i, got, want)
			}
		}
		// Pad bits are zero.
		for i := 0; i < int(pad); i++ {
			got, err := r.ReadBit()
			if err != nil {
				t.Fatalf("ReadBit() error in padding: %v", err)
			}
			if got {
				t.Fatal("nonzero pad bit")
			}
		}
	}
}

func TestBitReaderExhausted(t *testing.T) {
	r := NewBitReader([]byte{0xff})
	for i := 0; i < 8; i++ {
		if _, err := r.ReadBit(); err != nil {
			t.Fatalf("ReadBit() error at bit %d: %v", i, err)
		}
	}
	if r.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0", r.Remaining())
	}
	if _, err := r.ReadBit(); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadBit() past end = %v, want %v", err, io.ErrUnexpectedEOF)
	}
}
