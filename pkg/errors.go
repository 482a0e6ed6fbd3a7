package pkg

import "errors"

// Error kinds surfaced by the codec. All failures wrap one of these
// sentinels, so callers match with errors.Is.
var (
	// ErrInvalidFormat means the magic marker or format version did not
	// match; the input is not a FileZipper container.
	ErrInvalidFormat = errors.New("not a valid FileZipper container")

	// ErrCorruptedStream means the container parsed but its contents are
	// inconsistent: the bitstream ran out before the declared symbol count
	// was recovered, the frequency table is malformed, or the checksum
	// does not match.
	ErrCorruptedStream = errors.New("corrupted stream")

	// ErrUnsupportedAlphabet means the header declares more distinct
	// symbols than a byte alphabet allows.
	ErrUnsupportedAlphabet = errors.New("unsupported alphabet size")
)
