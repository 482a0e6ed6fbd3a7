package pkg

// Stats summarizes the outcome of a compression run. CompressedSize is the
// full container size including the header, so small inputs with a large
// alphabet can legitimately report a ratio below 1.
type Stats struct {
	OriginalSize   uint64
	CompressedSize uint64

	// Ratio is original size / compressed size, e.g. 2.0 means the output
	// is half the input.
	Ratio float64

	// SpaceSaving is the fraction of the input size saved, in percent.
	// Negative when the output grew.
	SpaceSaving float64
}

// ComputeStats derives compression statistics. A zero original size yields
// zero stats rather than dividing by zero.
func ComputeStats(originalSize, compressedSize uint64) Stats {
	s := Stats{
		OriginalSize:   originalSize,
		CompressedSize: compressedSize,
	}
	if originalSize == 0 || compressedSize == 0 {
		return s
	}
	s.Ratio = float64(originalSize) / float64(compressedSize)
	s.SpaceSaving = (1 - float64(compressedSize)/float64(originalSize)) * 100
	return s
}
