package pkg

import "sync"

// AlphabetSize is the number of distinct byte values.
const AlphabetSize = 256

// FrequencyTable maps each byte value to its occurrence count. Memory is
// bounded by the alphabet, not the input, so tables for independent chunks
// can be counted separately and summed.
type FrequencyTable [AlphabetSize]uint64

// CountFrequencies counts byte occurrences in a single linear pass.
// Empty input yields the zero table; that is not an error.
func CountFrequencies(data []byte) FrequencyTable {
	var freqs FrequencyTable
	for _, b := range data {
		freqs[b]++
	}
	return freqs
}

// CountFrequenciesParallel splits data into contiguous chunks, counts each
// chunk in its own goroutine and sums the per-chunk tables. Summation is
// commutative, so the result is identical to CountFrequencies. workers <= 1
// or small inputs fall back to the sequential pass.
func CountFrequenciesParallel(data []byte, workers int) FrequencyTable {
	const minChunk = 64 * 1024

	if workers <= 1 || len(data) < 2*minChunk {
		return CountFrequencies(data)
	}
	if max := len(data) / minChunk; workers > max {
		workers = max
	}

	bounds := chunkBounds(len(data), workers)
	tables := make([]FrequencyTable, len(bounds))

	var wg sync.WaitGroup
	for i, b := range bounds {
		wg.Add(1)
		go func(i int, part []byte) {
			defer wg.Done()
			tables[i] = CountFrequencies(part)
		}(i, data[b.lo:b.hi])
	}
	wg.Wait()

	freqs := tables[0]
	for _, t := range tables[1:] {
		freqs.Add(t)
	}
	return freqs
}

type span struct {
	lo, hi int
}

// chunkBounds splits [0, n) into at most workers contiguous non-empty
// ranges. Rounding the chunk size up can make the final ranges start beyond
// n, so the walk stops at n rather than emitting one range per worker.
func chunkBounds(n, workers int) []span {
	chunk := (n + workers - 1) / workers
	bounds := make([]span, 0, workers)
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		bounds = append(bounds, span{lo, hi})
	}
	return bounds
}

// Add accumulates another table into this one.
func (t *FrequencyTable) Add(other FrequencyTable) {
	for i, n := range other {
		t[i] += n
	}
}

// Total returns the sum of all counts, i.e. the input length.
func (t *FrequencyTable) Total() uint64 {
	var total uint64
	for _, n := range t {
		total += n
	}
	return total
}

// Distinct returns the number of symbols with a nonzero count.
func (t *FrequencyTable) Distinct() int {
	distinct := 0
	for _, n := range t {
		if n > 0 {
			distinct++
		}
	}
	return distinct
}

// Symbols returns the symbols with nonzero counts in ascending value order.
func (t *FrequencyTable) Symbols() []byte {
	symbols := make([]byte, 0, t.Distinct())
	for i, n := range t {
		if n > 0 {
			symbols = append(symbols, byte(i))
		}
	}
	return symbols
}
