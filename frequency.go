package huffman

import (
	"bytes"
	"fmt"
	"io"
	"math"
)

// FrequencyTable holds the number of occurrences of each byte value in an
// input, along with the total number of bytes.  It is immutable once built.
type FrequencyTable struct {
	counts   [NumSymbols]uint32
	total    uint64
	distinct int
}

// CountFrequencies counts the byte values in data.
func CountFrequencies(data []byte) (*FrequencyTable, error) {
	if uint64(len(data)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d bytes", ErrInputTooLarge, len(data))
	}
	var counts [NumSymbols]uint32
	for _, b := range data {
		counts[b]++
	}
	return NewFrequencyTable(counts), nil
}

// ReadFrequencies materializes the whole of r and counts it.  The bytes read
// are returned so that the caller can encode exactly the input that was
// counted.
func ReadFrequencies(r io.Reader) (*FrequencyTable, []byte, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, nil, ioError("read input", err)
	}
	data := buf.Bytes()
	ft, err := CountFrequencies(data)
	if err != nil {
		return nil, nil, err
	}
	return ft, data, nil
}

// NewFrequencyTable builds a FrequencyTable from per-symbol counts, such as
// the ones persisted in a container header.
func NewFrequencyTable(counts [NumSymbols]uint32) *FrequencyTable {
	ft := &FrequencyTable{counts: counts}
	for _, count := range counts {
		if count != 0 {
			ft.total += uint64(count)
			ft.distinct++
		}
	}
	return ft
}

// Count returns the number of occurrences of b.
func (ft *FrequencyTable) Count(b byte) uint32 {
	return ft.counts[b]
}

// Total returns the sum of all counts.
func (ft *FrequencyTable) Total() uint64 {
	return ft.total
}

// Distinct returns the number of byte values with a nonzero count.
func (ft *FrequencyTable) Distinct() int {
	return ft.distinct
}

// Counts returns a copy of the per-symbol counts.
func (ft *FrequencyTable) Counts() [NumSymbols]uint32 {
	return ft.counts
}
