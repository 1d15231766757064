package huffman

import (
	"encoding"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// HeaderSize is the size of the fixed container header: a 4-byte symbol
// count followed by 256 4-byte frequencies, all little-endian.
const HeaderSize = 4 + 4*NumSymbols

// Header is the fixed-size prefix of a container.  The bitstream follows it
// immediately.
type Header struct {
	// Total is the length of the original input.
	Total uint32

	// Frequencies holds the occurrence count of each byte value.
	Frequencies [NumSymbols]uint32
}

// NewHeader returns the Header describing an input with the given
// frequencies.
func NewHeader(ft *FrequencyTable) (Header, error) {
	if ft.Total() > math.MaxUint32 {
		return Header{}, fmt.Errorf("%w: %d bytes", ErrInputTooLarge, ft.Total())
	}
	return Header{Total: uint32(ft.Total()), Frequencies: ft.Counts()}, nil
}

// FrequencyTable returns the frequencies recorded in the header.
func (h Header) FrequencyTable() *FrequencyTable {
	return NewFrequencyTable(h.Frequencies)
}

// Validate checks that the frequencies sum to the stated total.  A nonzero
// total with no symbols at all is reported as ErrEmptyAlphabet.
func (h Header) Validate() error {
	var sum uint64
	for _, count := range h.Frequencies {
		sum += uint64(count)
	}
	if sum == 0 && h.Total != 0 {
		return corrupt(0, fmt.Errorf("%w: total %d", ErrEmptyAlphabet, h.Total))
	}
	if sum != uint64(h.Total) {
		return corrupt(0, fmt.Errorf("%w: total %d, frequencies sum to %d", ErrCountMismatch, h.Total, sum))
	}
	return nil
}

// MarshalBinary returns the HeaderSize-byte encoding of the header.
func (h Header) MarshalBinary() ([]byte, error) {
	out := make([]byte, HeaderSize)
	binary.LittleEndian.PutUint32(out[0:4], h.Total)
	for i, count := range h.Frequencies {
		binary.LittleEndian.PutUint32(out[4+4*i:], count)
	}
	return out, nil
}

// UnmarshalBinary decodes the first HeaderSize bytes of data.  Any bytes
// after the header are ignored.
func (h *Header) UnmarshalBinary(data []byte) error {
	if len(data) < HeaderSize {
		return corrupt(int64(len(data)), fmt.Errorf("%w: got %d bytes, want %d", ErrShortHeader, len(data), HeaderSize))
	}
	h.Total = binary.LittleEndian.Uint32(data[0:4])
	for i := range h.Frequencies {
		h.Frequencies[i] = binary.LittleEndian.Uint32(data[4+4*i:])
	}
	return nil
}

// WriteTo writes the encoded header to w.
func (h Header) WriteTo(w io.Writer) (int64, error) {
	raw, _ := h.MarshalBinary()
	n, err := w.Write(raw)
	if err != nil {
		return int64(n), ioError("write header", err)
	}
	return int64(n), nil
}

// ReadHeader reads and decodes a header from r.  A source that ends early is
// reported as a CorruptContainerError.
func ReadHeader(r io.Reader) (Header, error) {
	var raw [HeaderSize]byte
	n, err := io.ReadFull(r, raw[:])
	switch {
	case err == io.EOF || err == io.ErrUnexpectedEOF:
		return Header{}, corrupt(int64(n), fmt.Errorf("%w: got %d bytes, want %d", ErrShortHeader, n, HeaderSize))
	case err != nil:
		return Header{}, ioError("read header", err)
	}
	var h Header
	_ = h.UnmarshalBinary(raw[:])
	return h, nil
}

var (
	_ encoding.BinaryMarshaler   = Header{}
	_ encoding.BinaryUnmarshaler = (*Header)(nil)
	_ io.WriterTo                = Header{}
)
