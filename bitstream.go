package huffman

import (
	"io"

	"github.com/icza/bitio"
)

// BitWriter packs bits into bytes, most significant bit first.  Flush must be
// called once all bits are written; it zero-pads the final partial byte.
type BitWriter struct {
	bw *bitio.Writer
	n  uint64
}

// NewBitWriter returns a BitWriter that emits completed bytes to w.
func NewBitWriter(w io.Writer) *BitWriter {
	return &BitWriter{bw: bitio.NewWriter(w)}
}

// WriteBit appends a single bit.
func (w *BitWriter) WriteBit(bit bool) error {
	if err := w.bw.WriteBool(bit); err != nil {
		return ioError("write bitstream", err)
	}
	w.n++
	return nil
}

// WriteCode appends the bits of hc, first bit first.
func (w *BitWriter) WriteCode(hc Code) error {
	if hc.Size == 0 {
		return nil
	}
	if err := w.bw.WriteBits(hc.Bits, hc.Size); err != nil {
		return ioError("write bitstream", err)
	}
	w.n += uint64(hc.Size)
	return nil
}

// Flush writes out any pending bits, padding the last byte with zeros.  It
// does not close the underlying writer.
func (w *BitWriter) Flush() error {
	if err := w.bw.Close(); err != nil {
		return ioError("flush bitstream", err)
	}
	return nil
}

// BitsWritten returns the number of bits written so far, not counting
// padding.
func (w *BitWriter) BitsWritten() uint64 {
	return w.n
}

// BitReader unpacks bytes into bits, most significant bit first.
type BitReader struct {
	br *bitio.Reader
	n  uint64
}

// NewBitReader returns a BitReader that consumes bytes from r one at a time.
// If r is not an io.ByteReader, it is wrapped in a buffer and may be read
// ahead of the bits actually consumed.
func NewBitReader(r io.Reader) *BitReader {
	return &BitReader{br: bitio.NewReader(r)}
}

// ReadBit returns the next bit.  It returns io.EOF once the source is
// exhausted.
func (r *BitReader) ReadBit() (bool, error) {
	bit, err := r.br.ReadBool()
	if err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return false, io.EOF
		}
		return false, ioError("read bitstream", err)
	}
	r.n++
	return bit, nil
}

// Align consumes the rest of the current byte and returns those bits, right
// aligned, along with their count.
func (r *BitReader) Align() (pad uint64, size byte, err error) {
	size = byte((8 - r.n%8) % 8)
	if size == 0 {
		return 0, 0, nil
	}
	pad, err = r.br.ReadBits(size)
	if err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return 0, 0, io.EOF
		}
		return 0, 0, ioError("read bitstream", err)
	}
	r.n += uint64(size)
	return pad, size, nil
}

// BitsRead returns the number of bits consumed so far.
func (r *BitReader) BitsRead() uint64 {
	return r.n
}

// BytesRead returns the number of source bytes the consumed bits span.
func (r *BitReader) BytesRead() uint64 {
	return (r.n + 7) / 8
}
