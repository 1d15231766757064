package huffman

import (
	"bufio"
	"bytes"
	"errors"
	"io"

	"github.com/rs/zerolog"
)

// Codec compresses and decompresses containers.  A Codec holds no state
// besides its options: every call builds its own frequency table, queue and
// tree, so one Codec may be used from several goroutines at once.
type Codec struct {
	log zerolog.Logger
}

// Option configures a Codec.
type Option func(*Codec)

// WithLogger sets the logger that receives per-call debug summaries.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Codec) {
		c.log = logger
	}
}

// NewCodec returns a Codec.  By default it logs nothing.
func NewCodec(opts ...Option) *Codec {
	c := &Codec{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultCodec = NewCodec()

// Compress compresses data into a container using a default Codec.
func Compress(data []byte) ([]byte, error) {
	return defaultCodec.Compress(data)
}

// Decompress restores the original bytes from a container using a default
// Codec.
func Decompress(container []byte) ([]byte, error) {
	return defaultCodec.Decompress(container)
}

// Compress compresses data into a container.
func (c *Codec) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(HeaderSize + len(data)/2)
	if _, err := c.CompressTo(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// CompressTo writes the container for data to w and returns the number of
// bytes written.
func (c *Codec) CompressTo(w io.Writer, data []byte) (int64, error) {
	ft, err := CountFrequencies(data)
	if err != nil {
		return 0, err
	}
	return c.encode(w, ft, data)
}

// CompressFrom reads all of r, then writes its container to w.
func (c *Codec) CompressFrom(w io.Writer, r io.Reader) (int64, error) {
	ft, data, err := ReadFrequencies(r)
	if err != nil {
		return 0, err
	}
	return c.encode(w, ft, data)
}

func (c *Codec) encode(w io.Writer, ft *FrequencyTable, data []byte) (int64, error) {
	h, err := NewHeader(ft)
	if err != nil {
		return 0, err
	}

	cw := &countingWriter{w: bufio.NewWriter(w)}
	if _, err := h.WriteTo(cw); err != nil {
		return cw.n, err
	}

	var e Encoder
	e.Init(ft)
	bw := NewBitWriter(cw)
	if err := e.Write(bw, data); err != nil {
		return cw.n, err
	}
	if err := bw.Flush(); err != nil {
		return cw.n, err
	}
	if err := cw.w.Flush(); err != nil {
		return cw.n, ioError("write container", err)
	}

	c.log.Debug().
		Uint64("input_bytes", ft.Total()).
		Int("distinct", ft.Distinct()).
		Uint8("max_code_size", e.Table().MaxSize()).
		Uint64("encoded_bits", bw.BitsWritten()).
		Int64("container_bytes", cw.n).
		Msg("compressed")
	return cw.n, nil
}

// Decompress restores the original bytes from a container.  On failure no
// partial output is returned.
func (c *Codec) Decompress(container []byte) ([]byte, error) {
	var h Header
	if err := h.UnmarshalBinary(container); err != nil {
		return nil, err
	}
	if err := h.Validate(); err != nil {
		return nil, err
	}

	// Every symbol takes at least one bit.
	payload := container[HeaderSize:]
	if uint64(h.Total) > 8*uint64(len(payload)) {
		return nil, corrupt(int64(len(container)), ErrTruncated)
	}

	out := bytes.NewBuffer(make([]byte, 0, h.Total))
	if _, err := c.decode(out, h, bytes.NewReader(payload)); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// DecompressFrom reads a container from r and writes the original bytes to
// w.  If it fails part way, w may already have received some output; the
// caller decides whether to discard it.
func (c *Codec) DecompressFrom(w io.Writer, r io.Reader) (int64, error) {
	br := bufio.NewReader(r)
	h, err := ReadHeader(br)
	if err != nil {
		return 0, err
	}
	if err := h.Validate(); err != nil {
		return 0, err
	}

	bw := bufio.NewWriter(w)
	n, err := c.decode(bw, h, br)
	if err != nil {
		_ = bw.Flush()
		return n, err
	}
	if err := bw.Flush(); err != nil {
		return n, ioError("write output", err)
	}
	return n, nil
}

type byteSource interface {
	io.Reader
	io.ByteReader
}

func (c *Codec) decode(w io.ByteWriter, h Header, src byteSource) (int64, error) {
	var n int64
	offset := int64(HeaderSize)
	if h.Total != 0 {
		var d Decoder
		if err := d.Init(h.FrequencyTable()); err != nil {
			return 0, corrupt(0, err)
		}

		rd := NewBitReader(src)
		for n < int64(h.Total) {
			b, err := d.Decode(rd)
			if err != nil {
				if errors.Is(err, ErrTruncated) || errors.Is(err, ErrInvalidCode) {
					return n, corrupt(HeaderSize+int64(rd.BytesRead()), err)
				}
				return n, err
			}
			if err := w.WriteByte(b); err != nil {
				return n, ioError("write output", err)
			}
			n++
		}

		// Whatever is left of the final byte is padding.
		_, size, err := rd.Align()
		if err == io.EOF {
			return n, corrupt(HeaderSize+int64(rd.BytesRead()), ErrTruncated)
		} else if err != nil {
			return n, err
		}

		offset += int64(rd.BytesRead())
		c.log.Debug().
			Uint32("symbols", h.Total).
			Uint64("encoded_bits", rd.BitsRead()-uint64(size)).
			Msg("decompressed")
	}

	if err := expectEOF(src, offset); err != nil {
		return n, err
	}
	return n, nil
}

func expectEOF(src io.ByteReader, offset int64) error {
	_, err := src.ReadByte()
	switch {
	case err == io.EOF:
		return nil
	case err != nil:
		return ioError("read bitstream", err)
	default:
		return corrupt(offset, ErrTrailingData)
	}
}

type countingWriter struct {
	w *bufio.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

func (cw *countingWriter) WriteByte(b byte) error {
	err := cw.w.WriteByte(b)
	if err == nil {
		cw.n++
	}
	return err
}
