// Package fileops moves files through a huffman.Codec: it reads named
// inputs, commits outputs only once they are complete, and reports sizes,
// ratios and byte-for-byte comparisons.
package fileops

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	huffman "github.com/chronos-tachyon/huffpack"
	"github.com/duke-git/lancet/v2/fileutil"
	"github.com/duke-git/lancet/v2/mathutil"
)

var ErrDestinationExists = errors.New("destination already exists")

// Result describes one file transformation.
type Result struct {
	Source     string
	Dest       string
	SourceSize int64
	DestSize   int64
}

// Ratio returns the space saved, as a percentage of the source size.
func (r Result) Ratio() float64 {
	return Ratio(r.SourceSize, r.DestSize)
}

// Ratio returns (1 - compressed/original) × 100, rounded to two decimals.
// It is 0 when original is 0.
func Ratio(original, compressed int64) float64 {
	if original == 0 {
		return 0
	}
	return mathutil.RoundToFloat((1-float64(compressed)/float64(original))*100, 2)
}

// CompressFile writes the container for src to dst.
func CompressFile(codec *huffman.Codec, src, dst string, overwrite bool) (Result, error) {
	return transform(src, dst, overwrite, func(w io.Writer, r io.Reader) (int64, error) {
		return codec.CompressFrom(w, r)
	})
}

// DecompressFile restores the container src into dst.  A corrupt container
// leaves dst untouched.
func DecompressFile(codec *huffman.Codec, src, dst string, overwrite bool) (Result, error) {
	return transform(src, dst, overwrite, func(w io.Writer, r io.Reader) (int64, error) {
		return codec.DecompressFrom(w, r)
	})
}

func transform(src, dst string, overwrite bool, fn func(io.Writer, io.Reader) (int64, error)) (Result, error) {
	if !overwrite && fileutil.IsExist(dst) {
		return Result{}, fmt.Errorf("%s: %w", dst, ErrDestinationExists)
	}

	in, err := os.Open(src)
	if err != nil {
		return Result{}, &huffman.IOError{Op: "open input", Err: err}
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return Result{}, &huffman.IOError{Op: "stat input", Err: err}
	}

	// Write next to dst so that the final rename stays on one filesystem.
	tmp, err := os.CreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+".tmp-*")
	if err != nil {
		return Result{}, &huffman.IOError{Op: "create output", Err: err}
	}
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	n, err := fn(tmp, in)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", src, err)
	}
	if err := tmp.Close(); err != nil {
		return Result{}, &huffman.IOError{Op: "close output", Err: err}
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		return Result{}, &huffman.IOError{Op: "commit output", Err: err}
	}
	committed = true

	return Result{
		Source:     src,
		Dest:       dst,
		SourceSize: info.Size(),
		DestSize:   n,
	}, nil
}

// FileSize returns the size of the named file in bytes.
func FileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// CompareFiles reports whether two files have identical contents.
func CompareFiles(a, b string) (bool, error) {
	fa, err := os.Open(a)
	if err != nil {
		return false, err
	}
	defer fa.Close()

	fb, err := os.Open(b)
	if err != nil {
		return false, err
	}
	defer fb.Close()

	return compareReaders(fa, fb)
}

func compareReaders(a, b io.Reader) (bool, error) {
	ra, rb := bufio.NewReader(a), bufio.NewReader(b)
	for {
		ca, errA := ra.ReadByte()
		cb, errB := rb.ReadByte()
		switch {
		case errA != nil && errA != io.EOF:
			return false, errA
		case errB != nil && errB != io.EOF:
			return false, errB
		case errA == io.EOF && errB == io.EOF:
			return true, nil
		case errA == io.EOF || errB == io.EOF:
			return false, nil
		case ca != cb:
			return false, nil
		}
	}
}

// CheckContainer decodes the container file and reports whether it restores
// the contents of the original file.
func CheckContainer(codec *huffman.Codec, original, container string) (bool, error) {
	raw, err := os.ReadFile(container)
	if err != nil {
		return false, &huffman.IOError{Op: "read container", Err: err}
	}
	restored, err := codec.Decompress(raw)
	if err != nil {
		return false, fmt.Errorf("%s: %w", container, err)
	}
	want, err := os.ReadFile(original)
	if err != nil {
		return false, &huffman.IOError{Op: "read original", Err: err}
	}
	return bytes.Equal(want, restored), nil
}

// Verification is the outcome of a compress, decompress and compare cycle.
type Verification struct {
	Compressed   Result
	Decompressed Result
	Identical    bool
}

// Verify compresses src into dst, restores dst into restored, and compares
// restored against src byte for byte.
func Verify(codec *huffman.Codec, src, dst, restored string, overwrite bool) (Verification, error) {
	var v Verification
	var err error

	v.Compressed, err = CompressFile(codec, src, dst, overwrite)
	if err != nil {
		return v, err
	}

	v.Decompressed, err = DecompressFile(codec, dst, restored, overwrite)
	if err != nil {
		return v, err
	}

	v.Identical, err = CompareFiles(src, restored)
	return v, err
}
