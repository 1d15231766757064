package huffman

import (
	"errors"
	"fmt"
)

var (
	ErrCorruptContainer = errors.New("corrupt huffman container")
	ErrEmptyAlphabet    = errors.New("cannot build a Huffman tree with zero distinct symbols")
	ErrInputTooLarge    = errors.New("input exceeds the 4-byte symbol count of the container")
	ErrQueueFull        = errors.New("priority queue is at capacity")
)

// Reasons carried by a CorruptContainerError.
var (
	ErrShortHeader   = errors.New("container is shorter than its fixed-size header")
	ErrCountMismatch = errors.New("frequency table does not sum to the stated symbol count")
	ErrTruncated     = errors.New("bitstream ended before all symbols were decoded")
	ErrInvalidCode   = errors.New("bitstream contains a bit sequence that is not a valid code")
	ErrTrailingData  = errors.New("unexpected data after the end of the bitstream")
)

// IOError reports a failure of the byte source or sink.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("huffman: %s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// CorruptContainerError reports a container that cannot be decoded.  Offset
// is the byte offset within the container at which the problem was noticed.
// errors.Is(err, ErrCorruptContainer) holds for every CorruptContainerError.
type CorruptContainerError struct {
	Offset int64
	Err    error
}

func (e *CorruptContainerError) Error() string {
	return fmt.Sprintf("huffman: %v at offset %d: %v", ErrCorruptContainer, e.Offset, e.Err)
}

func (e *CorruptContainerError) Unwrap() error {
	return e.Err
}

func (e *CorruptContainerError) Is(target error) bool {
	return target == ErrCorruptContainer
}

func corrupt(offset int64, err error) error {
	return &CorruptContainerError{Offset: offset, Err: err}
}

func ioError(op string, err error) error {
	var ioe *IOError
	if errors.As(err, &ioe) {
		return err
	}
	return &IOError{Op: op, Err: err}
}

var (
	_ error = (*IOError)(nil)
	_ error = (*CorruptContainerError)(nil)
)
