package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// Encoder turns bytes into Huffman codes for one frequency table.
type Encoder struct {
	table *CodeTable
	depth int
}

// Init initializes this Encoder from the frequencies of the input it will
// encode.  Every byte later passed to Encode or Write must have a nonzero
// count in ft.  A table with no symbols leaves the Encoder empty; it can then
// encode only empty input.
//
func (e *Encoder) Init(ft *FrequencyTable) {
	if ft.Distinct() == 0 {
		*e = Encoder{table: NewCodeTable(nil)}
		return
	}
	root, err := BuildTree(ft)
	assert.Assertf(err == nil, "BuildTree: %v", err)
	*e = Encoder{table: NewCodeTable(root), depth: root.Depth()}
}

// Encode encodes a byte into a Huffman-coded bit string.  The zero Code is
// returned for a byte that had no occurrences.
func (e Encoder) Encode(b byte) Code {
	hc, _ := e.table.Lookup(b)
	return hc
}

// Write encodes data through bw, in input order.
func (e Encoder) Write(bw *BitWriter, data []byte) error {
	for i, b := range data {
		hc, ok := e.table.Lookup(b)
		if !ok {
			return fmt.Errorf("byte %#02x at index %d has no code", b, i)
		}
		if err := bw.WriteCode(hc); err != nil {
			return err
		}
	}
	return nil
}

// Table returns the code table in use.
func (e Encoder) Table() *CodeTable {
	return e.table
}

// Depth is the depth of the tree the codes were read from.  It is 0 for a
// tree that is a single leaf, even though that leaf's code is 1 bit long.
func (e Encoder) Depth() int {
	return e.depth
}

// SizeBySymbol returns an array containing the bit length for each byte
// value.
func (e Encoder) SizeBySymbol() []byte {
	out := make([]byte, NumSymbols)
	for symbol := 0; symbol < NumSymbols; symbol++ {
		hc, _ := e.table.Lookup(byte(symbol))
		out[symbol] = hc.Size
	}
	return out
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.table.MinSize())
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.table.MaxSize())
	for symbol := 0; symbol < NumSymbols; symbol++ {
		if hc, ok := e.table.Lookup(byte(symbol)); ok {
			fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, hc)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
