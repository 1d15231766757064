package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// CodeTable maps each byte value to its Huffman code.  Only byte values that
// appear in the tree have a code; the others have a zero-sized Code.
type CodeTable struct {
	codes   [NumSymbols]Code
	numCode int
	minSize byte
	maxSize byte
}

// NewCodeTable reads the codes off the leaves of the tree rooted at root:
// an edge to the left child appends a 0 bit, an edge to the right child
// appends a 1 bit.  A root that is itself a leaf receives the 1-bit code "0",
// since an empty code could not be decoded.  A nil root yields an empty table.
//
func NewCodeTable(root *Node) *CodeTable {
	ct := &CodeTable{}
	if root == nil {
		return ct
	}
	if root.IsLeaf() {
		ct.set(root.Symbol, MakeCode(1, 0))
		return ct
	}

	// Walk the tree with an explicit stack.  stackItem.x keeps track of
	// where we are at each internal node:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children

	type stackItem struct {
		node *Node
		code Code
		x    byte
	}

	stack := make([]stackItem, 0, 16)

	processChild := func(child *Node, code Code) {
		assert.Assertf(code.Size <= maxBitsPerCode, "code size %d > max %d", code.Size, maxBitsPerCode)
		if child.IsLeaf() {
			ct.set(child.Symbol, code)
			return
		}
		stack = append(stack, stackItem{node: child, code: code})
	}

	stack = append(stack, stackItem{node: root})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		switch x {
		case 0:
			processChild(top.node.Left, top.code.Append(false))
		case 1:
			processChild(top.node.Right, top.code.Append(true))
		case 2:
			stack = stack[:len(stack)-1]
		}
	}
	return ct
}

func (ct *CodeTable) set(symbol Symbol, hc Code) {
	assert.Assertf(symbol.IsValid(), "leaf carries invalid symbol %d", symbol)
	if ct.numCode == 0 {
		ct.minSize = hc.Size
		ct.maxSize = hc.Size
	} else if ct.minSize > hc.Size {
		ct.minSize = hc.Size
	} else if ct.maxSize < hc.Size {
		ct.maxSize = hc.Size
	}
	ct.codes[symbol] = hc
	ct.numCode++
}

// Lookup returns the code for b.  The second return value is false if b has
// no code.
func (ct *CodeTable) Lookup(b byte) (Code, bool) {
	hc := ct.codes[b]
	return hc, hc.Size != 0
}

// Len returns the number of byte values that have a code.
func (ct *CodeTable) Len() int {
	return ct.numCode
}

// MinSize is the bit length of the shortest code.
func (ct *CodeTable) MinSize() byte {
	return ct.minSize
}

// MaxSize is the bit length of the longest code.
func (ct *CodeTable) MaxSize() byte {
	return ct.maxSize
}

// WeightedLength returns the number of bits needed to encode an input with
// the given frequencies, i.e. the sum of count × code size over all symbols.
func (ct *CodeTable) WeightedLength(ft *FrequencyTable) uint64 {
	var sum uint64
	for symbol := 0; symbol < NumSymbols; symbol++ {
		sum += uint64(ft.Count(byte(symbol))) * uint64(ct.codes[symbol].Size)
	}
	return sum
}

// IsPrefixFree returns true iff no code in the table is a prefix of another.
func (ct *CodeTable) IsPrefixFree() bool {
	for i := 0; i < NumSymbols; i++ {
		a := ct.codes[i]
		if a.Size == 0 {
			continue
		}
		for j := 0; j < NumSymbols; j++ {
			b := ct.codes[j]
			if i == j || b.Size == 0 {
				continue
			}
			if b.HasPrefix(a) {
				return false
			}
		}
	}
	return true
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer.  Byte values without a code are omitted.
func (ct *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ct.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.maxSize)
	for symbol := 0; symbol < NumSymbols; symbol++ {
		if hc := ct.codes[symbol]; hc.Size != 0 {
			fmt.Fprintf(&buf, "\tLookup(%d) = %s\n", symbol, hc)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
