package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// Decoder turns a bitstream back into bytes by walking the Huffman tree that
// a frequency table generates.
type Decoder struct {
	root *Node
}

// Init initializes this Decoder by rebuilding the tree for ft with the same
// algorithm the Encoder uses, so that both sides agree on every code without
// the codes ever being stored.  A table with no symbols fails with
// ErrEmptyAlphabet.
//
func (d *Decoder) Init(ft *FrequencyTable) error {
	root, err := BuildTree(ft)
	if err != nil {
		return err
	}
	*d = Decoder{root: root}
	return nil
}

// Decode reads one code from br and returns the byte it stands for.  A 0 bit
// moves to the left child and a 1 bit to the right child.
//
// If br runs out before a leaf is reached, Decode returns ErrTruncated.  If
// the tree is a single leaf, its code is "0" and a 1 bit is ErrInvalidCode.
//
func (d Decoder) Decode(br *BitReader) (byte, error) {
	assert.Assertf(d.root != nil, "Decoder used before Init")

	node := d.root
	if node.IsLeaf() {
		bit, err := br.ReadBit()
		if err != nil {
			return 0, decodeError(err)
		}
		if bit {
			return 0, ErrInvalidCode
		}
		return byte(node.Symbol), nil
	}

	for !node.IsLeaf() {
		bit, err := br.ReadBit()
		if err != nil {
			return 0, decodeError(err)
		}
		if bit {
			node = node.Right
		} else {
			node = node.Left
		}
	}
	return byte(node.Symbol), nil
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.
func (d Decoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	if d.root != nil {
		fmt.Fprintf(&buf, "\tLeaves() = %d\n", d.root.Leaves())
		fmt.Fprintf(&buf, "\tDepth() = %d\n", d.root.Depth())
		_, _ = d.root.Dump(&buf)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func decodeError(err error) error {
	if err == io.EOF {
		return ErrTruncated
	}
	return err
}
