package huffman

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Node is a node of a Huffman tree.  A leaf carries a byte value and its
// occurrence count; an internal node carries InvalidSymbol and the sum of
// its children's weights.  Each node is owned by its parent.
type Node struct {
	Weight uint64
	Symbol Symbol
	Left   *Node
	Right  *Node
}

// IsLeaf returns true iff the node has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// BuildTree builds the Huffman tree for the given frequencies.
//
// Leaves are seeded in ascending byte order.  The two lightest nodes are then
// merged repeatedly, the first one extracted becoming the left child, until
// a single root remains.  An alphabet of one distinct symbol yields a tree
// that is a single leaf.  An alphabet of zero symbols is an error.
//
func BuildTree(ft *FrequencyTable) (*Node, error) {
	if ft.Distinct() == 0 {
		return nil, ErrEmptyAlphabet
	}

	q := NewPriorityQueue(MaxQueueNodes)
	for symbol := Symbol(0); symbol <= MaxSymbol; symbol++ {
		count := ft.Count(byte(symbol))
		if count == 0 {
			continue
		}
		err := q.Insert(&Node{Weight: uint64(count), Symbol: symbol})
		assert.Assertf(err == nil, "inserting leaf %d: %v", symbol, err)
	}

	for q.Len() > 1 {
		a, _ := q.ExtractMin()
		b, _ := q.ExtractMin()
		err := q.Insert(&Node{
			Weight: a.Weight + b.Weight,
			Symbol: InvalidSymbol,
			Left:   a,
			Right:  b,
		})
		assert.Assertf(err == nil, "inserting merge node of weight %d: %v", a.Weight+b.Weight, err)
	}

	root, _ := q.ExtractMin()
	return root, nil
}

// Depth returns the number of edges on the longest root-to-leaf path.
func (n *Node) Depth() int {
	if n == nil || n.IsLeaf() {
		return 0
	}
	l, r := n.Left.Depth(), n.Right.Depth()
	if l > r {
		return l + 1
	}
	return r + 1
}

// Leaves returns the number of leaves in the tree.
func (n *Node) Leaves() int {
	if n == nil {
		return 0
	}
	if n.IsLeaf() {
		return 1
	}
	return n.Left.Leaves() + n.Right.Leaves()
}

// Dump writes a programmer-readable debugging dump of the tree to the given
// writer, one node per line, indented by depth.
func (n *Node) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	n.dump(&buf, 0, "")
	return buf.WriteTo(w)
}

func (n *Node) dump(buf *bytes.Buffer, depth int, edge string) {
	if n == nil {
		return
	}
	buf.WriteString(strings.Repeat("\t", depth))
	buf.WriteString(edge)
	if n.IsLeaf() {
		fmt.Fprintf(buf, "Leaf{%d, %d}\n", n.Symbol, n.Weight)
		return
	}
	fmt.Fprintf(buf, "Node{%d}\n", n.Weight)
	n.Left.dump(buf, depth+1, "0: ")
	n.Right.dump(buf, depth+1, "1: ")
}
