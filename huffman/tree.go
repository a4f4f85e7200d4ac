package huffman

import (
	"bytes"
	"container/heap"
	"io"
	"math"

	"github.com/chronos-tachyon/assert"
)

// Node is a node of a Tree.  A leaf carries a Symbol and has no children; an
// internal node has exactly two children and no Symbol.
type Node struct {
	symbol Symbol
	left   *Node
	right  *Node
}

func newLeaf(symbol Symbol) *Node {
	return &Node{symbol: symbol}
}

func newInternal(left *Node, right *Node) *Node {
	assert.Assertf(left != nil && right != nil, "internal node must have two children")
	return &Node{symbol: InvalidSymbol, left: left, right: right}
}

// IsLeaf returns true iff this node is a leaf.
func (n *Node) IsLeaf() bool {
	return n.left == nil
}

// Symbol returns the symbol of a leaf, or InvalidSymbol for an internal node.
func (n *Node) Symbol() Symbol {
	return n.symbol
}

// Left returns the child reached by a 0 bit, or nil for a leaf.
func (n *Node) Left() *Node {
	return n.left
}

// Right returns the child reached by a 1 bit, or nil for a leaf.
func (n *Node) Right() *Node {
	return n.right
}

// Tree is a Huffman code tree.  Its root is always an internal node, so every
// leaf has a code of at least one bit.  A Tree is read-only once constructed.
type Tree struct {
	root   *Node
	leaves int
}

// Build constructs the Tree for the given byte frequencies, plus one
// occurrence of EOF.
//
// The two least frequent nodes are repeatedly merged, the first becoming the
// left child.  Ties go to leaves in symbol order, then to internal nodes in
// order of creation, so the result depends only on freqs.
//
// If EOF is the only symbol, i.e. the input was empty, the root has EOF on
// its left and a filler leaf for symbol 0 on its right.
//
func Build(freqs Frequencies) *Tree {
	entries := make([]heapEntry, 0, NumSymbols)
	for symbol, freq := range freqs {
		if freq != 0 {
			entries = append(entries, heapEntry{newLeaf(Symbol(symbol)), freq, uint32(symbol)})
		}
	}
	entries = append(entries, heapEntry{newLeaf(EOF), 1, uint32(EOF)})
	numLeaves := len(entries)

	if numLeaves == 1 {
		return &Tree{root: newInternal(entries[0].node, newLeaf(0)), leaves: 2}
	}

	h := freqHeap{entries}
	h.Init()

	nextSeq := uint32(NumSymbols)
	for h.Len() > 1 {
		a := heap.Pop(&h).(heapEntry)
		b := heap.Pop(&h).(heapEntry)

		// Compute freqSum using saturating addition
		freqSum := a.freq + b.freq
		if freqSum < a.freq {
			freqSum = math.MaxUint64
		}

		heap.Push(&h, heapEntry{newInternal(a.node, b.node), freqSum, nextSeq})
		nextSeq++
	}

	root := heap.Pop(&h).(heapEntry).node
	assert.Assertf(!root.IsLeaf(), "root of a tree with %d leaves is a leaf", numLeaves)
	return &Tree{root: root, leaves: numLeaves}
}

// Root returns the root node.
func (t *Tree) Root() *Node {
	return t.root
}

// NumLeaves returns the number of leaves, i.e. the number of symbols with a
// code.
func (t *Tree) NumLeaves() int {
	return t.leaves
}

// Equal returns true iff both trees have the same shape and the same symbol
// at every leaf.
func (t *Tree) Equal(other *Tree) bool {
	return equalNodes(t.root, other.root)
}

func equalNodes(a *Node, b *Node) bool {
	if a.IsLeaf() || b.IsLeaf() {
		return a.IsLeaf() && b.IsLeaf() && a.symbol == b.symbol
	}
	return equalNodes(a.left, b.left) && equalNodes(a.right, b.right)
}

// String returns the tree as a nested list, left child first, e.g.
// "(65 (66 EOF))".
func (t *Tree) String() string {
	var buf bytes.Buffer
	appendNode(&buf, t.root)
	return buf.String()
}

// Dump writes a programmer-readable debugging dump of the Tree to the given
// writer.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	dumpNode(&buf, t.root, 1)
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func appendNode(buf *bytes.Buffer, n *Node) {
	if n.IsLeaf() {
		buf.WriteString(n.symbol.String())
		return
	}
	buf.WriteByte('(')
	appendNode(buf, n.left)
	buf.WriteByte(' ')
	appendNode(buf, n.right)
	buf.WriteByte(')')
}

func dumpNode(buf *bytes.Buffer, n *Node, depth int) {
	for i := 0; i < depth; i++ {
		buf.WriteByte('\t')
	}
	if n.IsLeaf() {
		buf.WriteString(n.symbol.String())
		buf.WriteByte('\n')
		return
	}
	buf.WriteString("*\n")
	dumpNode(buf, n.left, depth+1)
	dumpNode(buf, n.right, depth+1)
}
