package huffman

import (
	"github.com/pkg/errors"
)

// Serialize writes the Tree to w in pre-order.  An internal node is a 1 bit
// followed by its left and right subtrees; a leaf is a 0 bit followed by its
// symbol in SymbolBits bits.  The format needs no length prefix.
func (t *Tree) Serialize(w BitWriter) error {
	return errors.Wrap(serializeNode(w, t.root), "failed to write Huffman tree")
}

func serializeNode(w BitWriter, n *Node) error {
	if n.IsLeaf() {
		if err := w.WriteBool(false); err != nil {
			return err
		}
		return w.WriteBits(uint64(n.symbol), SymbolBits)
	}
	if err := w.WriteBool(true); err != nil {
		return err
	}
	if err := serializeNode(w, n.left); err != nil {
		return err
	}
	return serializeNode(w, n.right)
}

// ReadTree reads a Tree in the format written by Serialize.  It consumes
// exactly the bits of the tree and nothing more.
func ReadTree(r BitReader) (*Tree, error) {
	d := treeReader{r: r}
	root, err := d.readNode(0)
	if err != nil {
		return nil, err
	}
	if root.IsLeaf() {
		return nil, errors.Wrapf(ErrDegenerateTree, "root is a leaf for symbol %v", root.symbol)
	}
	if !d.seen[EOF] {
		return nil, ErrMissingEOF
	}
	return &Tree{root: root, leaves: d.leaves}, nil
}

type treeReader struct {
	r      BitReader
	seen   [NumSymbols]bool
	leaves int
}

func (d *treeReader) readNode(depth int) (*Node, error) {
	if depth > MaxCodeSize {
		return nil, errors.Wrapf(ErrTooDeep, "depth %d > %d", depth, MaxCodeSize)
	}

	internal, err := d.r.ReadBool()
	if err != nil {
		return nil, readFailure(err, "failed to read Huffman tree node")
	}

	if !internal {
		u, err := d.r.ReadBits(SymbolBits)
		if err != nil {
			return nil, readFailure(err, "failed to read Huffman tree leaf")
		}
		symbol := Symbol(u)
		if !symbol.IsValid() {
			return nil, errors.Wrapf(ErrInvalidSymbol, "leaf symbol %d > %d", u, MaxSymbol)
		}
		if d.seen[symbol] {
			return nil, errors.Wrapf(ErrDuplicateSymbol, "symbol %v", symbol)
		}
		d.seen[symbol] = true
		d.leaves++
		return newLeaf(symbol), nil
	}

	left, err := d.readNode(depth + 1)
	if err != nil {
		return nil, err
	}
	right, err := d.readNode(depth + 1)
	if err != nil {
		return nil, err
	}
	return newInternal(left, right), nil
}

// SerializedSize returns the number of bits Serialize writes for this Tree.
func (t *Tree) SerializedSize() int64 {
	leaves := int64(t.leaves)
	return (leaves - 1) + leaves*(1+SymbolBits)
}
