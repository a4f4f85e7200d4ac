package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/pkg/errors"
)

// Encoder turns a byte stream into a Huffman-coded bitstream.
type Encoder struct {
	codes      [NumSymbols]Code
	numSymbols int
	minSize    uint16
	maxSize    uint16
}

// NewEncoder builds the code table for the given Tree.
func NewEncoder(t *Tree) *Encoder {
	e := &Encoder{}
	e.init(t.root)
	return e
}

// init walks the tree once and records the path to every leaf.
func (e *Encoder) init(root *Node) {
	// We use a stack to walk the tree, with stackItem.x keeping track of
	// where we are at each node:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children
	//
	// Leaves never get pushed onto the stack, only internal nodes.

	type stackItem struct {
		n    *Node
		code Code
		x    byte
	}

	stack := make([]stackItem, 0, 16)
	var hasMinMax bool

	processChild := func(child *Node, code Code) {
		if !child.IsLeaf() {
			stack = append(stack, stackItem{n: child, code: code})
			return
		}

		symbol := child.symbol
		assert.Assertf(symbol.IsValid(), "leaf has invalid symbol %d", symbol)
		assert.Assertf(e.codes[symbol].Size == 0, "symbol %v appears twice", symbol)
		e.codes[symbol] = code
		e.numSymbols++

		size := code.Size
		if !hasMinMax {
			hasMinMax = true
			e.minSize = size
			e.maxSize = size
		} else if e.minSize > size {
			e.minSize = size
		} else if e.maxSize < size {
			e.maxSize = size
		}
	}

	stack = append(stack, stackItem{n: root})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		switch x {
		case 0:
			processChild(top.n.left, top.code.Append(false))
		case 1:
			processChild(top.n.right, top.code.Append(true))
		case 2:
			stack = stack[:len(stack)-1]
		}
	}
}

// Encode returns the Huffman code for a Symbol.  The second return value is
// false if the Symbol has no leaf in the tree.
func (e *Encoder) Encode(symbol Symbol) (Code, bool) {
	if !symbol.IsValid() {
		return Code{}, false
	}
	hc := e.codes[symbol]
	return hc, hc.Size != 0
}

// EncodeStream reads bytes from r until io.EOF and writes the code of each
// one to w, followed by the code for EOF.  It returns the number of bytes
// read from r.
//
// Any partial byte left in w is not padded here; that happens when the
// caller finalizes w.
//
func (e *Encoder) EncodeStream(w BitWriter, r io.ByteReader) (int64, error) {
	var n int64
	for {
		b, err := r.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return n, errors.Wrap(err, "failed to read input")
		}
		if err := e.put(w, Symbol(b)); err != nil {
			return n, err
		}
		n++
	}
	return n, e.put(w, EOF)
}

func (e *Encoder) put(w BitWriter, symbol Symbol) error {
	hc, ok := e.Encode(symbol)
	if !ok {
		return errors.Wrapf(ErrNoCode, "symbol %v", symbol)
	}
	return errors.Wrap(hc.WriteBits(w), "failed to write Huffman code")
}

// NumSymbols returns the number of symbols with a code, including EOF.
func (e *Encoder) NumSymbols() int {
	return e.numSymbols
}

// MinSize is the bit length of the shortest code.
func (e *Encoder) MinSize() uint16 {
	return e.minSize
}

// MaxSize is the bit length of the longest code.
func (e *Encoder) MaxSize() uint16 {
	return e.maxSize
}

// SizeBySymbol returns an array containing the bit length for each Symbol in
// the alphabet, or 0 for symbols without a code.
func (e *Encoder) SizeBySymbol() []uint16 {
	out := make([]uint16, NumSymbols)
	for symbol := range e.codes {
		out[symbol] = e.codes[symbol].Size
	}
	return out
}

// EncodedSize returns the number of bits that EncodeStream would produce for
// an input with the given frequencies, including the EOF code.
func (e *Encoder) EncodedSize(freqs Frequencies) uint64 {
	sum := uint64(e.codes[EOF].Size)
	for symbol, count := range freqs {
		sum += count * uint64(e.codes[symbol].Size)
	}
	return sum
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.  Symbols without a code are omitted.
func (e *Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.maxSize)
	for symbol := range e.codes {
		hc := e.codes[symbol]
		if hc.Size != 0 {
			fmt.Fprintf(&buf, "\tEncode(%v) = %s\n", Symbol(symbol), hc)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// DebugString returns the output of Dump as a string.
func (e *Encoder) DebugString() string {
	var buf bytes.Buffer
	_, _ = e.Dump(&buf)
	return buf.String()
}

// String returns a brief description of this Encoder.
func (e *Encoder) String() string {
	return fmt.Sprintf("(Huffman encoder with %d symbols, with coded lengths of %d .. %d bits)", e.numSymbols, e.minSize, e.maxSize)
}

var _ fmt.Stringer = (*Encoder)(nil)
var _ fmt.Stringer = Code{}
