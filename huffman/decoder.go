package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/pkg/errors"
)

// Decoder turns a Huffman-coded bitstream back into bytes.
type Decoder struct {
	root *Node
}

// NewDecoder returns a Decoder that walks the given Tree.
func NewDecoder(t *Tree) *Decoder {
	return &Decoder{root: t.root}
}

// Decode reads one code from r and returns its Symbol.  Starting at the root,
// each bit selects the left (0) or right (1) child until a leaf is reached.
//
// If r runs out of bits before a leaf is reached, Decode returns
// InvalidSymbol and an error matching ErrTruncated.
//
func (d *Decoder) Decode(r BitReader) (Symbol, error) {
	n := d.root
	for !n.IsLeaf() {
		bit, err := r.ReadBool()
		if err != nil {
			return InvalidSymbol, readFailure(err, "failed to read Huffman code")
		}
		if bit {
			n = n.right
		} else {
			n = n.left
		}
	}
	return n.symbol, nil
}

// DecodeStream decodes symbols from r and writes them to w as bytes until it
// decodes EOF, which is not written.  It returns the number of bytes written.
//
// Bits after the EOF code, such as padding, are left unread.
//
func (d *Decoder) DecodeStream(w io.ByteWriter, r BitReader) (int64, error) {
	var n int64
	for {
		symbol, err := d.Decode(r)
		if err != nil {
			return n, errors.Wrapf(err, "after %d bytes", n)
		}
		if symbol == EOF {
			return n, nil
		}
		if err := w.WriteByte(byte(symbol)); err != nil {
			return n, errors.Wrap(err, "failed to write output")
		}
		n++
	}
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer, one line per leaf in code order.
func (d *Decoder) Dump(w io.Writer) (int64, error) {
	e := Encoder{}
	e.init(d.root)

	keys := make(byCode, 0, e.numSymbols)
	symbols := make(map[Code]Symbol, e.numSymbols)
	for symbol := range e.codes {
		if hc := e.codes[symbol]; hc.Size != 0 {
			keys = append(keys, hc)
			symbols[hc] = Symbol(symbol)
		}
	}
	keys.Sort()

	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.maxSize)
	for _, hc := range keys {
		fmt.Fprintf(&buf, "\tDecode(%s) = %v\n", hc, symbols[hc])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// DebugString returns the output of Dump as a string.
func (d *Decoder) DebugString() string {
	var buf bytes.Buffer
	_, _ = d.Dump(&buf)
	return buf.String()
}

// type byCode {{{

type byCode []Code

func (list byCode) Sort() {
	sort.Sort(list)
}

func (list byCode) Len() int {
	return len(list)
}

func (list byCode) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCode) Less(i, j int) bool {
	return compareCodes(list[i], list[j]) < 0
}

var _ sort.Interface = byCode(nil)

// }}}
