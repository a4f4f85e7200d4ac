package huffman

import (
	"github.com/pkg/errors"
)

var (
	// ErrTruncated is returned when a bit source is exhausted in the middle
	// of a tree or before the EOF symbol has been decoded.
	ErrTruncated = errors.New("huffman: truncated input")

	// ErrInvalidSymbol is returned when a serialized leaf carries a value
	// outside [0, MaxSymbol].
	ErrInvalidSymbol = errors.New("huffman: invalid symbol")

	// ErrDuplicateSymbol is returned when a serialized tree has two leaves
	// for the same symbol.
	ErrDuplicateSymbol = errors.New("huffman: duplicate symbol")

	// ErrDegenerateTree is returned when a serialized tree consists of a
	// single leaf, which would give that leaf a zero-length code.
	ErrDegenerateTree = errors.New("huffman: degenerate tree")

	// ErrMissingEOF is returned when a serialized tree has no leaf for EOF.
	ErrMissingEOF = errors.New("huffman: tree has no EOF symbol")

	// ErrTooDeep is returned when a serialized tree nests deeper than
	// MaxCodeSize.
	ErrTooDeep = errors.New("huffman: tree too deep")

	// ErrNoCode is returned by Encoder when asked to encode a symbol that
	// has no leaf in its tree.
	ErrNoCode = errors.New("huffman: no code for symbol")
)
