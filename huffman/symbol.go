package huffman

import (
	"strconv"
)

// Symbol represents a symbol in the extended byte alphabet.  Values 0 through
// 255 are literal bytes; EOF marks the end of an encoded stream.
type Symbol int32

const (
	// EOF is the synthetic end-of-stream symbol.  It never appears in
	// decoded output.
	EOF = Symbol(256)

	// MaxSymbol is the maximum valid symbol.
	MaxSymbol = EOF

	// NumSymbols is the size of the alphabet.
	NumSymbols = int(MaxSymbol) + 1

	// SymbolBits is the width of a symbol when it is written as a leaf
	// payload.  256 does not fit in a byte.
	SymbolBits = 9
)

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)

// IsValid returns true iff this Symbol lies in [0, MaxSymbol].
func (s Symbol) IsValid() bool {
	return s >= 0 && s <= MaxSymbol
}

// String returns the string representation of this Symbol.
func (s Symbol) String() string {
	if s == EOF {
		return "EOF"
	}
	return strconv.FormatInt(int64(s), 10)
}
