package huffman

import (
	"strings"

	"github.com/chronos-tachyon/assert"
)

const (
	// MaxCodeSize is the longest possible code, in bits.  A tree with
	// NumSymbols leaves is at most NumSymbols-1 levels deep.
	MaxCodeSize = NumSymbols - 1

	codeWords = (MaxCodeSize + 63) / 64
)

// Code represents a sequence of bits: the path from the root of a Tree to one
// of its leaves, where 0 means "go left" and 1 means "go right".
type Code struct {
	// Size holds the number of valid bits.
	Size uint16

	// Bits holds the actual values of the bits, 64 per word.  Within a
	// word, bits are right-aligned and the most significant valid bit is
	// the first bit.  Only the last word may be partially filled.
	Bits [codeWords]uint64
}

// MakeCode is a convenience function that constructs a Code of up to 64 bits.
// The most significant of the size low-order bits is the first bit.
func MakeCode(size uint16, bits uint64) Code {
	assert.Assertf(size <= 64, "size %d > 64", size)
	return Code{Size: size, Bits: [codeWords]uint64{bits}}
}

// Append returns the Code that is this Code followed by one more bit.
func (hc Code) Append(bit bool) Code {
	assert.Assertf(int(hc.Size) < MaxCodeSize, "code size %d would exceed MaxCodeSize %d", hc.Size+1, MaxCodeSize)
	word := hc.Size / 64
	hc.Bits[word] <<= 1
	if bit {
		hc.Bits[word] |= 1
	}
	hc.Size++
	return hc
}

// Bit returns the i'th bit of this Code.
func (hc Code) Bit(i uint16) bool {
	assert.Assertf(i < hc.Size, "bit index %d out of range [0, %d)", i, hc.Size)
	word, offset := i/64, i%64
	width := hc.wordSize(word)
	return (hc.Bits[word]>>(width-1-offset))&1 != 0
}

// HasPrefix returns true iff prefix is a prefix of this Code.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	for i := uint16(0); i < prefix.Size; i++ {
		if hc.Bit(i) != prefix.Bit(i) {
			return false
		}
	}
	return true
}

// WriteBits writes the bits of this Code to the given BitWriter, first bit
// first.
func (hc Code) WriteBits(w BitWriter) error {
	for word := uint16(0); word*64 < hc.Size; word++ {
		if err := w.WriteBits(hc.Bits[word], uint8(hc.wordSize(word))); err != nil {
			return err
		}
	}
	return nil
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	var buf strings.Builder
	buf.Grow(int(hc.Size) + 2)
	buf.WriteByte('"')
	for i := uint16(0); i < hc.Size; i++ {
		if hc.Bit(i) {
			buf.WriteByte('1')
		} else {
			buf.WriteByte('0')
		}
	}
	buf.WriteByte('"')
	return buf.String()
}

func (hc Code) wordSize(word uint16) uint16 {
	if remain := hc.Size - word*64; remain < 64 {
		return remain
	}
	return 64
}

func compareCodes(a, b Code) int {
	if a.Size != b.Size {
		if a.Size < b.Size {
			return -1
		}
		return 1
	}
	for word := range a.Bits {
		if a.Bits[word] != b.Bits[word] {
			if a.Bits[word] < b.Bits[word] {
				return -1
			}
			return 1
		}
	}
	return 0
}
