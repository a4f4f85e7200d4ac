package huffman

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/icza/bitio"
)

func freqsOf(s string) Frequencies {
	var freqs Frequencies
	freqs.Add([]byte(s))
	return freqs
}

func sixSymbolFreqs() Frequencies {
	var freqs Frequencies
	for symbol, freq := range []uint64{5, 9, 12, 13, 16, 45} {
		freqs[symbol] = freq
	}
	return freqs
}

func allBytesFreqs() Frequencies {
	var freqs Frequencies
	for i := range freqs {
		freqs[i] = 1
	}
	return freqs
}

func randomFreqs(seed int64) Frequencies {
	rng := rand.New(rand.NewSource(seed))
	var freqs Frequencies
	for i := range freqs {
		if rng.Intn(4) != 0 {
			freqs[i] = uint64(rng.Intn(1000))
		}
	}
	return freqs
}

func serialize(t *testing.T, tree *Tree) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	if err := tree.Serialize(w); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	return buf.Bytes()
}

func bitReader(p []byte) *bitio.Reader {
	return bitio.NewReader(bytes.NewReader(p))
}

type failingByteWriter struct {
	err error
}

func (w failingByteWriter) WriteByte(byte) error {
	return w.err
}

type failingBitWriter struct {
	err error
}

func (w failingBitWriter) WriteBits(uint64, uint8) error {
	return w.err
}

func (w failingBitWriter) WriteBool(bool) error {
	return w.err
}
