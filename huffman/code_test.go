package huffman

import (
	"bytes"
	"testing"

	"github.com/icza/bitio"
)

func TestCode_String(t *testing.T) {
	type testRow struct {
		code   Code
		expect string
	}

	testData := [...]testRow{
		{code: Code{}, expect: `""`},
		{code: MakeCode(1, 0x0), expect: `"0"`},
		{code: MakeCode(1, 0x1), expect: `"1"`},
		{code: MakeCode(4, 0x6), expect: `"0110"`},
		{code: MakeCode(5, 0x18), expect: `"11000"`},
	}
	for _, row := range testData {
		t.Run(row.expect, func(t *testing.T) {
			actual := row.code.String()
			if row.expect != actual {
				t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", row.expect, actual)
			}
		})
	}
}

func TestCode_Append(t *testing.T) {
	var hc Code
	hc = hc.Append(true)
	hc = hc.Append(false)
	hc = hc.Append(true)
	hc = hc.Append(true)
	expect := MakeCode(4, 0xb)
	if hc != expect {
		t.Errorf("wrong code:\n\texpect: %s\n\tactual: %s", expect, hc)
	}
}

func TestCode_LongCode(t *testing.T) {
	// 70 bits: a 1, then 68 zeros, then a 1.  Crosses a word boundary.
	var hc Code
	hc = hc.Append(true)
	for i := 0; i < 68; i++ {
		hc = hc.Append(false)
	}
	hc = hc.Append(true)

	if hc.Size != 70 {
		t.Fatalf("expected size 70, got %d", hc.Size)
	}
	for i := uint16(0); i < hc.Size; i++ {
		expect := i == 0 || i == 69
		if actual := hc.Bit(i); expect != actual {
			t.Errorf("bit %d: expected %v, got %v", i, expect, actual)
		}
	}

	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	if err := hc.WriteBits(w); err != nil {
		t.Fatalf("WriteBits failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	expectBytes := []byte{0x80, 0, 0, 0, 0, 0, 0, 0, 0x04}
	if actualBytes := buf.Bytes(); !bytes.Equal(expectBytes, actualBytes) {
		t.Errorf("wrong bytes:\n\texpect: %#v\n\tactual: %#v", expectBytes, actualBytes)
	}
}

func TestCode_HasPrefix(t *testing.T) {
	type testRow struct {
		code   Code
		prefix Code
		expect bool
	}

	testData := [...]testRow{
		{code: MakeCode(3, 0x5), prefix: Code{}, expect: true},
		{code: MakeCode(3, 0x5), prefix: MakeCode(1, 0x1), expect: true},
		{code: MakeCode(3, 0x5), prefix: MakeCode(2, 0x2), expect: true},
		{code: MakeCode(3, 0x5), prefix: MakeCode(3, 0x5), expect: true},
		{code: MakeCode(3, 0x5), prefix: MakeCode(2, 0x3), expect: false},
		{code: MakeCode(3, 0x5), prefix: MakeCode(4, 0xa), expect: false},
	}
	for _, row := range testData {
		t.Run(row.code.String()+"/"+row.prefix.String(), func(t *testing.T) {
			if actual := row.code.HasPrefix(row.prefix); row.expect != actual {
				t.Errorf("expected %v, got %v", row.expect, actual)
			}
		})
	}
}

func TestCode_MaxCodeSize(t *testing.T) {
	var hc Code
	for i := 0; i < MaxCodeSize; i++ {
		hc = hc.Append(i%2 == 0)
	}
	if int(hc.Size) != MaxCodeSize {
		t.Fatalf("expected size %d, got %d", MaxCodeSize, hc.Size)
	}
	if !hc.Bit(uint16(MaxCodeSize-2)) || hc.Bit(uint16(MaxCodeSize-1)) {
		t.Errorf("wrong trailing bits: %s", hc)
	}

	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	if err := hc.WriteBits(w); err != nil {
		t.Fatalf("WriteBits failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	expectBytes := bytes.Repeat([]byte{0xaa}, MaxCodeSize/8)
	if actualBytes := buf.Bytes(); !bytes.Equal(expectBytes, actualBytes) {
		t.Errorf("wrong bytes:\n\texpect: %#v\n\tactual: %#v", expectBytes, actualBytes)
	}
}
