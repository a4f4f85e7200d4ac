package huffman

import (
	"io"

	"github.com/pkg/errors"
)

const readBufferSize = 0x20000

// Frequencies holds the number of occurrences of each byte value.  A count of
// zero means the byte does not occur.  EOF is never counted here; Build adds
// it on its own.
type Frequencies [256]uint64

// CountFrequencies reads r until io.EOF and counts every byte it sees.
func CountFrequencies(r io.Reader) (Frequencies, error) {
	var freqs Frequencies
	buf := make([]byte, readBufferSize)
	for {
		n, err := r.Read(buf)
		freqs.Add(buf[:n])
		if err == io.EOF {
			return freqs, nil
		}
		if err != nil {
			return freqs, errors.Wrap(err, "failed to count byte frequencies")
		}
	}
}

// Add counts every byte in p.
func (freqs *Frequencies) Add(p []byte) {
	for _, b := range p {
		freqs[b]++
	}
}

// Distinct returns the number of byte values with a non-zero count.
func (freqs *Frequencies) Distinct() int {
	var n int
	for _, count := range freqs {
		if count != 0 {
			n++
		}
	}
	return n
}

// Total returns the sum of all counts, i.e. the length of the input.
func (freqs *Frequencies) Total() uint64 {
	var sum uint64
	for _, count := range freqs {
		sum += count
	}
	return sum
}
