package grin

import (
	"bufio"
	"bytes"
	"io"

	"github.com/icza/bitio"
	"github.com/pkg/errors"

	"github.com/chronos-tachyon/grin/huffman"
)

// Magic is the first 32 bits of every .grin file, most significant byte
// first.
const Magic = 0x736

const (
	magicBits  = 32
	bufferSize = 0x10000
)

// Stats describes one Encode or Decode operation.
type Stats struct {
	// InputBytes is the number of bytes read from the source.
	InputBytes int64

	// OutputBytes is the number of bytes written to the destination.
	OutputBytes int64

	// Symbols is the number of leaves in the Huffman tree, EOF included.
	Symbols int

	// TreeBits is the size of the serialized tree.
	TreeBits int64
}

// Ratio returns OutputBytes / InputBytes, or 0 if nothing was read.
func (s Stats) Ratio() float64 {
	if s.InputBytes == 0 {
		return 0
	}
	return float64(s.OutputBytes) / float64(s.InputBytes)
}

// Encode compresses everything in r and writes a .grin file to w.  The input
// is read twice: once to count byte frequencies, and again, after seeking
// back to the start, to encode it.
func Encode(w io.Writer, r io.ReadSeeker) (Stats, error) {
	freqs, err := huffman.CountFrequencies(r)
	if err != nil {
		return Stats{}, err
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return Stats{}, errors.Wrap(err, "failed to rewind input")
	}
	return encode(w, bufio.NewReaderSize(r, bufferSize), freqs)
}

// Compress returns the .grin encoding of data.
func Compress(data []byte) ([]byte, error) {
	var freqs huffman.Frequencies
	freqs.Add(data)

	var buf bytes.Buffer
	if _, err := encode(&buf, bytes.NewReader(data), freqs); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encode(w io.Writer, r io.ByteReader, freqs huffman.Frequencies) (Stats, error) {
	tree := huffman.Build(freqs)
	enc := huffman.NewEncoder(tree)

	stats := Stats{
		Symbols:  tree.NumLeaves(),
		TreeBits: tree.SerializedSize(),
	}

	cw := &countingWriter{w: w}
	bw := bufio.NewWriterSize(cw, bufferSize)
	out := bitio.NewWriter(bw)

	if err := out.WriteBits(Magic, magicBits); err != nil {
		return stats, errors.Wrap(err, "failed to write magic number")
	}
	if err := tree.Serialize(out); err != nil {
		return stats, err
	}

	n, err := enc.EncodeStream(out, r)
	stats.InputBytes = n
	if err != nil {
		return stats, err
	}

	if err := out.Close(); err != nil {
		return stats, errors.Wrap(err, "failed to pad final byte")
	}
	if err := bw.Flush(); err != nil {
		return stats, errors.Wrap(err, "failed to flush output")
	}
	stats.OutputBytes = cw.n
	return stats, nil
}

// Decode reads a .grin file from r and writes the decompressed bytes to w.
// If r does not start with Magic, Decode returns ErrBadMagic without writing
// anything.
func Decode(w io.Writer, r io.Reader) (Stats, error) {
	rd, err := newReader(r)
	if err != nil {
		return Stats{}, err
	}
	return rd.decodeTo(w)
}

// Decompress returns the decoding of the .grin data in p.
func Decompress(p []byte) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := Decode(&buf, bytes.NewReader(p)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// reader is a .grin file whose header has been read and validated.
type reader struct {
	cr   *countingReader
	in   *bitio.Reader
	tree *huffman.Tree
}

func newReader(r io.Reader) (*reader, error) {
	cr := &countingReader{r: r}
	in := bitio.NewReader(bufio.NewReaderSize(cr, bufferSize))

	magic, err := in.ReadBits(magicBits)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return nil, errors.Wrap(ErrBadMagic, "input shorter than the magic number")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read magic number")
	}
	if magic != Magic {
		return nil, errors.Wrapf(ErrBadMagic, "magic number %#08x, expected %#08x", magic, Magic)
	}

	tree, err := huffman.ReadTree(in)
	if err != nil {
		return nil, err
	}
	return &reader{cr: cr, in: in, tree: tree}, nil
}

func (rd *reader) decodeTo(w io.Writer) (Stats, error) {
	stats := Stats{
		Symbols:  rd.tree.NumLeaves(),
		TreeBits: rd.tree.SerializedSize(),
	}

	cw := &countingWriter{w: w}
	bw := bufio.NewWriterSize(cw, bufferSize)

	_, err := huffman.NewDecoder(rd.tree).DecodeStream(bw, rd.in)
	stats.InputBytes = rd.cr.n
	if err != nil {
		return stats, err
	}
	if err := bw.Flush(); err != nil {
		return stats, errors.Wrap(err, "failed to flush output")
	}
	stats.OutputBytes = cw.n
	return stats, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

type countingReader struct {
	r io.Reader
	n int64
}

func (cr *countingReader) Read(p []byte) (int, error) {
	n, err := cr.r.Read(p)
	cr.n += int64(n)
	return n, err
}
