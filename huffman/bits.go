package huffman

import (
	"io"

	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// BitReader is the bit source consumed by ReadTree and Decoder.  Bits are
// read most significant first.  When the underlying data is exhausted, the
// methods return io.EOF (or io.ErrUnexpectedEOF).
//
// *bitio.Reader satisfies this interface.
type BitReader interface {
	ReadBits(n uint8) (uint64, error)
	ReadBool() (bool, error)
}

// BitWriter is the bit sink fed by Tree.Serialize and Encoder.  Bits are
// written most significant first; padding the final byte is the
// responsibility of whoever finalizes the underlying writer.
//
// *bitio.Writer satisfies this interface.
type BitWriter interface {
	WriteBits(r uint64, n uint8) error
	WriteBool(b bool) error
}

var (
	_ BitReader = (*bitio.Reader)(nil)
	_ BitWriter = (*bitio.Writer)(nil)
)

// readFailure converts an error from a BitReader into ErrTruncated if the
// source simply ran dry, or attaches a stack trace otherwise.
func readFailure(err error, what string) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return errors.Wrap(ErrTruncated, what)
	}
	return errors.Wrap(err, what)
}
