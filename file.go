package grin

import (
	"os"

	"github.com/pkg/errors"
)

// EncodeFile compresses the file at inPath into a new .grin file at outPath.
// On failure, the partially written output file is removed.
func EncodeFile(inPath string, outPath string) (stats Stats, err error) {
	in, err := openInput(inPath, outPath)
	if err != nil {
		return stats, err
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return stats, errors.WithStack(err)
	}
	defer finishOutput(out, &err)

	return Encode(out, in)
}

// DecodeFile decompresses the .grin file at inPath into outPath.  The magic
// number and the tree are validated before outPath is created, so a file that
// is not a .grin file leaves no output behind.  On any later failure, the
// partially written output file is removed.
func DecodeFile(inPath string, outPath string) (stats Stats, err error) {
	in, err := openInput(inPath, outPath)
	if err != nil {
		return stats, err
	}
	defer in.Close()

	rd, err := newReader(in)
	if err != nil {
		return stats, errors.Wrapf(err, "%s", inPath)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return stats, errors.WithStack(err)
	}
	defer finishOutput(out, &err)

	return rd.decodeTo(out)
}

func openInput(inPath string, outPath string) (*os.File, error) {
	in, err := os.Open(inPath)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	inInfo, err := in.Stat()
	if err != nil {
		in.Close()
		return nil, errors.WithStack(err)
	}
	if outInfo, err := os.Stat(outPath); err == nil && os.SameFile(inInfo, outInfo) {
		in.Close()
		return nil, errors.Wrapf(ErrSameFile, "%s and %s", inPath, outPath)
	}
	return in, nil
}

func finishOutput(out *os.File, errp *error) {
	if err := out.Close(); err != nil && *errp == nil {
		*errp = errors.Wrap(err, "failed to close output")
	}
	if *errp != nil {
		_ = os.Remove(out.Name())
	}
}
