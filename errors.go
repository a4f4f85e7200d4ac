package grin

import (
	"github.com/pkg/errors"
)

var (
	// ErrBadMagic is returned when a file does not start with Magic.
	ErrBadMagic = errors.New("grin: not a .grin file")

	// ErrSameFile is returned by EncodeFile and DecodeFile when the input
	// and output paths name the same file.
	ErrSameFile = errors.New("grin: input and output are the same file")
)
