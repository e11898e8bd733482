package packbits

import (
	"io"

	"github.com/pkg/errors"
)

// ErrUnexpectedEOF is returned when the decoder consumes a run header but
// hits EOF before reading all the bytes that header promised.
var ErrUnexpectedEOF = errors.New("packbits: unexpected EOF mid-run")

// unexpectedEOF normalizes a plain io.EOF encountered while a run is still
// owed bytes into ErrUnexpectedEOF; any other error (or nil) passes through.
func unexpectedEOF(err error) error {
	if err == io.EOF {
		return ErrUnexpectedEOF
	}
	return err
}
