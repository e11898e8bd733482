package lzw

import "github.com/pkg/errors"

var (
	// ErrInvalidCode is returned when the decoder reads a code that is
	// neither a known table entry nor the one legitimate KωK case (the
	// code equal to the entry about to be created).
	ErrInvalidCode = errors.New("lzw: invalid code, may be PackBits data")

	// ErrUnalignedEOI is returned when non-zero bits remain in the bit
	// buffer immediately after an EndOfInformation code.
	ErrUnalignedEOI = errors.New("lzw: non-zero bits remaining after EndOfInformation")
)
