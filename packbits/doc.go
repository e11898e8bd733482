// Package packbits implements the PackBits byte run-length scheme from the
// TIFF 6.0 specification (p. 42): a signed header byte (represented here as
// unsigned) selects between a literal run and a replicate run.
//
// Pack chooses, for every maximal run of identical bytes, between shipping
// it as a replicate run or folding it into the surrounding literal run; see
// the look-behind-and-ahead rule on Writer. Unpack is a straight
// run-length expansion.
package packbits

const (
	noop = 0x80 // header byte 128: no-op, produces no output

	maxLiteral   = 128 // longest literal run a single header can address
	maxReplicate = 128 // longest replicate run a single header can address
)

// Dialect selects whether Pack terminates the stream with a trailing no-op
// byte, mirroring the LZW codec's strip-framing dialects (see package lzw).
type Dialect int

const (
	// DialectStrict (TIFF-conforming) emits no trailing marker; the
	// caller is expected to know the decoded length independently.
	DialectStrict Dialect = iota

	// DialectLax (PDF-observed) appends a single no-op byte (0x80) at
	// the end of the stream as an EOD marker.
	DialectLax
)
