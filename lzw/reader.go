// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzw

import (
	"io"
	"math/bits"

	"github.com/pkg/errors"
)

// Reader decompresses an LZW-encoded byte stream. It implements
// io.ReadCloser; the caller must call Close when done reading.
//
// The decode table (§3) is stored as (parent code, suffix byte) pairs
// rather than materialized strings, per the design note in §9: each
// insertion is O(1) and a string is only ever walked and copied into a
// reusable scratch buffer when it is actually emitted.
type Reader struct {
	src     codeSource
	dialect Dialect

	prefix [1 << maxWidth]uint16
	suffix [1 << maxWidth]byte
	hi     uint16 // next code to be assigned

	bitlen uint

	oldCode uint16
	old     []byte // nil means "no old_code_value yet"

	kwkBuf  []byte
	scratch [1 << maxWidth]byte

	pending []byte
	err     error
}

var errClosed = errors.New("lzw: reader/writer is closed")

// NewReader returns a Reader that decompresses data read from r under
// the given dialect. If r does not also implement io.ByteReader, reads
// are buffered internally.
func NewReader(r io.Reader, dialect Dialect) *Reader {
	d := &Reader{src: newCodeReader(r), dialect: dialect}
	d.resetTable()
	return d
}

// newReaderFromCodes drives the decoder directly from a list of already
// unpacked codes, skipping bit-unpacking. Used by tests that exercise the
// transducer against the classic Rosetta Code / TIFF6 code sequences.
func newReaderFromCodes(codes []uint16, dialect Dialect) *Reader {
	// Such lists carry no ClearCode or EndOfInformation: their table
	// entries start at 256, so shift them past the two special codes.
	shifted := make([]uint16, len(codes))
	for i, c := range codes {
		if c >= clearCode {
			c += 2
		}
		shifted[i] = c
	}
	d := &Reader{src: &sliceSource{codes: shifted}, dialect: dialect}
	d.resetTable()
	return d
}

// DecodeFromCodes decompresses a pre-unpacked sequence of codes,
// bypassing the bit-packed transport entirely. Codes 256 and up are table
// entries, as in the Rosetta Code vectors; there are no special codes. It
// exists primarily for tests and debugging against literal code sequences.
func DecodeFromCodes(codes []uint16, dialect Dialect) ([]byte, error) {
	r := newReaderFromCodes(codes, dialect)
	defer r.Close()
	return io.ReadAll(r)
}

func (d *Reader) resetTable() {
	d.hi = eofCode + 1
	d.bitlen = minWidth
	d.src.setWidth(minWidth)
	d.old = nil
}

// bumpNeeded reports whether, immediately after an entry was stored at
// index k, the decoder must widen its next read: true exactly when k+2
// needs more bits than k+1 does (TIFF 6.0 p. 60's "counts toward the
// decision about bumping" rule, applied at the same index for encoder
// and decoder alike).
func bumpNeeded(k uint16) bool {
	return bits.Len(uint(k)+2) > bits.Len(uint(k)+1)
}

// expand materializes the byte string for code, walking the
// (parent, suffix) chain back to a literal code and writing
// right-to-left into the shared scratch buffer. The returned slice
// aliases that buffer and is only valid until the next call to expand.
func (d *Reader) expand(code uint16) []byte {
	i := len(d.scratch)
	c := code
	for c >= clearCode {
		i--
		d.scratch[i] = d.suffix[c]
		c = d.prefix[c]
	}
	i--
	d.scratch[i] = byte(c)
	return d.scratch[i:]
}

// step decodes the next code, returning the bytes it expands to. A nil
// slice with a nil error means the code was a ClearCode or an
// alignment-only EndOfInformation (strict dialect, mid-stream): nothing
// to emit, keep reading. io.EOF signals a clean end of data.
func (d *Reader) step() ([]byte, error) {
	code, err := d.src.next()
	if err != nil {
		return nil, err
	}

	switch code {
	case clearCode:
		d.resetTable()
		return nil, nil
	case eofCode:
		d.bitlen = minWidth
		d.src.setWidth(minWidth)
		if err := d.src.alignAfterEOI(); err != nil {
			return nil, err
		}
		if d.dialect == DialectLax {
			return nil, io.EOF
		}
		// Strict: EndOfInformation only marks the end of this strip;
		// more strips (each reopened with their own ClearCode) may
		// follow.
		return nil, nil
	}

	var cur []byte
	switch {
	case code < d.hi:
		cur = d.expand(code)
	case code == d.hi:
		if d.old == nil {
			return nil, ErrInvalidCode
		}
		n := len(d.old)
		if cap(d.kwkBuf) < n+1 {
			d.kwkBuf = make([]byte, n+1)
		}
		d.kwkBuf = d.kwkBuf[:n+1]
		copy(d.kwkBuf, d.old)
		d.kwkBuf[n] = d.old[0]
		cur = d.kwkBuf
	default:
		return nil, ErrInvalidCode
	}

	if d.old != nil && d.hi <= maxCode {
		k := d.hi
		d.prefix[k] = d.oldCode
		d.suffix[k] = cur[0]
		d.hi = k + 1
		if bumpNeeded(k) && d.bitlen < maxWidth {
			d.bitlen++
			d.src.setWidth(d.bitlen)
		}
	}

	d.oldCode = code
	if cap(d.old) < len(cur) {
		d.old = make([]byte, len(cur))
	} else {
		d.old = d.old[:len(cur)]
	}
	copy(d.old, cur)

	return cur, nil
}

// Read implements io.Reader, decoding on demand and buffering leftover
// output across calls.
func (d *Reader) Read(p []byte) (int, error) {
	for len(d.pending) == 0 {
		if d.err != nil {
			return 0, d.err
		}
		out, err := d.step()
		if err != nil {
			d.err = err
			if err == io.EOF {
				continue // deliver any remaining pending bytes first
			}
			return 0, err
		}
		if len(out) > 0 {
			d.pending = append(d.pending, out...)
		}
	}
	n := copy(p, d.pending)
	d.pending = d.pending[n:]
	return n, nil
}

func (d *Reader) Close() error {
	d.err = errClosed
	return nil
}
