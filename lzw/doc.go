// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lzw implements the variable-width Lempel-Ziv-Welch compression
// scheme as specified in the TIFF 6.0 specification (pp. 58-63), which is
// also the form embedded in PDF image streams (LZWDecode).
//
// Two framing dialects are supported, selected once per session via
// Dialect:
//
//   - DialectStrict: TIFF-conforming. Every strip (8192 bytes of
//     uncompressed input by default) begins with a ClearCode and ends
//     with an EndOfInformation code; the bit stream realigns to a byte
//     boundary after each EndOfInformation.
//   - DialectLax: the framing commonly observed in PDF image streams. A
//     single ClearCode opens the stream (and another follows only if the
//     code table fills up); a single EndOfInformation closes it. The
//     code table and the encoder's pending prefix are carried across
//     what would otherwise be strip boundaries.
//
// See DESIGN.md for why the EOI_IS_EOD CLI flag's mapping to these two
// dialects differs from a literal reading of the distilled specification.
package lzw

const (
	clearCode = 256
	eofCode   = 257

	minWidth = 9
	maxWidth = 12
	maxCode  = 1<<maxWidth - 1 // 4095

	// stripSize is the default uncompressed strip size recommended by
	// TIFF 6.0 p. 58 ("about 8K bytes before compression").
	stripSize = 8192
)

// Dialect selects the strip-framing discipline used by a Reader or
// Writer.
type Dialect int

const (
	// DialectStrict reinitializes the code table and bit width at the
	// start of every strip and terminates every strip with an
	// EndOfInformation code, byte-aligning the stream afterwards.
	DialectStrict Dialect = iota

	// DialectLax carries the code table and the encoder's prefix across
	// strip boundaries, emitting a single ClearCode at the start (plus
	// one more if the table fills up) and a single EndOfInformation at
	// the very end of the stream.
	DialectLax
)
