package lzw

import (
	"bufio"
	"io"
)

// codeSource is the pull side of the code stream abstraction (§4.1 / §9
// design notes): something that yields variable-width codes until
// exhaustion. codeReader is the production implementation, unpacking
// codes from an MSB-first bit stream; sliceSource lets the decoder be
// driven directly from a pre-decoded list of codes, the same flexibility
// the reference Python implementation gets from its pluggable
// codegenerator parameter.
type codeSource interface {
	next() (uint16, error)
	setWidth(w uint)
	alignAfterEOI() error
}

// codeReader unpacks a byte stream into a sequence of bitlength-wide,
// MSB-first codes.
type codeReader struct {
	r     io.ByteReader
	bits  uint32 // buffered bits, left-justified in the top of the word
	nBits uint   // number of valid bits currently buffered
	width uint
}

func newCodeReader(r io.Reader) *codeReader {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &codeReader{r: br, width: minWidth}
}

func (c *codeReader) setWidth(w uint) { c.width = w }

// next returns the next code, reading whole bytes from the underlying
// stream as needed to fill the buffer. Once the stream is exhausted: if no
// bits remain buffered it returns io.EOF (undecorated); if some bits
// remain (fewer than width), it zero-pads them into one final code before
// reporting io.EOF on the call after that, per §4.1's edge case.
func (c *codeReader) next() (uint16, error) {
	for c.nBits < c.width {
		b, err := c.r.ReadByte()
		if err != nil {
			if err != io.EOF {
				return 0, err
			}
			if c.nBits == 0 {
				return 0, io.EOF
			}
			code := uint16(c.bits >> (32 - c.width))
			c.bits, c.nBits = 0, 0
			return code, nil
		}
		c.bits |= uint32(b) << (24 - c.nBits)
		c.nBits += 8
	}
	code := uint16(c.bits >> (32 - c.width))
	c.bits <<= c.width
	c.nBits -= c.width
	return code, nil
}

// alignAfterEOI discards the bits remaining in the buffer after an
// EndOfInformation code, which TIFF/PDF require to be zero padding.
func (c *codeReader) alignAfterEOI() error {
	if c.bits != 0 {
		return ErrUnalignedEOI
	}
	c.bits, c.nBits = 0, 0
	return nil
}

// codeWriter is the push side: it packs bitlength-wide, MSB-first codes
// into whole output bytes.
type codeWriter struct {
	w     io.ByteWriter
	bits  uint32
	nBits uint
	width uint
}

func newCodeWriter(w io.Writer) *codeWriter {
	bw, ok := w.(io.ByteWriter)
	if !ok {
		bw = bufio.NewWriter(w)
	}
	return &codeWriter{w: bw, width: minWidth}
}

func (c *codeWriter) setWidth(w uint) { c.width = w }

func (c *codeWriter) writeCode(code uint16) error {
	c.bits |= uint32(code) << (32 - c.width - c.nBits)
	c.nBits += c.width
	for c.nBits >= 8 {
		if err := c.w.WriteByte(byte(c.bits >> 24)); err != nil {
			return err
		}
		c.bits <<= 8
		c.nBits -= 8
	}
	return nil
}

// flush pads any pending bits to a byte boundary with zeros and emits the
// final byte, then flushes any buffering the underlying writer added.
func (c *codeWriter) flush() error {
	if c.nBits > 0 {
		if err := c.w.WriteByte(byte(c.bits >> 24)); err != nil {
			return err
		}
		c.bits, c.nBits = 0, 0
	}
	return c.flushUnderlying()
}

func (c *codeWriter) flushUnderlying() error {
	if bw, ok := c.w.(*bufio.Writer); ok {
		return bw.Flush()
	}
	return nil
}

// sliceSource drives the LZW decoder directly from a pre-decoded list of
// codes, bypassing bit-unpacking entirely. Used to exercise the
// transducer in isolation (no special codes, fixed 9-bit width) the way
// the Rosetta Code test vectors are specified.
type sliceSource struct {
	codes []uint16
	i     int
}

func (s *sliceSource) next() (uint16, error) {
	if s.i >= len(s.codes) {
		return 0, io.EOF
	}
	c := s.codes[s.i]
	s.i++
	return c, nil
}

func (s *sliceSource) setWidth(uint)        {}
func (s *sliceSource) alignAfterEOI() error { return nil }
