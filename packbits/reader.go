package packbits

import (
	"bufio"
	"io"
)

// Unpack expands a PackBits stream read from r, writing the decoded bytes
// to w. It terminates cleanly on EOF; a no-op header (0x80) is consumed
// silently wherever it appears, which is how a DialectLax EOD marker is
// absorbed without any special-case handling.
func Unpack(w io.Writer, r io.Reader) error {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	bw, ok := w.(io.ByteWriter)
	if !ok {
		bw = bufio.NewWriter(w)
	}

	for {
		n, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		switch {
		case n < 128:
			for i := 0; i < int(n)+1; i++ {
				b, err := br.ReadByte()
				if err != nil {
					return unexpectedEOF(err)
				}
				if err := bw.WriteByte(b); err != nil {
					return err
				}
			}
		case n == noop:
			// no-op: neither consumes nor emits anything further
		default:
			b, err := br.ReadByte()
			if err != nil {
				return unexpectedEOF(err)
			}
			count := 257 - int(n)
			for i := 0; i < count; i++ {
				if err := bw.WriteByte(b); err != nil {
					return err
				}
			}
		}
	}

	if f, ok := bw.(*bufio.Writer); ok {
		return f.Flush()
	}
	return nil
}
