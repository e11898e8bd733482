package lzw

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestCodeReaderNineBytes reads the classic "UUUUUUUUU" (9 bytes, 0x55
// repeated) example directly as a stream of fixed 9-bit codes: 9*8 = 72
// bits is an exact multiple of 9, so all 8 codes come out with nothing
// left over.
func TestCodeReaderNineBytes(t *testing.T) {
	cr := newCodeReader(bytes.NewReader([]byte("UUUUUUUUU")))
	cr.setWidth(9)

	want := []uint16{170, 341, 170, 341, 170, 341, 170, 341}
	for i, w := range want {
		got, err := cr.next()
		require.NoError(t, err, "code %d", i)
		require.Equal(t, w, got, "code %d", i)
	}
	_, err := cr.next()
	require.ErrorIs(t, err, io.EOF)
}

// TestCodeReaderEightBytes reads "UUUUUUUU" (8 bytes = 64 bits), not an
// even multiple of 9 bits: the reader pads the final partial code with
// zero bits rather than dropping it, since after seven codes one bit
// (more than zero but fewer than 9) is still buffered.
func TestCodeReaderEightBytes(t *testing.T) {
	cr := newCodeReader(bytes.NewReader([]byte("UUUUUUUU")))
	cr.setWidth(9)

	want := []uint16{170, 341, 170, 341, 170, 341, 170, 256}
	for i, w := range want {
		got, err := cr.next()
		require.NoError(t, err, "code %d", i)
		require.Equal(t, w, got, "code %d", i)
	}
}

// TestCodeWriterRoundTrip packs a sequence of codes at a fixed width and
// checks the code reader recovers exactly the same sequence.
func TestCodeWriterRoundTrip(t *testing.T) {
	codes := []uint16{256, 7, 258, 8, 8, 258, 6, 6, 257}

	var buf bytes.Buffer
	cw := newCodeWriter(&buf)
	cw.setWidth(9)
	for _, c := range codes {
		require.NoError(t, cw.writeCode(c))
	}
	require.NoError(t, cw.flush())

	cr := newCodeReader(bytes.NewReader(buf.Bytes()))
	cr.setWidth(9)
	for i, want := range codes {
		got, err := cr.next()
		require.NoError(t, err, "code %d", i)
		require.Equal(t, want, got, "code %d", i)
	}
}
