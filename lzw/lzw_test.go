// Derived from the Adobe/TIFF LZW compatibility tests in
// github.com/hhrutter/pdfcpu/lzw, adapted to exercise both strip-framing
// dialects and the literal code-sequence scenarios from the TIFF 6.0 and
// Rosetta Code references.
package lzw_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/hhrutter/tiffcodec/lzw"
)

func TestDecodeFromCodesTobeornot(t *testing.T) {
	codes := []uint16{84, 79, 66, 69, 79, 82, 78, 79, 84, 256, 258, 260, 265, 259, 261, 263}
	got, err := lzw.DecodeFromCodes(codes, lzw.DialectStrict)
	require.NoError(t, err)
	require.Equal(t, "TOBEORNOTTOBEORTOBEORNOT", string(got))
}

func TestDecodeFromCodesToBeOrNotToBe(t *testing.T) {
	codes := []uint16{
		84, 111, 32, 98, 101, 32, 111, 114, 32, 110, 111, 116, 32, 116, 257,
		259, 268, 104, 97, 267, 105, 115, 272, 260, 113, 117, 101, 115, 116,
		105, 111, 110, 33,
	}
	got, err := lzw.DecodeFromCodes(codes, lzw.DialectStrict)
	require.NoError(t, err)
	require.Equal(t, "To be or not to be that is the question!", string(got))
}

func TestTIFF6SampleEncode(t *testing.T) {
	input := []byte{0x07, 0x07, 0x07, 0x08, 0x08, 0x07, 0x07, 0x06, 0x06}
	want := []byte{0x80, 0x01, 0xe0, 0x40, 0x80, 0x44, 0x08, 0x0c, 0x06, 0x80, 0x80}

	var buf bytes.Buffer
	w := lzw.NewWriter(&buf, lzw.DialectStrict)
	_, err := w.Write(input)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.Equal(t, want, buf.Bytes())

	r := lzw.NewReader(bytes.NewReader(buf.Bytes()), lzw.DialectStrict)
	defer r.Close()
	got, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, input, got)
}

func TestRoundTripStrict(t *testing.T) {
	inputs := [][]byte{
		nil,
		[]byte("a"),
		[]byte("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"),
		[]byte("The quick brown fox jumps over the lazy dog."),
		bytes.Repeat([]byte("ab"), 5000),
	}
	for _, in := range inputs {
		var buf bytes.Buffer
		w := lzw.NewWriter(&buf, lzw.DialectStrict)
		_, err := w.Write(in)
		require.NoError(t, err)
		require.NoError(t, w.Close())

		r := lzw.NewReader(bytes.NewReader(buf.Bytes()), lzw.DialectStrict)
		got, err := io.ReadAll(r)
		require.NoError(t, err)
		r.Close()
		require.Equal(t, in, got)
	}
}

func TestRoundTripLax(t *testing.T) {
	inputs := [][]byte{
		nil,
		[]byte("a"),
		[]byte("The quick brown fox jumps over the lazy dog."),
		bytes.Repeat([]byte("ab"), 5000),
	}
	for _, in := range inputs {
		var buf bytes.Buffer
		w := lzw.NewWriter(&buf, lzw.DialectLax)
		_, err := w.Write(in)
		require.NoError(t, err)
		require.NoError(t, w.Close())

		r := lzw.NewReader(bytes.NewReader(buf.Bytes()), lzw.DialectLax)
		got, err := io.ReadAll(r)
		require.NoError(t, err)
		r.Close()
		require.Equal(t, in, got)
	}
}

// TestLaxShorterThanStrict exercises §8's bound: under lax dialect the
// encoded stream is never longer than under strict dialect for the same
// input, since lax avoids per-strip reset overhead.
func TestLaxShorterThanStrict(t *testing.T) {
	in := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog "), 400)

	var strict, lax bytes.Buffer
	ws := lzw.NewWriter(&strict, lzw.DialectStrict)
	_, err := ws.Write(in)
	require.NoError(t, err)
	require.NoError(t, ws.Close())

	wl := lzw.NewWriter(&lax, lzw.DialectLax)
	_, err = wl.Write(in)
	require.NoError(t, err)
	require.NoError(t, wl.Close())

	require.LessOrEqual(t, lax.Len(), strict.Len())
}

// TestDictionaryFullCycle forces the code table to fill and clear mid-stream
// by feeding input with enough distinct-prefix-forming bytes, then checks
// the round trip still recovers the original exactly.
func TestDictionaryFullCycle(t *testing.T) {
	in := make([]byte, 1<<14)
	x := uint32(1)
	for i := range in {
		x = x*1664525 + 1013904223
		in[i] = byte(x >> 24)
	}

	var buf bytes.Buffer
	w := lzw.NewWriter(&buf, lzw.DialectLax)
	_, err := w.Write(in)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r := lzw.NewReader(bytes.NewReader(buf.Bytes()), lzw.DialectLax)
	defer r.Close()
	got, err := io.ReadAll(r)
	require.NoError(t, err)
	if diff := cmp.Diff(in, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

// TestInvalidCode checks that a code beyond table_size+1 is rejected.
func TestInvalidCode(t *testing.T) {
	_, err := lzw.DecodeFromCodes([]uint16{4095}, lzw.DialectStrict)
	require.ErrorIs(t, err, lzw.ErrInvalidCode)
}

func TestWriteAcrossMultipleCalls(t *testing.T) {
	var buf bytes.Buffer
	w := lzw.NewWriter(&buf, lzw.DialectLax)
	in := []byte("banana bandana banana")
	for _, b := range in {
		_, err := w.Write([]byte{b})
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	r := lzw.NewReader(bytes.NewReader(buf.Bytes()), lzw.DialectLax)
	defer r.Close()
	got, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, in, got)
}
