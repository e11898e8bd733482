package lzw

import "io"

// Writer compresses bytes written to it using the TIFF/PDF LZW scheme
// and writes the result to an underlying writer. The caller must call
// Close to flush any pending strip and pad the final byte.
type Writer struct {
	cw      *codeWriter
	dialect Dialect

	table    map[string]uint16
	nextCode uint16
	bitlen   uint
	writeCnt int

	prefix  []byte
	started bool // dialect == DialectLax: has the opening ClearCode been sent?
	stripPos int // dialect == DialectStrict: bytes consumed in the current strip

	closed bool
}

// NewWriter returns a Writer that LZW-compresses data written to it
// under the given dialect and forwards the compressed bytes to w.
func NewWriter(w io.Writer, dialect Dialect) *Writer {
	return &Writer{
		cw:       newCodeWriter(w),
		dialect:  dialect,
		bitlen:   minWidth,
		writeCnt: 256,
	}
}

func newInitialTable() map[string]uint16 {
	t := make(map[string]uint16, 258)
	for i := 0; i < 256; i++ {
		t[string([]byte{byte(i)})] = uint16(i)
	}
	return t
}

// startSession writes the opening ClearCode for a fresh strict strip or a
// lax session, narrowing the bit width to minWidth first. The paired
// reader resets itself to minWidth eagerly — immediately upon consuming
// the previous strip's EndOfInformation, before it reads anything else —
// so this ClearCode must already be written at minWidth, not whatever
// width the previous strip ended at.
func (e *Writer) startSession() error {
	e.bitlen = minWidth
	e.cw.setWidth(minWidth)
	if err := e.cw.writeCode(clearCode); err != nil {
		return err
	}
	e.table = newInitialTable()
	e.nextCode = eofCode + 1
	e.writeCnt = 256
	return nil
}

// resetAndClear writes a ClearCode at the current width, then
// reinitializes the table and widens back to minWidth for what follows —
// in that order, since the code just written is read by the decoder at
// the width that was in effect before the reset. This is only correct
// for the within-session dictionary-full clear (§4.4): the decoder there
// reads the ClearCode at the old width and resets afterward, unlike the
// eager post-EOI reset startSession accounts for.
func (e *Writer) resetAndClear() error {
	if err := e.cw.writeCode(clearCode); err != nil {
		return err
	}
	e.table = newInitialTable()
	e.nextCode = eofCode + 1
	e.bitlen = minWidth
	e.cw.setWidth(minWidth)
	e.writeCnt = 256
	return nil
}

// emitRaw writes a code that is already known to be valid at the current
// width, then applies the codes-written-since-clear bump/dictionary-full
// rule described in §4.4.
func (e *Writer) emitRaw(code uint16) error {
	if err := e.cw.writeCode(code); err != nil {
		return err
	}
	if code == clearCode {
		e.writeCnt = 256
		return nil
	}
	e.writeCnt++
	if code == eofCode {
		return e.cw.flush()
	}
	if e.writeCnt+2 == 1<<e.bitlen {
		if e.bitlen < maxWidth {
			e.bitlen++
			e.cw.setWidth(e.bitlen)
		} else {
			return e.resetAndClear()
		}
	}
	return nil
}

func (e *Writer) addEntry(candidate []byte) {
	if e.nextCode > maxCode {
		return
	}
	e.table[string(candidate)] = e.nextCode
	e.nextCode++
}

// Write implements io.Writer, compressing p byte by byte and carrying
// any unmatched prefix to the next call.
func (e *Writer) Write(p []byte) (int, error) {
	for _, b := range p {
		switch e.dialect {
		case DialectLax:
			if !e.started {
				if err := e.startSession(); err != nil {
					return 0, err
				}
				e.started = true
			}
		case DialectStrict:
			if e.stripPos == 0 {
				if err := e.startSession(); err != nil {
					return 0, err
				}
			}
		}

		candidate := make([]byte, len(e.prefix)+1)
		copy(candidate, e.prefix)
		candidate[len(e.prefix)] = b

		if _, ok := e.table[string(candidate)]; ok {
			e.prefix = candidate
		} else {
			// Add the entry before emitting: emitting may fill the table
			// and clear it, and the entry must not survive into the fresh
			// table.
			e.addEntry(candidate)
			if len(e.prefix) > 0 {
				if err := e.emitRaw(e.table[string(e.prefix)]); err != nil {
					return 0, err
				}
			}
			e.prefix = candidate[len(candidate)-1:]
		}

		if e.dialect == DialectStrict {
			e.stripPos++
			if e.stripPos == stripSize {
				if err := e.endStrip(); err != nil {
					return 0, err
				}
			}
		}
	}
	return len(p), nil
}

// endStrip finishes the current strict-dialect strip: the pending prefix
// is flushed as a code, followed by EndOfInformation and a byte-align.
// The next Write byte reopens a fresh strip with its own ClearCode.
func (e *Writer) endStrip() error {
	if len(e.prefix) > 0 {
		if err := e.emitRaw(e.table[string(e.prefix)]); err != nil {
			return err
		}
	}
	if err := e.emitRaw(eofCode); err != nil {
		return err
	}
	e.prefix = nil
	e.stripPos = 0
	return nil
}

// Close flushes any pending strip (strict) or the single open session
// (lax), emitting a final EndOfInformation and byte-aligning the stream.
func (e *Writer) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true

	switch e.dialect {
	case DialectStrict:
		if e.stripPos == 0 && len(e.prefix) == 0 {
			return nil // nothing was ever written
		}
		return e.endStrip()
	default: // DialectLax
		if !e.started {
			return nil // nothing was ever written
		}
		if len(e.prefix) > 0 {
			if err := e.emitRaw(e.table[string(e.prefix)]); err != nil {
				return err
			}
		}
		return e.emitRaw(eofCode)
	}
}
