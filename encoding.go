package linenoir

import "io"

// Encoding supplies the character metrics the engine uses for every piece
// of cursor and column arithmetic. The engine never assumes one byte is one
// column; it asks the Encoding instead, so a caller can plug in full UTF-8
// width logic without touching the renderer.
//
// Implementations must guarantee that walking a buffer with NextCharLen
// from offset 0 visits every byte exactly once, and that PrevCharLen is the
// inverse walk. ReadCode must read one complete character's worth of bytes
// from r into scratch and return how many bytes were read together with the
// decoded code point.
type Encoding interface {
	// PrevCharLen reports the byte length and column width of the
	// character immediately before byte offset pos in buf.
	PrevCharLen(buf []byte, pos int) (byteLen, colLen int)
	// NextCharLen reports the byte length and column width of the
	// character starting at byte offset pos in buf.
	NextCharLen(buf []byte, pos int) (byteLen, colLen int)
	// ReadCode reads the next input character into scratch. A return of
	// n <= 0 means end of input or a read error.
	ReadCode(r io.Reader, scratch []byte) (n int, code rune, err error)
}

// SingleByte is the default Encoding: every byte is one character occupying
// one column. Suitable for ASCII and other single-byte encodings.
type SingleByte struct{}

// PrevCharLen always reports a one-byte, one-column character.
func (SingleByte) PrevCharLen(buf []byte, pos int) (int, int) {
	return 1, 1
}

// NextCharLen always reports a one-byte, one-column character.
func (SingleByte) NextCharLen(buf []byte, pos int) (int, int) {
	return 1, 1
}

// ReadCode reads a single byte.
func (SingleByte) ReadCode(r io.Reader, scratch []byte) (int, rune, error) {
	if len(scratch) < 1 {
		return -1, 0, io.ErrShortBuffer
	}
	n, err := r.Read(scratch[:1])
	if n != 1 {
		if err == nil {
			err = io.EOF
		}
		return n, 0, err
	}
	return 1, rune(scratch[0]), nil
}

// columnPos returns the display-column offset of byte position pos within
// buf, summing the column width of every character from the start of the
// buffer. No line-wrap awareness.
func columnPos(enc Encoding, buf []byte, pos int) int {
	ret := 0
	off := 0
	for off < pos {
		byteLen, colLen := enc.NextCharLen(buf, off)
		off += byteLen
		ret += colLen
	}
	return ret
}

// columnPosWrapped is the wrap-aware variant of columnPos used by the
// multi-line renderer. startCol is the column already consumed on the first
// row (the prompt width). The running width resets whenever appending the
// next character would meet or exceed cols, and the overflow is folded into
// the returned cumulative count, so the caller can derive both the row and
// the final column from the single return value.
func columnPosWrapped(enc Encoding, buf []byte, pos, cols, startCol int) int {
	ret := 0
	colWidth := startCol
	off := 0
	for off < len(buf) {
		byteLen, colLen := enc.NextCharLen(buf, off)

		dif := colWidth + colLen - cols
		switch {
		case dif > 0:
			ret += dif
			colWidth = colLen
		case dif == 0:
			colWidth = 0
		default:
			colWidth += colLen
		}

		if off >= pos {
			break
		}
		off += byteLen
		ret += colLen
	}
	return ret
}

// ansiEscapeLen reports whether buf starts with a complete ANSI escape
// sequence (ESC [ ... final byte) and, if so, its byte length.
func ansiEscapeLen(buf []byte) (int, bool) {
	if len(buf) <= 2 || buf[0] != '\x1b' || buf[1] != '[' {
		return 0, false
	}
	for off := 2; off < len(buf); off++ {
		switch buf[off] {
		case 'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'J', 'K', 'S', 'T', 'f', 'm':
			return off + 1, true
		}
	}
	return 0, false
}

// promptColumnLen computes the display width of a prompt, skipping any
// embedded ANSI escape sequences: they occupy zero columns.
func promptColumnLen(enc Encoding, prompt []byte) int {
	visible := make([]byte, 0, len(prompt))
	off := 0
	for off < len(prompt) {
		if n, ok := ansiEscapeLen(prompt[off:]); ok {
			off += n
			continue
		}
		visible = append(visible, prompt[off])
		off++
	}
	return columnPos(enc, visible, len(visible))
}
