package linenoir

import (
	"bytes"
	"fmt"
)

// The renderer deliberately restricts itself to a tiny escape-sequence
// vocabulary: EL (erase line), CUF/CUB (cursor forward/backward) for
// single-line mode, plus CUU/CUD (cursor up/down) in multi-line mode and
// CUP/ED for clear-screen. Every refresh is accumulated into one buffer
// and flushed with a single write so partial redraws are never visible.

// refresh redraws the prompt and buffer in the mode selected for the
// session.
func (e *editor) refresh() error {
	if e.multiline {
		return e.refreshMultiLine()
	}
	return e.refreshSingleLine()
}

// refreshSingleLine rewrites the edited line in place on a single terminal
// row. When prompt plus buffer exceed the terminal width the buffer is
// trimmed from the front or back, whole characters at a time, until the
// cursor and the visible slice both fit.
func (e *editor) refreshSingleLine() error {
	pcol := e.promptCol
	buf := e.buf
	pos := e.pos

	for len(buf) > 0 && pcol+columnPos(e.enc, buf, pos) >= e.cols {
		byteLen, _ := e.enc.NextCharLen(buf, 0)
		buf = buf[byteLen:]
		pos -= byteLen
	}
	for len(buf) > 0 && pcol+columnPos(e.enc, buf, len(buf)) > e.cols {
		byteLen, _ := e.enc.PrevCharLen(buf, len(buf))
		buf = buf[:len(buf)-byteLen]
	}

	var ab bytes.Buffer
	// Cursor to left edge, then prompt and the visible buffer slice.
	ab.WriteByte('\r')
	ab.Write(e.prompt)
	ab.Write(buf)
	e.appendHint(&ab, pcol)
	// Erase to right of the content.
	ab.WriteString("\x1b[0K")
	// Reposition the cursor.
	fmt.Fprintf(&ab, "\r\x1b[%dC", pcol+columnPos(e.enc, buf, pos))

	_, err := e.out.Write(ab.Bytes())
	return err
}

// refreshMultiLine rewrites the edited line across however many terminal
// rows it needs. The previous refresh's row usage (maxRows) and cursor
// column (oldColPos) tell it exactly which rows to erase first:
// under-erasing would leave stale text, over-erasing would disturb
// unrelated terminal content.
func (e *editor) refreshMultiLine() error {
	pcol := e.promptCol
	colpos := columnPosWrapped(e.enc, e.buf, len(e.buf), e.cols, pcol)
	rows := (pcol + colpos + e.cols - 1) / e.cols // rows used by the current buffer
	rpos := (pcol + e.oldColPos + e.cols) / e.cols // cursor row as of previous refresh
	oldRows := e.maxRows

	if rows > e.maxRows {
		e.maxRows = rows
	}

	var ab bytes.Buffer

	// First step: clear all the rows used before, starting from the last.
	if oldRows-rpos > 0 {
		fmt.Fprintf(&ab, "\x1b[%dB", oldRows-rpos)
	}
	for j := 0; j < oldRows-1; j++ {
		ab.WriteString("\r\x1b[0K\x1b[1A")
	}
	ab.WriteString("\r\x1b[0K")

	// Write the prompt and the whole buffer; wrapping is the terminal's.
	ab.Write(e.prompt)
	ab.Write(e.buf)
	e.appendHint(&ab, pcol)

	colpos2 := columnPosWrapped(e.enc, e.buf, e.pos, e.cols, pcol)

	// Cursor at the very end of the line, landing exactly on a row
	// boundary: emit the wrap ourselves so the terminal's autowrap can't
	// leave the cursor in an ambiguous column.
	if e.pos > 0 && e.pos == len(e.buf) && (pcol+colpos2)%e.cols == 0 {
		ab.WriteString("\n\r")
		rows++
		if rows > e.maxRows {
			e.maxRows = rows
		}
	}

	// Go up from the bottom row to the cursor's row.
	rpos2 := (pcol + colpos2 + e.cols) / e.cols
	if rows-rpos2 > 0 {
		fmt.Fprintf(&ab, "\x1b[%dA", rows-rpos2)
	}

	// Set the column.
	if col := (pcol + colpos2) % e.cols; col > 0 {
		fmt.Fprintf(&ab, "\r\x1b[%dC", col)
	} else {
		ab.WriteByte('\r')
	}

	e.oldColPos = colpos2

	_, err := e.out.Write(ab.Bytes())
	return err
}

// appendHint asks the hint callback for text to show after the buffer and
// appends it, truncated to the remaining width and styled if requested.
func (e *editor) appendHint(ab *bytes.Buffer, pcol int) {
	if e.hint == nil {
		return
	}
	used := pcol + columnPos(e.enc, e.buf, len(e.buf))
	if used >= e.cols {
		return
	}

	h := e.hint(string(e.buf))
	if h == nil || h.Text == "" {
		return
	}

	text := h.Text
	if max := e.cols - used; len(text) > max {
		text = text[:max]
	}

	switch {
	case h.Color != nil:
		c := *h.Color
		c.Bold = c.Bold || h.Bold
		ab.WriteString(c.ToANSI())
		ab.WriteString(text)
		ab.WriteString(Reset())
	case h.Bold:
		ab.WriteString("\x1b[1m")
		ab.WriteString(text)
		ab.WriteString(Reset())
	default:
		ab.WriteString(text)
	}
}

// beep emits the audible alert used when completion has nothing to offer.
func (e *editor) beep() {
	fmt.Fprint(e.bell, "\a")
}

// clearScreen clears the whole screen and homes the cursor (Ctrl+L); the
// caller refreshes afterwards.
func (e *editor) clearScreen() error {
	_, err := e.out.Write([]byte("\x1b[H\x1b[2J"))
	return err
}
