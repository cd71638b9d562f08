package linenoir

import "io"

// editor is the state of one in-progress ReadLine call: the line buffer,
// cursor, terminal geometry, and the refresh bookkeeping the multi-line
// renderer needs between redraws.
//
// Invariants maintained by every editing operation:
//
//	0 <= pos <= len(buf) <= capacity
//
// and pos always sits on a character boundary as defined by enc. The
// buffer's backing array is allocated once; no operation grows it past
// capacity.
type editor struct {
	in  io.Reader
	out io.Writer
	// bell receives the audible alert byte; kept separate from out so a
	// completion beep never lands inside a buffered refresh.
	bell io.Writer

	enc       Encoding
	prompt    []byte
	promptCol int // column width of the prompt, escapes stripped

	buf      []byte // edited line; len(buf) is the current length
	capacity int    // maximum byte length of the line
	pos      int    // cursor byte offset into buf

	cols      int // terminal width, sampled at session start
	oldColPos int // cursor column as of the previous refresh (multi-line)
	maxRows   int // high-water mark of rows used by refreshes (multi-line)

	multiline bool
	histIndex int // 0 = the line being edited, larger walks backward
	history   *History
	completer CompleterFunc
	hint      HintFunc
}

// insert places text at the cursor, rejecting silently when it would not
// fit. When the cursor is at the end of a single-line buffer that still
// fits the terminal row and no hint callback is active, the bytes are
// written straight through instead of running a full refresh.
func (e *editor) insert(text []byte) error {
	if len(e.buf)+len(text) > e.capacity {
		return nil
	}

	if e.pos == len(e.buf) {
		e.buf = append(e.buf, text...)
		e.pos += len(text)
		if !e.multiline && e.hint == nil &&
			e.promptCol+columnPos(e.enc, e.buf, len(e.buf)) < e.cols {
			// Trivial case: just echo the typed bytes.
			_, err := e.out.Write(text)
			return err
		}
		return e.refresh()
	}

	e.buf = e.buf[:len(e.buf)+len(text)]
	copy(e.buf[e.pos+len(text):], e.buf[e.pos:])
	copy(e.buf[e.pos:], text)
	e.pos += len(text)
	return e.refresh()
}

// moveLeft moves the cursor one character to the left.
func (e *editor) moveLeft() error {
	if e.pos > 0 {
		byteLen, _ := e.enc.PrevCharLen(e.buf, e.pos)
		e.pos -= byteLen
		return e.refresh()
	}
	return nil
}

// moveRight moves the cursor one character to the right.
func (e *editor) moveRight() error {
	if e.pos != len(e.buf) {
		byteLen, _ := e.enc.NextCharLen(e.buf, e.pos)
		e.pos += byteLen
		return e.refresh()
	}
	return nil
}

// moveWordEnd moves the cursor past any spaces under it, then to the end
// of the current word. Word boundaries are the space byte specifically.
func (e *editor) moveWordEnd() error {
	if len(e.buf) == 0 || e.pos >= len(e.buf) {
		return nil
	}
	if e.buf[e.pos] == ' ' {
		for e.pos < len(e.buf) && e.buf[e.pos] == ' ' {
			e.pos++
		}
	}
	for e.pos < len(e.buf) && e.buf[e.pos] != ' ' {
		e.pos++
	}
	return e.refresh()
}

// moveWordStart moves the cursor to the start of the current word,
// skipping any spaces immediately to its left first.
func (e *editor) moveWordStart() error {
	if len(e.buf) == 0 {
		return nil
	}
	if e.pos > 0 && e.buf[e.pos-1] == ' ' {
		e.pos--
	}
	if e.pos < len(e.buf) && e.buf[e.pos] == ' ' {
		for e.pos > 0 && e.buf[e.pos] == ' ' {
			e.pos--
		}
	}
	for e.pos > 0 && e.buf[e.pos-1] != ' ' {
		e.pos--
	}
	return e.refresh()
}

// moveHome moves the cursor to the start of the line.
func (e *editor) moveHome() error {
	if e.pos != 0 {
		e.pos = 0
		return e.refresh()
	}
	return nil
}

// moveEnd moves the cursor to the end of the line.
func (e *editor) moveEnd() error {
	if e.pos != len(e.buf) {
		e.pos = len(e.buf)
		return e.refresh()
	}
	return nil
}

// deleteForward removes the character at the cursor without moving it.
func (e *editor) deleteForward() error {
	if len(e.buf) > 0 && e.pos < len(e.buf) {
		byteLen, _ := e.enc.NextCharLen(e.buf, e.pos)
		copy(e.buf[e.pos:], e.buf[e.pos+byteLen:])
		e.buf = e.buf[:len(e.buf)-byteLen]
		return e.refresh()
	}
	return nil
}

// backspace removes the character before the cursor.
func (e *editor) backspace() error {
	if e.pos > 0 && len(e.buf) > 0 {
		byteLen, _ := e.enc.PrevCharLen(e.buf, e.pos)
		copy(e.buf[e.pos-byteLen:], e.buf[e.pos:])
		e.pos -= byteLen
		e.buf = e.buf[:len(e.buf)-byteLen]
		return e.refresh()
	}
	return nil
}

// deletePrevWord removes the word before the cursor along with any spaces
// between it and the cursor.
func (e *editor) deletePrevWord() error {
	oldPos := e.pos
	for e.pos > 0 && e.buf[e.pos-1] == ' ' {
		e.pos--
	}
	for e.pos > 0 && e.buf[e.pos-1] != ' ' {
		e.pos--
	}
	diff := oldPos - e.pos
	copy(e.buf[e.pos:], e.buf[oldPos:])
	e.buf = e.buf[:len(e.buf)-diff]
	return e.refresh()
}

// deleteNextWord removes the word after the cursor along with any spaces
// between the cursor and it, leaving the cursor in place.
func (e *editor) deleteNextWord() error {
	end := e.pos
	for end < len(e.buf) && e.buf[end] == ' ' {
		end++
	}
	for end < len(e.buf) && e.buf[end] != ' ' {
		end++
	}
	copy(e.buf[e.pos:], e.buf[end:])
	e.buf = e.buf[:len(e.buf)-(end-e.pos)]
	return e.refresh()
}

// deleteToEnd truncates the line at the cursor (Ctrl+K).
func (e *editor) deleteToEnd() error {
	e.buf = e.buf[:e.pos]
	return e.refresh()
}

// deleteLine clears the whole line (Ctrl+U).
func (e *editor) deleteLine() error {
	e.buf = e.buf[:0]
	e.pos = 0
	return e.refresh()
}

// transpose swaps the bytes on either side of the cursor and advances it,
// unless already at the last position (Ctrl+T). This is a byte swap, not a
// character swap; multi-byte characters are garbled by it, a limitation
// inherited deliberately.
func (e *editor) transpose() error {
	if e.pos > 0 && e.pos < len(e.buf) {
		e.buf[e.pos-1], e.buf[e.pos] = e.buf[e.pos], e.buf[e.pos-1]
		if e.pos != len(e.buf)-1 {
			e.pos++
		}
		return e.refresh()
	}
	return nil
}

// setLine replaces the buffer with line, truncated to capacity, and puts
// the cursor at the end.
func (e *editor) setLine(line string) {
	if len(line) > e.capacity {
		line = line[:e.capacity]
	}
	e.buf = append(e.buf[:0], line...)
	e.pos = len(e.buf)
}

// historyMove substitutes the buffer with the previous or next history
// entry. The entry currently displayed is written back to its history slot
// first, so edits made while visiting it survive further navigation.
// Moves past either end are boundary no-ops.
func (e *editor) historyMove(prev bool) error {
	h := e.history
	if h == nil || h.Len() <= 1 {
		return nil
	}

	h.overwrite(h.Len()-1-e.histIndex, string(e.buf))

	if prev {
		e.histIndex++
	} else {
		e.histIndex--
	}
	if e.histIndex < 0 {
		e.histIndex = 0
		return nil
	}
	if e.histIndex >= h.Len() {
		e.histIndex = h.Len() - 1
		return nil
	}

	e.setLine(h.at(h.Len() - 1 - e.histIndex))
	return e.refresh()
}
