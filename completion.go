package linenoir

// completeLine runs one Tab-cycling completion interaction.
//
// The completion callback is asked once for candidates; an empty set beeps
// and ends the interaction immediately. Otherwise each Tab advances a
// preview index through [0, n] where index n re-shows the original buffer
// (with a beep). The preview never commits: candidates are rendered with
// the session state temporarily swapped out. Escape restores the original
// buffer and ends the interaction; any other key commits the previewed
// candidate (truncated to capacity) and is handed back for normal
// dispatch.
//
// The returned key is 0 when the caller should simply read the next key
// itself. A non-nil error means reading input failed and the session is
// over.
func (e *editor) completeLine() (rune, error) {
	candidates := e.completer(string(e.buf))
	if len(candidates) == 0 {
		e.beep()
		return 0, nil
	}

	i := 0
	scratch := make([]byte, codeScratchSize)
	// setLine writes through the session buffer's backing array, so the
	// original line is saved as a copy and copied back after each preview;
	// restoring just the slice header would leave the candidate's bytes in
	// place.
	saved := append([]byte(nil), e.buf...)
	savedPos := e.pos
	for {
		if i < len(candidates) {
			e.setLine(candidates[i])
			err := e.refresh()
			e.buf = append(e.buf[:0], saved...)
			e.pos = savedPos
			if err != nil {
				return 0, err
			}
		} else {
			if err := e.refresh(); err != nil {
				return 0, err
			}
		}

		n, code, err := e.enc.ReadCode(e.in, scratch)
		if n <= 0 || err != nil {
			if err == nil {
				err = errShortRead
			}
			return 0, err
		}

		switch code {
		case keyTab:
			i = (i + 1) % (len(candidates) + 1)
			if i == len(candidates) {
				e.beep()
			}

		case keyEsc:
			// Re-show the original buffer; the Escape itself still goes
			// through normal dispatch so arrow keys pressed during the
			// interaction keep working.
			if i < len(candidates) {
				if err := e.refresh(); err != nil {
					return 0, err
				}
			}
			return code, nil

		default:
			if i < len(candidates) {
				e.setLine(candidates[i])
			}
			return code, nil
		}
	}
}
