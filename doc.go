// Package linenoir is a small line-editing engine for character-cell
// terminals, in the spirit of linenoise: a deliberately tiny
// escape-sequence vocabulary instead of a 20,000-line readline.
//
// The engine turns a raw keystroke stream into an edited line with cursor
// motion, word-wise editing, bounded in-memory history with in-place
// navigation, tab-completion cycling, and inline hints. Rendering is
// single-row by default; WithMultiLine selects a renderer that wraps long
// lines across terminal rows.
//
// Quick start:
//
//	p, err := linenoir.New("> ")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer p.Close()
//
//	for {
//		line, err := p.ReadLine()
//		if errors.Is(err, linenoir.ErrEOF) || errors.Is(err, linenoir.ErrInterrupted) {
//			break
//		}
//		if err != nil {
//			log.Fatal(err)
//		}
//		if line != "" {
//			p.History().Add(line)
//		}
//		fmt.Printf("echo: %s\n", line)
//	}
//
// Key bindings:
//
//   - Enter / Ctrl+J: submit the line
//   - Ctrl+C: cancel (ErrInterrupted)
//   - Ctrl+D: delete forward, or ErrEOF when the line is empty
//   - Backspace / Ctrl+H: delete backward
//   - Ctrl+B / Ctrl+F, Left / Right: move by one character
//   - Ctrl+A / Ctrl+E, Home / End: move to line start / end
//   - Ctrl+P / Ctrl+N, Up / Down: history previous / next
//   - Ctrl+T: transpose the two characters around the cursor
//   - Ctrl+U: delete the whole line
//   - Ctrl+K: delete from the cursor to the end
//   - Ctrl+W: delete the previous word
//   - Ctrl+L: clear the screen and redraw
//   - Alt+F / Alt+B / Alt+D: word end / word start / delete next word
//   - Tab: completion, when a completer is registered
//   - Delete: delete forward
//
// History:
//
// Submitted lines are not recorded automatically; the caller decides what
// to keep with History().Add. While a line is being edited the newest
// history slot mirrors the live buffer, so navigating away from an edited
// entry and back preserves the edit. History persists to plain line files
// via History.Save and History.Load.
//
// Completion and hints:
//
// A CompleterFunc returns whole-line replacement candidates; Tab cycles a
// preview through them without committing, Escape restores the original
// line, and any other key commits the preview and is processed normally.
// A HintFunc supplies transient text drawn after the buffer, optionally
// colored or bold; it is never part of the result.
//
// Encodings:
//
// All column and cursor arithmetic is expressed through the Encoding
// interface. The default SingleByte treats each byte as one single-column
// character. Callers needing UTF-8 or wide-character awareness provide
// their own Encoding via WithEncoding; nothing else in the engine assumes
// one byte is one column.
//
// When standard input is not an interactive terminal, or $TERM names a
// terminal that cannot handle escape sequences, ReadLine degrades to a
// plain buffered read so programs remain usable in pipes and on dumb
// terminals.
//
// A Prompt is single-threaded and synchronous: one read-decode-dispatch-
// render loop, with each refresh flushed in a single write to avoid
// flicker. External synchronization is the caller's job if multiple
// goroutines share a Prompt or History.
package linenoir
