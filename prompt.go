package linenoir

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// Common errors
var (
	// ErrEOF is returned when the user presses Ctrl+D on an empty line or
	// end of input is reached with nothing typed.
	ErrEOF = errors.New("EOF")
	// ErrInterrupted is returned when the user presses Ctrl+C.
	ErrInterrupted = errors.New("interrupted")

	errShortRead = errors.New("short read from terminal")
)

// DefaultLineBuffer is the byte size of the line buffer a session
// allocates; the longest storable line is one byte shorter.
const DefaultLineBuffer = 4096

// codeScratchSize is the scratch space handed to Encoding.ReadCode; large
// enough for any encoding's single character.
const codeScratchSize = 32

// CompleterFunc produces candidate replacement lines for the current
// buffer when the user presses Tab. Candidates replace the whole line.
type CompleterFunc func(line string) []string

// HintFunc produces a transient hint shown after the buffer content. It is
// called on every refresh; returning nil shows nothing. The hint is not
// part of the buffer and disappears on submit.
type HintFunc func(line string) *Hint

// Hint is the text and styling returned by a HintFunc.
type Hint struct {
	Text  string
	Color *Color // nil renders in the terminal's default color
	Bold  bool
}

// Prompt reads edited lines from an interactive terminal. It owns no
// process-wide state: history, callbacks and encoding all live on the
// instance. A Prompt is not safe for concurrent use.
type Prompt struct {
	prefix    string
	output    io.Writer
	bell      io.Writer
	history   *History
	completer CompleterFunc
	hint      HintFunc
	enc       Encoding
	multiline bool
	bufSize   int
	terminal  terminalInterface

	// fallback is the buffered reader used by the degraded non-terminal
	// and unsupported-terminal paths; persistent so bytes buffered ahead
	// of one line are not lost before the next.
	fallback   *bufio.Reader
	fallbackIn io.Reader
}

// Option configures a Prompt.
type Option func(*Prompt)

// WithCompleter registers the tab-completion callback.
func WithCompleter(completer CompleterFunc) Option {
	return func(p *Prompt) {
		p.completer = completer
	}
}

// WithHints registers the inline hint callback.
func WithHints(hint HintFunc) Option {
	return func(p *Prompt) {
		p.hint = hint
	}
}

// WithEncoding overrides the character metrics used for all column and
// cursor arithmetic. The default treats every byte as one single-column
// character; callers wanting UTF-8 awareness supply their own Encoding.
func WithEncoding(enc Encoding) Option {
	return func(p *Prompt) {
		p.enc = enc
	}
}

// WithHistory attaches a history store. Prompts sharing one *History share
// their history. Without this option each Prompt gets its own store.
func WithHistory(h *History) Option {
	return func(p *Prompt) {
		p.history = h
	}
}

// WithMultiLine selects the multi-row renderer: long lines wrap across
// terminal rows instead of scrolling horizontally within one.
func WithMultiLine(enabled bool) Option {
	return func(p *Prompt) {
		p.multiline = enabled
	}
}

// WithLineBuffer sets the byte size of the session line buffer. Input past
// the capacity is silently ignored, as in the single-line trimming model
// this engine inherits.
func WithLineBuffer(n int) Option {
	return func(p *Prompt) {
		if n > 0 {
			p.bufSize = n
		}
	}
}

// New creates a prompt that displays prefix before the edited line. The
// prefix may contain ANSI escape sequences; they are excluded from width
// arithmetic.
//
// Example:
//
//	p, err := linenoir.New("> ",
//		linenoir.WithHistory(history),
//		linenoir.WithCompleter(linenoir.HistoryCompleter(history)),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer p.Close()
//
//	line, err := p.ReadLine()
func New(prefix string, opts ...Option) (*Prompt, error) {
	p := &Prompt{
		prefix:     prefix,
		enc:        SingleByte{},
		bufSize:    DefaultLineBuffer,
		bell:       os.Stderr,
		fallbackIn: os.Stdin,
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.history == nil {
		p.history = NewHistory()
	}
	if p.terminal == nil && stdinIsTerminal() {
		t, err := newRealTerminal()
		if err != nil {
			return nil, fmt.Errorf("failed to open terminal: %w", err)
		}
		p.terminal = t
	}
	if p.output == nil {
		if p.terminal != nil {
			p.output = p.terminal.Output()
		} else {
			p.output = os.Stdout
		}
	}
	return p, nil
}

// History returns the prompt's history store.
func (p *Prompt) History() *History {
	return p.history
}

// ReadLine reads one line from the user with full editing support, or
// falls back to a plain buffered read when stdin is not an interactive
// terminal or the terminal cannot handle escape sequences.
//
// Outcomes: the submitted line with a nil error; ErrInterrupted on Ctrl+C;
// ErrEOF on Ctrl+D with an empty buffer or end of input with nothing
// typed. Submitted lines are not added to history automatically; callers
// decide what is worth remembering via History().Add.
func (p *Prompt) ReadLine() (string, error) {
	if p.terminal == nil {
		return p.readLineNoTTY()
	}
	if isUnsupportedTerm() {
		return p.readLineUnsupported()
	}

	if err := p.terminal.SetRaw(); err != nil {
		return "", fmt.Errorf("failed to enter raw mode: %w", err)
	}
	line, err := p.edit()
	if rerr := p.terminal.Restore(); rerr != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to restore terminal state: %v\n", rerr)
	}
	fmt.Fprint(p.output, "\r\n")
	return line, err
}

// Close releases the terminal. Safe to call more than once.
func (p *Prompt) Close() error {
	if p.terminal != nil {
		return p.terminal.Close()
	}
	return nil
}

// edit drives the read-decode-dispatch-render loop for one line. The
// terminal must already be in raw mode.
func (p *Prompt) edit() (string, error) {
	width, _, _ := p.terminal.Size()

	e := &editor{
		in:        p.terminal.Input(),
		out:       p.output,
		bell:      p.bell,
		enc:       p.enc,
		prompt:    []byte(p.prefix),
		buf:       make([]byte, 0, p.bufSize-1),
		capacity:  p.bufSize - 1,
		cols:      width,
		multiline: p.multiline,
		history:   p.history,
		completer: p.completer,
		hint:      p.hint,
	}
	e.promptCol = promptColumnLen(e.enc, e.prompt)

	// The newest history entry mirrors the buffer being edited, starting
	// out empty; it is discarded again on every exit path.
	e.history.Add("")

	if _, err := e.out.Write(e.prompt); err != nil {
		e.history.pop()
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	scratch := make([]byte, codeScratchSize)
	for {
		n, code, err := e.enc.ReadCode(e.in, scratch)
		if n <= 0 || err != nil {
			return p.finish(e, err)
		}

		// Tab starts a completion interaction when a completer is
		// registered; it hands back the key that ended it.
		if code == keyTab && p.completer != nil {
			key, cerr := e.completeLine()
			if cerr != nil {
				return p.finish(e, cerr)
			}
			if key == 0 {
				continue
			}
			code = key
		}

		var opErr error
		switch code {
		case keyEnter, keyLineFeed:
			e.history.pop()
			if e.multiline {
				if err := e.moveEnd(); err != nil {
					return string(e.buf), fmt.Errorf("failed to write to terminal: %w", err)
				}
			}
			if e.hint != nil {
				// Final redraw without the hint so the committed line is
				// left on screen exactly as typed.
				hint := e.hint
				e.hint = nil
				opErr = e.refresh()
				e.hint = hint
				if opErr != nil {
					return string(e.buf), fmt.Errorf("failed to write to terminal: %w", opErr)
				}
			}
			return string(e.buf), nil

		case keyCtrlC:
			e.history.pop()
			return "", ErrInterrupted

		case keyBackspace, keyCtrlH:
			opErr = e.backspace()

		case keyCtrlD:
			// Delete the character to the right, or signal end of input
			// when the line is empty.
			if len(e.buf) > 0 {
				opErr = e.deleteForward()
			} else {
				e.history.pop()
				return "", ErrEOF
			}

		case keyCtrlT:
			opErr = e.transpose()

		case keyCtrlB:
			opErr = e.moveLeft()

		case keyCtrlF:
			opErr = e.moveRight()

		case keyCtrlP:
			opErr = e.historyMove(true)

		case keyCtrlN:
			opErr = e.historyMove(false)

		case keyEsc:
			switch decodeEscape(e.in) {
			case actionHistoryPrev:
				opErr = e.historyMove(true)
			case actionHistoryNext:
				opErr = e.historyMove(false)
			case actionMoveLeft:
				opErr = e.moveLeft()
			case actionMoveRight:
				opErr = e.moveRight()
			case actionMoveHome:
				opErr = e.moveHome()
			case actionMoveEnd:
				opErr = e.moveEnd()
			case actionMoveWordStart:
				opErr = e.moveWordStart()
			case actionMoveWordEnd:
				opErr = e.moveWordEnd()
			case actionDeleteForward:
				opErr = e.deleteForward()
			case actionDeleteNextWord:
				opErr = e.deleteNextWord()
			case actionNone:
				// Unrecognized or aborted sequence: absorbed.
			}

		case keyCtrlU:
			opErr = e.deleteLine()

		case keyCtrlK:
			opErr = e.deleteToEnd()

		case keyCtrlA:
			opErr = e.moveHome()

		case keyCtrlE:
			opErr = e.moveEnd()

		case keyCtrlL:
			if opErr = e.clearScreen(); opErr == nil {
				opErr = e.refresh()
			}

		case keyCtrlW:
			opErr = e.deletePrevWord()

		default:
			opErr = e.insert(scratch[:n])
		}

		if opErr != nil {
			e.history.pop()
			return string(e.buf), fmt.Errorf("failed to write to terminal: %w", opErr)
		}
	}
}

// finish ends a session on a read failure: the live history mirror is
// discarded and whatever was typed so far is returned. A bare end of
// stream is not an error; anything else travels with the content.
func (p *Prompt) finish(e *editor, err error) (string, error) {
	e.history.pop()
	if err == nil || errors.Is(err, io.EOF) || errors.Is(err, errShortRead) {
		return string(e.buf), nil
	}
	return string(e.buf), fmt.Errorf("failed to read input: %w", err)
}

// readLineNoTTY reads one unbounded line when standard input is a file or
// pipe rather than a terminal. End of input with nothing read is ErrEOF.
func (p *Prompt) readLineNoTTY() (string, error) {
	if p.fallback == nil {
		p.fallback = bufio.NewReader(p.fallbackIn)
	}
	line, err := p.fallback.ReadString('\n')
	if err != nil && line == "" {
		return "", ErrEOF
	}
	for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
		line = line[:len(line)-1]
	}
	return line, nil
}

// readLineUnsupported is the degraded path for terminals that cannot
// handle escape sequences: print the prompt, read a cooked-mode line, and
// strip its terminator.
func (p *Prompt) readLineUnsupported() (string, error) {
	if p.fallback == nil {
		p.fallback = bufio.NewReader(p.terminal.Input())
	}
	fmt.Fprint(p.output, p.prefix)

	line, err := p.fallback.ReadString('\n')
	if err != nil && line == "" {
		return "", ErrEOF
	}
	for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
		line = line[:len(line)-1]
	}
	return line, nil
}
