package linenoir

import (
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-tty"
	"golang.org/x/term"
)

// terminalInterface abstracts the terminal plumbing the engine depends on:
// raw mode switching, width probing, and the raw input/output streams.
//
// The editing engine itself only ever sees the Input reader and Output
// writer; everything byte-level (escape decoding, refresh sequences) is the
// engine's job. Implementations:
//   - realTerminal: go-tty + golang.org/x/term for production use
//   - mockTerminal: scripted input for tests
type terminalInterface interface {
	SetRaw() error                        // Enter raw mode for unbuffered key delivery
	Restore() error                       // Restore original terminal settings
	Size() (width, height int, err error) // Terminal dimensions with safe fallbacks
	Input() io.Reader                     // Raw byte stream from the keyboard
	Output() io.Writer                    // Escape-capable output stream
	Close() error                         // Release resources
}

// realTerminal is the production terminalInterface built on go-tty, with
// golang.org/x/term handling raw-mode state and go-colorable providing
// ANSI pass-through on Windows.
type realTerminal struct {
	tty           *tty.TTY
	output        io.Writer
	closed        bool        // guard against double Close, which panics on Windows
	stdinFd       int
	originalState *term.State // terminal state to restore after raw mode
}

func newRealTerminal() (*realTerminal, error) {
	t, err := tty.Open()
	if err != nil {
		return nil, err
	}

	var output io.Writer = t.Output()
	if runtime.GOOS == "windows" {
		output = colorable.NewColorableStdout()
	}

	return &realTerminal{
		tty:     t,
		output:  output,
		stdinFd: int(os.Stdin.Fd()),
	}, nil
}

func (t *realTerminal) SetRaw() error {
	// Capture the current state every time so restoration works no matter
	// how many times raw mode is entered and left.
	if term.IsTerminal(t.stdinFd) {
		state, err := term.GetState(t.stdinFd)
		if err != nil {
			return err
		}
		t.originalState = state

		if _, err := term.MakeRaw(t.stdinFd); err != nil {
			return err
		}
	}
	return nil
}

func (t *realTerminal) Restore() error {
	if t.originalState != nil && term.IsTerminal(t.stdinFd) {
		err := term.Restore(t.stdinFd, t.originalState)
		t.originalState = nil
		return err
	}
	return nil
}

func (t *realTerminal) Size() (width, height int, err error) {
	w, h, err := t.tty.Size()
	if err != nil || w <= 0 || h <= 0 {
		// Safe fallback so column arithmetic never divides by zero.
		return 80, 24, err
	}
	return w, h, nil
}

func (t *realTerminal) Input() io.Reader {
	return t.tty.Input()
}

func (t *realTerminal) Output() io.Writer {
	return t.output
}

func (t *realTerminal) Close() error {
	if t.closed {
		return nil
	}
	if t.tty != nil {
		err := t.tty.Close()
		t.closed = true
		return err
	}
	return nil
}

// stdinIsTerminal reports whether standard input is attached to an
// interactive terminal. When it is not, ReadLine degrades to a plain
// buffered read instead of driving the editing engine.
func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// unsupportedTerms are terminal types known not to understand the escape
// sequences the renderer emits.
var unsupportedTerms = []string{"dumb", "cons25", "emacs"}

// isUnsupportedTerm reports whether $TERM names a terminal that cannot
// handle basic escape sequences.
func isUnsupportedTerm() bool {
	name := os.Getenv("TERM")
	for _, t := range unsupportedTerms {
		if strings.EqualFold(name, t) {
			return true
		}
	}
	return false
}
