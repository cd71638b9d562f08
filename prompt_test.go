package linenoir

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestPrompt wires a Prompt to a scripted mock terminal, bypassing the
// real TTY probe in New.
func newTestPrompt(input string, opts ...Option) (*Prompt, *mockTerminal) {
	term := newMockTerminal(input)
	p := &Prompt{
		prefix:   "> ",
		enc:      SingleByte{},
		bufSize:  DefaultLineBuffer,
		bell:     io.Discard,
		history:  NewHistory(),
		terminal: term,
		output:   term.Output(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, term
}

// forceInteractive makes isUnsupportedTerm report a capable terminal.
func forceInteractive(t *testing.T) {
	t.Helper()
	t.Setenv("TERM", "xterm-256color")
}

func TestReadLineSubmitsTypedText(t *testing.T) {
	forceInteractive(t)

	p, term := newTestPrompt("hello\r")
	line, err := p.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "hello", line)
	assert.False(t, term.rawMode, "raw mode released after the read")
	assert.Contains(t, term.output.String(), "> ")
}

func TestReadLineDoesNotRecordHistory(t *testing.T) {
	forceInteractive(t)

	// Submitting a line leaves history exactly as it was; recording is
	// the caller's decision.
	p, _ := newTestPrompt("remember me\r")
	p.history.Add("earlier")

	_, err := p.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, []string{"earlier"}, p.History().Entries())
}

func TestReadLineCtrlC(t *testing.T) {
	forceInteractive(t)

	p, _ := newTestPrompt("abc\x03")
	p.history.Add("kept")

	line, err := p.ReadLine()
	assert.ErrorIs(t, err, ErrInterrupted)
	assert.Equal(t, "", line)
	assert.Equal(t, []string{"kept"}, p.History().Entries(), "live mirror discarded on interrupt")
}

func TestReadLineCtrlDEmptyBuffer(t *testing.T) {
	forceInteractive(t)

	p, _ := newTestPrompt("\x04")
	p.history.Add("kept")

	line, err := p.ReadLine()
	assert.ErrorIs(t, err, ErrEOF)
	assert.Equal(t, "", line)
	assert.Equal(t, []string{"kept"}, p.History().Entries(), "live mirror discarded on EOF")
}

func TestReadLineCtrlDDeletesForward(t *testing.T) {
	forceInteractive(t)

	// With text in the buffer Ctrl+D deletes under the cursor instead of
	// ending the session.
	p, _ := newTestPrompt("abc\x02\x04\r")
	line, err := p.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "ab", line)
}

func TestReadLineEndOfInputReturnsContent(t *testing.T) {
	forceInteractive(t)

	// Input dries up mid-line: whatever was typed comes back without an
	// error, and the live mirror is gone.
	p, _ := newTestPrompt("partial")
	line, err := p.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "partial", line)
	assert.Equal(t, 0, p.History().Len())
}

func TestReadLineEditingKeys(t *testing.T) {
	forceInteractive(t)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "backspace", input: "abcd\x7f\r", want: "abc"},
		{name: "ctrl+h", input: "abcd\b\r", want: "abc"},
		{name: "ctrl+u clears line", input: "abc\x15xyz\r", want: "xyz"},
		{name: "ctrl+a then type", input: "bc\x01a\r", want: "abc"},
		{name: "ctrl+a ctrl+k deletes to end", input: "abc\x01\x0b\r", want: ""},
		{name: "ctrl+e returns to end", input: "ab\x01\x05c\r", want: "abc"},
		{name: "ctrl+w deletes previous word", input: "foo bar\x17\r", want: "foo "},
		{name: "ctrl+t transposes", input: "ab\x02\x14\r", want: "ba"},
		{name: "ctrl+b ctrl+f round trip", input: "ab\x02\x06c\r", want: "abc"},
		{name: "left arrow insert", input: "ac\x1b[Db\r", want: "abc"},
		{name: "home key", input: "bc\x1b[Ha\r", want: "abc"},
		{name: "delete key", input: "abc\x1b[H\x1b[3~\r", want: "bc"},
		{name: "meta d deletes next word", input: "foo bar\x01\x1bd\r", want: " bar"},
		{name: "unknown escape absorbed", input: "ab\x1b[5~c\r", want: "abc"},
		{name: "line feed submits too", input: "ok\n", want: "ok"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newTestPrompt(tt.input)
			line, err := p.ReadLine()
			require.NoError(t, err)
			assert.Equal(t, tt.want, line)
		})
	}
}

func TestReadLineHistoryNavigation(t *testing.T) {
	forceInteractive(t)

	h := NewHistory()
	h.Add("first")
	h.Add("second")

	p, _ := newTestPrompt("\x1b[A\r", WithHistory(h))
	line, err := p.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "second", line)
	assert.Equal(t, []string{"first", "second"}, h.Entries(), "mirror removed after submit")
}

func TestReadLineHistoryUpUpDown(t *testing.T) {
	forceInteractive(t)

	h := NewHistory()
	h.Add("first")
	h.Add("second")

	p, _ := newTestPrompt("\x1b[A\x1b[A\x1b[B\r", WithHistory(h))
	line, err := p.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "second", line)
}

func TestReadLineHistoryRestoresDraft(t *testing.T) {
	forceInteractive(t)

	h := NewHistory()
	h.Add("older")

	// Type a draft, go up into history, come back down: the draft is
	// intact in the live mirror.
	p, _ := newTestPrompt("draft\x1b[A\x1b[B\r", WithHistory(h))
	line, err := p.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "draft", line)
}

func TestReadLineCompletion(t *testing.T) {
	forceInteractive(t)

	completer := func(line string) []string {
		if strings.HasPrefix("help", line) {
			return []string{"help"}
		}
		return nil
	}

	p, _ := newTestPrompt("he\t\r", WithCompleter(completer))
	line, err := p.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "help", line)
}

func TestReadLineCompletionEscapeKeepsArrowsWorking(t *testing.T) {
	forceInteractive(t)

	// A left-arrow press abandons the completion preview and is still
	// dispatched as cursor movement: the following character lands
	// mid-buffer, not at the end.
	completer := func(string) []string { return []string{"nope"} }

	p, _ := newTestPrompt("ab\t\x1b[Dc\r", WithCompleter(completer))
	line, err := p.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "acb", line)
}

func TestReadLineTabWithoutCompleterInserts(t *testing.T) {
	forceInteractive(t)

	p, _ := newTestPrompt("a\tb\r")
	line, err := p.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "a\tb", line)
}

func TestReadLineHintSuppressedOnSubmit(t *testing.T) {
	forceInteractive(t)

	hint := func(string) *Hint { return &Hint{Text: " <- hint"} }
	p, term := newTestPrompt("hi\r", WithHints(hint))

	line, err := p.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "hi", line)
	// The final redraw drops the hint so the committed line stands alone.
	assert.True(t, strings.HasSuffix(term.output.String(), "\r> hi\x1b[0K\r\x1b[4C\r\n"),
		"output: %q", term.output.String())
}

func TestReadLineClearScreen(t *testing.T) {
	forceInteractive(t)

	p, term := newTestPrompt("a\x0c\r")
	line, err := p.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "a", line)
	assert.Contains(t, term.output.String(), "\x1b[H\x1b[2J")
}

func TestReadLineMultiLine(t *testing.T) {
	forceInteractive(t)

	p, term := newTestPrompt("hello\r", WithMultiLine(true))
	term.width = 10

	line, err := p.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "hello", line)
}

func TestReadLineUnsupportedTerminal(t *testing.T) {
	t.Setenv("TERM", "dumb")

	p, term := newTestPrompt("plain line\n")
	line, err := p.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "plain line", line)
	assert.False(t, term.rawMode, "raw mode never entered on a dumb terminal")
	assert.Contains(t, term.output.String(), "> ")
	assert.NotContains(t, term.output.String(), "\x1b[", "no escape sequences emitted")
}

func TestReadLineUnsupportedTerminalEOF(t *testing.T) {
	t.Setenv("TERM", "dumb")

	p, _ := newTestPrompt("")
	_, err := p.ReadLine()
	assert.ErrorIs(t, err, ErrEOF)
}

func TestReadLineNoTTY(t *testing.T) {
	t.Parallel()

	p := &Prompt{
		prefix:     "> ",
		enc:        SingleByte{},
		bufSize:    DefaultLineBuffer,
		bell:       io.Discard,
		history:    NewHistory(),
		fallbackIn: strings.NewReader("one\ntwo"),
	}

	line, err := p.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "one", line)

	// A final line without a terminator still comes through.
	line, err = p.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "two", line)

	_, err = p.ReadLine()
	assert.ErrorIs(t, err, ErrEOF)
}

func TestReadLineNoTTYStripsCRLF(t *testing.T) {
	t.Parallel()

	p := &Prompt{
		prefix:     "> ",
		enc:        SingleByte{},
		bufSize:    DefaultLineBuffer,
		bell:       io.Discard,
		history:    NewHistory(),
		fallbackIn: strings.NewReader("windows line\r\nplain line\n"),
	}

	line, err := p.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "windows line", line)

	line, err = p.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "plain line", line)
}

func TestNewDefaults(t *testing.T) {
	t.Parallel()

	p, err := New("> ", WithLineBuffer(128), WithMultiLine(true))
	require.NoError(t, err)
	defer p.Close() //nolint:errcheck

	assert.Equal(t, 128, p.bufSize)
	assert.True(t, p.multiline)
	assert.NotNil(t, p.History())
}

func TestCloseIsIdempotent(t *testing.T) {
	forceInteractive(t)

	p, _ := newTestPrompt("x\r")
	require.NoError(t, p.Close())
	require.NoError(t, p.Close())
}
