package linenoir

import (
	"bytes"
	"io"
	"strings"
)

// mockTerminal implements terminalInterface for tests.
//
// Input is a pre-scripted byte sequence, output accumulates into a buffer
// for inspection, and the terminal size is fixed so layout-sensitive tests
// are deterministic. Raw mode transitions are tracked for verification.
type mockTerminal struct {
	input   *strings.Reader
	output  bytes.Buffer
	rawMode bool
	width   int
	height  int
}

func newMockTerminal(input string) *mockTerminal {
	return &mockTerminal{
		input:  strings.NewReader(input),
		width:  80,
		height: 24,
	}
}

func (m *mockTerminal) SetRaw() error {
	m.rawMode = true
	return nil
}

func (m *mockTerminal) Restore() error {
	m.rawMode = false
	return nil
}

func (m *mockTerminal) Size() (width, height int, err error) {
	return m.width, m.height, nil
}

func (m *mockTerminal) Input() io.Reader {
	return m.input
}

func (m *mockTerminal) Output() io.Writer {
	return &m.output
}

func (m *mockTerminal) Close() error {
	return nil
}
