package linenoir

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// DefaultHistoryMaxLen is the number of entries a History retains unless
// changed with SetMaxLen.
const DefaultHistoryMaxLen = 100

// History is a bounded, insertion-ordered store of past input lines,
// oldest first. It persists across many ReadLine calls; construct one and
// share it between prompts that should see the same history.
//
// While a line is being edited the newest slot mirrors the live buffer so
// that Up/Down navigation can return to an in-progress edit; the mirror
// entry is discarded when the line is committed or abandoned.
//
// History is not safe for concurrent use; the engine mutates it only from
// the single editing goroutine.
type History struct {
	maxLen  int
	entries []string
}

// NewHistory creates an empty history bounded at DefaultHistoryMaxLen.
func NewHistory() *History {
	return &History{maxLen: DefaultHistoryMaxLen}
}

// Add appends a line to the history. Adding a line equal to the current
// newest entry is a no-op, and when the history is full the oldest entry
// is evicted first. It reports whether the line was stored.
func (h *History) Add(line string) bool {
	if h.maxLen < 1 {
		return false
	}

	// Don't add duplicated lines.
	if len(h.entries) > 0 && h.entries[len(h.entries)-1] == line {
		return false
	}

	if len(h.entries) == h.maxLen {
		// Ordered shift rather than a ring buffer; fine for a few
		// hundred entries.
		copy(h.entries, h.entries[1:])
		h.entries = h.entries[:len(h.entries)-1]
	}
	h.entries = append(h.entries, line)
	return true
}

// SetMaxLen changes the history bound. Values below 1 are rejected. When
// shrinking below the current count the oldest excess entries are
// discarded, preserving the order of the rest.
func (h *History) SetMaxLen(n int) bool {
	if n < 1 {
		return false
	}
	if len(h.entries) > n {
		kept := make([]string, n)
		copy(kept, h.entries[len(h.entries)-n:])
		h.entries = kept
	}
	h.maxLen = n
	return true
}

// Len returns the number of stored entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Entries returns a copy of the stored entries, oldest first.
func (h *History) Entries() []string {
	return append([]string{}, h.entries...)
}

// Clear removes all entries.
func (h *History) Clear() {
	h.entries = nil
}

// Load appends every line of the named file to the history via Add,
// stopping at the first read failure. An entry ends at the first '\r' or
// '\n'. A missing file is reported as an error and leaves the in-memory
// history untouched.
func (h *History) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open history file: %w", err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	for {
		line, err := r.ReadString('\n')
		if line != "" {
			if i := strings.IndexAny(line, "\r\n"); i >= 0 {
				line = line[:i]
			}
			h.Add(line)
		}
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("failed to read history file: %w", err)
		}
	}
}

// Save writes every entry to the named file, one per line, newline
// terminated. The file is created with owner-only read/write permissions.
func (h *History) Save(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create history file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, entry := range h.entries {
		if _, err := fmt.Fprintln(w, entry); err != nil {
			return fmt.Errorf("failed to write history entry: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write history file: %w", err)
	}
	return nil
}

// at returns the entry at index i, oldest first.
func (h *History) at(i int) string {
	return h.entries[i]
}

// overwrite replaces the entry at index i. Used to keep the live mirror of
// the buffer being edited in sync during history navigation.
func (h *History) overwrite(i int, line string) {
	h.entries[i] = line
}

// pop discards the newest entry: the live mirror slot, at commit or
// abandon time.
func (h *History) pop() {
	if len(h.entries) > 0 {
		h.entries = h.entries[:len(h.entries)-1]
	}
}
