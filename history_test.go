package linenoir

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryAdd(t *testing.T) {
	t.Parallel()

	h := NewHistory()
	assert.True(t, h.Add("one"))
	assert.True(t, h.Add("two"))
	assert.Equal(t, []string{"one", "two"}, h.Entries())
}

func TestHistoryAddRejectsConsecutiveDuplicates(t *testing.T) {
	t.Parallel()

	h := NewHistory()
	h.Add("cmd")
	assert.False(t, h.Add("cmd"), "consecutive duplicate should be rejected")
	assert.Equal(t, 1, h.Len())

	// Non-consecutive duplicates are fine.
	h.Add("other")
	assert.True(t, h.Add("cmd"))
	assert.Equal(t, []string{"cmd", "other", "cmd"}, h.Entries())
}

func TestHistoryAddIdempotence(t *testing.T) {
	t.Parallel()

	// Add(x) twice in a row is equivalent to Add(x) once.
	a := NewHistory()
	a.Add("x")
	b := NewHistory()
	b.Add("x")
	b.Add("x")
	assert.Equal(t, a.Entries(), b.Entries())
}

func TestHistoryEvictsOldestAtCapacity(t *testing.T) {
	t.Parallel()

	h := NewHistory()
	require.True(t, h.SetMaxLen(2))
	h.Add("a")
	h.Add("b")
	h.Add("c")
	assert.Equal(t, []string{"b", "c"}, h.Entries())
}

func TestHistoryBoundHolds(t *testing.T) {
	t.Parallel()

	h := NewHistory()
	h.SetMaxLen(5)
	for i := 0; i < 100; i++ {
		h.Add(string(rune('a' + i%26)))
		if h.Len() > 5 {
			t.Fatalf("history grew past its bound: %d", h.Len())
		}
	}
	assert.Equal(t, 5, h.Len())
}

func TestHistorySetMaxLen(t *testing.T) {
	t.Parallel()

	h := NewHistory()
	h.Add("a")
	h.Add("b")
	h.Add("c")

	assert.False(t, h.SetMaxLen(0), "max length below 1 should be rejected")
	assert.False(t, h.SetMaxLen(-3))
	assert.Equal(t, 3, h.Len())

	// Shrinking keeps the newest entries, in order.
	assert.True(t, h.SetMaxLen(2))
	assert.Equal(t, []string{"b", "c"}, h.Entries())

	// Growing never invents entries.
	assert.True(t, h.SetMaxLen(10))
	assert.Equal(t, []string{"b", "c"}, h.Entries())
}

func TestHistoryClear(t *testing.T) {
	t.Parallel()

	h := NewHistory()
	h.Add("a")
	h.Clear()
	assert.Equal(t, 0, h.Len())
}

func TestHistorySaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "history")

	h := NewHistory()
	h.Add("first command")
	h.Add("second command")
	h.Add("third command")
	require.NoError(t, h.Save(path))

	loaded := NewHistory()
	require.NoError(t, loaded.Load(path))
	assert.Equal(t, h.Entries(), loaded.Entries())
}

func TestHistorySavePermissions(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("unix permission bits are not meaningful on windows")
	}

	path := filepath.Join(t.TempDir(), "history")
	h := NewHistory()
	h.Add("secret command")
	require.NoError(t, h.Save(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm(), "history file should be owner-only")
}

func TestHistoryLoadMissingFile(t *testing.T) {
	t.Parallel()

	h := NewHistory()
	h.Add("kept")
	err := h.Load(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.Error(t, err)
	assert.Equal(t, []string{"kept"}, h.Entries(), "failed load must not alter existing history")
}

func TestHistoryLoadHandlesCarriageReturns(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "history")
	require.NoError(t, os.WriteFile(path, []byte("one\r\ntwo\nthree"), 0600))

	h := NewHistory()
	require.NoError(t, h.Load(path))
	assert.Equal(t, []string{"one", "two", "three"}, h.Entries())
}

func TestHistoryLoadRespectsMaxLen(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "history")
	require.NoError(t, os.WriteFile(path, []byte("a\nb\nc\nd\n"), 0600))

	h := NewHistory()
	h.SetMaxLen(2)
	require.NoError(t, h.Load(path))
	assert.Equal(t, []string{"c", "d"}, h.Entries())
}

func TestHistoryLiveMirrorHelpers(t *testing.T) {
	t.Parallel()

	h := NewHistory()
	h.Add("real entry")
	h.Add("") // mirror slot

	h.overwrite(h.Len()-1, "in-progress edit")
	assert.Equal(t, "in-progress edit", h.at(h.Len()-1))

	h.pop()
	assert.Equal(t, []string{"real entry"}, h.Entries())

	// pop on an empty store must not panic.
	h.pop()
	h.pop()
	assert.Equal(t, 0, h.Len())
}
