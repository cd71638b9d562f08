package linenoir

import (
	"os"
	"path/filepath"
	"strings"
)

// HistoryCompleter returns a completer proposing history entries that
// share a case-insensitive prefix with the current line. Handy for shells
// where re-running a past command is the common case.
func HistoryCompleter(h *History) CompleterFunc {
	return func(line string) []string {
		var candidates []string
		for _, entry := range h.entries {
			if len(entry) >= len(line) && strings.EqualFold(entry[:len(line)], line) {
				candidates = append(candidates, entry)
			}
		}
		return candidates
	}
}

// FileCompleter returns a completer that treats the whole line as a file
// system path and proposes matching files and directories. Directories get
// a trailing separator so a further Tab descends into them.
func FileCompleter() CompleterFunc {
	return func(line string) []string {
		return completeFilePath(line)
	}
}

func completeFilePath(path string) []string {
	if path == "" {
		path = "."
	}

	dir := filepath.Dir(path)
	base := filepath.Base(path)

	// A trailing separator means we complete inside that directory.
	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		dir = path
		base = ""
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	candidates := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()

		// Skip hidden files unless the user is explicitly asking for one.
		if strings.HasPrefix(name, ".") && !strings.HasPrefix(base, ".") {
			continue
		}
		if base != "" && !strings.HasPrefix(name, base) {
			continue
		}

		full := filepath.Join(dir, name)
		if dir == "." && !strings.HasPrefix(path, "./") {
			full = name
		}
		if entry.IsDir() {
			full += "/"
		}
		candidates = append(candidates, full)
	}

	return candidates
}
