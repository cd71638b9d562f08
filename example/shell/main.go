// Package main provides a shell-like file explorer example using the
// linenoir library.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strings"

	"github.com/linenoir/linenoir"
)

func main() {
	fmt.Println("Shell-like File Explorer Example")
	fmt.Println("================================")
	fmt.Println("Commands:")
	fmt.Println("  ls [path]    - List directory contents")
	fmt.Println("  cd [path]    - Change directory")
	fmt.Println("  cat [file]   - Show file contents")
	fmt.Println("  pwd          - Show current directory")
	fmt.Println("  exit/quit    - Exit")
	fmt.Println()
	fmt.Println("Use Tab for file/directory completion!")
	fmt.Println()

	history := linenoir.NewHistory()

	p, err := linenoir.New("shell> ",
		linenoir.WithCompleter(shellCompleter()),
		linenoir.WithHistory(history),
	)
	if err != nil {
		log.Fatalf("failed to create prompt: %v", err)
	}
	defer p.Close()

	for {
		line, err := p.ReadLine()
		if err != nil {
			if errors.Is(err, linenoir.ErrEOF) {
				fmt.Println("Goodbye!")
				break
			}
			if errors.Is(err, linenoir.ErrInterrupted) {
				continue
			}
			fmt.Printf("Error: %v\n", err)
			break
		}

		line = strings.TrimSpace(line)

		// Handle exit commands
		if line == "exit" || line == "quit" {
			fmt.Println("Goodbye!")
			break
		}
		if line == "" {
			continue
		}

		history.Add(line)
		executeCommand(line)
		fmt.Println()
	}
}

var builtins = []string{"ls", "cd", "cat", "pwd", "exit", "quit"}

// shellCompleter completes the first word from the builtin commands and
// any later word as a file system path.
func shellCompleter() linenoir.CompleterFunc {
	files := linenoir.FileCompleter()

	return func(line string) []string {
		words := strings.Fields(line)

		// Still typing the command itself.
		if len(words) <= 1 && !strings.HasSuffix(line, " ") {
			prefix := ""
			if len(words) == 1 {
				prefix = words[0]
			}
			var candidates []string
			for _, cmd := range builtins {
				if strings.HasPrefix(cmd, prefix) {
					candidates = append(candidates, cmd+" ")
				}
			}
			return candidates
		}

		// Complete the argument as a path, keeping the command prefix.
		cmd := words[0]
		arg := strings.TrimPrefix(line, cmd)
		arg = strings.TrimLeft(arg, " ")

		var candidates []string
		for _, path := range files(arg) {
			candidates = append(candidates, cmd+" "+path)
		}
		return candidates
	}
}

func executeCommand(input string) {
	words := strings.Fields(input)
	if len(words) == 0 {
		return
	}

	cmd := words[0]
	args := words[1:]

	switch cmd {
	case "pwd":
		cwd, err := os.Getwd()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
		} else {
			fmt.Println(cwd)
		}

	case "ls":
		path := "."
		if len(args) > 0 {
			path = args[0]
		}

		entries, err := os.ReadDir(path)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		for _, entry := range entries {
			name := entry.Name()
			if entry.IsDir() {
				fmt.Printf("  %s/\n", name)
			} else {
				fmt.Printf("  %s\n", name)
			}
		}

	case "cd":
		if len(args) == 0 {
			fmt.Println("Error: cd requires a directory argument")
			return
		}
		if err := os.Chdir(args[0]); err != nil {
			fmt.Printf("Error: %v\n", err)
		}

	case "cat":
		if len(args) == 0 {
			fmt.Println("Error: cat requires a file argument")
			return
		}

		content, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		// Limit output for large files
		if len(content) > 1000 {
			fmt.Printf("%s\n... (truncated)\n", content[:1000])
		} else {
			fmt.Printf("%s\n", content)
		}

	default:
		// Try to execute as an external command.
		// #nosec G204 - example program that intentionally executes user input
		out, err := exec.CommandContext(context.Background(), cmd, args...).CombinedOutput()
		if err != nil {
			fmt.Printf("Error executing '%s': %v\n", cmd, err)
		} else {
			fmt.Print(string(out))
		}
	}
}
