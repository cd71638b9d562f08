// Package main demonstrates tab completion and inline hints with the
// linenoir library.
package main

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/linenoir/linenoir"
)

var commands = []string{
	"help",
	"hello",
	"history",
	"status",
	"start",
	"stop",
	"quit",
}

func main() {
	completer := func(line string) []string {
		if line == "" {
			return nil
		}
		var candidates []string
		for _, cmd := range commands {
			if strings.HasPrefix(cmd, line) {
				candidates = append(candidates, cmd)
			}
		}
		return candidates
	}

	// Show the rest of the single matching command as a gray hint.
	hint := func(line string) *linenoir.Hint {
		if line == "" {
			return nil
		}
		var match string
		for _, cmd := range commands {
			if strings.HasPrefix(cmd, line) && cmd != line {
				if match != "" {
					return nil // ambiguous
				}
				match = cmd
			}
		}
		if match == "" {
			return nil
		}
		return &linenoir.Hint{
			Text:  match[len(line):],
			Color: &linenoir.HintGray,
		}
	}

	p, err := linenoir.New("cmd> ",
		linenoir.WithCompleter(completer),
		linenoir.WithHints(hint),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer p.Close()

	fmt.Println("Autocomplete Example")
	fmt.Println("Press Tab to cycle through completions; hints appear in gray")
	fmt.Println("Type 'quit' to exit")
	fmt.Println()

	for {
		line, err := p.ReadLine()
		if err != nil {
			if errors.Is(err, linenoir.ErrEOF) || errors.Is(err, linenoir.ErrInterrupted) {
				break
			}
			log.Printf("Error: %v\n", err)
			continue
		}

		if line == "quit" {
			break
		}
		if line != "" {
			p.History().Add(line)
			fmt.Printf("Command: %s\n", line)
		}
	}
	fmt.Println("Goodbye!")
}
