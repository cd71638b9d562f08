// Package main demonstrates persistent history with the linenoir library.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/linenoir/linenoir"
)

func main() {
	historyPath := filepath.Join(os.TempDir(), "linenoir_history")

	history := linenoir.NewHistory()
	// A missing file on the first run is fine.
	if err := history.Load(historyPath); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not load history: %v", err)
	}

	p, err := linenoir.New("history> ",
		linenoir.WithHistory(history),
		linenoir.WithCompleter(linenoir.HistoryCompleter(history)),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer p.Close()

	fmt.Println("History Example")
	fmt.Printf("History file: %s\n", historyPath)
	fmt.Println("Use ↑/↓ to navigate past commands, Tab to complete from history")
	fmt.Println("Type 'exit' to quit")
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

		if line == "exit" {
			break
		}
		if line == "" {
			continue
		}

		history.Add(line)
		fmt.Printf("Executed: %s\n", line)
	}

	if err := history.Save(historyPath); err != nil {
		log.Printf("Warning: could not save history: %v", err)
	}
	fmt.Println("Goodbye!")
}
