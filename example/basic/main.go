// Package main demonstrates basic usage of the linenoir library.
package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/linenoir/linenoir"
)

func main() {
	// Create a simple prompt with default settings
	p, err := linenoir.New(">>> ")
	if err != nil {
		log.Fatal(err)
	}
	defer p.Close()

	fmt.Println("Basic Line Editing Example")
	fmt.Println("Type 'exit' or 'quit' to exit")
	fmt.Println("Press Ctrl+D on an empty line to exit")
	fmt.Println()

	for {
		// Read one edited line from the user
		line, err := p.ReadLine()
		if err != nil {
			if errors.Is(err, linenoir.ErrEOF) {
				fmt.Println("Goodbye!")
				break
			}
			if errors.Is(err, linenoir.ErrInterrupted) {
				continue
			}
			log.Printf("Error: %v\n", err)
			continue
		}

		// Handle exit commands
		if line == "exit" || line == "quit" {
			fmt.Println("Goodbye!")
			break
		}

		// Echo the input back
		fmt.Printf("You typed: %s\n", line)
	}
}
