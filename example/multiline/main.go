// Package main demonstrates multi-line rendering with the linenoir library.
package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/linenoir/linenoir"
)

func main() {
	p, err := linenoir.New("multiline> ",
		linenoir.WithMultiLine(true),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer p.Close()

	fmt.Println("Multi-line Rendering Example")
	fmt.Println("Long input wraps across terminal rows instead of scrolling")
	fmt.Println("Type a line longer than your terminal is wide to see it")
	fmt.Println("Press Ctrl+D on an empty line to exit")
	fmt.Println()

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
			log.Printf("Error: %v\n", err)
			continue
		}

		fmt.Printf("Read %d bytes: %s\n", len(line), line)
	}
}
