package linenoir

import (
	"fmt"
	"strings"
)

// Color represents an RGB color with optional bold formatting, used to
// style inline hints. The zero value renders the terminal's default color.
type Color struct {
	R    uint8 `json:"r"`
	G    uint8 `json:"g"`
	B    uint8 `json:"b"`
	Bold bool  `json:"bold"`
}

// Hint colors that look reasonable on both dark and light backgrounds.
var (
	// HintGray is the conventional dim-gray hint styling.
	HintGray = Color{R: 128, G: 128, B: 128}
	// HintCyan is a brighter alternative for dark themes.
	HintCyan = Color{R: 102, G: 217, B: 239}
)

// ToANSI converts the color to an ANSI SGR escape sequence.
func (c Color) ToANSI() string {
	var codes []string

	// Bold formatting comes first
	if c.Bold {
		codes = append(codes, "1")
	}

	// RGB color (true color support)
	codes = append(codes, fmt.Sprintf("38;2;%d;%d;%d", c.R, c.G, c.B))

	return fmt.Sprintf("\x1b[%sm", strings.Join(codes, ";"))
}

// Reset returns the ANSI reset sequence.
func Reset() string {
	return "\x1b[0m"
}
