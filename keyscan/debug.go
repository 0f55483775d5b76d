package keyscan

import (
	"fmt"
	"strings"
)

// Render draws keys as a rows x cols grid of x (pressed) and o (released)
// markers, with column indexes across the top and row indexes down the
// side. Purely derived from its arguments.
func Render(keys Keymap, rows, cols int) string {
	var b strings.Builder
	b.WriteString("  ")
	for c := 0; c < cols; c++ {
		b.WriteString("==")
	}
	b.WriteString("\n   ")
	for c := 0; c < cols; c++ {
		fmt.Fprintf(&b, "%d ", c)
	}
	b.WriteString("\n  ")
	for c := 0; c < cols; c++ {
		b.WriteString("==")
	}
	b.WriteByte('\n')
	for r := 0; r < rows; r++ {
		fmt.Fprintf(&b, "%d: ", r)
		for c := 0; c < cols; c++ {
			if keys.Test(uint(r*cols + c)) {
				b.WriteString("x ")
			} else {
				b.WriteString("o ")
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
