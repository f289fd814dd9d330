// Package draw renders to ANSI terminals: a half-block pixel canvas, shape
// builders and a chunked writer for network sessions.
package draw

import "io"

// Point is a position in a canvas's logical coordinate space.
type Point struct {
	X, Y float64
}

// ANSI control sequences.
const (
	seqClear      = "\033[H\033[2J"
	seqHideCursor = "\033[?25l"
	seqShowCursor = "\033[?25h"
)

// Half-block glyphs. A terminal cell shows two vertically stacked pixels.
const (
	BlockFull      = '█'
	BlockEmpty     = ' '
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Shades runs from empty to solid.
var Shades = []rune{' ', '░', '▒', '▓', '█'}

// ShadeLevel maps an intensity in [0, 1] onto Shades. Out of range values
// are clamped.
func ShadeLevel(intensity float64) rune {
	last := len(Shades) - 1
	idx := int(intensity * float64(last))
	return Shades[min(max(idx, 0), last)]
}

// ClearScreen clears the terminal and homes the cursor.
func ClearScreen(w io.Writer) error {
	_, err := io.WriteString(w, seqClear)
	return err
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) error {
	_, err := io.WriteString(w, seqHideCursor)
	return err
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) error {
	_, err := io.WriteString(w, seqShowCursor)
	return err
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
