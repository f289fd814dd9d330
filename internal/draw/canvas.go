package draw

import (
	"io"
	"math"
	"slices"
	"strings"
	"unicode/utf8"
)

// Canvas is a monochrome pixel buffer shown with half-block glyphs, so each
// terminal cell holds two pixels stacked vertically. Callers draw in a
// logical coordinate space that is scaled onto the pixel grid.
//
// Render only emits the cells whose glyph changed since the previous Render.
type Canvas struct {
	cols, rows int    // terminal cells
	pixH       int    // pixel rows, rows*2
	pixels     []bool // row-major, cols*pixH
	shown      []rune // glyph currently on screen per cell, 0 when unknown

	logicalW, logicalH float64
	sx, sy             float64 // logical to pixel scale

	offCol, offRow int // 0-based cells left of and above the canvas

	out      []byte    // Render scratch
	scaled   []Point   // fillPolygon scratch
	crossing []float64 // fillPolygon scanline intersections
	points   []Point   // BorrowPoints buffer
}

// NewCanvas creates an unscaled canvas: one logical unit per pixel.
func NewCanvas(cols, rows int) *Canvas {
	return NewScaledCanvas(cols, rows, float64(cols), float64(rows*2))
}

// NewScaledCanvas creates a canvas of cols x rows terminal cells showing a
// logicalW x logicalH area.
func NewScaledCanvas(cols, rows int, logicalW, logicalH float64) *Canvas {
	pixH := rows * 2
	return &Canvas{
		cols:     cols,
		rows:     rows,
		pixH:     pixH,
		pixels:   make([]bool, cols*pixH),
		shown:    make([]rune, cols*rows),
		logicalW: logicalW,
		logicalH: logicalH,
		sx:       float64(cols) / logicalW,
		sy:       float64(pixH) / logicalH,
	}
}

// SetOffset places the canvas col columns and row rows from the top-left
// corner of the terminal.
func (c *Canvas) SetOffset(col, row int) {
	c.offCol = col
	c.offRow = row
}

// OffsetCol returns the column offset.
func (c *Canvas) OffsetCol() int { return c.offCol }

// OffsetRow returns the row offset.
func (c *Canvas) OffsetRow() int { return c.offRow }

// LogicalWidth returns the width of the logical coordinate space.
func (c *Canvas) LogicalWidth() float64 { return c.logicalW }

// LogicalHeight returns the height of the logical coordinate space.
func (c *Canvas) LogicalHeight() float64 { return c.logicalH }

// TerminalWidth returns the canvas width in terminal columns.
func (c *Canvas) TerminalWidth() int { return c.cols }

// TerminalHeight returns the canvas height in terminal rows.
func (c *Canvas) TerminalHeight() int { return c.rows }

// Clear unsets every pixel. The screen keeps its content until Render.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// ForceRedraw forgets what is on the terminal so the next Render writes
// every cell. Call it after the screen was cleared externally.
func (c *Canvas) ForceRedraw() {
	clear(c.shown)
}

// Contains reports whether a logical point falls inside the canvas.
func (c *Canvas) Contains(p Point) bool {
	return p.X >= 0 && p.X < c.logicalW && p.Y >= 0 && p.Y < c.logicalH
}

// Plot sets the pixel under a logical point.
func (c *Canvas) Plot(p Point) {
	c.set(c.pixel(p))
}

func (c *Canvas) pixel(p Point) (int, int) {
	return int(math.Round(p.X * c.sx)), int(math.Round(p.Y * c.sy))
}

func (c *Canvas) set(x, y int) {
	if x < 0 || x >= c.cols || y < 0 || y >= c.pixH {
		return
	}
	c.pixels[y*c.cols+x] = true
}

// DrawLine draws a Bresenham line between two logical points.
func (c *Canvas) DrawLine(from, to Point) {
	x0, y0 := c.pixel(from)
	x1, y1 := c.pixel(to)

	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x1 < x0 {
		sx = -1
	}
	if y1 < y0 {
		sy = -1
	}

	e := dx + dy
	for {
		c.set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// DrawPolygon outlines a closed polygon and optionally fills it.
func (c *Canvas) DrawPolygon(points []Point, filled bool) {
	n := len(points)
	if n < 3 {
		return
	}
	if filled {
		c.fillPolygon(points)
	}
	for i, p := range points {
		c.DrawLine(p, points[(i+1)%n])
	}
}

// fillPolygon is an even-odd scanline fill in pixel space, clipped to the
// canvas.
func (c *Canvas) fillPolygon(points []Point) {
	c.scaled = c.scaled[:0]
	top, bottom := math.Inf(1), math.Inf(-1)
	for _, p := range points {
		s := Point{X: p.X * c.sx, Y: p.Y * c.sy}
		c.scaled = append(c.scaled, s)
		top = math.Min(top, s.Y)
		bottom = math.Max(bottom, s.Y)
	}

	n := len(c.scaled)
	yStart := max(int(math.Floor(top)), 0)
	yEnd := min(int(math.Ceil(bottom)), c.pixH-1)
	for y := yStart; y <= yEnd; y++ {
		scan := float64(y) + 0.5

		c.crossing = c.crossing[:0]
		for i, a := range c.scaled {
			b := c.scaled[(i+1)%n]
			if (a.Y <= scan) != (b.Y <= scan) {
				c.crossing = append(c.crossing, a.X+(scan-a.Y)/(b.Y-a.Y)*(b.X-a.X))
			}
		}
		slices.Sort(c.crossing)

		for i := 0; i+1 < len(c.crossing); i += 2 {
			xStart := max(int(math.Ceil(c.crossing[i])), 0)
			xEnd := min(int(math.Floor(c.crossing[i+1])), c.cols-1)
			for x := xStart; x <= xEnd; x++ {
				c.pixels[y*c.cols+x] = true
			}
		}
	}
}

// glyph returns the half-block character for a terminal cell.
func (c *Canvas) glyph(col, row int) rune {
	top := c.pixels[2*row*c.cols+col]
	bottom := c.pixels[(2*row+1)*c.cols+col]
	switch {
	case top && bottom:
		return BlockFull
	case top:
		return BlockUpperHalf
	case bottom:
		return BlockLowerHalf
	default:
		return BlockEmpty
	}
}

// Render writes every cell whose glyph differs from what is on screen.
// Cells never drawn are assumed blank.
func (c *Canvas) Render(w io.Writer) error {
	c.out = c.out[:0]
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			g := c.glyph(col, row)
			i := row*c.cols + col
			if c.shown[i] == g || (c.shown[i] == 0 && g == BlockEmpty) {
				continue
			}
			c.shown[i] = g
			c.out = appendCursor(c.out, c.offCol+col+1, c.offRow+row+1)
			c.out = utf8.AppendRune(c.out, g)
		}
	}
	if len(c.out) == 0 {
		return nil
	}
	_, err := w.Write(c.out)
	return err
}

// RenderBorder frames the canvas and footerRows rows below it when the
// terminal is larger than the render area. Side bars need a column offset,
// top and bottom rules need a row offset; corners need both.
func (c *Canvas) RenderBorder(w io.Writer, footerRows int) error {
	sides := c.offCol >= 1
	caps := c.offRow >= 1
	if !sides && !caps {
		return nil
	}

	left, right := c.offCol, c.offCol+c.cols+1
	top, bottom := c.offRow, c.offRow+c.rows+footerRows+1

	c.out = c.out[:0]
	if caps {
		rule := strings.Repeat("─", c.cols)
		startCol := left + 1
		tl, tr, bl, br := "", "", "", ""
		if sides {
			startCol = left
			tl, tr, bl, br = "┌", "┐", "└", "┘"
		}
		c.out = appendCursor(c.out, startCol, top)
		c.out = append(c.out, tl+rule+tr...)
		c.out = appendCursor(c.out, startCol, bottom)
		c.out = append(c.out, bl+rule+br...)
	}
	if sides {
		for row := top + 1; row < bottom; row++ {
			c.out = appendCursor(c.out, left, row)
			c.out = append(c.out, "│"...)
			c.out = appendCursor(c.out, right, row)
			c.out = append(c.out, "│"...)
		}
	}
	_, err := w.Write(c.out)
	return err
}

// BorrowPoints returns an empty slice with room for n points for the shape
// builders to append to. It is only valid until the next call.
func (c *Canvas) BorrowPoints(n int) []Point {
	if cap(c.points) < n {
		c.points = make([]Point, 0, n)
	}
	return c.points[:0]
}
