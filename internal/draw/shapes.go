package draw

import "math"

// Shape builders append outline vertices to dst and return it, so callers
// can reuse Canvas.BorrowPoints buffers across frames.

// Polygon appends an irregular polygon around center. Vertex i lies at
// radii[i] along an angle of rotation + i*2π/len(radii).
func Polygon(dst []Point, center Point, radii []float64, rotation float64) []Point {
	n := len(radii)
	for i, r := range radii {
		a := rotation + float64(i)*2*math.Pi/float64(n)
		dst = append(dst, Point{
			X: center.X + math.Cos(a)*r,
			Y: center.Y + math.Sin(a)*r,
		})
	}
	return dst
}

// Diamond appends a rhombus of the given width and height.
func Diamond(dst []Point, center Point, width, height float64) []Point {
	hw, hh := width/2, height/2
	return append(dst,
		Point{X: center.X, Y: center.Y - hh},
		Point{X: center.X + hw, Y: center.Y},
		Point{X: center.X, Y: center.Y + hh},
		Point{X: center.X - hw, Y: center.Y},
	)
}

// Arrow appends a triangular arrowhead centred on center pointing along
// angle (radians).
func Arrow(dst []Point, center Point, angle, length, width float64) []Point {
	cos, sin := math.Cos(angle), math.Sin(angle)
	hl, hw := length/2, width/2
	tip := Point{X: center.X + cos*hl, Y: center.Y + sin*hl}
	back := Point{X: center.X - cos*hl, Y: center.Y - sin*hl}
	return append(dst,
		tip,
		Point{X: back.X - sin*hw, Y: back.Y + cos*hw},
		Point{X: back.X + sin*hw, Y: back.Y - cos*hw},
	)
}
