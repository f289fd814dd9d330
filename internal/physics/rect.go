package physics

// Rect is an axis-aligned bounding box described by its top-left corner and size.
type Rect struct {
	Min    Vector2
	Width  float64
	Height float64
}

// RectAround builds a rectangle of the given footprint centred on center.
func RectAround(center Vector2, footprint Vector2) Rect {
	return Rect{
		Min:    Vector2{X: center.X - footprint.X/2, Y: center.Y - footprint.Y/2},
		Width:  footprint.X,
		Height: footprint.Y,
	}
}

// Max returns the bottom-right corner.
func (r Rect) Max() Vector2 {
	return Vector2{X: r.Min.X + r.Width, Y: r.Min.Y + r.Height}
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vector2 {
	return Vector2{X: r.Min.X + r.Width/2, Y: r.Min.Y + r.Height/2}
}

// Intersects reports whether two rectangles overlap with a non-empty area.
// Rectangles that only share an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	rMax, oMax := r.Max(), o.Max()
	return r.Min.X < oMax.X && o.Min.X < rMax.X &&
		r.Min.Y < oMax.Y && o.Min.Y < rMax.Y
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(p Vector2) bool {
	rMax := r.Max()
	return p.X >= r.Min.X && p.X < rMax.X && p.Y >= r.Min.Y && p.Y < rMax.Y
}
