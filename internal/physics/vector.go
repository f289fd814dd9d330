// Package physics provides vector math, motion integration and the spatial
// hash used for broad-phase collision detection.
package physics

import "math"

// Vector2 is a 2D vector used for positions, velocities and directions.
type Vector2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by factor.
func (v Vector2) Scale(factor float64) Vector2 {
	return Vector2{X: v.X * factor, Y: v.Y * factor}
}

// Neg returns the inverse vector.
func (v Vector2) Neg() Vector2 {
	return Vector2{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of two vectors.
func (v Vector2) Dot(o Vector2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Length returns the magnitude of the vector.
func (v Vector2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LengthSquared avoids the sqrt when only comparing magnitudes.
func (v Vector2) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns a unit vector in the same direction.
// The zero vector has no direction and normalizes to itself.
func (v Vector2) Normalize() Vector2 {
	length := v.Length()
	if length == 0 {
		return Vector2{}
	}
	return Vector2{X: v.X / length, Y: v.Y / length}
}

// IsZero reports whether both components are zero.
func (v Vector2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Vector2) float64 {
	return a.Sub(b).Length()
}

// DistanceSquared is Distance without the sqrt.
func DistanceSquared(a, b Vector2) float64 {
	return a.Sub(b).LengthSquared()
}

// FromAngle builds a vector of the given magnitude pointing along angle (radians).
func FromAngle(angle, magnitude float64) Vector2 {
	return Vector2{X: magnitude * math.Cos(angle), Y: magnitude * math.Sin(angle)}
}
