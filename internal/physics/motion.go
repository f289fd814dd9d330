package physics

// Motion is the position/acceleration state owned by a single entity.
//
// Acceleration is an accumulator: AddAcceleration sums into it and Integrate
// consumes it as a velocity. It persists across ticks until the owner calls
// Clear or adds its inverse.
type Motion struct {
	Position     Vector2
	Acceleration Vector2
}

// NewMotion creates a motion state at pos with no acceleration.
func NewMotion(pos Vector2) Motion {
	return Motion{Position: pos}
}

// AddAcceleration accumulates delta into the acceleration.
func (m *Motion) AddAcceleration(delta Vector2) {
	m.Acceleration = m.Acceleration.Add(delta)
}

// InverseAcceleration returns the negated accumulator.
func (m *Motion) InverseAcceleration() Vector2 {
	return m.Acceleration.Neg()
}

// Clear zeroes the accumulator.
func (m *Motion) Clear() {
	m.Acceleration = Vector2{}
}

// Translate moves the position by offset without touching the accumulator.
func (m *Motion) Translate(offset Vector2) {
	m.Position = m.Position.Add(offset)
}

// Integrate advances the position by the accumulator over dt seconds.
// When maxSpeed > 0 the accumulator is first rescaled so its magnitude does
// not exceed maxSpeed; direction is preserved.
func (m *Motion) Integrate(dt, maxSpeed float64) {
	m.Acceleration = ClampLength(m.Acceleration, maxSpeed)
	m.Position = m.Position.Add(m.Acceleration.Scale(dt))
}

// ClampLength caps the magnitude of v at limit. A limit <= 0 disables the
// cap and the zero vector is returned unchanged.
func ClampLength(v Vector2, limit float64) Vector2 {
	if limit <= 0 || v.IsZero() {
		return v
	}
	if v.LengthSquared() <= limit*limit {
		return v
	}
	return v.Normalize().Scale(limit)
}
