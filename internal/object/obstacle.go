package object

import (
	"github.com/tomz197/among-the-stars/internal/physics"
)

// Restitution is the bounce coefficient between two obstacles.
const Restitution = 0.8

// ObstacleFootprint is the bounding size of an asteroid.
var ObstacleFootprint = physics.Vector2{X: 64, Y: 64}

// Obstacle is a drifting asteroid. Its acceleration accumulator doubles as
// its velocity.
type Obstacle struct {
	body

	collided bool   // resolved against another obstacle this frame
	carrying Handle // player latched onto this obstacle
}

// NewObstacle creates an asteroid at pos moving with velocity.
func NewObstacle(pos, velocity physics.Vector2) *Obstacle {
	o := &Obstacle{body: newBody(KindObstacle, pos, ObstacleFootprint)}
	o.motion.AddAcceleration(velocity)
	return o
}

// Velocity returns the obstacle's current velocity.
func (o *Obstacle) Velocity() physics.Vector2 {
	return o.motion.Acceleration
}

// Collided reports whether the obstacle already bounced this frame.
func (o *Obstacle) Collided() bool {
	return o.collided
}

// Carrying returns the handle of the player attached to this obstacle.
func (o *Obstacle) Carrying() (Handle, bool) {
	return o.carrying, o.carrying.Valid()
}

// Tick moves the obstacle and drags an attached player along by the same
// displacement. A destroyed player is silently skipped.
func (o *Obstacle) Tick(ctx TickContext) {
	o.collided = false

	last := o.motion.Position
	o.motion.Integrate(ctx.Delta.Seconds(), 0)

	if !o.carrying.Valid() {
		return
	}
	p, ok := Lookup[*Player](ctx.World, o.carrying)
	if !ok {
		return
	}
	p.motion.Translate(o.motion.Position.Sub(last))
}

// bounce applies an equal-mass impulse with Restitution along the line of
// centres. Separating pairs and pairs that already bounced this frame are
// left alone.
func (o *Obstacle) bounce(other *Obstacle) {
	if o.collided || other.collided {
		return
	}

	normal := other.motion.Position.Sub(o.motion.Position).Normalize()
	relative := other.Velocity().Sub(o.Velocity())
	alongNormal := relative.Dot(normal)
	if alongNormal > 0 {
		return
	}

	j := -(1 + Restitution) * alongNormal / 2
	impulse := normal.Scale(j)

	o.motion.AddAcceleration(impulse.Neg())
	other.motion.AddAcceleration(impulse)

	o.collided = true
	other.collided = true
}

// latch attaches the player and kills it. Only one obstacle in the world may
// hold the player at a time. The grace period spares the player but not the
// attachment.
func (o *Obstacle) latch(w *World, p *Player) {
	if _, taken := w.Attached(); taken {
		return
	}
	w.attach(o.Handle())
	o.carrying = p.Handle()

	if !p.Kill() {
		w.Logger().Debug("asteroid kill ignored during grace period", "age", p.Age())
		return
	}
	w.Logger().Info("player caught by asteroid", "x", p.Position().X, "y", p.Position().Y)
}

// Appearance implements Drawable.
func (o *Obstacle) Appearance() Appearance {
	return o.appearance()
}
