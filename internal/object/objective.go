package object

import (
	"math"
	"math/rand/v2"

	"github.com/tomz197/among-the-stars/internal/physics"
)

// Objective tuning.
const (
	ObjectiveFuelRate   = 2.0  // fuel per second while docked
	ObjectiveOxygenRate = 10.0 // oxygen per second while docked

	placementAttempts = 64
)

// ObjectiveFootprint is the bounding size of the spaceship.
var ObjectiveFootprint = physics.Vector2{X: 240, Y: 160}

// Objective is the spaceship the player has to reach and linger near.
type Objective struct {
	body

	player Handle // set on first contact
}

// NewObjective creates the spaceship at pos.
func NewObjective(pos physics.Vector2) *Objective {
	return &Objective{body: newBody(KindObjective, pos, ObjectiveFootprint)}
}

// PlaceObjective picks a point uniformly in [-spread, spread]² that is at
// least minDistance from the origin. After a bounded number of rejections it
// falls back to a point exactly minDistance away.
func PlaceObjective(rng *rand.Rand, minDistance, spread float64) physics.Vector2 {
	for i := 0; i < placementAttempts; i++ {
		p := physics.Vector2{
			X: (rng.Float64()*2 - 1) * spread,
			Y: (rng.Float64()*2 - 1) * spread,
		}
		if p.Length() >= minDistance {
			return p
		}
	}
	return physics.FromAngle(rng.Float64()*2*math.Pi, minDistance)
}

// Docked reports whether the objective has met the player.
func (o *Objective) Docked() (Handle, bool) {
	return o.player, o.player.Valid()
}

// Tick drives the player's proximity timer. Sustained overlap advances the
// timer and trickles resources; leaving resets it.
func (o *Objective) Tick(ctx TickContext) {
	p, ok := Lookup[*Player](ctx.World, o.player)
	if !ok {
		return
	}

	if !o.Bounds().Intersects(p.Bounds()) {
		p.ResetTimer()
		return
	}

	dt := ctx.Delta.Seconds()
	p.UpdateTimer(dt)
	p.AddResources(ObjectiveFuelRate*dt, ObjectiveOxygenRate*dt)
}

// touch records the player on first contact.
func (o *Objective) touch(w *World, p *Player) {
	if o.player.Valid() {
		return
	}
	o.player = p.Handle()
	w.Logger().Info("player found ship", "x", o.Position().X, "y", o.Position().Y)
}

// Appearance implements Drawable.
func (o *Objective) Appearance() Appearance {
	return o.appearance()
}
