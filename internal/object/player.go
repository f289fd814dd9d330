package object

import (
	"github.com/tomz197/among-the-stars/internal/physics"
)

// Player tuning.
const (
	PlayerMaxSpeed        = 500.0 // accumulator magnitude cap
	PlayerAccelRate       = 100.0 // per second per held direction
	FuelBurnRate          = 5.0   // per second while accelerating
	OxygenDecayRate       = 1.0   // per second
	EmptyTankOxygenFactor = 4.0   // decay multiplier while fuel is zero
	MaxResource           = 100.0
	WinTimerThreshold     = 30.0 // seconds of continuous objective overlap
	KillGracePeriod       = 2.0  // seconds after creation during which Kill is ignored

	scoreFuelWeight   = 0.2
	scoreOxygenWeight = 0.5
)

// PlayerFootprint is the astronaut's bounding size.
var PlayerFootprint = physics.Vector2{X: 26, Y: 44}

// Player is the astronaut steered by the input intent.
type Player struct {
	body

	fuel        float64
	oxygen      float64
	shipTimer   float64 // continuous overlap with the objective
	score       float64
	dead        bool
	age         float64 // simulated seconds since creation
	lastBurning bool
}

// NewPlayer creates a player with full tanks at pos.
func NewPlayer(pos physics.Vector2) *Player {
	p := &Player{
		body:   newBody(KindPlayer, pos, PlayerFootprint),
		fuel:   MaxResource,
		oxygen: MaxResource,
	}
	p.updateScore()
	return p
}

// Tick applies the intent, integrates motion and drains oxygen.
func (p *Player) Tick(ctx TickContext) {
	dt := ctx.Delta.Seconds()
	p.age += dt

	p.lastBurning = false
	if !p.IsDead() {
		p.applyIntent(ctx.Intent, dt)
	}

	p.motion.Integrate(dt, PlayerMaxSpeed)

	decay := OxygenDecayRate
	if p.fuel == 0 {
		decay *= EmptyTankOxygenFactor
	}
	p.setOxygen(p.oxygen - decay*dt)
	if p.oxygen == 0 {
		p.dead = true
	}

	p.updateScore()
}

// applyIntent accumulates the directional input for this tick. Braking adds
// the inverse of the current accumulator scaled by dt.
func (p *Player) applyIntent(in Intent, dt float64) {
	if p.fuel == 0 || !in.Any() {
		return
	}

	var acc physics.Vector2
	step := PlayerAccelRate * dt
	if in.Up {
		acc.Y -= step
	}
	if in.Down {
		acc.Y += step
	}
	if in.Right {
		acc.X += step
	}
	if in.Left {
		acc.X -= step
	}
	if in.Brake {
		acc = p.motion.InverseAcceleration().Scale(dt)
	}
	if acc.IsZero() {
		return
	}

	p.setFuel(p.fuel - FuelBurnRate*dt)
	if p.fuel == 0 {
		return
	}
	p.lastBurning = true
	p.motion.AddAcceleration(acc)
}

// Kill zeroes both tanks and stops the player. It is ignored during the
// grace period after creation and reports whether the kill took effect.
func (p *Player) Kill() bool {
	if p.age < KillGracePeriod {
		return false
	}
	p.dead = true
	p.fuel = 0
	p.oxygen = 0
	p.motion.AddAcceleration(p.motion.InverseAcceleration())
	p.updateScore()
	return true
}

// AddResources refills the tanks, clamped to MaxResource. Dead players
// cannot be refilled.
func (p *Player) AddResources(fuel, oxygen float64) {
	if p.IsDead() {
		return
	}
	p.setFuel(p.fuel + fuel)
	p.setOxygen(p.oxygen + oxygen)
}

// UpdateTimer advances the objective proximity timer.
func (p *Player) UpdateTimer(dt float64) {
	p.shipTimer += dt
}

// ResetTimer zeroes the objective proximity timer.
func (p *Player) ResetTimer() {
	p.shipTimer = 0
}

// IsDead reports whether the player has run out of oxygen.
func (p *Player) IsDead() bool {
	return p.dead || p.oxygen <= 0
}

// IsWon reports whether the player lingered at the objective long enough.
func (p *Player) IsWon() bool {
	return p.shipTimer > WinTimerThreshold
}

// Fuel returns the fuel level in [0, 100].
func (p *Player) Fuel() float64 { return p.fuel }

// Oxygen returns the oxygen level in [0, 100].
func (p *Player) Oxygen() float64 { return p.oxygen }

// Score is a live readout derived from the remaining resources.
func (p *Player) Score() float64 { return p.score }

// ProximityTimer returns seconds of continuous overlap with the objective.
func (p *Player) ProximityTimer() float64 { return p.shipTimer }

// BoardingCountdown returns the seconds left until the level is won.
func (p *Player) BoardingCountdown() float64 {
	return WinTimerThreshold - p.shipTimer
}

// Burning reports whether the last tick consumed fuel.
func (p *Player) Burning() bool { return p.lastBurning }

// Age returns the simulated seconds since the player was created.
func (p *Player) Age() float64 { return p.age }

// Appearance implements Drawable.
func (p *Player) Appearance() Appearance {
	return p.appearance()
}

func (p *Player) setFuel(v float64) {
	p.fuel = clampResource(v)
}

func (p *Player) setOxygen(v float64) {
	p.oxygen = clampResource(v)
}

func (p *Player) updateScore() {
	p.score = p.fuel*scoreFuelWeight + p.oxygen*scoreOxygenWeight
}

func clampResource(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > MaxResource {
		return MaxResource
	}
	return v
}
