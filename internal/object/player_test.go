package object

import (
	"testing"
	"time"

	"github.com/tomz197/among-the-stars/internal/physics"
)

func tick(p *Player, w *World, dt time.Duration, in Intent) {
	p.Tick(TickContext{Delta: dt, Intent: in, World: w})
}

func TestPlayerOxygenBaseDecay(t *testing.T) {
	w := NewWorld(nil)
	p := NewPlayer(physics.Vector2{})
	obj := NewObjective(physics.Vector2{X: 300, Y: 0})
	w.Add(p)
	w.Add(obj)

	for i := 0; i < 40; i++ {
		tick(p, w, time.Second, Intent{})
		obj.Tick(TickContext{Delta: time.Second, World: w})
	}

	if got := p.Oxygen(); !almostEqual(got, 60) {
		t.Errorf("Oxygen() = %v, expected 60", got)
	}
	if got := p.Fuel(); got != MaxResource {
		t.Errorf("Fuel() = %v, expected %v", got, MaxResource)
	}
	if p.IsDead() {
		t.Errorf("IsDead() = true, expected false")
	}
}

func TestPlayerEmptyTankDecay(t *testing.T) {
	p := NewPlayer(physics.Vector2{})
	p.setFuel(0)

	tick(p, NewWorld(nil), time.Second, Intent{})

	if got, want := p.Oxygen(), MaxResource-OxygenDecayRate*EmptyTankOxygenFactor; !almostEqual(got, want) {
		t.Errorf("Oxygen() = %v, expected %v", got, want)
	}
}

func TestPlayerNoFuelIgnoresInput(t *testing.T) {
	intents := []struct {
		name string
		in   Intent
	}{
		{"up", Intent{Up: true}},
		{"all directions", Intent{Up: true, Down: true, Left: true, Right: true}},
		{"diagonal", Intent{Down: true, Right: true}},
		{"brake", Intent{Brake: true}},
	}

	for _, tt := range intents {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(physics.Vector2{})
			p.setFuel(0)

			tick(p, NewWorld(nil), 100*time.Millisecond, tt.in)

			if !p.Acceleration().IsZero() {
				t.Errorf("Acceleration() = %v, expected zero", p.Acceleration())
			}
			if p.Position() != (physics.Vector2{}) {
				t.Errorf("Position() = %v, expected origin", p.Position())
			}
			if p.Burning() {
				t.Errorf("Burning() = true, expected false")
			}
		})
	}
}

func TestPlayerThrust(t *testing.T) {
	tests := []struct {
		name string
		in   Intent
		want physics.Vector2
	}{
		{"up", Intent{Up: true}, physics.Vector2{X: 0, Y: -10}},
		{"down", Intent{Down: true}, physics.Vector2{X: 0, Y: 10}},
		{"left", Intent{Left: true}, physics.Vector2{X: -10, Y: 0}},
		{"right", Intent{Right: true}, physics.Vector2{X: 10, Y: 0}},
		{"diagonal", Intent{Up: true, Right: true}, physics.Vector2{X: 10, Y: -10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(physics.Vector2{})

			tick(p, NewWorld(nil), 100*time.Millisecond, tt.in)

			if got := p.Acceleration(); !vecAlmostEqual(got, tt.want) {
				t.Errorf("Acceleration() = %v, expected %v", got, tt.want)
			}
			if got, want := p.Fuel(), MaxResource-FuelBurnRate*0.1; !almostEqual(got, want) {
				t.Errorf("Fuel() = %v, expected %v", got, want)
			}
			if !p.Burning() {
				t.Errorf("Burning() = false, expected true")
			}
		})
	}
}

func TestPlayerOpposedInputBurnsNothing(t *testing.T) {
	p := NewPlayer(physics.Vector2{})

	tick(p, NewWorld(nil), time.Second, Intent{Left: true, Right: true})

	if got := p.Fuel(); got != MaxResource {
		t.Errorf("Fuel() = %v, expected %v", got, MaxResource)
	}
}

func TestPlayerBrake(t *testing.T) {
	p := NewPlayer(physics.Vector2{})
	p.motion.AddAcceleration(physics.Vector2{X: 100, Y: -50})

	tick(p, NewWorld(nil), 500*time.Millisecond, Intent{Brake: true, Up: true})

	if got, want := p.Acceleration(), (physics.Vector2{X: 50, Y: -25}); !vecAlmostEqual(got, want) {
		t.Errorf("Acceleration() = %v, expected %v", got, want)
	}
}

func TestPlayerSpeedClamp(t *testing.T) {
	p := NewPlayer(physics.Vector2{})
	p.motion.AddAcceleration(physics.Vector2{X: 3000, Y: 4000})

	tick(p, NewWorld(nil), time.Second, Intent{})

	if got := p.Acceleration().Length(); !almostEqual(got, PlayerMaxSpeed) {
		t.Errorf("speed = %v, expected %v", got, PlayerMaxSpeed)
	}
	if got, want := p.Position(), (physics.Vector2{X: 300, Y: 400}); !vecAlmostEqual(got, want) {
		t.Errorf("Position() = %v, expected %v", got, want)
	}
}

func TestPlayerSuffocates(t *testing.T) {
	p := NewPlayer(physics.Vector2{})
	w := NewWorld(nil)

	for i := 0; i < 99; i++ {
		tick(p, w, time.Second, Intent{})
	}
	if p.IsDead() {
		t.Fatalf("IsDead() = true after 99s, expected false")
	}
	tick(p, w, time.Second, Intent{})
	if !p.IsDead() {
		t.Errorf("IsDead() = false after 100s, expected true")
	}
	if p.Oxygen() != 0 {
		t.Errorf("Oxygen() = %v, expected 0", p.Oxygen())
	}

	// Dead players neither steer nor refill.
	tick(p, w, time.Second, Intent{Up: true})
	p.AddResources(50, 50)
	if p.Oxygen() != 0 || !p.Acceleration().IsZero() {
		t.Errorf("dead player changed: oxygen %v, acceleration %v", p.Oxygen(), p.Acceleration())
	}
}

func TestPlayerKill(t *testing.T) {
	tests := []struct {
		name string
		age  float64
		want bool
	}{
		{"fresh", 0, false},
		{"inside grace", KillGracePeriod - 0.1, false},
		{"grace elapsed", KillGracePeriod, true},
		{"long after", 60, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(physics.Vector2{})
			p.age = tt.age
			p.motion.AddAcceleration(physics.Vector2{X: 40, Y: 0})

			if got := p.Kill(); got != tt.want {
				t.Fatalf("Kill() = %v, expected %v", got, tt.want)
			}
			if p.IsDead() != tt.want {
				t.Errorf("IsDead() = %v, expected %v", p.IsDead(), tt.want)
			}
			if !tt.want {
				return
			}
			if p.Fuel() != 0 || p.Oxygen() != 0 || p.Score() != 0 {
				t.Errorf("resources = %v/%v score %v, expected all zero", p.Fuel(), p.Oxygen(), p.Score())
			}
			if !p.Acceleration().IsZero() {
				t.Errorf("Acceleration() = %v, expected zero", p.Acceleration())
			}
		})
	}
}

func TestPlayerAddResourcesClamps(t *testing.T) {
	p := NewPlayer(physics.Vector2{})
	p.setFuel(10)
	p.setOxygen(95)

	p.AddResources(20, 20)

	if p.Fuel() != 30 {
		t.Errorf("Fuel() = %v, expected 30", p.Fuel())
	}
	if p.Oxygen() != MaxResource {
		t.Errorf("Oxygen() = %v, expected %v", p.Oxygen(), MaxResource)
	}

	p.AddResources(-500, -500)
	if p.Fuel() != 0 || p.Oxygen() != 0 {
		t.Errorf("resources = %v/%v, expected clamped to zero", p.Fuel(), p.Oxygen())
	}
}

func TestPlayerScore(t *testing.T) {
	p := NewPlayer(physics.Vector2{})
	if got, want := p.Score(), MaxResource*scoreFuelWeight+MaxResource*scoreOxygenWeight; !almostEqual(got, want) {
		t.Errorf("Score() = %v, expected %v", got, want)
	}

	tick(p, NewWorld(nil), 2*time.Second, Intent{})
	if got, want := p.Score(), 100*scoreFuelWeight+98*scoreOxygenWeight; !almostEqual(got, want) {
		t.Errorf("Score() = %v, expected %v", got, want)
	}
}

func TestPlayerWinTimer(t *testing.T) {
	p := NewPlayer(physics.Vector2{})

	p.UpdateTimer(WinTimerThreshold)
	if p.IsWon() {
		t.Errorf("IsWon() = true at exactly the threshold, expected false")
	}
	p.UpdateTimer(0.01)
	if !p.IsWon() {
		t.Errorf("IsWon() = false past the threshold, expected true")
	}
	p.ResetTimer()
	if p.IsWon() || p.ProximityTimer() != 0 {
		t.Errorf("ResetTimer() left timer at %v", p.ProximityTimer())
	}
}
