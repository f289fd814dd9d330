package object

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/tomz197/among-the-stars/internal/physics"
)

func newTestPopulation(t *testing.T, cfg PopulationConfig) (*World, *Player, *PopulationManager) {
	t.Helper()
	w := NewWorld(nil)
	p := NewPlayer(physics.Vector2{})
	w.Add(p)
	m, err := NewPopulationManager(cfg, p.Handle(), rand.New(rand.NewPCG(7, 11)))
	if err != nil {
		t.Fatalf("NewPopulationManager() error = %v", err)
	}
	return w, p, m
}

func checkPopulation(t *testing.T, m *PopulationManager, center physics.Vector2) {
	t.Helper()
	cfg := m.Config()
	if got := len(m.Obstacles()); got != cfg.Target {
		t.Fatalf("len(Obstacles()) = %d, expected %d", got, cfg.Target)
	}
	for _, o := range m.Obstacles() {
		d := physics.Distance(center, o.Position())
		if d > cfg.MaxDistance+epsilon {
			t.Errorf("obstacle at distance %v, expected at most %v", d, cfg.MaxDistance)
		}
		speed := o.Velocity().Length()
		if speed < cfg.MinSpeed-epsilon || speed > cfg.MaxSpeed+epsilon {
			t.Errorf("obstacle speed %v, expected in [%v, %v]", speed, cfg.MinSpeed, cfg.MaxSpeed)
		}
	}
}

func TestPopulationFillsToTarget(t *testing.T) {
	for _, level := range []int{0, 3, 15} {
		cfg := DefaultPopulationConfig(level)
		w, p, m := newTestPopulation(t, cfg)

		m.Update(w)

		checkPopulation(t, m, p.Position())
		for _, o := range m.Obstacles() {
			if d := physics.Distance(p.Position(), o.Position()); d < cfg.SafeRadius-epsilon {
				t.Errorf("level %d: spawn at distance %v, expected at least %v", level, d, cfg.SafeRadius)
			}
			if _, ok := w.Resolve(o.Handle()); !ok {
				t.Errorf("level %d: spawned obstacle not registered", level)
			}
		}
		if w.Len() != cfg.Target+1 {
			t.Errorf("level %d: World.Len() = %d, expected %d", level, w.Len(), cfg.Target+1)
		}
	}
}

func TestPopulationSpawnsHeadTowardsReference(t *testing.T) {
	w, p, m := newTestPopulation(t, DefaultPopulationConfig(0))
	m.Update(w)

	for _, o := range m.Obstacles() {
		toward := p.Position().Sub(o.Position()).Normalize()
		if o.Velocity().Normalize().Dot(toward) < 0.9 {
			t.Errorf("obstacle at %v moving %v, expected roughly towards the player", o.Position(), o.Velocity())
		}
	}
}

func TestPopulationDespawnsFarObstacles(t *testing.T) {
	cfg := DefaultPopulationConfig(0)
	w, p, m := newTestPopulation(t, cfg)
	m.Update(w)

	before := append([]*Obstacle(nil), m.Obstacles()...)
	p.SetPosition(physics.Vector2{X: 10 * cfg.MaxDistance, Y: 0})
	m.Update(w)

	checkPopulation(t, m, p.Position())
	for _, o := range before {
		if _, ok := w.Resolve(o.Handle()); ok {
			t.Errorf("obstacle %v left behind was not despawned", o.Handle())
		}
	}
	if w.Len() != cfg.Target+1 {
		t.Errorf("World.Len() = %d, expected %d", w.Len(), cfg.Target+1)
	}
}

func TestPopulationFallbackPlacement(t *testing.T) {
	cfg := DefaultPopulationConfig(0)
	cfg.SafeRadius = 2 * cfg.MaxDistance
	w, p, m := newTestPopulation(t, cfg)

	m.Update(w)

	checkPopulation(t, m, p.Position())
	for _, o := range m.Obstacles() {
		if d := physics.Distance(p.Position(), o.Position()); !almostEqualTol(d, cfg.MaxDistance, 1e-6) {
			t.Errorf("fallback spawn at distance %v, expected %v", d, cfg.MaxDistance)
		}
	}
}

func TestPopulationWithoutReference(t *testing.T) {
	w, p, m := newTestPopulation(t, DefaultPopulationConfig(0))
	w.Remove(p.Handle())

	m.Update(w)

	if len(m.Obstacles()) != 0 {
		t.Errorf("len(Obstacles()) = %d, expected no spawns without a reference", len(m.Obstacles()))
	}
}

func TestPopulationConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PopulationConfig)
		valid  bool
	}{
		{"default", func(*PopulationConfig) {}, true},
		{"negative target", func(c *PopulationConfig) { c.Target = -1 }, false},
		{"zero distance", func(c *PopulationConfig) { c.MaxDistance = 0 }, false},
		{"inverted speeds", func(c *PopulationConfig) { c.MinSpeed = 200 }, false},
		{"no attempts", func(c *PopulationConfig) { c.MaxAttempts = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultPopulationConfig(1)
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.valid && err != nil {
				t.Errorf("Validate() error = %v, expected nil", err)
			}
			if !tt.valid && !errors.Is(err, ErrInvalidPopulation) {
				t.Errorf("Validate() error = %v, expected ErrInvalidPopulation", err)
			}
		})
	}
}

func almostEqualTol(a, b, tol float64) bool {
	d := a - b
	return d < tol && d > -tol
}
