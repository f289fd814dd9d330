package object

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/tomz197/among-the-stars/internal/physics"
)

// ErrInvalidPopulation is returned for population settings that cannot work.
var ErrInvalidPopulation = errors.New("invalid population config")

// PopulationConfig controls how many obstacles live around the reference
// point and how they are spawned.
type PopulationConfig struct {
	Target      int     // live obstacle count to maintain
	MaxDistance float64 // despawn radius and spawn extent
	SafeRadius  float64 // no spawns closer than this to the reference
	MinSpeed    float64
	MaxSpeed    float64
	Jitter      float64 // per-axis perturbation of the aim direction
	MaxAttempts int     // spawn rejection bound before falling back
}

// DefaultPopulationConfig returns the population used for a level.
func DefaultPopulationConfig(level int) PopulationConfig {
	return PopulationConfig{
		Target:      10 + level,
		MaxDistance: 1000,
		SafeRadius:  450,
		MinSpeed:    50,
		MaxSpeed:    100,
		Jitter:      10,
		MaxAttempts: 64,
	}
}

// Validate checks the config. A SafeRadius that swallows the whole spawn
// area is allowed and handled by fallback placement.
func (c PopulationConfig) Validate() error {
	switch {
	case c.Target < 0:
		return fmt.Errorf("%w: negative target %d", ErrInvalidPopulation, c.Target)
	case c.MaxDistance <= 0:
		return fmt.Errorf("%w: max distance must be positive, got %v", ErrInvalidPopulation, c.MaxDistance)
	case c.SafeRadius < 0:
		return fmt.Errorf("%w: negative safe radius %v", ErrInvalidPopulation, c.SafeRadius)
	case c.MinSpeed < 0 || c.MaxSpeed < c.MinSpeed:
		return fmt.Errorf("%w: speed band [%v, %v]", ErrInvalidPopulation, c.MinSpeed, c.MaxSpeed)
	case c.MaxAttempts < 1:
		return fmt.Errorf("%w: max attempts must be at least 1", ErrInvalidPopulation)
	}
	return nil
}

// PopulationManager keeps the obstacle population at its target around a
// moving reference entity (the player).
type PopulationManager struct {
	cfg       PopulationConfig
	reference Handle
	rng       *rand.Rand
	obstacles []*Obstacle
}

// NewPopulationManager creates a manager that follows reference.
func NewPopulationManager(cfg PopulationConfig, reference Handle, rng *rand.Rand) (*PopulationManager, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &PopulationManager{
		cfg:       cfg,
		reference: reference,
		rng:       rng,
	}, nil
}

// Obstacles returns the live obstacle set. Callers must not retain it across
// Update calls.
func (m *PopulationManager) Obstacles() []*Obstacle {
	return m.obstacles
}

// Config returns the manager's settings.
func (m *PopulationManager) Config() PopulationConfig {
	return m.cfg
}

// Update despawns obstacles beyond MaxDistance and spawns the deficit. If the
// reference entity is gone nothing happens this frame.
func (m *PopulationManager) Update(w *World) {
	ref, ok := w.Resolve(m.reference)
	if !ok {
		return
	}
	center := ref.Position()
	maxSq := m.cfg.MaxDistance * m.cfg.MaxDistance

	kept := m.obstacles[:0]
	for _, o := range m.obstacles {
		if physics.DistanceSquared(center, o.Position()) > maxSq {
			w.Remove(o.Handle())
			continue
		}
		kept = append(kept, o)
	}
	clear(m.obstacles[len(kept):])
	m.obstacles = kept

	for len(m.obstacles) < m.cfg.Target {
		o := m.spawn(w, center)
		w.Add(o)
		m.obstacles = append(m.obstacles, o)
	}
}

// spawn creates an obstacle between SafeRadius and MaxDistance of center,
// aimed roughly at center.
func (m *PopulationManager) spawn(w *World, center physics.Vector2) *Obstacle {
	pos := m.spawnPosition(w, center)

	dir := center.Sub(pos)
	dir.X += m.uniform(m.cfg.Jitter)
	dir.Y += m.uniform(m.cfg.Jitter)
	speed := m.cfg.MinSpeed + m.rng.Float64()*(m.cfg.MaxSpeed-m.cfg.MinSpeed)

	return NewObstacle(pos, dir.Normalize().Scale(speed))
}

// spawnPosition samples the square [-MaxDistance, MaxDistance]² around
// center, rejecting points inside SafeRadius or beyond MaxDistance. After
// MaxAttempts rejections it places the obstacle on the ring at
// min(SafeRadius, MaxDistance).
func (m *PopulationManager) spawnPosition(w *World, center physics.Vector2) physics.Vector2 {
	minSq := m.cfg.SafeRadius * m.cfg.SafeRadius
	maxSq := m.cfg.MaxDistance * m.cfg.MaxDistance

	for i := 0; i < m.cfg.MaxAttempts; i++ {
		off := physics.Vector2{X: m.uniform(m.cfg.MaxDistance), Y: m.uniform(m.cfg.MaxDistance)}
		d := off.LengthSquared()
		if d >= minSq && d <= maxSq {
			return center.Add(off)
		}
	}

	radius := math.Min(m.cfg.SafeRadius, m.cfg.MaxDistance)
	w.Logger().Warn("obstacle spawn fell back after rejections",
		"attempts", m.cfg.MaxAttempts, "radius", radius)
	return center.Add(physics.FromAngle(m.rng.Float64()*2*math.Pi, radius))
}

// uniform returns a value in [-extent, extent).
func (m *PopulationManager) uniform(extent float64) float64 {
	return (m.rng.Float64()*2 - 1) * extent
}
