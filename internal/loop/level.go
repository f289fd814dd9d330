package loop

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/among-the-stars/internal/object"
	"github.com/tomz197/among-the-stars/internal/physics"
)

// ErrInvalidConfig is wrapped by every LevelConfig validation failure.
var ErrInvalidConfig = errors.New("invalid level config")

// LevelConfig holds everything a level needs at construction time.
type LevelConfig struct {
	Index                int
	Population           object.PopulationConfig
	ObjectiveMinDistance float64
	ObjectiveSpread      float64
	CellSize             float64
	Rand                 *rand.Rand
	Logger               *log.Logger
}

// DefaultLevelConfig returns the configuration for level index.
func DefaultLevelConfig(index int, rng *rand.Rand, logger *log.Logger) LevelConfig {
	return LevelConfig{
		Index:                index,
		Population:           object.DefaultPopulationConfig(index),
		ObjectiveMinDistance: ObjectiveBaseDistance + ObjectiveLevelStep*float64(index),
		ObjectiveSpread:      ObjectiveSpread,
		CellSize:             CollisionCellSize,
		Rand:                 rng,
		Logger:               logger,
	}
}

// Validate reports configuration errors. A safe radius that covers the whole
// spawn area is accepted; spawning falls back to best-effort placement.
func (c LevelConfig) Validate() error {
	if c.Index < 0 {
		return fmt.Errorf("%w: negative level index %d", ErrInvalidConfig, c.Index)
	}
	if c.Rand == nil {
		return fmt.Errorf("%w: missing random source", ErrInvalidConfig)
	}
	if c.ObjectiveMinDistance < 0 || c.ObjectiveSpread <= 0 {
		return fmt.Errorf("%w: objective placement min %v spread %v", ErrInvalidConfig, c.ObjectiveMinDistance, c.ObjectiveSpread)
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("%w: cell size must be positive, got %v", ErrInvalidConfig, c.CellSize)
	}
	if err := c.Population.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Outcome is the terminal state of a level, if any.
type Outcome int

const (
	OutcomeRunning Outcome = iota
	OutcomeWon
	OutcomeLost
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "running"
	}
}

// Status is the read-only projection of a level for the HUD.
type Status struct {
	Outcome           Outcome
	Position          physics.Vector2
	Acceleration      physics.Vector2
	Fuel              float64
	Oxygen            float64
	Score             float64
	BoardingCountdown float64
	Docked            bool // player currently inside the objective
	Burning           bool
	Obstacles         int
}

// Level is the session context object for one level: the world registry and
// every entity living in it. It is driven by a single goroutine.
type Level struct {
	index      int
	world      *object.World
	player     *object.Player
	objective  *object.Objective
	guide      *object.Guide
	population *object.PopulationManager
	pass       *object.CollisionPass
	logger     *log.Logger

	colliders []object.Collider // reused between frames
	outcome   Outcome
}

// NewLevel builds a level: player at the origin, objective placed away from
// it, a guide between them and an initial obstacle population.
func NewLevel(cfg LevelConfig) (*Level, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	w := object.NewWorld(logger)
	player := object.NewPlayer(physics.Vector2{})
	objective := object.NewObjective(object.PlaceObjective(cfg.Rand, cfg.ObjectiveMinDistance, cfg.ObjectiveSpread))
	w.Add(player)
	w.Add(objective)
	guide := object.NewGuide(player.Handle(), objective.Handle())
	w.Add(guide)

	population, err := object.NewPopulationManager(cfg.Population, player.Handle(), cfg.Rand)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	population.Update(w)

	logger.Info("level started",
		"level", cfg.Index,
		"obstacles", cfg.Population.Target,
		"objective_x", objective.Position().X,
		"objective_y", objective.Position().Y)

	return &Level{
		index:      cfg.Index,
		world:      w,
		player:     player,
		objective:  objective,
		guide:      guide,
		population: population,
		pass:       object.NewCollisionPass(cfg.CellSize),
		logger:     logger,
	}, nil
}

// Index returns the level number, starting at 0.
func (l *Level) Index() int {
	return l.index
}

// Colliders returns every entity that takes part in the collision pass. The
// slice is reused by the next call.
func (l *Level) Colliders() []object.Collider {
	l.colliders = l.colliders[:0]
	l.colliders = append(l.colliders, l.player, l.objective)
	for _, o := range l.population.Obstacles() {
		l.colliders = append(l.colliders, o)
	}
	return l.colliders
}

// RunCollisionPass performs the broad and narrow phase over colliders and
// returns the number of contacts resolved. Call it once per frame.
func (l *Level) RunCollisionPass(colliders []object.Collider, dt time.Duration) int {
	return l.pass.Run(l.world, colliders, dt)
}

// Tick advances every ticking entity by dt and then updates the obstacle
// population around the player.
func (l *Level) Tick(dt time.Duration, intent object.Intent) Status {
	if dt < 0 {
		dt = 0
	}
	ctx := object.TickContext{Delta: dt, Intent: intent, World: l.world}

	l.objective.Tick(ctx)
	for _, o := range l.population.Obstacles() {
		o.Tick(ctx)
	}
	l.player.Tick(ctx)
	l.guide.Tick(ctx)

	l.population.Update(l.world)

	l.updateOutcome()
	return l.Status()
}

// Step runs one full frame: the collision pass followed by Tick.
func (l *Level) Step(dt time.Duration, intent object.Intent) Status {
	l.RunCollisionPass(l.Colliders(), dt)
	return l.Tick(dt, intent)
}

func (l *Level) updateOutcome() {
	if l.outcome != OutcomeRunning {
		return
	}
	switch {
	case l.player.IsDead():
		l.outcome = OutcomeLost
	case l.player.IsWon():
		l.outcome = OutcomeWon
	default:
		return
	}
	l.logger.Info("level finished", "level", l.index, "outcome", l.outcome, "score", l.player.Score())
}

// Outcome returns the level result. Once Won or Lost it never changes.
func (l *Level) Outcome() Outcome {
	return l.outcome
}

// Status returns the HUD projection. It has no side effects.
func (l *Level) Status() Status {
	docked := l.objective.Bounds().Intersects(l.player.Bounds())
	return Status{
		Outcome:           l.outcome,
		Position:          l.player.Position(),
		Acceleration:      l.player.Acceleration(),
		Fuel:              l.player.Fuel(),
		Oxygen:            l.player.Oxygen(),
		Score:             l.player.Score(),
		BoardingCountdown: l.player.BoardingCountdown(),
		Docked:            docked,
		Burning:           l.player.Burning(),
		Obstacles:         len(l.population.Obstacles()),
	}
}

// Drawables returns the appearance of every visible entity, back to front.
func (l *Level) Drawables(dst []object.Appearance) []object.Appearance {
	dst = dst[:0]
	dst = append(dst, l.objective.Appearance())
	for _, o := range l.population.Obstacles() {
		dst = append(dst, o.Appearance())
	}
	dst = append(dst, l.player.Appearance())
	if a := l.guide.Appearance(); a.Visible {
		dst = append(dst, a)
	}
	return dst
}

// World exposes the registry for read-only inspection.
func (l *Level) World() *object.World {
	return l.world
}
