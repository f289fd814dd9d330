package object

import (
	"time"

	"github.com/tomz197/among-the-stars/internal/physics"
)

// Reaction resolves a confirmed contact. self always has the first kind of
// the table key it was registered under.
type Reaction func(w *World, self, other Collider, dt time.Duration)

type kindPair [2]Kind

// reactions is the single narrow-phase dispatch table. Lookups try both
// argument orders, so each unordered pair of kinds needs one entry.
var reactions = map[kindPair]Reaction{
	{KindObstacle, KindObstacle}: func(_ *World, self, other Collider, _ time.Duration) {
		a, okA := self.(*Obstacle)
		b, okB := other.(*Obstacle)
		if okA && okB {
			a.bounce(b)
		}
	},
	{KindObstacle, KindPlayer}: func(w *World, self, other Collider, _ time.Duration) {
		o, okO := self.(*Obstacle)
		p, okP := other.(*Player)
		if okO && okP {
			o.latch(w, p)
		}
	},
	{KindObjective, KindPlayer}: func(w *World, self, other Collider, _ time.Duration) {
		o, okO := self.(*Objective)
		p, okP := other.(*Player)
		if okO && okP {
			o.touch(w, p)
		}
	},
}

// reactionFor returns the reaction for a pair of kinds and whether the
// arguments must be swapped to match it. Unknown pairs get nil.
func reactionFor(a, b Kind) (Reaction, bool) {
	if r, ok := reactions[kindPair{a, b}]; ok {
		return r, false
	}
	if r, ok := reactions[kindPair{b, a}]; ok {
		return r, true
	}
	return nil, false
}

// Dispatch runs the narrow phase for one candidate pair: an exact bounding
// box test followed by the kind-specific reaction. Resolving (a, b) has the
// same effect as resolving (b, a).
func Dispatch(w *World, a, b Collider, dt time.Duration) bool {
	reaction, swap := reactionFor(a.Kind(), b.Kind())
	if reaction == nil {
		return false
	}
	if !a.Bounds().Intersects(b.Bounds()) {
		return false
	}
	if swap {
		a, b = b, a
	}
	reaction(w, a, b, dt)
	return true
}

// CollisionPass owns the spatial hash reused between frames.
type CollisionPass struct {
	hash *physics.SpatialHash
}

// NewCollisionPass creates a pass with the given cell size.
func NewCollisionPass(cellSize float64) *CollisionPass {
	return &CollisionPass{hash: physics.NewSpatialHash(cellSize)}
}

// Run rebuilds the spatial hash from colliders and dispatches every candidate
// pair once. It returns the number of contacts that reached a reaction.
// Running it twice in one frame applies impulses twice.
func (c *CollisionPass) Run(w *World, colliders []Collider, dt time.Duration) int {
	c.hash.Clear()
	for i, e := range colliders {
		c.hash.Insert(e.Position(), i)
	}

	contacts := 0
	c.hash.ForEachPair(func(i, j int) {
		if Dispatch(w, colliders[i], colliders[j], dt) {
			contacts++
		}
	})
	return contacts
}
