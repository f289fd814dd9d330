// Package object implements the entity model of the simulation: players,
// obstacles, the objective and the guidance arrow, plus the registry that
// resolves weak references between them.
package object

import (
	"time"

	"github.com/EngoEngine/ecs"
	"github.com/tomz197/among-the-stars/internal/input"
	"github.com/tomz197/among-the-stars/internal/physics"
)

// Intent is the resolved input snapshot for one frame.
type Intent = input.Intent

// Kind discriminates the concrete entity type for collision dispatch.
type Kind int

const (
	KindNone Kind = iota
	KindPlayer
	KindObstacle
	KindObjective
	KindGuide
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindObstacle:
		return "obstacle"
	case KindObjective:
		return "objective"
	case KindGuide:
		return "guide"
	default:
		return "none"
	}
}

// Handle is a weak, non-owning reference to an entity. Handles are never
// reused, so a handle that no longer resolves through World.Resolve refers to
// a destroyed entity. The zero Handle refers to nothing.
type Handle uint64

// Valid reports whether the handle was ever assigned.
func (h Handle) Valid() bool {
	return h != 0
}

// TickContext provides everything an entity needs during its per-frame update.
type TickContext struct {
	Delta  time.Duration
	Intent Intent
	World  *World
}

// Entity is anything the world registry tracks.
type Entity interface {
	Handle() Handle
	Kind() Kind
	Position() physics.Vector2
}

// Collider is an entity with a bounding box that takes part in collision passes.
type Collider interface {
	Entity
	Bounds() physics.Rect
}

// Ticker is implemented by entities with per-frame logic.
type Ticker interface {
	Tick(ctx TickContext)
}

// Drawable is implemented by entities the render layer should present.
// The simulation never draws; it only describes what should be drawn.
type Drawable interface {
	Appearance() Appearance
}

// Appearance is a read-only description of an entity for presentation.
type Appearance struct {
	Handle    Handle
	Kind      Kind
	Position  physics.Vector2
	Footprint physics.Vector2
	Angle     float64 // radians, only meaningful for the guide
	Visible   bool
}

// body is the shared state of every collidable entity: identity, kind,
// motion and the visual footprint the bounding box is derived from.
type body struct {
	basic     ecs.BasicEntity
	kind      Kind
	motion    physics.Motion
	footprint physics.Vector2
}

func newBody(kind Kind, pos, footprint physics.Vector2) body {
	return body{
		basic:     ecs.NewBasic(),
		kind:      kind,
		motion:    physics.NewMotion(pos),
		footprint: footprint,
	}
}

// Handle returns the entity's weak reference.
func (b *body) Handle() Handle {
	return Handle(b.basic.ID())
}

// Kind returns the entity discriminator.
func (b *body) Kind() Kind {
	return b.kind
}

// Position returns the centre of the entity.
func (b *body) Position() physics.Vector2 {
	return b.motion.Position
}

// Acceleration returns the current acceleration accumulator.
func (b *body) Acceleration() physics.Vector2 {
	return b.motion.Acceleration
}

// Footprint returns the width and height of the entity.
func (b *body) Footprint() physics.Vector2 {
	return b.footprint
}

// Bounds returns the axis-aligned box centred on the entity.
func (b *body) Bounds() physics.Rect {
	return physics.RectAround(b.motion.Position, b.footprint)
}

// SetPosition teleports the entity.
func (b *body) SetPosition(p physics.Vector2) {
	b.motion.Position = p
}

func (b *body) appearance() Appearance {
	return Appearance{
		Handle:    b.Handle(),
		Kind:      b.kind,
		Position:  b.motion.Position,
		Footprint: b.footprint,
		Visible:   true,
	}
}
