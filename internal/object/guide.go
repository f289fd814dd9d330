package object

import (
	"math"

	"github.com/EngoEngine/ecs"
	"github.com/tomz197/among-the-stars/internal/physics"
)

// Guide tuning.
const (
	GuideOffset       = 100.0 // distance from the player along the bearing
	GuideHideDistance = 200.0 // hidden once the target is this close
)

// Guide is the arrow pointing from the player towards the objective. It
// holds weak references to both and has no collision footprint.
type Guide struct {
	basic   ecs.BasicEntity
	origin  Handle
	target  Handle
	pos     physics.Vector2
	angle   float64
	visible bool
}

// NewGuide creates an arrow anchored at origin pointing to target.
func NewGuide(origin, target Handle) *Guide {
	return &Guide{
		basic:  ecs.NewBasic(),
		origin: origin,
		target: target,
	}
}

// Handle returns the guide's weak reference.
func (g *Guide) Handle() Handle { return Handle(g.basic.ID()) }

// Kind implements Entity.
func (g *Guide) Kind() Kind { return KindGuide }

// Position returns where the arrow is drawn.
func (g *Guide) Position() physics.Vector2 { return g.pos }

// Angle returns the bearing to the target in radians.
func (g *Guide) Angle() float64 { return g.angle }

// Visible reports whether the arrow should be shown.
func (g *Guide) Visible() bool { return g.visible }

// Tick recomputes the bearing. A dangling origin or target hides the arrow.
func (g *Guide) Tick(ctx TickContext) {
	g.visible = false

	player, ok := Lookup[*Player](ctx.World, g.origin)
	if !ok {
		return
	}
	target, ok := ctx.World.Resolve(g.target)
	if !ok {
		return
	}

	from := player.Position()
	dir := target.Position().Sub(from)
	g.angle = math.Atan2(dir.Y, dir.X)
	g.pos = from.Add(dir.Normalize().Scale(GuideOffset))
	g.visible = !player.IsDead() && dir.Length() > GuideHideDistance
}

// Appearance implements Drawable.
func (g *Guide) Appearance() Appearance {
	return Appearance{
		Handle:   g.Handle(),
		Kind:     KindGuide,
		Position: g.pos,
		Angle:    g.angle,
		Visible:  g.visible,
	}
}
