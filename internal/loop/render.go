package loop

import (
	"math"
	"math/rand/v2"

	"github.com/tomz197/among-the-stars/internal/draw"
	"github.com/tomz197/among-the-stars/internal/object"
	"github.com/tomz197/among-the-stars/internal/physics"
)

// Asteroid outlines.
const (
	asteroidVertices  = 10
	asteroidRoughness = 0.3 // fraction of the radius vertices may sink inwards
)

// hullShape is the spaceship outline in footprint units, nose to the right.
var hullShape = []physics.Vector2{
	{X: 0.5, Y: 0},
	{X: 0.2, Y: -0.25},
	{X: -0.1, Y: -0.25},
	{X: -0.35, Y: -0.5},
	{X: -0.5, Y: -0.5},
	{X: -0.4, Y: -0.15},
	{X: -0.4, Y: 0.15},
	{X: -0.5, Y: 0.5},
	{X: -0.35, Y: 0.5},
	{X: -0.1, Y: 0.25},
	{X: 0.2, Y: 0.25},
}

// Guide arrow size in world units.
const (
	guideLength = 36.0
	guideWidth  = 24.0
)

// camera maps world coordinates to canvas coordinates centred on a point.
type camera struct {
	center physics.Vector2
	width  float64
	height float64
}

func (c camera) toCanvas(p physics.Vector2) draw.Point {
	return draw.Point{
		X: p.X - c.center.X + c.width/2,
		Y: p.Y - c.center.Y + c.height/2,
	}
}

// visible reports whether a box of the given footprint around p can touch
// the view.
func (c camera) visible(p, footprint physics.Vector2) bool {
	dx := math.Abs(p.X-c.center.X) - footprint.X/2
	dy := math.Abs(p.Y-c.center.Y) - footprint.Y/2
	return dx <= c.width/2 && dy <= c.height/2
}

// drawStarfield plots the repeating star tile with parallax.
func drawStarfield(canvas *draw.Canvas, sf *Starfield, cam camera) {
	if sf == nil {
		return
	}
	offX := cam.center.X*StarfieldParallax - cam.width/2
	offY := cam.center.Y*StarfieldParallax - cam.height/2
	for _, s := range sf.Stars {
		p := draw.Point{
			X: wrap(s.Pos.X-offX, sf.Tile),
			Y: wrap(s.Pos.Y-offY, sf.Tile),
		}
		if !canvas.Contains(p) {
			continue
		}
		canvas.Plot(p)
		if s.Bright {
			canvas.Plot(draw.Point{X: p.X + 8, Y: p.Y})
		}
	}
}

// wrap returns v modulo period in [0, period).
func wrap(v, period float64) float64 {
	m := math.Mod(v, period)
	if m < 0 {
		m += period
	}
	return m
}

// drawEntities draws every appearance in order.
func drawEntities(canvas *draw.Canvas, items []object.Appearance, cam camera) {
	for _, a := range items {
		if !a.Visible || !cam.visible(a.Position, a.Footprint) {
			continue
		}
		center := cam.toCanvas(a.Position)
		switch a.Kind {
		case object.KindObstacle:
			drawAsteroid(canvas, a, center)
		case object.KindObjective:
			drawHull(canvas, a, center)
		case object.KindPlayer:
			canvas.DrawPolygon(draw.Diamond(canvas.BorrowPoints(4), center, a.Footprint.X, a.Footprint.Y), true)
		case object.KindGuide:
			canvas.DrawPolygon(draw.Arrow(canvas.BorrowPoints(3), center, a.Angle, guideLength, guideWidth), true)
		}
	}
}

// drawAsteroid draws an irregular outline. The shape is derived from the
// handle so an asteroid keeps its silhouette between frames.
func drawAsteroid(canvas *draw.Canvas, a object.Appearance, center draw.Point) {
	rng := rand.New(rand.NewPCG(uint64(a.Handle), 0x6173))
	radius := math.Min(a.Footprint.X, a.Footprint.Y) / 2

	var radii [asteroidVertices]float64
	for i := range radii {
		radii[i] = radius * (1 - asteroidRoughness*rng.Float64())
	}
	rotation := rng.Float64() * 2 * math.Pi

	canvas.DrawPolygon(draw.Polygon(canvas.BorrowPoints(asteroidVertices), center, radii[:], rotation), false)
}

// drawHull draws the spaceship outline scaled to its footprint.
func drawHull(canvas *draw.Canvas, a object.Appearance, center draw.Point) {
	points := canvas.BorrowPoints(len(hullShape))
	for _, v := range hullShape {
		points = append(points, draw.Point{
			X: center.X + v.X*a.Footprint.X,
			Y: center.Y + v.Y*a.Footprint.Y,
		})
	}
	canvas.DrawPolygon(points, false)
}
