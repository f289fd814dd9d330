package object

import (
	"math"
	"testing"

	"github.com/tomz197/among-the-stars/internal/physics"
)

func TestGuide(t *testing.T) {
	tests := []struct {
		name        string
		target      physics.Vector2
		dead        bool
		wantVisible bool
		wantAngle   float64
	}{
		{"far east", physics.Vector2{X: 1000, Y: 0}, false, true, 0},
		{"far south", physics.Vector2{X: 0, Y: 500}, false, true, math.Pi / 2},
		{"close", physics.Vector2{X: 150, Y: 0}, false, false, 0},
		{"dead player", physics.Vector2{X: 1000, Y: 0}, true, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWorld(nil)
			p := NewPlayer(physics.Vector2{})
			p.dead = tt.dead
			obj := NewObjective(tt.target)
			g := NewGuide(w.Add(p), w.Add(obj))
			w.Add(g)

			g.Tick(TickContext{World: w})

			if g.Visible() != tt.wantVisible {
				t.Errorf("Visible() = %v, expected %v", g.Visible(), tt.wantVisible)
			}
			if !almostEqual(g.Angle(), tt.wantAngle) {
				t.Errorf("Angle() = %v, expected %v", g.Angle(), tt.wantAngle)
			}
			want := physics.FromAngle(tt.wantAngle, GuideOffset)
			if !vecAlmostEqual(g.Position(), want) {
				t.Errorf("Position() = %v, expected %v", g.Position(), want)
			}
		})
	}
}

func TestGuideDanglingTarget(t *testing.T) {
	w := NewWorld(nil)
	p := NewPlayer(physics.Vector2{})
	obj := NewObjective(physics.Vector2{X: 1000, Y: 0})
	g := NewGuide(w.Add(p), w.Add(obj))

	g.Tick(TickContext{World: w})
	if !g.Visible() {
		t.Fatalf("Visible() = false, expected true")
	}

	w.Remove(obj.Handle())
	g.Tick(TickContext{World: w})
	if g.Visible() {
		t.Errorf("Visible() = true with a destroyed target, expected false")
	}
}
