package visualizer

import (
	"math"
	"testing"
)

func TestGlowFirstTargetPlacesDirectly(t *testing.T) {
	g := NewGlow(30)
	if g.Active() {
		t.Fatal("expected glow hidden before any pointer movement")
	}
	g.SetTarget(100, 50)
	if x, y := g.Position(); x != 100 || y != 50 {
		t.Fatalf("expected glow at (100, 50), got (%f, %f)", x, y)
	}
}

func TestGlowEasesTowardTarget(t *testing.T) {
	g := NewGlow(30)
	g.SetTarget(0, 0)
	g.SetTarget(300, 0)

	g.Step()
	x, _ := g.Position()
	if x <= 0 || x >= 300 {
		t.Fatalf("expected glow between start and target after one step, got %f", x)
	}
	for range 120 {
		g.Step()
	}
	x, _ = g.Position()
	if math.Abs(x-300) > 1 {
		t.Fatalf("expected glow to settle near 300, got %f", x)
	}
}

func TestGlowHideStopsStepping(t *testing.T) {
	g := NewGlow(30)
	g.SetTarget(10, 10)
	g.Hide()
	g.Step()
	if g.Active() {
		t.Fatal("expected glow hidden")
	}

	b := newPlainBraille(80, 32)
	g.Draw(b)
}
