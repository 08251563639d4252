package arena

import (
	"math"
	"math/rand"
	"testing"

	"github.com/dkoval/ringfall/internal/geom"
)

func newTestWorld() *World {
	return NewWorld(1.0, -3.0, rand.New(rand.NewSource(7)))
}

func TestSpawnRadiusBand(t *testing.T) {
	w := newTestWorld()
	for i := 0; i < 50; i++ {
		w.Spawn(geom.Vec2{})
	}
	for _, b := range w.Balls() {
		if b.Radius < w.RadiusMin || b.Radius > w.RadiusMax {
			t.Errorf("radius %f outside [%f, %f]", b.Radius, w.RadiusMin, w.RadiusMax)
		}
	}
}

func TestSpawnColorsCycle(t *testing.T) {
	w := newTestWorld()
	w.Spawn(geom.Vec2{})
	w.Spawn(geom.Vec2{X: 0.1})
	balls := w.Balls()
	if balls[0].Color == balls[1].Color {
		t.Error("adjacent spawns should take distinct palette colors")
	}
}

func TestGravityPullsDown(t *testing.T) {
	w := newTestWorld()
	w.Spawn(geom.Vec2{})

	w.Step(1.0 / 60)

	b := w.Balls()[0]
	if b.Vel.Y >= 0 {
		t.Errorf("expected downward velocity, got %f", b.Vel.Y)
	}
	if b.Pos.Y >= 0 {
		t.Errorf("expected ball to fall, got y=%f", b.Pos.Y)
	}
}

func TestBoundaryReflection(t *testing.T) {
	w := newTestWorld()
	w.balls = append(w.balls, Ball{
		Pos:    geom.Vec2{X: 0.99},
		Vel:    geom.Vec2{X: 2.0},
		Radius: 0.05,
	})

	w.Step(1.0 / 60)

	b := w.Balls()[0]
	if b.Vel.X >= 0 {
		t.Errorf("expected reflection, vx=%f", b.Vel.X)
	}
	if dist := b.Pos.Len(); dist > w.Radius-b.Radius+1e-9 {
		t.Errorf("ball left inside boundary, dist=%f", dist)
	}
}

func TestBallNeverSinksIntoWall(t *testing.T) {
	w := newTestWorld()
	w.balls = append(w.balls, Ball{
		Pos:    geom.Vec2{Y: -0.9},
		Radius: 0.05,
	})

	for i := 0; i < 600; i++ {
		w.Step(1.0 / 60)
		b := w.Balls()[0]
		if dist := b.Pos.Len(); dist > w.Radius-b.Radius+1e-9 {
			t.Fatalf("frame %d: ball outside boundary, dist=%f", i, dist)
		}
	}
}

func TestPairImpulseExchange(t *testing.T) {
	w := NewWorld(10, 0, rand.New(rand.NewSource(7)))
	w.balls = append(w.balls,
		Ball{Pos: geom.Vec2{X: -0.04}, Vel: geom.Vec2{X: 1.0}, Radius: 0.05},
		Ball{Pos: geom.Vec2{X: 0.04}, Radius: 0.05},
	)

	w.Step(1.0 / 60)

	a, b := w.Balls()[0], w.Balls()[1]
	if a.Vel.X > 1e-9 {
		t.Errorf("mover should hand off its normal velocity, vx=%f", a.Vel.X)
	}
	if math.Abs(b.Vel.X-1.0) > 1e-9 {
		t.Errorf("target should pick up the impulse, vx=%f", b.Vel.X)
	}
}

func TestOverlapSeparation(t *testing.T) {
	w := NewWorld(10, 0, rand.New(rand.NewSource(7)))
	w.balls = append(w.balls,
		Ball{Pos: geom.Vec2{X: -0.02}, Radius: 0.05},
		Ball{Pos: geom.Vec2{X: 0.02}, Radius: 0.05},
	)

	w.Step(1.0 / 60)

	a, b := w.Balls()[0], w.Balls()[1]
	if a.Pos.X >= b.Pos.X {
		t.Error("overlap should push balls apart along the contact normal")
	}
	gap := b.Pos.X - a.Pos.X
	if gap <= 0.04 {
		t.Errorf("separation did not widen the pair, gap=%f", gap)
	}
}

func TestClear(t *testing.T) {
	w := newTestWorld()
	w.Spawn(geom.Vec2{})
	w.Spawn(geom.Vec2{X: 0.2})
	w.Clear()
	if w.Count() != 0 {
		t.Errorf("expected empty world, got %d", w.Count())
	}
}
