package particle

import (
	"math/rand"
	"testing"

	"github.com/dkoval/ringfall/internal/geom"
)

func testParams() Params {
	return Params{
		BurstCount: 25,
		SpeedMin:   0.5,
		SpeedMax:   2.0,
		LifeMin:    0.4,
		LifeMax:    1.2,
		Gravity:    -3.0,
	}
}

func TestSpawnBurstCount(t *testing.T) {
	s := NewSystem(testParams(), rand.New(rand.NewSource(1)))

	s.SpawnBurst(geom.Vec2{X: 0.3, Y: -0.2}, "#00ffff")
	if s.Count() != 25 {
		t.Errorf("expected 25 particles, got %d", s.Count())
	}

	s.SpawnBurst(geom.Vec2{}, "#ff0000")
	if s.Count() != 50 {
		t.Errorf("expected 50 after second burst, got %d", s.Count())
	}
}

func TestSpawnBurstBands(t *testing.T) {
	s := NewSystem(testParams(), rand.New(rand.NewSource(2)))
	s.SpawnBurst(geom.Vec2{}, "#00ffff")

	for i, p := range s.particles {
		speed := p.Vel.Len()
		if speed < 0.5-1e-9 || speed > 2.0+1e-9 {
			t.Errorf("particle %d: speed %f outside band", i, speed)
		}
		if p.life < 0.4-1e-9 || p.life > 1.2+1e-9 {
			t.Errorf("particle %d: lifetime %f outside band", i, p.life)
		}
	}
}

func TestAdvanceIntegratesGravity(t *testing.T) {
	s := NewSystem(testParams(), rand.New(rand.NewSource(3)))
	s.SpawnBurst(geom.Vec2{}, "#00ffff")

	before := make([]float64, s.Count())
	for i, p := range s.particles {
		before[i] = p.Vel.Y
	}

	s.Advance(0.1)

	for i, p := range s.particles {
		want := before[i] - 3.0*0.1
		if diff := p.Vel.Y - want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("particle %d: expected vy %f, got %f", i, want, p.Vel.Y)
		}
	}
}

func TestAdvancePrunesExpired(t *testing.T) {
	s := NewSystem(testParams(), rand.New(rand.NewSource(4)))
	s.SpawnBurst(geom.Vec2{}, "#00ffff")

	// Max lifetime is 1.2s; everything must be gone after 2s.
	for i := 0; i < 20; i++ {
		s.Advance(0.1)
	}
	if s.Count() != 0 {
		t.Errorf("expected all particles pruned, %d remain", s.Count())
	}
}

func TestAliveAlpha(t *testing.T) {
	s := NewSystem(testParams(), rand.New(rand.NewSource(5)))
	s.SpawnBurst(geom.Vec2{}, "#00ffff")

	s.Advance(0.2)

	for i, sp := range s.Alive() {
		if sp.Alpha <= 0 || sp.Alpha > 1 {
			t.Errorf("sprite %d: alpha %f outside (0, 1]", i, sp.Alpha)
		}
		if sp.Color != "#00ffff" {
			t.Errorf("sprite %d: color %s", i, sp.Color)
		}
	}

	// Alpha must shrink as lifetime drains.
	first := s.Alive()[0].Alpha
	s.Advance(0.1)
	if len(s.Alive()) > 0 && s.Alive()[0].Alpha >= first {
		t.Error("alpha should decrease over time")
	}
}

func TestClear(t *testing.T) {
	s := NewSystem(testParams(), rand.New(rand.NewSource(6)))
	s.SpawnBurst(geom.Vec2{}, "#00ffff")
	s.Clear()
	if s.Count() != 0 {
		t.Errorf("expected empty system after clear, got %d", s.Count())
	}
}

func TestZeroBurstCount(t *testing.T) {
	p := testParams()
	p.BurstCount = 0
	s := NewSystem(p, rand.New(rand.NewSource(7)))
	s.SpawnBurst(geom.Vec2{}, "#00ffff")
	if s.Count() != 0 {
		t.Errorf("zero burst count should spawn nothing, got %d", s.Count())
	}
}
