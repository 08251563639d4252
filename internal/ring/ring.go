// Package ring owns the ordered collection of rotating partial-arc
// boundaries the ball must escape through.
package ring

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/dkoval/ringfall/internal/geom"
)

// Mode selects how gap angles are seeded.
type Mode int

const (
	// Independent gives each ring its own biased gap angle.
	Independent Mode = iota
	// Shared starts every ring with one common gap angle, forming an
	// initially aligned tunnel.
	Shared
)

// ParseMode maps a config string to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "independent":
		return Independent, nil
	case "shared":
		return Shared, nil
	}
	return Independent, fmt.Errorf("unknown gap mode %q", s)
}

// Ring is one partial circular boundary. Radius and Speed are fixed at
// construction; Gap rotates every substep and Alive flips to false once
// the ball escapes through the gap.
type Ring struct {
	Radius float64
	Gap    float64 // gap-center angle, always in [0, 2π)
	Speed  float64 // angular speed magnitude
	Alive  bool
	Color  string
}

// Params configures a System.
type Params struct {
	Count        int
	InnerRadius  float64
	RadiusStep   float64
	GapWidth     float64
	GapBias      float64 // max per-ring angular bias in Independent mode
	BaseSpeed    float64
	SpeedFalloff float64 // per-index divisor growth: speed = base/(1+i*falloff)
	Mode         Mode
	Color        string
}

// System holds the rings. Radii and speeds never change for the life of
// the process; Reset only reseeds gaps and aliveness.
type System struct {
	rings    []Ring
	gapWidth float64
	gapBias  float64
	mode     Mode
}

// New constructs Count rings with strictly increasing radii
// inner + i*step and speeds base/(1+i*falloff), then seeds the gap
// angles from rng according to the mode.
func New(p Params, rng *rand.Rand) *System {
	s := &System{
		rings:    make([]Ring, p.Count),
		gapWidth: p.GapWidth,
		gapBias:  p.GapBias,
		mode:     p.Mode,
	}
	for i := range s.rings {
		s.rings[i] = Ring{
			Radius: p.InnerRadius + float64(i)*p.RadiusStep,
			Speed:  p.BaseSpeed / (1 + float64(i)*p.SpeedFalloff),
			Alive:  true,
			Color:  p.Color,
		}
	}
	s.seedGaps(rng)
	return s
}

// seedGaps rolls a fresh base angle and distributes gaps per the mode.
func (s *System) seedGaps(rng *rand.Rand) {
	base := rng.Float64() * 2 * math.Pi
	for i := range s.rings {
		switch s.mode {
		case Shared:
			s.rings[i].Gap = geom.Wrap(base)
		default:
			bias := (rng.Float64()*2 - 1) * s.gapBias
			s.rings[i].Gap = geom.Wrap(base + bias)
		}
	}
}

// Rotate advances every alive ring's gap by dir*speed*dt, wrapped into
// [0, 2π). Dead rings stop rotating; their arcs are no longer drawn.
func (s *System) Rotate(dt float64, dir int) {
	for i := range s.rings {
		if !s.rings[i].Alive {
			continue
		}
		s.rings[i].Gap = geom.Wrap(s.rings[i].Gap + float64(dir)*s.rings[i].Speed*dt)
	}
}

// MarkDead retires the ring at index i for the rest of the session.
func (s *System) MarkDead(i int) {
	s.rings[i].Alive = false
}

// AllDead reports whether no ring remains alive. Trivially true for an
// empty system.
func (s *System) AllDead() bool {
	for i := range s.rings {
		if s.rings[i].Alive {
			return false
		}
	}
	return true
}

// AliveCount returns the number of rings still alive.
func (s *System) AliveCount() int {
	n := 0
	for i := range s.rings {
		if s.rings[i].Alive {
			n++
		}
	}
	return n
}

// Len returns the total ring count, dead or alive.
func (s *System) Len() int {
	return len(s.rings)
}

// At returns a copy of the ring at index i.
func (s *System) At(i int) Ring {
	return s.rings[i]
}

// GapWidth returns the full angular width of every gap.
func (s *System) GapWidth() float64 {
	return s.gapWidth
}

// InGap reports whether the angle theta falls inside ring i's gap
// window, handling wraparound at 0/2π.
func (s *System) InGap(i int, theta float64) bool {
	return geom.InWindow(theta, s.rings[i].Gap, s.gapWidth)
}

// Reset restores every ring to alive and reseeds the gap angles.
// Radii and speeds are untouched.
func (s *System) Reset(rng *rand.Rand) {
	for i := range s.rings {
		s.rings[i].Alive = true
	}
	s.seedGaps(rng)
}

// Recolor repaints every ring, typically after a session reset rolls a
// fresh palette pair.
func (s *System) Recolor(color string) {
	for i := range s.rings {
		s.rings[i].Color = color
	}
}
