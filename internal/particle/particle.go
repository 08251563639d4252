// Package particle implements the ephemeral burst effects emitted when
// the ball escapes through a ring gap.
package particle

import (
	"math"
	"math/rand"

	"github.com/dkoval/ringfall/internal/geom"
)

// Particle is one burst fragment. life counts down to zero; life0 keeps
// the initial value so alpha can be derived as a fraction.
type Particle struct {
	Pos   geom.Vec2
	Vel   geom.Vec2
	Color string
	life  float64
	life0 float64
}

// Sprite is the render-facing view of a live particle.
type Sprite struct {
	Pos   geom.Vec2
	Color string
	Alpha float64 // remaining-lifetime fraction in (0, 1]
}

// Params configures burst generation.
type Params struct {
	BurstCount int
	SpeedMin   float64
	SpeedMax   float64
	LifeMin    float64
	LifeMax    float64
	Gravity    float64
}

// System owns the particle set. Order is irrelevant; particles are
// created in bursts and pruned once expired.
type System struct {
	params    Params
	particles []Particle
	rng       *rand.Rand
}

func NewSystem(p Params, rng *rand.Rand) *System {
	return &System{
		params:    p,
		particles: make([]Particle, 0, p.BurstCount*4),
		rng:       rng,
	}
}

// SpawnBurst emits a fixed count of particles at the given position,
// each with a uniformly random direction, a speed within the configured
// band, and a finite random lifetime.
func (s *System) SpawnBurst(at geom.Vec2, color string) {
	for i := 0; i < s.params.BurstCount; i++ {
		angle := s.rng.Float64() * 2 * math.Pi
		speed := s.params.SpeedMin + s.rng.Float64()*(s.params.SpeedMax-s.params.SpeedMin)
		life := s.params.LifeMin + s.rng.Float64()*(s.params.LifeMax-s.params.LifeMin)

		s.particles = append(s.particles, Particle{
			Pos:   at,
			Vel:   geom.FromPolar(angle, speed),
			Color: color,
			life:  life,
			life0: life,
		})
	}
}

// Advance decrements lifetimes, integrates gravity and velocity for the
// survivors, and prunes everything at or below zero life. Called once
// per tick, not per substep.
func (s *System) Advance(dt float64) {
	kept := s.particles[:0]
	for _, p := range s.particles {
		p.life -= dt
		if p.life <= 0 {
			continue
		}
		p.Vel.Y += s.params.Gravity * dt
		p.Pos = p.Pos.Add(p.Vel.Scale(dt))
		kept = append(kept, p)
	}
	s.particles = kept
}

// Alive returns the current live particles with their alpha values.
func (s *System) Alive() []Sprite {
	out := make([]Sprite, 0, len(s.particles))
	for _, p := range s.particles {
		out = append(out, Sprite{
			Pos:   p.Pos,
			Color: p.Color,
			Alpha: p.life / p.life0,
		})
	}
	return out
}

// Count returns the number of live particles.
func (s *System) Count() int {
	return len(s.particles)
}

// Clear drops every particle, used on session reset.
func (s *System) Clear() {
	s.particles = s.particles[:0]
}
