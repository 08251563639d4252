package session

import (
	"math"

	"github.com/dkoval/ringfall/internal/geom"
	"github.com/dkoval/ringfall/internal/ring"
)

// resolve tests the substep's movement against every alive ring. A
// crossing occurred iff the ball's radial distance moved across the
// ring radius, tangency included. Radii form disjoint bands, so ring
// order does not matter and at most one crossing is expected per
// substep at sane speeds.
func (s *Session) resolve(prev geom.Vec2) {
	rPrev := prev.Len()
	rNow := s.pos.Len()
	theta := s.pos.Angle()

	for i := 0; i < s.rings.Len(); i++ {
		rg := s.rings.At(i)
		if !rg.Alive {
			continue
		}
		if (rPrev-rg.Radius)*(rNow-rg.Radius) > 0 {
			continue
		}
		if s.rings.InGap(i, theta) {
			s.escape(i, rg)
		} else {
			s.bounce(i, rg, rPrev, rNow)
		}
	}
}

// escape handles a crossing through the gap: the ring dies for the rest
// of the session, a burst marks the spot, the ball is slowed, the
// restitution shrinks toward its floor, and every remaining ring
// reverses spin.
func (s *Session) escape(i int, rg ring.Ring) {
	s.rings.MarkDead(i)
	s.particles.SpawnBurst(s.pos, rg.Color)

	s.vel = s.vel.Scale(s.opts.EscapeDamping)
	s.restitution = math.Max(s.opts.RestitutionMin, s.restitution*s.opts.EscapeRestitution)
	s.rotDir = -s.rotDir

	s.escapes++
	s.record(EventEscape, i)
}

// bounce reflects the ball off the arc. The outward normal pads the
// radial distance with epsRadial so a pass through the origin cannot
// divide by zero. A fixed tangential kick keeps the ball from
// oscillating purely radially, and each impact regains some restitution
// up to the base cap. The position is re-projected exactly onto the
// ring surface, offset by the ball radius on the side it came from,
// which stops tunneling across repeated substeps.
func (s *Session) bounce(i int, rg ring.Ring, rPrev, rNow float64) {
	normal := s.pos.Scale(1 / (rNow + epsRadial))
	tangent := normal.Perp()

	vn := s.vel.Dot(normal)
	s.vel = s.vel.Sub(normal.Scale((1 + s.restitution) * vn))
	s.vel = s.vel.Add(tangent.Scale(s.opts.TangentialKick))

	s.restitution = math.Min(s.opts.RestitutionBase, s.restitution+s.opts.RestitutionRegain)

	dir := signOf(rPrev - rg.Radius)
	s.pos = normal.Scale(rg.Radius + dir*s.opts.BallRadius)

	s.bounces++
	s.record(EventBounce, i)
}

// signOf maps zero to zero, so an exactly tangent approach re-projects
// onto the ring surface itself rather than either side of it.
func signOf(x float64) float64 {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
