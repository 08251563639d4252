// Package arena is a simpler companion scene: balls dropped into a
// static circular boundary, bouncing off the wall and each other. No
// gaps, no restitution policy, no lifecycle, just pairwise elastic
// response.
package arena

import (
	"math/rand"

	"github.com/dkoval/ringfall/internal/geom"
	"github.com/dkoval/ringfall/internal/palette"
)

// Ball is one arena ball. Equal density is assumed; impulse exchange
// ignores mass.
type Ball struct {
	Pos    geom.Vec2
	Vel    geom.Vec2
	Radius float64
	Color  string
}

// World holds the boundary and the ball set.
type World struct {
	Radius  float64 // boundary circle radius
	Gravity float64 // downward acceleration, negative y

	RadiusMin float64 // spawn radius band
	RadiusMax float64

	balls []Ball
	rng   *rand.Rand
	next  int // palette cursor so spawn colors cycle
}

func NewWorld(radius, gravity float64, rng *rand.Rand) *World {
	return &World{
		Radius:    radius,
		Gravity:   gravity,
		RadiusMin: radius / 25,
		RadiusMax: radius / 10,
		rng:       rng,
	}
}

// Spawn drops a new ball at rest at the given position, with a random
// radius and the next palette color.
func (w *World) Spawn(at geom.Vec2) {
	r := w.RadiusMin + w.rng.Float64()*(w.RadiusMax-w.RadiusMin)
	w.balls = append(w.balls, Ball{
		Pos:    at,
		Radius: r,
		Color:  palette.Vivid[w.next%len(palette.Vivid)],
	})
	w.next++
}

// Clear removes every ball.
func (w *World) Clear() {
	w.balls = w.balls[:0]
}

// Balls returns the current ball set for rendering.
func (w *World) Balls() []Ball {
	return w.balls
}

// Count returns the number of balls.
func (w *World) Count() int {
	return len(w.balls)
}

// Step advances one frame: integrate gravity, reflect off the boundary
// with positional correction, then resolve pairwise overlaps.
func (w *World) Step(dt float64) {
	for i := range w.balls {
		b := &w.balls[i]
		b.Vel.Y += w.Gravity * dt
		b.Pos = b.Pos.Add(b.Vel.Scale(dt))
		w.collideBoundary(b)
	}
	w.collidePairs()
}

// collideBoundary reflects a ball that crossed the wall and pushes it
// back inside so it cannot sink into the boundary over repeated frames.
func (w *World) collideBoundary(b *Ball) {
	dist := b.Pos.Len()
	if dist <= w.Radius-b.Radius || dist == 0 {
		return
	}

	normal := b.Pos.Scale(1 / dist)
	vn := b.Vel.Dot(normal)
	b.Vel = b.Vel.Sub(normal.Scale(2 * vn))

	overshoot := dist + b.Radius - w.Radius
	b.Pos = b.Pos.Sub(normal.Scale(overshoot))
}

// collidePairs applies an equal-mass elastic impulse along the contact
// normal and separates overlapping pairs in proportion to their radii.
func (w *World) collidePairs() {
	for i := 0; i < len(w.balls); i++ {
		for j := i + 1; j < len(w.balls); j++ {
			a, b := &w.balls[i], &w.balls[j]

			delta := a.Pos.Sub(b.Pos)
			dist := delta.Len()
			if dist == 0 || dist >= a.Radius+b.Radius {
				continue
			}

			normal := delta.Scale(1 / dist)
			dv := a.Vel.Sub(b.Vel)
			p := dv.Dot(normal)
			a.Vel = a.Vel.Sub(normal.Scale(p))
			b.Vel = b.Vel.Add(normal.Scale(p))

			overlap := a.Radius + b.Radius - dist
			prop := a.Radius / (a.Radius + b.Radius)
			a.Pos = a.Pos.Add(normal.Scale(overlap * prop))
			b.Pos = b.Pos.Sub(normal.Scale(overlap * (1 - prop)))
		}
	}
}
