package session

import (
	"fmt"

	"github.com/dkoval/ringfall/internal/geom"
	"github.com/dkoval/ringfall/internal/particle"
)

// Ball is the render-facing ball pose.
type Ball struct {
	Pos    geom.Vec2
	Radius float64
	Color  string
}

// Arc describes one ring for arc rendering. The drawn arc sweeps
// counter-clockwise from ArcStart to ArcEnd, leaving the gap window
// open. Dead rings keep their last geometry but are flagged.
type Arc struct {
	Radius    float64
	Alive     bool
	GapCenter float64
	ArcStart  float64
	ArcEnd    float64
	Color     string
}

// Snapshot is the read-only frame handed to the renderer. It carries no
// references into live session state.
type Snapshot struct {
	Ball      Ball
	Rings     []Arc
	Particles []particle.Sprite

	Phase       Phase
	Elapsed     float64
	Clock       string
	Speed       float64
	Restitution float64
	RotationDir int
	AliveRings  int

	Bounces int
	Escapes int
	Resets  int
}

// Snapshot returns the current frame without advancing time.
func (s *Session) Snapshot() Snapshot {
	return s.snapshot()
}

func (s *Session) snapshot() Snapshot {
	half := s.rings.GapWidth() / 2
	arcs := make([]Arc, s.rings.Len())
	for i := range arcs {
		rg := s.rings.At(i)
		arcs[i] = Arc{
			Radius:    rg.Radius,
			Alive:     rg.Alive,
			GapCenter: rg.Gap,
			ArcStart:  geom.Wrap(rg.Gap + half),
			ArcEnd:    geom.Wrap(rg.Gap - half),
			Color:     rg.Color,
		}
	}

	return Snapshot{
		Ball: Ball{
			Pos:    s.pos,
			Radius: s.opts.BallRadius,
			Color:  s.ballColor,
		},
		Rings:     arcs,
		Particles: s.particles.Alive(),

		Phase:       s.phase,
		Elapsed:     s.elapsed,
		Clock:       formatClock(s.elapsed),
		Speed:       s.vel.Len(),
		Restitution: s.restitution,
		RotationDir: s.rotDir,
		AliveRings:  s.rings.AliveCount(),

		Bounces: s.bounces,
		Escapes: s.escapes,
		Resets:  s.resets,
	}
}

// formatClock renders elapsed seconds as the stopwatch string MM:SS:CC.
func formatClock(elapsed float64) string {
	mins := int(elapsed) / 60
	secs := int(elapsed) % 60
	cent := int(elapsed*100) % 100
	return fmt.Sprintf("%02d:%02d:%02d", mins, secs, cent)
}
