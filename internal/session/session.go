package session

import (
	"math/rand"

	"github.com/dkoval/ringfall/internal/config"
	"github.com/dkoval/ringfall/internal/geom"
	"github.com/dkoval/ringfall/internal/palette"
	"github.com/dkoval/ringfall/internal/particle"
	"github.com/dkoval/ringfall/internal/ring"
)

// Phase is the session lifecycle state.
type Phase int

const (
	Running Phase = iota
	Complete
	// Resetting is instantaneous: reinitialization happens and control
	// returns to Running within the same tick. It is still exposed so
	// event records can name it.
	Resetting
)

func (p Phase) String() string {
	switch p {
	case Running:
		return "running"
	case Complete:
		return "complete"
	case Resetting:
		return "resetting"
	}
	return "unknown"
}

const (
	// epsSpeed is the floor below which the governor leaves velocity
	// alone, avoiding divide-by-zero in direction-preserving rescales.
	epsSpeed = 1e-6
	// epsRadial pads the radial distance when computing the collision
	// normal so a ball passing through the origin cannot divide by zero.
	epsRadial = 1e-8
)

// Session is the complete simulation state for one run. All fields are
// owned by the single caller driving Advance; nothing is shared.
type Session struct {
	opts config.Options
	rng  *rand.Rand

	rings     *ring.System
	particles *particle.System

	pos geom.Vec2
	vel geom.Vec2

	restitution float64
	rotDir      int
	elapsed     float64
	phase       Phase

	ballColor string
	ringColor string

	events  []Event
	bounces int
	escapes int
	resets  int
}

// New builds a session from validated options. The rng drives every
// randomized decision (gap seeding, palette, particle bursts), so a
// fixed seed reproduces a run exactly.
func New(opts config.Options, rng *rand.Rand) *Session {
	s := &Session{
		opts: opts,
		rng:  rng,
	}
	s.ballColor, s.ringColor = palette.Pair(rng)

	mode, err := ring.ParseMode(opts.GapMode)
	if err != nil {
		// Options are validated by the caller; default defensively.
		mode = ring.Independent
	}
	s.rings = ring.New(ring.Params{
		Count:        opts.RingCount,
		InnerRadius:  opts.InnerRadius,
		RadiusStep:   opts.RadiusStep,
		GapWidth:     opts.GapWidth,
		GapBias:      opts.GapBias,
		BaseSpeed:    opts.BaseRotationSpeed,
		SpeedFalloff: opts.SpeedFalloff,
		Mode:         mode,
		Color:        s.ringColor,
	}, rng)

	s.particles = particle.NewSystem(particle.Params{
		BurstCount: opts.BurstCount,
		SpeedMin:   opts.ParticleSpeedMin,
		SpeedMax:   opts.ParticleSpeedMax,
		LifeMin:    opts.ParticleLifeMin,
		LifeMax:    opts.ParticleLifeMax,
		Gravity:    opts.Gravity,
	}, rng)

	s.initRun()
	return s
}

// initRun places the ball and physics coefficients at their fixed
// initial values. Ring geometry is untouched.
func (s *Session) initRun() {
	s.pos = geom.Vec2{}
	s.vel = geom.Vec2{X: s.opts.InitialVelX, Y: s.opts.InitialVelY}
	s.restitution = s.opts.RestitutionBase
	s.rotDir = 1
	s.elapsed = 0
	s.phase = Running
}

// Reset forces an immediate Resetting→Running transition: ball,
// restitution, elapsed time, rotation direction, ring aliveness and gap
// angles, and the color pair are all reinitialized. Ring radii and
// speeds survive, as do the diagnostic counters and event log.
func (s *Session) Reset() {
	s.phase = Resetting
	s.resets++
	s.record(EventReset, -1)

	s.ballColor, s.ringColor = palette.Pair(s.rng)
	s.rings.Reset(s.rng)
	s.rings.Recolor(s.ringColor)
	s.particles.Clear()
	s.initRun()
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase { return s.phase }

// Elapsed returns seconds of simulated time in the current run.
func (s *Session) Elapsed() float64 { return s.elapsed }

// Position returns the ball's position.
func (s *Session) Position() geom.Vec2 { return s.pos }

// Velocity returns the ball's velocity.
func (s *Session) Velocity() geom.Vec2 { return s.vel }

// Restitution returns the current restitution coefficient.
func (s *Session) Restitution() float64 { return s.restitution }

// RotationDir returns the global rotation direction, +1 or -1.
func (s *Session) RotationDir() int { return s.rotDir }

// Rings exposes the ring system, primarily for renderers and tests.
func (s *Session) Rings() *ring.System { return s.rings }

// Events returns the accumulated event log.
func (s *Session) Events() []Event { return s.events }
