package session

// Advance runs one frame tick of dt seconds and returns the snapshot
// for the renderer. In Complete the physics is suspended and the frozen
// state is returned as-is.
func (s *Session) Advance(dt float64) Snapshot {
	if s.phase == Complete {
		return s.snapshot()
	}

	h := dt / float64(s.opts.Substeps)
	for i := 0; i < s.opts.Substeps; i++ {
		prev := s.pos
		s.elapsed += h

		s.vel.Y += s.opts.Gravity * h
		s.pos = s.pos.Add(s.vel.Scale(h))

		s.rings.Rotate(h, s.rotDir)
		s.resolve(prev)
	}

	s.govern()
	s.checkLifecycle()

	s.particles.Advance(dt)
	return s.snapshot()
}

// checkLifecycle applies the state machine after the tick's substeps.
// A configuration with zero rings completes immediately; a run whose
// rings all died before the minimum acceptable duration is treated as
// failed and silently regenerated; a run past the hard duration limit
// is regenerated as well.
func (s *Session) checkLifecycle() {
	if s.rings.Len() == 0 {
		s.phase = Complete
		return
	}
	if s.rings.AllDead() {
		if s.elapsed >= s.opts.MinAcceptableDuration {
			s.phase = Complete
			return
		}
		s.Reset()
		return
	}
	if s.elapsed > s.opts.MaxDurationLimit {
		s.Reset()
	}
}
