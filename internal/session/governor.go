package session

// govern applies post-substep speed control: a mild quadratic-like drag
// followed by a clamp into [SpeedMin, SpeedMax]. Speeds at or below
// epsilon are left untouched so the rescale never divides by zero.
// Repeated bounce gains cannot run away and escape penalties cannot
// stall the ball.
func (s *Session) govern() {
	speed := s.vel.Len()
	if speed <= epsSpeed {
		return
	}

	s.vel = s.vel.Scale(1 - s.opts.DampingCoefficient*speed)

	speed = s.vel.Len()
	if speed > s.opts.SpeedMax {
		s.vel = s.vel.Scale(s.opts.SpeedMax / speed)
	} else if speed < s.opts.SpeedMin && speed > epsSpeed {
		s.vel = s.vel.Scale(s.opts.SpeedMin / speed)
	}
}
