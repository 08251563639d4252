package session

// EventKind classifies a session event.
type EventKind int

const (
	EventBounce EventKind = iota
	EventEscape
	EventReset
)

func (k EventKind) String() string {
	switch k {
	case EventBounce:
		return "bounce"
	case EventEscape:
		return "escape"
	case EventReset:
		return "reset"
	}
	return "unknown"
}

// Event records one collision outcome or lifecycle transition. Ring is
// the index of the ring involved, or -1 for resets.
type Event struct {
	Kind EventKind
	Time float64
	Ring int
}

func (s *Session) record(kind EventKind, ringIdx int) {
	s.events = append(s.events, Event{Kind: kind, Time: s.elapsed, Ring: ringIdx})
}
