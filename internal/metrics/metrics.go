// Package metrics collects per-run statistics from frame snapshots.
package metrics

import "github.com/dkoval/ringfall/internal/session"

// Metric observes every frame snapshot of a run and reduces it to one
// number.
type Metric interface {
	Name() string
	Observe(snap session.Snapshot)
	Value() float64
	Reset()
}

// Defaults returns the standard set recorded for a headless run.
func Defaults() []Metric {
	return []Metric{
		NewMeanSpeed(),
		NewPeakSpeed(),
		NewCount("bounces", func(s session.Snapshot) int { return s.Bounces }),
		NewCount("escapes", func(s session.Snapshot) int { return s.Escapes }),
		NewCount("resets", func(s session.Snapshot) int { return s.Resets }),
	}
}

// MeanSpeed averages the ball speed across observed frames.
type MeanSpeed struct {
	sum     float64
	samples int
}

func NewMeanSpeed() *MeanSpeed { return &MeanSpeed{} }

func (m *MeanSpeed) Name() string { return "mean_speed" }

func (m *MeanSpeed) Observe(snap session.Snapshot) {
	m.sum += snap.Speed
	m.samples++
}

func (m *MeanSpeed) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *MeanSpeed) Reset() {
	m.sum = 0
	m.samples = 0
}

// PeakSpeed tracks the fastest observed frame.
type PeakSpeed struct {
	max float64
}

func NewPeakSpeed() *PeakSpeed { return &PeakSpeed{} }

func (m *PeakSpeed) Name() string { return "peak_speed" }

func (m *PeakSpeed) Observe(snap session.Snapshot) {
	if snap.Speed > m.max {
		m.max = snap.Speed
	}
}

func (m *PeakSpeed) Value() float64 { return m.max }

func (m *PeakSpeed) Reset() { m.max = 0 }

// Count surfaces one of the session's cumulative counters as a metric.
// The final observed value wins, so it composes with the snapshot's own
// monotonic counting.
type Count struct {
	name string
	get  func(session.Snapshot) int
	last int
}

func NewCount(name string, get func(session.Snapshot) int) *Count {
	return &Count{name: name, get: get}
}

func (c *Count) Name() string { return c.name }

func (c *Count) Observe(snap session.Snapshot) { c.last = c.get(snap) }

func (c *Count) Value() float64 { return float64(c.last) }

func (c *Count) Reset() { c.last = 0 }
