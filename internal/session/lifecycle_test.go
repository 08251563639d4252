package session

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/dkoval/ringfall/internal/config"
)

// wideGapOpts makes the gap cover nearly the whole circle so the first
// crossing is an escape and a one-ring session ends within moments.
func wideGapOpts() config.Options {
	opts := *config.Default()
	opts.RingCount = 1
	opts.GapWidth = 6.0
	return opts
}

var _ = Describe("lifecycle state machine", func() {
	Context("when every ring dies before the minimum acceptable duration", func() {
		It("regenerates the run instead of completing", func() {
			opts := wideGapOpts()
			opts.MinAcceptableDuration = 10
			s := newTestSession(opts, 11)

			for tick := 0; tick < 600; tick++ {
				snap := s.Advance(tickDt)
				Expect(snap.Phase).NotTo(Equal(Complete), "a too-fast run must never complete")
				if snap.Resets > 0 {
					break
				}
			}
			Expect(s.resets).To(BeNumerically(">=", 1))
			Expect(s.Phase()).To(Equal(Running))
			Expect(s.rings.AliveCount()).To(Equal(1))
		})
	})

	Context("when every ring dies after the minimum acceptable duration", func() {
		It("transitions to Complete and stays there", func() {
			opts := wideGapOpts()
			opts.MinAcceptableDuration = 0
			s := newTestSession(opts, 12)

			var final Snapshot
			for tick := 0; tick < 600; tick++ {
				final = s.Advance(tickDt)
				if final.Phase == Complete {
					break
				}
			}
			Expect(final.Phase).To(Equal(Complete))

			frozen := s.Advance(tickDt)
			Expect(frozen.Elapsed).To(Equal(final.Elapsed))
			Expect(frozen.Ball.Pos).To(Equal(final.Ball.Pos))
		})
	})

	Context("when a run outlives the hard duration limit", func() {
		It("resets instead of running forever", func() {
			opts := *config.Default()
			opts.RingCount = 1
			opts.GapWidth = math.Pi / 64
			opts.MinAcceptableDuration = 1000
			opts.MaxDurationLimit = 0.5
			s := newTestSession(opts, 13)

			for tick := 0; tick < 90; tick++ {
				s.Advance(tickDt)
			}
			Expect(s.resets).To(BeNumerically(">=", 1))
			Expect(s.Phase()).To(Equal(Running))
			Expect(s.Elapsed()).To(BeNumerically("<=", 0.5+1))
		})
	})

	Context("on a manual reset signal", func() {
		It("returns to Running from Complete", func() {
			opts := wideGapOpts()
			opts.MinAcceptableDuration = 0
			s := newTestSession(opts, 14)

			for tick := 0; tick < 600 && s.Phase() != Complete; tick++ {
				s.Advance(tickDt)
			}
			Expect(s.Phase()).To(Equal(Complete))

			s.Reset()
			Expect(s.Phase()).To(Equal(Running))
			Expect(s.Elapsed()).To(BeZero())
			Expect(s.rings.AliveCount()).To(Equal(1))
			Expect(s.RotationDir()).To(Equal(1))
		})

		It("re-rolls a contrasting color pair", func() {
			s := newTestSession(*config.Default(), 15)
			s.Reset()
			Expect(s.ballColor).NotTo(Equal(s.ringColor))
		})
	})

	Context("while a run is in progress", func() {
		It("keeps dead rings dead until reset", func() {
			opts := *config.Default()
			opts.RingCount = 4
			opts.MinAcceptableDuration = 0
			s := newTestSession(opts, 16)

			seenDead := make(map[int]bool)
			for tick := 0; tick < 2000; tick++ {
				snap := s.Advance(tickDt)
				if snap.Phase == Complete || snap.Resets > 0 {
					break
				}
				for i, arc := range snap.Rings {
					if seenDead[i] {
						Expect(arc.Alive).To(BeFalse(), "ring %d came back to life mid-run", i)
					}
					if !arc.Alive {
						seenDead[i] = true
					}
				}
			}
		})
	})
})
