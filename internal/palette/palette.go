// Package palette picks the vivid display colors used for the ball,
// rings, and particle bursts. Selection is driven by an injected RNG so
// a seeded session re-rolls the same colors.
package palette

import (
	"math/rand"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Vivid is the set of high-saturation colors the display cycles
// through. Values are hex strings a renderer can consume directly.
var Vivid = []string{
	"#00ff00", // lime
	"#00ffff", // cyan
	"#ff00ff", // magenta
	"#ffff00", // yellow
	"#ffa500", // orange
	"#ff0000", // red
	"#00bfff", // deep sky blue
	"#00ff7f", // spring green
	"#ff00cc", // fuchsia
	"#ffd700", // gold
}

// minContrast is the minimum CIE-Lab distance between the ball and ring
// colors. Below this the two read as the same hue on dark terminals.
const minContrast = 0.25

// Pick returns one random vivid color.
func Pick(rng *rand.Rand) string {
	return Vivid[rng.Intn(len(Vivid))]
}

// Pair returns a ball color and a ring color that are visually distinct.
// Candidates are re-rolled until the Lab distance clears minContrast,
// with a bounded number of attempts so a degenerate palette cannot spin
// forever.
func Pair(rng *rand.Rand) (ball, ring string) {
	ball = Pick(rng)
	ring = Pick(rng)
	for attempts := 0; attempts < 32; attempts++ {
		if ring != ball && Contrast(ball, ring) >= minContrast {
			return ball, ring
		}
		ring = Pick(rng)
	}
	// Fall back to any different color.
	for ring == ball {
		ring = Pick(rng)
	}
	return ball, ring
}

// Contrast returns the CIE-Lab distance between two hex colors.
// Unparseable input counts as zero contrast.
func Contrast(a, b string) float64 {
	ca, err := colorful.Hex(a)
	if err != nil {
		return 0
	}
	cb, err := colorful.Hex(b)
	if err != nil {
		return 0
	}
	return ca.DistanceLab(cb)
}
