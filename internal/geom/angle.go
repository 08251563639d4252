package geom

import "math"

const twoPi = 2 * math.Pi

// Wrap normalizes an angle into [0, 2π).
func Wrap(a float64) float64 {
	a = math.Mod(a, twoPi)
	if a < 0 {
		a += twoPi
	}
	return a
}

// InWindow reports whether theta falls inside the angular window of the
// given width centered on center. The window is symmetric and wraps
// across 0/2π.
func InWindow(theta, center, width float64) bool {
	d := Wrap(theta - center)
	half := width / 2
	return d < half || d > twoPi-half
}
