package game

import "math"

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func dist(x1, z1, x2, z2 float64) float64 {
	return math.Hypot(x2-x1, z2-z1)
}

func dist2(x1, z1, x2, z2 float64) float64 {
	dx := x2 - x1
	dz := z2 - z1
	return dx*dx + dz*dz
}

// normalize2 returns the unit vector for (x, z). A near-zero input
// yields straight ahead (0, -1) so a degenerate fire direction still
// produces a sane shot.
func normalize2(x, z float64) (float64, float64) {
	l := math.Hypot(x, z)
	if l < 1e-9 {
		return 0, -1
	}
	return x / l, z / l
}

// Fire colour bands by squad size. The mapping to actual colours lives
// in the presentation layer; the core only tags projectiles with the
// band index at spawn.
const (
	BandLone = iota // size < 5
	BandSmall
	BandMid
	BandLarge // size >= 20

	bandCount
)

func sizeColorBand(size int) int {
	switch {
	case size < 5:
		return BandLone
	case size < 10:
		return BandSmall
	case size < 20:
		return BandMid
	default:
		return BandLarge
	}
}
