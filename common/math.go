package common

import "math"

func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Wrap folds t back into [0, period) once it has gone past period.
// A non-positive period leaves t untouched.
func Wrap(t, period float64) float64 {
	if period <= 0 || t <= period {
		return t
	}
	return math.Mod(t, period)
}
