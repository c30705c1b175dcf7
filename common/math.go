package common

// Lerp interpolates between a and b without clamping t.
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Clamp01 limits t to the unit interval.
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// LerpClamped interpolates between a and b with t clamped to [0, 1].
func LerpClamped(a, b, t float64) float64 {
	return Lerp(a, b, Clamp01(t))
}

// InverseLerp returns where value sits between a and b, clamped to [0, 1].
// A degenerate range yields 0.
func InverseLerp(a, b, value float64) float64 {
	if a == b {
		return 0
	}
	return Clamp01((value - a) / (b - a))
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
