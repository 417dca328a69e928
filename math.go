package spx

import "github.com/chewxy/math32"

// Lerp performs linear interpolation between a and b.
// t=0 returns a, t=1 returns b. t is not clamped.
func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

// InvLerp returns the parameter t for which Lerp(min, max, t) == n.
// Returns 0 when the range is empty.
func InvLerp(min, max, n float32) float32 {
	if max-min == 0 {
		return 0
	}
	return (n - min) / (max - min)
}

// SmoothLerp interpolates between a and b along a smoothstep curve.
func SmoothLerp(a, b, t float32) float32 {
	return a + (t*t*(3-2*t))*(b-a)
}

// Remap maps n from the range [min, max] to [a, b].
func Remap(min, max, a, b, n float32) float32 {
	return Lerp(a, b, InvLerp(min, max, n))
}

// Clamp restricts n to the range [min, max].
func Clamp(n, min, max float32) float32 {
	if n > max {
		return max
	}
	if n < min {
		return min
	}
	return n
}

// Sign returns -1 for negative n and 1 otherwise.
func Sign(n float32) float32 {
	if n < 0 {
		return -1
	}
	return 1
}

// fpart returns the fractional part of x, always in [0, 1).
func fpart(x float32) float32 {
	return x - math32.Floor(x)
}

// clampInt restricts n to the range [lo, hi].
func clampInt(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
