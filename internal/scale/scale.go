// Package scale holds the numeric helpers used to map chart values into
// pixel space.
package scale

import "math"

// Normalize maps v from the range [lo, hi] onto [0, 1].
//
// Values outside the range are not clamped: Normalize(2*hi, 0, hi) is 2.
// An empty range (hi == lo) maps every value to 0 instead of producing
// NaN or an infinity.
func Normalize(v, lo, hi float64) float64 {
	d := hi - lo
	if d == 0 {
		return 0
	}
	n := (v - lo) / d
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return n
}

// Max returns the largest value in values.
// The result is never below 0, so Max(nil) and a slice of negative values
// both return 0.
func Max(values []float64) float64 {
	m := 0.0
	for _, v := range values {
		if v > m {
			m = v
		}
	}
	return m
}
