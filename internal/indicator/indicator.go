// Package indicator computes technical indicator series over price
// data.
//
// Every function returns output exactly as long as its input, with
// math.NaN() in warm-up positions where the indicator is not yet
// computable. Insufficient data is never an error: a series shorter
// than the indicator's requirement yields a fully NaN result of the
// same length. Errors are reserved for structural contract violations
// (mismatched OHLC column lengths), which indicate a caller bug.
//
// All functions are pure. No state survives a call, so concurrent use
// across instruments needs no coordination.
package indicator

import "math"

// nanSeries returns a slice of n NaNs.
func nanSeries(n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = math.NaN()
	}
	return s
}

// LastValid returns the last non-NaN value of a series — the snapshot
// scalar downstream consumers read. ok is false when every position is
// still warm-up.
func LastValid(series []float64) (v float64, ok bool) {
	for i := len(series) - 1; i >= 0; i-- {
		if !math.IsNaN(series[i]) {
			return series[i], true
		}
	}
	return 0, false
}
