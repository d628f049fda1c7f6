package levels

import "gtt-analytics/internal/model"

// SwingHighs runs the percentage-threshold zig-zag detector over a
// candle sequence, oldest first, and returns confirmed swing highs
// most recent first.
//
// The detector is a single-pass state machine. It tracks one candidate
// high; a later candle whose low undercuts the candidate by at least
// thresholdPct — measured as (candidate - low) / candidate — commits
// the candidate and resets tracking to that candle's high. A candle
// exceeding the candidate merely raises it. There is no other commit
// path: a candidate that is never undercut produces no swing, even
// over an arbitrarily long uptrend. The detector is online and keeps
// no look-back; downstream consumers rely on that behavior.
func SwingHighs(candles []model.Candle, thresholdPct float64) []model.SwingPoint {
	if len(candles) < 2 {
		return nil
	}

	var swings []model.SwingPoint
	candidate := candles[0].High
	candidateTS := candles[0].Timestamp

	for _, c := range candles[1:] {
		drop := (candidate - c.Low) / candidate
		if drop >= thresholdPct {
			swings = append(swings, model.SwingPoint{Timestamp: candidateTS, Price: candidate})
			candidate = c.High
			candidateTS = c.Timestamp
		} else if c.High > candidate {
			candidate = c.High
			candidateTS = c.Timestamp
		}
	}

	reverse(swings)
	return swings
}

// SwingLows mirrors SwingHighs for local minima: a candidate low is
// committed once a later candle's high rises off it by at least
// thresholdPct, measured as (high - candidate) / candidate.
func SwingLows(candles []model.Candle, thresholdPct float64) []model.SwingPoint {
	if len(candles) < 2 {
		return nil
	}

	var swings []model.SwingPoint
	candidate := candles[0].Low
	candidateTS := candles[0].Timestamp

	for _, c := range candles[1:] {
		rise := (c.High - candidate) / candidate
		if rise >= thresholdPct {
			swings = append(swings, model.SwingPoint{Timestamp: candidateTS, Price: candidate})
			candidate = c.Low
			candidateTS = c.Timestamp
		} else if c.Low < candidate {
			candidate = c.Low
			candidateTS = c.Timestamp
		}
	}

	reverse(swings)
	return swings
}

func reverse(s []model.SwingPoint) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
