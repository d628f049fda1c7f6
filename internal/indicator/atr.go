package indicator

import (
	"fmt"
	"math"
)

// ATR computes the Average True Range.
//
// True range at position 0 is high-low (no previous close exists);
// afterwards it is the largest of high-low, |high-prevClose| and
// |low-prevClose|. The first ATR, at position period, is a simple mean
// of TR[1..period]; later values use Wilder smoothing
// atr = (prev*(period-1) + TR) / period.
//
// Mismatched column lengths are a caller bug and return an error —
// the one hard failure in this package. Fewer than period+1 candles
// yields a fully NaN series with a nil error.
func ATR(highs, lows, closes []float64, period int) ([]float64, error) {
	n := len(highs)
	if len(lows) != n || len(closes) != n {
		return nil, fmt.Errorf("atr: mismatched column lengths: highs=%d lows=%d closes=%d",
			n, len(lows), len(closes))
	}

	out := nanSeries(n)
	if period < 1 || n < period+1 {
		return out, nil
	}

	tr := make([]float64, n)
	tr[0] = highs[0] - lows[0]
	for i := 1; i < n; i++ {
		hl := highs[i] - lows[i]
		hc := math.Abs(highs[i] - closes[i-1])
		lc := math.Abs(lows[i] - closes[i-1])
		tr[i] = math.Max(hl, math.Max(hc, lc))
	}

	sum := 0.0
	for _, v := range tr[1 : period+1] {
		sum += v
	}
	out[period] = sum / float64(period)

	p := float64(period)
	for i := period + 1; i < n; i++ {
		out[i] = (out[i-1]*(p-1) + tr[i]) / p
	}
	return out, nil
}
