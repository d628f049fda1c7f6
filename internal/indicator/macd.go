package indicator

import "math"

// MACDResult holds the three MACD series, each aligned to the input.
type MACDResult struct {
	MACD      []float64
	Signal    []float64
	Histogram []float64
}

// MACD computes the Moving Average Convergence Divergence.
//
// The line is EMA(fast) - EMA(slow) position-wise, NaN wherever either
// operand is NaN. The signal line is an EMA run over the contiguous
// non-NaN tail of the line only — not the NaN-padded full series —
// then re-padded at the front so all three outputs stay aligned.
// Histogram = line - signal, NaN-propagating.
//
// fast >= slow or fewer than slow prices yields fully NaN output.
// When the line has fewer valid points than signal, the computable
// line is returned with NaN signal and histogram.
func MACD(prices []float64, fast, slow, signal int) MACDResult {
	n := len(prices)
	res := MACDResult{
		MACD:      nanSeries(n),
		Signal:    nanSeries(n),
		Histogram: nanSeries(n),
	}
	if fast >= slow || n < slow {
		return res
	}

	emaFast := EMA(prices, fast)
	emaSlow := EMA(prices, slow)
	for i := 0; i < n; i++ {
		if !math.IsNaN(emaFast[i]) && !math.IsNaN(emaSlow[i]) {
			res.MACD[i] = emaFast[i] - emaSlow[i]
		}
	}

	// fast < slow, so the line is valid exactly from slow-1 onward.
	valid := res.MACD[slow-1:]
	if len(valid) < signal || signal < 1 {
		return res
	}
	copy(res.Signal[slow-1:], EMA(valid, signal))

	for i := 0; i < n; i++ {
		if !math.IsNaN(res.MACD[i]) && !math.IsNaN(res.Signal[i]) {
			res.Histogram[i] = res.MACD[i] - res.Signal[i]
		}
	}
	return res
}
