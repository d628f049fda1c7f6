package indicator

// SMA computes the simple moving average over a trailing window of
// size period. The running sum is maintained incrementally — one add
// and one subtract per step. The first period-1 positions are NaN;
// period < 1 or fewer than period prices yields a fully NaN series.
func SMA(prices []float64, period int) []float64 {
	out := nanSeries(len(prices))
	if period < 1 || len(prices) < period {
		return out
	}

	sum := 0.0
	for _, p := range prices[:period] {
		sum += p
	}
	out[period-1] = sum / float64(period)

	for i := period; i < len(prices); i++ {
		sum += prices[i] - prices[i-period]
		out[i] = sum / float64(period)
	}
	return out
}
