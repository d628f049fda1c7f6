package indicator

// EMA computes the exponential moving average with multiplier
// 2/(period+1). The first value, at position period-1, is seeded with
// the SMA of the first period prices — not with the first price. MACD
// and every EMA-based trend check depend on this exact seeding, so it
// must not change. Same insufficient-data rule as SMA.
func EMA(prices []float64, period int) []float64 {
	out := nanSeries(len(prices))
	if period < 1 || len(prices) < period {
		return out
	}

	seed := 0.0
	for _, p := range prices[:period] {
		seed += p
	}
	out[period-1] = seed / float64(period)

	mult := 2.0 / float64(period+1)
	for i := period; i < len(prices); i++ {
		prev := out[i-1]
		out[i] = (prices[i]-prev)*mult + prev
	}
	return out
}
