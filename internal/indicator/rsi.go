package indicator

// RSI computes the Relative Strength Index using Wilder's smoothing.
// Per-step deltas split into gains and losses (a negative delta
// contributes zero gain and vice versa). The initial averages are
// simple means of the first period deltas; from then on
// avg = (avg*(period-1) + new) / period. When the average loss is zero
// RSI is 100 — the ratio is never formed, so there is no division by
// zero. The first value lands at position period and needs period+1
// prices; shorter input yields a fully NaN series.
func RSI(prices []float64, period int) []float64 {
	out := nanSeries(len(prices))
	if period < 1 || len(prices) < period+1 {
		return out
	}

	avgGain, avgLoss := 0.0, 0.0
	for i := 1; i <= period; i++ {
		delta := prices[i] - prices[i-1]
		if delta > 0 {
			avgGain += delta
		} else {
			avgLoss += -delta
		}
	}
	p := float64(period)
	avgGain /= p
	avgLoss /= p
	out[period] = rsiValue(avgGain, avgLoss)

	for i := period + 1; i < len(prices); i++ {
		delta := prices[i] - prices[i-1]
		gain, loss := 0.0, 0.0
		if delta > 0 {
			gain = delta
		} else {
			loss = -delta
		}
		avgGain = (avgGain*(p-1) + gain) / p
		avgLoss = (avgLoss*(p-1) + loss) / p
		out[i] = rsiValue(avgGain, avgLoss)
	}
	return out
}

func rsiValue(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		return 100.0
	}
	rs := avgGain / avgLoss
	return 100.0 - (100.0 / (1.0 + rs))
}
