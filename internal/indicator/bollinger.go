package indicator

import "gonum.org/v1/gonum/stat"

// BollingerResult holds the three band series, each aligned to the
// input.
type BollingerResult struct {
	Upper  []float64
	Middle []float64
	Lower  []float64
}

// BollingerBands computes Bollinger Bands over a trailing window.
// Middle is SMA(period); upper and lower sit k population standard
// deviations away (variance divides by period, not period-1). The
// first period-1 positions of all three series are NaN.
func BollingerBands(prices []float64, period int, k float64) BollingerResult {
	n := len(prices)
	res := BollingerResult{
		Upper:  nanSeries(n),
		Middle: nanSeries(n),
		Lower:  nanSeries(n),
	}
	if period < 1 || n < period {
		return res
	}

	for i := period - 1; i < n; i++ {
		window := prices[i-period+1 : i+1]
		mean := stat.Mean(window, nil)
		band := k * stat.PopStdDev(window, nil)
		res.Middle[i] = mean
		res.Upper[i] = mean + band
		res.Lower[i] = mean - band
	}
	return res
}
