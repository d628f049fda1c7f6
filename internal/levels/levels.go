// Package levels derives support/resistance context from candle
// history: 52-week and 20-day extremes, confirmed swing points,
// psychological round-number brackets, and ATR-normalized volatility.
//
// Like the indicator package it is pure computation: the analyzer
// reads its arguments, allocates its result, and keeps nothing.
package levels

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"gtt-analytics/internal/model"
)

// DefaultSwingThreshold is the minimum adverse move, as a fraction of
// the candidate extreme, required to confirm a swing point.
const DefaultSwingThreshold = 0.03

// shortWindow is the number of trailing candles in the short-term
// extreme window.
const shortWindow = 20

// Compute derives all price levels from a candle sequence, oldest
// first. The caller bounds the window — ideally to about one trading
// year; no date filtering happens here. currentPrice is typically the
// last close. atr, when non-nil, is the instrument's ATR in raw price
// units.
//
// Empty input or a missing current price (NaN or non-positive) yields
// an all-absent PriceLevels: this feeds advisory analytics, so it
// degrades instead of failing.
func Compute(candles []model.Candle, currentPrice float64, atr *float64, thresholdPct float64) model.PriceLevels {
	var pl model.PriceLevels
	if len(candles) == 0 || math.IsNaN(currentPrice) || currentPrice <= 0 {
		return pl
	}

	high52w := floats.Max(model.Highs(candles))
	low52w := floats.Min(model.Lows(candles))
	pl.High52w = fptr(high52w)
	pl.Low52w = fptr(low52w)
	pl.PctFrom52wHigh = fptr((currentPrice - high52w) / high52w * 100)
	pl.PctFrom52wLow = fptr((currentPrice - low52w) / low52w * 100)

	short := candles
	if len(candles) > shortWindow {
		short = candles[len(candles)-shortWindow:]
	}
	pl.High20d = fptr(floats.Max(model.Highs(short)))
	pl.Low20d = fptr(floats.Min(model.Lows(short)))

	if highs := SwingHighs(candles, thresholdPct); len(highs) > 0 {
		pl.RecentSwingHigh = fptr(highs[0].Price)
		ts := highs[0].Timestamp
		pl.RecentSwingHighTime = &ts
	}
	if lows := SwingLows(candles, thresholdPct); len(lows) > 0 {
		pl.RecentSwingLow = fptr(lows[0].Price)
		ts := lows[0].Timestamp
		pl.RecentSwingLowTime = &ts
	}

	if above, below, ok := RoundLevels(currentPrice); ok {
		pl.RoundLevelAbove = fptr(above)
		pl.RoundLevelBelow = fptr(below)
	}

	if atr != nil {
		pl.ATRPercent = fptr(*atr / currentPrice * 100)
	}
	return pl
}

// RoundLevels returns the nearest psychological round-number prices
// bracketing price. The step adapts to magnitude: 10 below 100, 50
// below 1000, 100 below 10000, 500 above that. A price sitting exactly
// on a multiple shifts the bracket down so it stays strictly interior.
// ok is false for a non-positive price.
func RoundLevels(price float64) (above, below float64, ok bool) {
	if price <= 0 {
		return 0, 0, false
	}

	var step float64
	switch {
	case price < 100:
		step = 10
	case price < 1000:
		step = 50
	case price < 10000:
		step = 100
	default:
		step = 500
	}

	below = math.Floor(price/step) * step
	above = below + step
	if price == below {
		above = price
		below = price - step
	}
	return above, below, true
}

func fptr(v float64) *float64 { return &v }
