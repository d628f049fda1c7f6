package levels

import (
	"math"
	"testing"

	"gtt-analytics/internal/model"
)

// ────────────────────────────────────────────────────────────
// Round-number brackets
// ────────────────────────────────────────────────────────────

func TestRoundLevels_AdaptiveStep(t *testing.T) {
	cases := []struct {
		price, above, below float64
	}{
		{47.3, 50, 40},      // step 10
		{95, 100, 90},       // step 10
		{123.4, 150, 100},   // step 50
		{951, 1000, 900},    // step 100
		{2345, 2400, 2300},  // step 100
		{15750, 16000, 15500}, // step 500
	}
	for _, c := range cases {
		above, below, ok := RoundLevels(c.price)
		if !ok {
			t.Errorf("price %v: ok=false", c.price)
			continue
		}
		if above != c.above || below != c.below {
			t.Errorf("price %v: got (%v, %v), want (%v, %v)",
				c.price, above, below, c.above, c.below)
		}
	}
}

func TestRoundLevels_ExactMultipleStaysInterior(t *testing.T) {
	// 500 is exactly on a 50-multiple: bracket shifts down so price
	// stays strictly between.
	above, below, ok := RoundLevels(500)
	if !ok || above != 500 || below != 450 {
		t.Errorf("got (%v, %v, %v), want (500, 450, true)", above, below, ok)
	}
}

func TestRoundLevels_BracketProperty(t *testing.T) {
	steps := func(p float64) float64 {
		switch {
		case p < 100:
			return 10
		case p < 1000:
			return 50
		case p < 10000:
			return 100
		default:
			return 500
		}
	}
	for _, p := range []float64{0.5, 7, 10, 99.99, 100, 649.5, 1000, 9999, 10000, 123456.78} {
		above, below, ok := RoundLevels(p)
		if !ok {
			t.Fatalf("price %v: ok=false", p)
		}
		if !(below <= p && p <= above) {
			t.Errorf("price %v: bracket (%v, %v) does not contain it", p, below, above)
		}
		if got := above - below; got != steps(p) {
			t.Errorf("price %v: bracket width %v, want %v", p, got, steps(p))
		}
	}
}

func TestRoundLevels_NonPositive(t *testing.T) {
	if _, _, ok := RoundLevels(0); ok {
		t.Error("price 0: want ok=false")
	}
	if _, _, ok := RoundLevels(-12); ok {
		t.Error("negative price: want ok=false")
	}
}

// ────────────────────────────────────────────────────────────
// Compute
// ────────────────────────────────────────────────────────────

func TestCompute_EmptyInputDegrades(t *testing.T) {
	pl := Compute(nil, 100, nil, DefaultSwingThreshold)
	if pl != (model.PriceLevels{}) {
		t.Errorf("empty candles: got %+v, want zero value", pl)
	}

	pl = Compute([]model.Candle{flatCandle(0, 100)}, 0, nil, DefaultSwingThreshold)
	if pl != (model.PriceLevels{}) {
		t.Errorf("missing current price: got %+v, want zero value", pl)
	}

	pl = Compute([]model.Candle{flatCandle(0, 100)}, math.NaN(), nil, DefaultSwingThreshold)
	if pl != (model.PriceLevels{}) {
		t.Errorf("NaN current price: got %+v, want zero value", pl)
	}
}

func TestCompute_ExtremesAndPercents(t *testing.T) {
	// 60 candles: lows from 80 rising, single high peak 160 at index 30.
	candles := make([]model.Candle, 60)
	for i := range candles {
		p := 100 + float64(i)/4
		candles[i] = model.Candle{
			Timestamp: day(i),
			Open:      p, High: p + 2, Low: p - 2, Close: p,
		}
	}
	candles[30].High = 160
	candles[5].Low = 80

	current := candles[59].Close
	pl := Compute(candles, current, nil, DefaultSwingThreshold)

	if pl.High52w == nil || *pl.High52w != 160 {
		t.Fatalf("high_52w = %v, want 160", pl.High52w)
	}
	if pl.Low52w == nil || *pl.Low52w != 80 {
		t.Fatalf("low_52w = %v, want 80", pl.Low52w)
	}

	wantPctHigh := (current - 160) / 160 * 100
	if math.Abs(*pl.PctFrom52wHigh-wantPctHigh) > 1e-12 {
		t.Errorf("pct_from_52w_high = %v, want %v", *pl.PctFrom52wHigh, wantPctHigh)
	}
	if *pl.PctFrom52wHigh >= 0 {
		t.Error("pct_from_52w_high should be negative below the high")
	}
	wantPctLow := (current - 80) / 80 * 100
	if math.Abs(*pl.PctFrom52wLow-wantPctLow) > 1e-12 {
		t.Errorf("pct_from_52w_low = %v, want %v", *pl.PctFrom52wLow, wantPctLow)
	}

	// 20-day window: candles 40..59, highs p+2, max at i=59.
	wantHigh20 := 100 + 59.0/4 + 2
	if math.Abs(*pl.High20d-wantHigh20) > 1e-12 {
		t.Errorf("high_20d = %v, want %v", *pl.High20d, wantHigh20)
	}
	wantLow20 := 100 + 40.0/4 - 2
	if math.Abs(*pl.Low20d-wantLow20) > 1e-12 {
		t.Errorf("low_20d = %v, want %v", *pl.Low20d, wantLow20)
	}
}

func TestCompute_ShortSeriesUsesWholeWindow(t *testing.T) {
	// Fewer than 20 candles: the short-term window is the whole series.
	candles := []model.Candle{flatCandle(0, 100), flatCandle(1, 105), flatCandle(2, 95)}
	pl := Compute(candles, 95, nil, DefaultSwingThreshold)
	if pl.High20d == nil || *pl.High20d != 105 {
		t.Errorf("high_20d = %v, want 105", pl.High20d)
	}
	if pl.Low20d == nil || *pl.Low20d != 95 {
		t.Errorf("low_20d = %v, want 95", pl.Low20d)
	}
}

func TestCompute_ATRPercent(t *testing.T) {
	candles := []model.Candle{flatCandle(0, 200), flatCandle(1, 200)}

	pl := Compute(candles, 200, nil, DefaultSwingThreshold)
	if pl.ATRPercent != nil {
		t.Errorf("atr_percent without ATR = %v, want nil", *pl.ATRPercent)
	}

	atr := 5.0
	pl = Compute(candles, 200, &atr, DefaultSwingThreshold)
	if pl.ATRPercent == nil || *pl.ATRPercent != 2.5 {
		t.Errorf("atr_percent = %v, want 2.5", pl.ATRPercent)
	}
}

func TestCompute_SwingFieldsWired(t *testing.T) {
	candles := make([]model.Candle, 30)
	for i := range candles {
		candles[i] = flatCandle(i, 100)
	}
	candles[15] = flatCandle(15, 110)

	pl := Compute(candles, 100, nil, DefaultSwingThreshold)
	if pl.RecentSwingHigh == nil || *pl.RecentSwingHigh != 110 {
		t.Fatalf("recent_swing_high = %v, want 110", pl.RecentSwingHigh)
	}
	if pl.RecentSwingHighTime == nil || !pl.RecentSwingHighTime.Equal(day(15)) {
		t.Errorf("recent_swing_high_time = %v, want %v", pl.RecentSwingHighTime, day(15))
	}
	// The spike also confirms the day-0 low (rise 10% >= 3%).
	if pl.RecentSwingLow == nil || *pl.RecentSwingLow != 100 {
		t.Errorf("recent_swing_low = %v, want 100", pl.RecentSwingLow)
	}
}
