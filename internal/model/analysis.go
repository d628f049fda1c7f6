package model

import "time"

// SwingPoint is a confirmed local price extreme. A swing is committed
// only after price has moved against it by the detection threshold, so
// a still-forming extreme never appears here.
type SwingPoint struct {
	Timestamp time.Time `json:"timestamp"`
	Price     float64   `json:"price"`
}

// IndicatorSnapshot holds the last computable value of each indicator
// series. A nil field means the indicator never produced a value
// (insufficient history), which consumers render as "not available".
//
// The JSON names are a contract: recommendation agents and the API
// layer look these fields up by name. Do not rename.
type IndicatorSnapshot struct {
	EMA9          *float64 `json:"ema_9,omitempty"`
	EMA20         *float64 `json:"ema_20,omitempty"`
	EMA50         *float64 `json:"ema_50,omitempty"`
	EMA200        *float64 `json:"ema_200,omitempty"`
	RSI14         *float64 `json:"rsi_14,omitempty"`
	MACDLine      *float64 `json:"macd_line,omitempty"`
	MACDSignal    *float64 `json:"macd_signal,omitempty"`
	MACDHistogram *float64 `json:"macd_histogram,omitempty"`
	BBUpper       *float64 `json:"bb_upper,omitempty"`
	BBMiddle      *float64 `json:"bb_middle,omitempty"`
	BBLower       *float64 `json:"bb_lower,omitempty"`
	ATR14         *float64 `json:"atr_14,omitempty"`
}

// PriceLevels is the support/resistance context for one instrument.
// Percent fields are on a 0–100 scale; swing and round levels are in
// raw price units. All fields are absent when the input window was
// empty or too short. Same naming contract as IndicatorSnapshot.
type PriceLevels struct {
	High52w        *float64 `json:"high_52w,omitempty"`
	Low52w         *float64 `json:"low_52w,omitempty"`
	PctFrom52wHigh *float64 `json:"pct_from_52w_high,omitempty"`
	PctFrom52wLow  *float64 `json:"pct_from_52w_low,omitempty"`

	High20d *float64 `json:"high_20d,omitempty"`
	Low20d  *float64 `json:"low_20d,omitempty"`

	RecentSwingHigh     *float64   `json:"recent_swing_high,omitempty"`
	RecentSwingHighTime *time.Time `json:"recent_swing_high_time,omitempty"`
	RecentSwingLow      *float64   `json:"recent_swing_low,omitempty"`
	RecentSwingLowTime  *time.Time `json:"recent_swing_low_time,omitempty"`

	RoundLevelAbove *float64 `json:"round_level_above,omitempty"`
	RoundLevelBelow *float64 `json:"round_level_below,omitempty"`

	ATRPercent *float64 `json:"atr_percent,omitempty"`
}

// EnrichedAnalysis is the complete analytics result for one
// instrument: the input candles, snapshot scalars, price levels, and —
// only when explicitly requested — the full indicator series keyed by
// the snapshot field names.
type EnrichedAnalysis struct {
	Symbol      string            `json:"symbol,omitempty"`
	Exchange    string            `json:"exchange,omitempty"`
	Candles     []Candle          `json:"candles"`
	LatestPrice *float64          `json:"latest_price,omitempty"`
	Indicators  IndicatorSnapshot `json:"indicators"`
	PriceLevels PriceLevels       `json:"price_levels"`
	Series      map[string]Series `json:"indicator_series,omitempty"`
}
