// Package model defines the data types shared across the analytics
// engine: OHLCV candles, indicator snapshots, price levels, and the
// enriched per-instrument result handed to downstream consumers.
package model

import (
	"encoding/json"
	"time"
)

// Candle represents a single OHLCV bar for an instrument.
// Candle sequences are sorted ascending by timestamp with no duplicate
// timestamps — that is a caller precondition; the engine never re-sorts
// or validates ordering.
type Candle struct {
	Timestamp time.Time `json:"timestamp"`
	Open      float64   `json:"open"`
	High      float64   `json:"high"`
	Low       float64   `json:"low"`
	Close     float64   `json:"close"`
	Volume    int64     `json:"volume"`
}

// JSON returns the JSON-encoded candle.
func (c *Candle) JSON() []byte {
	b, _ := json.Marshal(c)
	return b
}

// Closes extracts the close column from a candle sequence.
func Closes(candles []Candle) []float64 {
	out := make([]float64, len(candles))
	for i, c := range candles {
		out[i] = c.Close
	}
	return out
}

// Highs extracts the high column from a candle sequence.
func Highs(candles []Candle) []float64 {
	out := make([]float64, len(candles))
	for i, c := range candles {
		out[i] = c.High
	}
	return out
}

// Lows extracts the low column from a candle sequence.
func Lows(candles []Candle) []float64 {
	out := make([]float64, len(candles))
	for i, c := range candles {
		out[i] = c.Low
	}
	return out
}
