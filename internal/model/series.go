package model

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// Series is an indicator time series aligned position-for-position
// with the candle sequence it was computed from. Warm-up positions
// hold NaN, which encoding/json cannot represent, so Series marshals
// NaN as null and reads null back as NaN.
type Series []float64

// MarshalJSON encodes the series as a JSON array with null in place of
// NaN values.
func (s Series) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(len(s)*8 + 2)
	buf.WriteByte('[')
	for i, v := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		if math.IsNaN(v) {
			buf.WriteString("null")
		} else {
			buf.Write(strconv.AppendFloat(nil, v, 'g', -1, 64))
		}
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON array, mapping null back to NaN.
func (s *Series) UnmarshalJSON(data []byte) error {
	var raw []*float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(Series, len(raw))
	for i, v := range raw {
		if v == nil {
			out[i] = math.NaN()
		} else {
			out[i] = *v
		}
	}
	*s = out
	return nil
}
