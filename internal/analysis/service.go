// Package analysis composes the indicator library and the price-level
// analyzer into one EnrichedAnalysis per instrument.
//
// The fixed indicator set — EMA(9,20,50,200), RSI(14), MACD(12,26,9),
// Bollinger(20,2), ATR(14) — matches the snapshot field names
// downstream agents read, so it is not configurable.
package analysis

import (
	"context"
	"log/slog"
	"time"

	"gtt-analytics/internal/indicator"
	"gtt-analytics/internal/levels"
	"gtt-analytics/internal/logger"
	"gtt-analytics/internal/metrics"
	"gtt-analytics/internal/model"
)

// seriesPerAnalysis is the number of indicator series one enrichment
// computes: four EMAs, RSI, three MACD, three Bollinger, ATR.
const seriesPerAnalysis = 12

// Options controls the parts of an analysis that are not fixed by the
// snapshot contract.
type Options struct {
	// SwingThreshold is the zig-zag confirmation threshold as a
	// fraction (0.03 = 3%). Zero means levels.DefaultSwingThreshold.
	SwingThreshold float64

	// IncludeSeries attaches the full indicator series to the result.
	// Off by default: the series dominate payload size and most
	// consumers only read the snapshot.
	IncludeSeries bool
}

// Service runs the full enrichment pipeline. It holds no per-call
// state, so one instance can serve concurrent analyses of independent
// instruments.
type Service struct {
	opts Options
	log  *slog.Logger
	met  *metrics.Metrics
}

// New creates an analysis service. log must be non-nil; met may be nil
// to disable instrumentation.
func New(opts Options, log *slog.Logger, met *metrics.Metrics) *Service {
	if opts.SwingThreshold == 0 {
		opts.SwingThreshold = levels.DefaultSwingThreshold
	}
	return &Service{opts: opts, log: log, met: met}
}

// Enrich computes the full analysis for one instrument's candle
// history (oldest first, ideally about one trading year). An empty
// history yields a result with absent indicators and levels, not an
// error. The ctx is used for trace-aware logging only — the
// computation itself is a bounded in-memory pass that is not
// cancelled.
func (s *Service) Enrich(ctx context.Context, symbol, exchange string, candles []model.Candle) (model.EnrichedAnalysis, error) {
	start := time.Now()
	out := model.EnrichedAnalysis{
		Symbol:   symbol,
		Exchange: exchange,
		Candles:  candles,
	}

	if len(candles) == 0 {
		if s.met != nil {
			s.met.EmptyInputs.Inc()
		}
		s.log.Warn("no candles to analyse",
			append([]any{slog.String("symbol", symbol)}, logger.LogWithTrace(ctx)...)...)
		return out, nil
	}

	closes := model.Closes(candles)
	highs := model.Highs(candles)
	lows := model.Lows(candles)
	current := closes[len(closes)-1]
	out.LatestPrice = fptr(current)

	ema9 := indicator.EMA(closes, 9)
	ema20 := indicator.EMA(closes, 20)
	ema50 := indicator.EMA(closes, 50)
	ema200 := indicator.EMA(closes, 200)
	rsi14 := indicator.RSI(closes, 14)
	macd := indicator.MACD(closes, 12, 26, 9)
	bb := indicator.BollingerBands(closes, 20, 2.0)
	atr14, err := indicator.ATR(highs, lows, closes, 14)
	if err != nil {
		// Unreachable with columns extracted from one candle slice;
		// surfaced anyway because it would be a bug, not a data gap.
		return out, err
	}

	out.Indicators = model.IndicatorSnapshot{
		EMA9:          snap(ema9),
		EMA20:         snap(ema20),
		EMA50:         snap(ema50),
		EMA200:        snap(ema200),
		RSI14:         snap(rsi14),
		MACDLine:      snap(macd.MACD),
		MACDSignal:    snap(macd.Signal),
		MACDHistogram: snap(macd.Histogram),
		BBUpper:       snap(bb.Upper),
		BBMiddle:      snap(bb.Middle),
		BBLower:       snap(bb.Lower),
		ATR14:         snap(atr14),
	}

	if s.opts.IncludeSeries {
		out.Series = map[string]model.Series{
			"ema_9":          ema9,
			"ema_20":         ema20,
			"ema_50":         ema50,
			"ema_200":        ema200,
			"rsi_14":         rsi14,
			"macd":           macd.MACD,
			"macd_signal":    macd.Signal,
			"macd_histogram": macd.Histogram,
			"bb_upper":       bb.Upper,
			"bb_middle":      bb.Middle,
			"bb_lower":       bb.Lower,
			"atr_14":         atr14,
		}
	}

	out.PriceLevels = levels.Compute(candles, current, out.Indicators.ATR14, s.opts.SwingThreshold)

	took := time.Since(start)
	if s.met != nil {
		s.met.AnalysesTotal.Inc()
		s.met.IndicatorsTotal.Add(seriesPerAnalysis)
		s.met.ComputeDur.Observe(took.Seconds())
		s.met.CandlesPerCall.Observe(float64(len(candles)))
	}
	s.log.Debug("analysis complete",
		append([]any{
			slog.String("symbol", symbol),
			slog.Int("candles", len(candles)),
			slog.Duration("took", took),
		}, logger.LogWithTrace(ctx)...)...)

	return out, nil
}

// snap reduces a series to its snapshot scalar: the last value past
// warm-up, or nil when the whole series is NaN.
func snap(series []float64) *float64 {
	if v, ok := indicator.LastValid(series); ok {
		return &v
	}
	return nil
}

func fptr(v float64) *float64 { return &v }
