// Command analyser reads instrument candle histories from a JSON
// export, runs the analytics engine over each, and writes one
// EnrichedAnalysis per instrument to stdout as JSON. It neither
// fetches nor stores data — the historical store lives elsewhere.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gtt-analytics/config"
	"gtt-analytics/internal/analysis"
	"gtt-analytics/internal/logger"
	"gtt-analytics/internal/metrics"
	"gtt-analytics/internal/model"
)

// instrumentExport is one instrument's history in the historical-data
// store's export format.
type instrumentExport struct {
	Symbol   string         `json:"symbol"`
	Exchange string         `json:"exchange"`
	Candles  []model.Candle `json:"candles"`
}

func main() {
	configPath := flag.String("config", "config.yaml", "path to YAML config file")
	inputPath := flag.String("input", "-", "candle export JSON file, '-' for stdin")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "analyser: %v\n", err)
		os.Exit(1)
	}

	log := logger.Init("analyser", cfg.SlogLevel())

	var met *metrics.Metrics
	health := metrics.NewHealthStatus()
	if cfg.MetricsAddr != "" {
		met = metrics.NewMetrics()
		go func() {
			if err := metrics.Serve(cfg.MetricsAddr, health); err != nil {
				log.Error("metrics server exited", slog.Any("err", err))
			}
		}()
		log.Info("metrics server listening", slog.String("addr", cfg.MetricsAddr))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	exports, err := readExports(*inputPath)
	if err != nil {
		log.Error("read input", slog.Any("err", err))
		os.Exit(1)
	}

	svc := analysis.New(analysis.Options{
		SwingThreshold: cfg.Analysis.SwingThresholdPct,
		IncludeSeries:  cfg.Analysis.IncludeSeries,
	}, log, met)

	results := make([]model.EnrichedAnalysis, 0, len(exports))
	for _, ex := range exports {
		if ctx.Err() != nil {
			log.Warn("interrupted", slog.Int("done", len(results)), slog.Int("total", len(exports)))
			break
		}
		runCtx := logger.WithTraceID(ctx, logger.GenerateTraceID(ex.Symbol, time.Now()))
		res, err := svc.Enrich(runCtx, ex.Symbol, ex.Exchange, ex.Candles)
		if err != nil {
			log.Error("enrich failed", slog.String("symbol", ex.Symbol), slog.Any("err", err))
			os.Exit(1)
		}
		health.RecordAnalysis()
		results = append(results, res)
	}

	if err := json.NewEncoder(os.Stdout).Encode(results); err != nil {
		log.Error("encode results", slog.Any("err", err))
		os.Exit(1)
	}
	log.Info("done", slog.Int("instruments", len(results)))
}

func readExports(path string) ([]instrumentExport, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var exports []instrumentExport
	if err := json.NewDecoder(r).Decode(&exports); err != nil {
		return nil, fmt.Errorf("decode candle export: %w", err)
	}
	return exports, nil
}
