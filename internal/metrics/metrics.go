// Package metrics exposes Prometheus instrumentation for the analysis
// service. The engine packages stay pure; every observation happens at
// the composition layer.
package metrics

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the analytics engine.
type Metrics struct {
	AnalysesTotal   prometheus.Counter
	EmptyInputs     prometheus.Counter
	IndicatorsTotal prometheus.Counter
	ComputeDur      prometheus.Histogram
	CandlesPerCall  prometheus.Histogram
}

// NewMetrics creates and registers all metrics with the default
// registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		AnalysesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "analyser_analyses_total",
			Help: "Total enriched analyses produced",
		}),
		EmptyInputs: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "analyser_empty_inputs_total",
			Help: "Analyses requested with an empty candle sequence",
		}),
		IndicatorsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "analyser_indicator_series_total",
			Help: "Total indicator series computed",
		}),
		ComputeDur: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "analyser_compute_duration_seconds",
			Help:    "Full enrichment latency per instrument",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}),
		CandlesPerCall: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "analyser_candles_per_call",
			Help:    "Input candle count per analysis",
			Buckets: []float64{20, 50, 100, 252, 500, 1000},
		}),
	}

	prometheus.MustRegister(
		m.AnalysesTotal,
		m.EmptyInputs,
		m.IndicatorsTotal,
		m.ComputeDur,
		m.CandlesPerCall,
	)

	return m
}

// HealthStatus reports the harness state on /health.
type HealthStatus struct {
	mu sync.RWMutex

	AnalysesDone   int64     `json:"analyses_done"`
	LastAnalysisAt time.Time `json:"last_analysis_at"`
	StartedAt      time.Time `json:"started_at"`
}

// NewHealthStatus returns a default health status.
func NewHealthStatus() *HealthStatus {
	return &HealthStatus{StartedAt: time.Now()}
}

// RecordAnalysis bumps the analysis counter and timestamp.
func (h *HealthStatus) RecordAnalysis() {
	h.mu.Lock()
	h.AnalysesDone++
	h.LastAnalysisAt = time.Now()
	h.mu.Unlock()
}

// Serve exposes /metrics and /health on addr. Blocks until the server
// exits.
func Serve(addr string, health *HealthStatus) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		health.mu.RLock()
		defer health.mu.RUnlock()
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(health)
	})
	return http.ListenAndServe(addr, mux)
}
