package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	fetchErrors   *prometheus.CounterVec
	fetchLatency  *prometheus.HistogramVec
	signalChanges *prometheus.CounterVec
	lastPrice     *prometheus.GaugeVec
	cycle         prometheus.Histogram
}

// New creates a recorder on the default registry.
func New() *Recorder {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry creates a recorder registered on reg.
func NewWithRegistry(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		fetchErrors: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finsignal_fetch_errors_total",
				Help: "Total number of failed provider calls",
			},
			[]string{"provider"},
		),
		fetchLatency: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "finsignal_fetch_duration_seconds",
				Help:    "Duration of provider calls in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"provider"},
		),
		signalChanges: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finsignal_signal_changes_total",
				Help: "Total number of signal changes by new signal",
			},
			[]string{"signal"},
		),
		lastPrice: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "finsignal_last_price",
				Help: "Last recorded price for a symbol",
			},
			[]string{"symbol"},
		),
		cycle: f.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "finsignal_cycle_duration_seconds",
				Help:    "Duration of one dashboard evaluation cycle in seconds",
				Buckets: []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120},
			},
		),
	}
}

// RecordFetchError counts a failed call to provider.
func (r *Recorder) RecordFetchError(provider string) {
	r.fetchErrors.WithLabelValues(provider).Inc()
}

// RecordFetchLatency records provider call latency in seconds.
func (r *Recorder) RecordFetchLatency(provider string, seconds float64) {
	r.fetchLatency.WithLabelValues(provider).Observe(seconds)
}

// RecordSignalChange counts a change to signal.
func (r *Recorder) RecordSignalChange(signal string) {
	r.signalChanges.WithLabelValues(signal).Inc()
}

// RecordLastPrice records the last price for a symbol.
func (r *Recorder) RecordLastPrice(symbol string, price float64) {
	r.lastPrice.WithLabelValues(symbol).Set(price)
}

// RecordCycle records a full evaluation cycle.
func (r *Recorder) RecordCycle(seconds float64) {
	r.cycle.Observe(seconds)
}
