package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain repository.Metrics using Prometheus.
type Recorder struct {
	predictions *prometheus.CounterVec
	fallbacks   *prometheus.CounterVec
	errorsTotal *prometheus.CounterVec
	latency     *prometheus.HistogramVec
	accuracy    prometheus.Gauge
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		predictions: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pitchcast_predictions_total",
				Help: "Total number of predictions computed",
			},
			[]string{"league", "confidence"},
		),
		fallbacks: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pitchcast_data_fallbacks_total",
				Help: "Times the static fallback dataset substituted for the provider",
			},
			[]string{"kind"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pitchcast_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pitchcast_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		accuracy: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "pitchcast_outcome_hit_rate",
				Help: "Share of settled predictions whose favored outcome occurred",
			},
		),
	}
}

// RecordPrediction counts one computed prediction.
func (r *Recorder) RecordPrediction(league, confidence string) {
	r.predictions.WithLabelValues(league, confidence).Inc()
}

// RecordFallback counts one use of the static fallback dataset.
func (r *Recorder) RecordFallback(kind string) {
	r.fallbacks.WithLabelValues(kind).Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}

// RecordAccuracy publishes the current outcome hit rate.
func (r *Recorder) RecordAccuracy(hitRate float64) {
	r.accuracy.Set(hitRate)
}
