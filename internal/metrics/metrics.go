// Package metrics holds the Prometheus instruments for the view pipeline.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	ViewsComputed   *prometheus.CounterVec
	RegionFallbacks prometheus.Counter
	ComputeDuration prometheus.Histogram
	DatasetRecords  prometheus.Gauge
}

// New creates the metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		ViewsComputed: f.NewCounterVec(prometheus.CounterOpts{
			Name: "stemmap_views_computed_total",
			Help: "View recomputations by result (match, empty).",
		}, []string{"result"}),
		RegionFallbacks: f.NewCounter(prometheus.CounterOpts{
			Name: "stemmap_region_fallbacks_total",
			Help: "Region filters that were unknown and fell back to the default region.",
		}),
		ComputeDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "stemmap_view_compute_seconds",
			Help:    "Time to compute one view model.",
			Buckets: []float64{.00005, .0001, .00025, .0005, .001, .0025, .005, .01, .05},
		}),
		DatasetRecords: f.NewGauge(prometheus.GaugeOpts{
			Name: "stemmap_dataset_records",
			Help: "Number of records in the loaded dataset.",
		}),
	}
}

// ObserveView records one view computation. Nil receivers are ignored so
// callers can run without metrics.
func (m *Metrics) ObserveView(points int, fellBack bool, elapsed time.Duration) {
	if m == nil {
		return
	}
	result := "match"
	if points == 0 {
		result = "empty"
	}
	m.ViewsComputed.WithLabelValues(result).Inc()
	if fellBack {
		m.RegionFallbacks.Inc()
	}
	m.ComputeDuration.Observe(elapsed.Seconds())
}

// SetDatasetRecords records the size of the loaded dataset.
func (m *Metrics) SetDatasetRecords(n int) {
	if m == nil {
		return
	}
	m.DatasetRecords.Set(float64(n))
}
