package prime

import (
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
)

// ─────────────────────────────────────────────────────────────────────────────
// Logging Observer
// ─────────────────────────────────────────────────────────────────────────────

// LoggingObserver logs sieve progress using zerolog.
// It throttles logging based on a threshold to avoid log spam.
type LoggingObserver struct {
	logger    zerolog.Logger
	threshold float64            // Minimum progress change to log
	lastLog   map[string]float64 // Last logged progress per sieve
	mu        sync.Mutex
}

// NewLoggingObserver creates an observer that logs progress at debug level.
// It only logs when progress changes by at least threshold; a non-positive
// threshold defaults to 0.1 (10%).
func NewLoggingObserver(logger zerolog.Logger, threshold float64) *LoggingObserver {
	if threshold <= 0 {
		threshold = 0.1
	}
	return &LoggingObserver{
		logger:    logger,
		threshold: threshold,
		lastLog:   make(map[string]float64),
	}
}

// Update implements ProgressObserver by logging significant progress changes.
func (o *LoggingObserver) Update(sieve string, progress float64) {
	o.mu.Lock()
	defer o.mu.Unlock()

	lastProgress, seen := o.lastLog[sieve]

	// Log the first update, completion, and every threshold step
	shouldLog := !seen ||
		progress >= 1.0 && lastProgress < 1.0 ||
		progress-lastProgress >= o.threshold

	if shouldLog {
		o.logger.Debug().
			Str("sieve", sieve).
			Float64("progress", progress).
			Str("percent", fmt.Sprintf("%.1f%%", progress*100)).
			Msg("sieve progress")
		o.lastLog[sieve] = progress
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Metrics Observer (Prometheus)
// ─────────────────────────────────────────────────────────────────────────────

var (
	// progressGauge tracks the completed fraction of each named sieve.
	// Registered once globally to avoid duplicate registration errors.
	progressGauge = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "computil_sieve_progress",
			Help: "Fraction of segments completed by a segmented prime sieve (0.0 to 1.0)",
		},
		[]string{"sieve"},
	)

	// segmentCounter counts completed segments per named sieve.
	segmentCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "computil_sieve_segments_total",
			Help: "Total number of sieve segments completed",
		},
		[]string{"sieve"},
	)
)

// MetricsObserver exports sieve progress to Prometheus.
type MetricsObserver struct {
	gauge    *prometheus.GaugeVec
	segments *prometheus.CounterVec
}

// NewMetricsObserver creates an observer that updates the package's
// Prometheus collectors.
func NewMetricsObserver() *MetricsObserver {
	return &MetricsObserver{
		gauge:    progressGauge,
		segments: segmentCounter,
	}
}

// Update implements ProgressObserver by updating the gauge and counting
// the completed segment.
func (o *MetricsObserver) Update(sieve string, progress float64) {
	o.gauge.WithLabelValues(sieve).Set(progress)
	o.segments.WithLabelValues(sieve).Inc()
}

// ResetMetrics resets the progress gauge for all sieves.
func (o *MetricsObserver) ResetMetrics() {
	o.gauge.Reset()
}

// ─────────────────────────────────────────────────────────────────────────────
// No-Op Observer (Null Object Pattern)
// ─────────────────────────────────────────────────────────────────────────────

// NoOpObserver discards all progress updates.
type NoOpObserver struct{}

// NewNoOpObserver creates a no-op observer.
func NewNoOpObserver() *NoOpObserver {
	return &NoOpObserver{}
}

// Update implements ProgressObserver by doing nothing.
func (o *NoOpObserver) Update(sieve string, progress float64) {}
