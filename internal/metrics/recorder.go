// Package metrics records computation counters and latencies in a private
// Prometheus registry and renders them in the text exposition format.
package metrics

import (
	"errors"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	apperrors "github.com/agbru/numcalc/internal/errors"
)

const namespace = "numcalc"

// Status label values of numcalc_calculations_total.
const (
	StatusOK      = "ok"
	StatusError   = "error"
	StatusTimeout = "timeout"
)

// Recorder owns the application's metrics. A nil *Recorder is valid and
// records nothing, so callers never need to guard their calls.
type Recorder struct {
	registry     *prometheus.Registry
	calculations *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	wrapped      *prometheus.CounterVec
	primeTests   prometheus.Counter
	primesFound  prometheus.Counter
}

// NewRecorder creates a Recorder backed by a fresh registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calculations_total",
			Help:      "Number of completed calculations by operation and status.",
		}, []string{"operation", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "calculation_duration_seconds",
			Help:      "Wall-clock duration of calculations by operation.",
			Buckets:   prometheus.ExponentialBuckets(1e-7, 10, 9),
		}, []string{"operation"}),
		wrapped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "wrapped_results_total",
			Help:      "Number of results that exceeded the uint64 range and wrapped.",
		}, []string{"operation"}),
		primeTests: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "prime_tests_total",
			Help:      "Number of primality tests performed.",
		}),
		primesFound: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "primes_found_total",
			Help:      "Number of primality tests that returned true.",
		}),
	}
	r.registry.MustRegister(r.calculations, r.duration, r.wrapped, r.primeTests, r.primesFound)
	return r
}

// Registry exposes the underlying registry, e.g. for an HTTP handler.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

// ObserveCalculation records one calculation of operation that took d and
// ended with err.
func (r *Recorder) ObserveCalculation(operation string, d time.Duration, err error) {
	if r == nil {
		return
	}
	r.calculations.WithLabelValues(operation, statusOf(err)).Inc()
	r.duration.WithLabelValues(operation).Observe(d.Seconds())
}

// ObserveWrapped records a result of operation that wrapped modulo 2^64.
func (r *Recorder) ObserveWrapped(operation string) {
	if r == nil {
		return
	}
	r.wrapped.WithLabelValues(operation).Inc()
}

// ObservePrimeTests records tested primality tests of which found were prime.
func (r *Recorder) ObservePrimeTests(tested, found int) {
	if r == nil {
		return
	}
	r.primeTests.Add(float64(tested))
	r.primesFound.Add(float64(found))
}

// WriteText writes every metric family in the Prometheus text format.
func (r *Recorder) WriteText(w io.Writer) error {
	if r == nil {
		return nil
	}
	families, err := r.registry.Gather()
	if err != nil {
		return apperrors.WrapError(err, "gathering metrics")
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return apperrors.WrapError(err, "writing metric %s", mf.GetName())
		}
	}
	return nil
}

func statusOf(err error) string {
	var timeoutErr apperrors.TimeoutError
	switch {
	case err == nil:
		return StatusOK
	case errors.As(err, &timeoutErr), apperrors.IsContextError(err):
		return StatusTimeout
	default:
		return StatusError
	}
}
