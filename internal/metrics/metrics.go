// Package metrics exposes Prometheus collectors for the HTTP layer, the
// scoring pipeline and the report cache.
package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/inkblot-backend/internal/domain"
)

const namespace = "inkblot"

// Compute outcomes.
const (
	OutcomeOK         = "ok"
	OutcomeIncomplete = "incomplete"
	OutcomeError      = "error"
)

// Metrics owns a private registry so tests and multiple servers never
// collide on the global one.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	computations    *prometheus.CounterVec
	computeDuration prometheus.Histogram
	responsesScored prometheus.Counter
	advisories      *prometheus.CounterVec
	indexPositive   *prometheus.CounterVec

	cacheLookups *prometheus.CounterVec
}

// New creates and registers all collectors. Process and Go runtime
// collectors are included when withRuntime is set.
func New(withRuntime bool) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "code"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		computations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scoring",
			Name:      "summaries_total",
			Help:      "Structural summary computations by outcome.",
		}, []string{"outcome"}),
		computeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "scoring",
			Name:      "compute_duration_seconds",
			Help:      "Time spent computing and storing a structural summary.",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}),
		responsesScored: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scoring",
			Name:      "responses_scored_total",
			Help:      "Responses fed into successful computations.",
		}),
		advisories: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scoring",
			Name:      "advisories_total",
			Help:      "Cross-field advisories raised on submitted responses.",
		}, []string{"code"}),
		indexPositive: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scoring",
			Name:      "index_positive_total",
			Help:      "Computed summaries with a positive special index.",
		}, []string{"index"}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "report_cache",
			Name:      "lookups_total",
			Help:      "Report cache lookups by result.",
		}, []string{"result"}),
	}

	m.registry.MustRegister(
		m.httpRequests, m.httpDuration,
		m.computations, m.computeDuration, m.responsesScored, m.advisories, m.indexPositive,
		m.cacheLookups,
	)
	if withRuntime {
		m.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(method, route string, status int, d time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// ObserveCompute records one summary computation.
func (m *Metrics) ObserveCompute(d time.Duration, responses int, err error) {
	switch {
	case err == nil:
		m.computations.WithLabelValues(OutcomeOK).Inc()
		m.responsesScored.Add(float64(responses))
		m.computeDuration.Observe(d.Seconds())
	case errors.Is(err, domain.ErrIncompleteProtocol):
		m.computations.WithLabelValues(OutcomeIncomplete).Inc()
	default:
		m.computations.WithLabelValues(OutcomeError).Inc()
	}
}

// ObserveIndices counts the positive special indices of a summary.
func (m *Metrics) ObserveIndices(idx domain.SpecialIndices) {
	flags := map[string]bool{
		"DEPI":  idx.DEPIPositive,
		"CDI":   idx.CDIPositive,
		"S-CON": idx.SCONPositive,
		"HVI":   idx.HVIPositive,
		"OBS":   idx.OBSPositive,
	}
	for name, positive := range flags {
		if positive {
			m.indexPositive.WithLabelValues(name).Inc()
		}
	}
}

// ObserveAdvisory counts one advisory by code.
func (m *Metrics) ObserveAdvisory(code string) {
	m.advisories.WithLabelValues(code).Inc()
}

// CacheLookup records a report cache hit or miss.
func (m *Metrics) CacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheLookups.WithLabelValues(result).Inc()
}
