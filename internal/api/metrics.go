package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rbui/rbui/pkg/scoring"
)

// Metrics holds the service's Prometheus collectors on a private registry.
type Metrics struct {
	registry    *prometheus.Registry
	requests    *prometheus.CounterVec
	durations   *prometheus.HistogramVec
	scores      *prometheus.CounterVec
	unavailable *prometheus.CounterVec
	cacheHits   prometheus.Counter
	cacheMisses prometheus.Counter
}

// NewMetrics creates and registers the rbuid collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rbui",
			Name:      "http_requests_total",
			Help:      "Total HTTP requests processed by route and status.",
		}, []string{"route", "status"}),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "rbui",
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		scores: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rbui",
			Name:      "scores_total",
			Help:      "Platforms scored, by LOF ranking.",
		}, []string{"lof"}),
		unavailable: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rbui",
			Name:      "subscore_unavailable_total",
			Help:      "Sub-scores that could not be computed, by component.",
		}, []string{"component"}),
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "rbui",
			Name:      "result_cache_hits_total",
			Help:      "Score result cache hits.",
		}),
		cacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "rbui",
			Name:      "result_cache_misses_total",
			Help:      "Score result cache misses.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests,
		m.durations,
		m.scores,
		m.unavailable,
		m.cacheHits,
		m.cacheMisses,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Instrument records request counts and durations for one route.
func (m *Metrics) Instrument(route string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		m.requests.WithLabelValues(route, strconv.Itoa(rec.status)).Inc()
		m.durations.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}

// ObserveResult counts a computed score result.
func (m *Metrics) ObserveResult(result *scoring.ScoreResult) {
	m.scores.WithLabelValues(strconv.Itoa(result.LOFRanking)).Inc()
	for _, s := range result.Breakdown {
		if !s.Available {
			m.unavailable.WithLabelValues(s.Key).Inc()
		}
	}
}

// ObserveCache counts a result cache lookup.
func (m *Metrics) ObserveCache(hit bool) {
	if hit {
		m.cacheHits.Inc()
		return
	}
	m.cacheMisses.Inc()
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(status int) {
	s.status = status
	s.ResponseWriter.WriteHeader(status)
}
