package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is the interface used by the catalog and the Steam client.
type Recorder interface {
	RecordCacheHit(kind string)
	RecordCacheMiss(kind string)
	RecordCacheError(kind string)
	RecordRemoteCall(op string, outcome string, duration time.Duration)
}

// Outcome labels for RecordRemoteCall.
const (
	OutcomeOK      = "ok"
	OutcomeEmpty   = "empty"
	OutcomeError   = "error"
	OutcomeLimited = "rate_limited"
)

// Collector records metrics into Prometheus.
type Collector struct {
	cacheHits     *prometheus.CounterVec
	cacheMisses   *prometheus.CounterVec
	cacheErrors   *prometheus.CounterVec
	remoteCalls   *prometheus.CounterVec
	remoteLatency *prometheus.HistogramVec
}

// NewCollector creates a Collector and registers its metrics on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		cacheHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gamesincommon_cache_hits_total",
			Help: "Cache hits by entity kind.",
		}, []string{"kind"}),
		cacheMisses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gamesincommon_cache_misses_total",
			Help: "Cache misses by entity kind.",
		}, []string{"kind"}),
		cacheErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gamesincommon_cache_errors_total",
			Help: "Cache store errors by entity kind.",
		}, []string{"kind"}),
		remoteCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gamesincommon_steam_calls_total",
			Help: "Steam API calls by operation and outcome.",
		}, []string{"op", "outcome"}),
		remoteLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gamesincommon_steam_call_seconds",
			Help:    "Steam API call latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"op"}),
	}

	reg.MustRegister(c.cacheHits, c.cacheMisses, c.cacheErrors, c.remoteCalls, c.remoteLatency)
	return c
}

func (c *Collector) RecordCacheHit(kind string) {
	c.cacheHits.WithLabelValues(kind).Inc()
}

func (c *Collector) RecordCacheMiss(kind string) {
	c.cacheMisses.WithLabelValues(kind).Inc()
}

func (c *Collector) RecordCacheError(kind string) {
	c.cacheErrors.WithLabelValues(kind).Inc()
}

func (c *Collector) RecordRemoteCall(op string, outcome string, duration time.Duration) {
	c.remoteCalls.WithLabelValues(op, outcome).Inc()
	c.remoteLatency.WithLabelValues(op).Observe(duration.Seconds())
}

// Handler returns the scrape handler for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Nop discards everything.
type Nop struct{}

func (Nop) RecordCacheHit(string)                          {}
func (Nop) RecordCacheMiss(string)                         {}
func (Nop) RecordCacheError(string)                        {}
func (Nop) RecordRemoteCall(string, string, time.Duration) {}
