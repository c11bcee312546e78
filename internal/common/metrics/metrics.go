package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "scratchcard"

// Recorder exposes game and HTTP metrics on a private registry.
// A nil *Recorder is valid and records nothing.
type Recorder struct {
	registry *prometheus.Registry

	draws        *prometheus.CounterVec
	plays        prometheus.Counter
	resets       prometheus.Counter
	storeErrors  *prometheus.CounterVec
	requests     *prometheus.CounterVec
	requestTimes *prometheus.HistogramVec
}

func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	r := &Recorder{
		registry: reg,
		draws: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "draws_total",
			Help:      "Offer draws by outcome.",
		}, []string{"outcome"}),
		plays: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "plays_total",
			Help:      "Scratches counted since process start.",
		}),
		resets: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resets_total",
			Help:      "Administrative resets.",
		}),
		storeErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_errors_total",
			Help:      "Failed state store operations.",
		}, []string{"operation"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status.",
		}, []string{"method", "route", "status"}),
		requestTimes: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	reg.MustRegister(
		r.draws,
		r.plays,
		r.resets,
		r.storeErrors,
		r.requests,
		r.requestTimes,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// RecordDraw counts one draw with the given outcome.
func (r *Recorder) RecordDraw(outcome string) {
	if r == nil {
		return
	}
	r.draws.WithLabelValues(outcome).Inc()
}

func (r *Recorder) RecordPlay() {
	if r == nil {
		return
	}
	r.plays.Inc()
}

func (r *Recorder) RecordReset() {
	if r == nil {
		return
	}
	r.resets.Inc()
}

// RecordStoreError counts a failed load or save.
func (r *Recorder) RecordStoreError(operation string) {
	if r == nil {
		return
	}
	r.storeErrors.WithLabelValues(operation).Inc()
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	if r == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	r.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.requestTimes.WithLabelValues(method, route).Observe(duration.Seconds())
}

// Handler serves the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
