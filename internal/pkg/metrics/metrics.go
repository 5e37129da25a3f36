// internal/pkg/metrics/metrics.go
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ammerola/resell-phones/internal/core/domain"
)

const namespace = "resell_phones"

// Metrics holds the service's Prometheus collectors on a private registry.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	phonesListed   prometheus.Gauge
	phonesUnlisted prometheus.Gauge
	unlistedReason *prometheus.GaugeVec
	mutations      *prometheus.CounterVec
	logins         *prometheus.CounterVec
}

// New creates and registers all collectors
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status"},
		),
		requestLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),
		phonesListed: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "phones_listed",
				Help:      "Phones listable on at least one platform at the last inventory read",
			},
		),
		phonesUnlisted: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "phones_unlisted",
				Help:      "Phones not listable at the last inventory read",
			},
		),
		unlistedReason: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "phones_not_listed_reasons",
				Help:      "Occurrences of each not-listed reason at the last inventory read",
			},
			[]string{"reason"},
		),
		mutations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "phone_mutations_total",
				Help:      "Phone create and update attempts by outcome",
			},
			[]string{"operation", "outcome"},
		),
		logins: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "logins_total",
				Help:      "Login attempts by outcome",
			},
			[]string{"outcome"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requestCounter,
		m.requestLatency,
		m.phonesListed,
		m.phonesUnlisted,
		m.unlistedReason,
		m.mutations,
		m.logins,
	)

	return m
}

// Handler exposes the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// ObserveRequest records one served HTTP request
func (m *Metrics) ObserveRequest(method, endpoint string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.requestCounter.WithLabelValues(method, endpoint, strconv.Itoa(status)).Inc()
	m.requestLatency.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordListing updates the listing gauges from a full inventory read
func (m *Metrics) RecordListing(views []domain.PhoneView) {
	if m == nil {
		return
	}

	var listed, unlisted int
	reasons := make(map[string]int)
	for _, v := range views {
		if v.IsListed {
			listed++
		} else {
			unlisted++
		}
		for _, r := range v.NotListedReasons {
			reasons[r]++
		}
	}

	m.phonesListed.Set(float64(listed))
	m.phonesUnlisted.Set(float64(unlisted))
	m.unlistedReason.Reset()
	for r, n := range reasons {
		m.unlistedReason.WithLabelValues(r).Set(float64(n))
	}
}

// RecordMutation counts a create or update attempt
func (m *Metrics) RecordMutation(operation string, err error) {
	if m == nil {
		return
	}
	m.mutations.WithLabelValues(operation, outcome(err)).Inc()
}

// RecordLogin counts a login attempt
func (m *Metrics) RecordLogin(err error) {
	if m == nil {
		return
	}
	m.logins.WithLabelValues(outcome(err)).Inc()
}

func outcome(err error) string {
	if err != nil {
		return "failure"
	}
	return "success"
}
