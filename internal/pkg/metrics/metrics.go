package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "groombook"

type Metrics struct {
	reg           prometheus.Registerer
	labels        prometheus.Labels
	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
	booked        *prometheus.CounterVec
	seriesSize    prometheus.Histogram
	statusChanges *prometheus.CounterVec
	rosterCache   *prometheus.CounterVec
	rateLimited   *prometheus.CounterVec
}

// New registers the collectors on reg. Pass prometheus.NewRegistry() in tests
// to avoid duplicate registration on the default registry.
func New(service string, reg prometheus.Registerer) *Metrics {
	labels := prometheus.Labels{"service": service}
	m := &Metrics{
		reg:    reg,
		labels: labels,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "http_requests_total",
			Help:        "HTTP requests by route, method and status code.",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency.",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		booked: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "appointments_booked_total",
			Help:        "Appointments created, split by single bookings and series occurrences.",
			ConstLabels: labels,
		}, []string{"kind"}),
		seriesSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   namespace,
			Name:        "series_occurrences",
			Help:        "Occurrences generated per recurring booking.",
			ConstLabels: labels,
			Buckets:     []float64{2, 4, 8, 12, 26, 52, 104, 366},
		}),
		statusChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "appointment_status_changes_total",
			Help:        "Status changes by target status.",
			ConstLabels: labels,
		}, []string{"status"}),
		rosterCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "roster_cache_lookups_total",
			Help:        "Roster cache lookups by result.",
			ConstLabels: labels,
		}, []string{"result"}),
		rateLimited: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "rate_limited_requests_total",
			Help:        "Requests rejected by the rate limiter.",
			ConstLabels: labels,
		}, []string{"route"}),
	}

	reg.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.booked,
		m.seriesSize,
		m.statusChanges,
		m.rosterCache,
		m.rateLimited,
	)
	return m
}

func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) AppointmentsBooked(occurrences int) {
	if m == nil || occurrences <= 0 {
		return
	}
	if occurrences == 1 {
		m.booked.WithLabelValues("single").Inc()
		return
	}
	m.booked.WithLabelValues("series").Add(float64(occurrences))
	m.seriesSize.Observe(float64(occurrences))
}

func (m *Metrics) StatusChanged(status string) {
	if m == nil {
		return
	}
	m.statusChanges.WithLabelValues(status).Inc()
}

func (m *Metrics) RosterCacheLookup(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.rosterCache.WithLabelValues(result).Inc()
}

func (m *Metrics) RateLimited(route string) {
	if m == nil {
		return
	}
	m.rateLimited.WithLabelValues(route).Inc()
}

// PoolStats reports database pool occupancy at scrape time.
type PoolStats func() (acquired, idle, total int32)

// WatchPool exposes the pool's connection counts as gauges.
func (m *Metrics) WatchPool(stats PoolStats) {
	if m == nil || stats == nil {
		return
	}
	gauge := func(name, help string, pick func(acquired, idle, total int32) int32) prometheus.Collector {
		return prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        name,
			Help:        help,
			ConstLabels: m.labels,
		}, func() float64 {
			return float64(pick(stats()))
		})
	}
	m.reg.MustRegister(
		gauge("db_pool_acquired_connections", "Connections currently in use.", func(a, _, _ int32) int32 { return a }),
		gauge("db_pool_idle_connections", "Idle connections.", func(_, i, _ int32) int32 { return i }),
		gauge("db_pool_total_connections", "Open connections.", func(_, _, t int32) int32 { return t }),
	)
}
