package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "weekend_booking"

// Metrics holds the service's Prometheus collectors. Each instance owns its
// registry so tests can build as many as they like.
type Metrics struct {
	registry *prometheus.Registry

	BookingsCreated    prometheus.Counter
	BookingsRejected   *prometheus.CounterVec
	StatusTransitions  *prometheus.CounterVec
	SlotToggles        *prometheus.CounterVec
	Notifications      *prometheus.CounterVec
	RateLimited        *prometheus.CounterVec
	HTTPRequests       *prometheus.CounterVec
	HTTPRequestSeconds *prometheus.HistogramVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,

		BookingsCreated: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_created_total",
			Help:      "Bookings accepted in pending status.",
		}),
		BookingsRejected: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_rejected_total",
			Help:      "Booking attempts rejected, by reason code.",
		}, []string{"reason"}),
		StatusTransitions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "appointment_status_transitions_total",
			Help:      "Applied appointment status changes.",
		}, []string{"from", "to"}),
		SlotToggles: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "slot_toggles_total",
			Help:      "Admin slot enable/disable calls.",
		}, []string{"action"}),
		Notifications: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Confirmation notifications by outcome.",
		}, []string{"status"}),
		RateLimited: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the rate limiter, by route.",
		}, []string{"route"}),
		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status code.",
		}, []string{"route", "method", "code"}),
		HTTPRequestSeconds: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		}, []string{"route", "method"}),
	}
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) BookingCreated() {
	m.BookingsCreated.Inc()
}

func (m *Metrics) BookingRejected(reason string) {
	m.BookingsRejected.WithLabelValues(reason).Inc()
}

func (m *Metrics) StatusChanged(from, to string) {
	m.StatusTransitions.WithLabelValues(from, to).Inc()
}

func (m *Metrics) SlotToggled(enabled bool) {
	action := "disable"
	if enabled {
		action = "enable"
	}
	m.SlotToggles.WithLabelValues(action).Inc()
}

func (m *Metrics) NotificationRecorded(status string) {
	m.Notifications.WithLabelValues(status).Inc()
}

func (m *Metrics) RequestLimited(route string) {
	m.RateLimited.WithLabelValues(route).Inc()
}

// ObserveHTTP records one served request. Unmatched routes share the
// "unmatched" label so scanners cannot blow up cardinality.
func (m *Metrics) ObserveHTTP(route, method string, code int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.HTTPRequests.WithLabelValues(route, method, strconv.Itoa(code)).Inc()
	m.HTTPRequestSeconds.WithLabelValues(route, method).Observe(elapsed.Seconds())
}
