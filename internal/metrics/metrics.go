package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MaxEventTypes caps the distinct event_type label values. Event types come
// from inbound payloads; once the cap is reached new ones are counted as
// OtherEventType.
const (
	MaxEventTypes  = 50
	OtherEventType = "other"
)

// Metrics holds the service collectors. It implements ports.DeliveryObserver.
type Metrics struct {
	// WebhookDeliveries counts delivery attempts by event type and status
	WebhookDeliveries *prometheus.CounterVec
	// WebhookLatency tracks attempt latencies in milliseconds
	WebhookLatency *prometheus.HistogramVec
	// Notifications counts finished retry loops by outcome
	Notifications *prometheus.CounterVec
	// HTTPRequests counts inbound requests by method, route, and status
	HTTPRequests *prometheus.CounterVec
	// HTTPDuration records inbound request durations in seconds
	HTTPDuration *prometheus.HistogramVec

	mu         sync.Mutex
	eventTypes map[string]struct{}
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		eventTypes: make(map[string]struct{}),
		WebhookDeliveries: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "webhook_deliveries_total", Help: "Webhook delivery attempts by event type and status."},
			[]string{"event_type", "status"},
		),
		WebhookLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{Name: "webhook_delivery_latency_ms", Help: "Webhook delivery latency in ms.", Buckets: []float64{10, 50, 100, 200, 500, 1000, 2000, 5000}},
			[]string{"event_type", "status"},
		),
		Notifications: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "webhook_notifications_total", Help: "Completed notification retry loops by outcome."},
			[]string{"outcome"},
		),
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
			[]string{"method", "path", "status"},
		),
	}
	reg.MustRegister(m.WebhookDeliveries, m.WebhookLatency, m.Notifications, m.HTTPRequests, m.HTTPDuration)
	return m
}

// NewRegistry returns a dedicated registry with Go and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return reg
}

// Handler exposes reg in the Prometheus text format.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
}

// ObserveAttempt records one delivery attempt.
func (m *Metrics) ObserveAttempt(eventType string, success bool, latency time.Duration) {
	status := "failed"
	if success {
		status = "delivered"
	}
	eventType = m.eventTypeLabel(eventType)
	m.WebhookDeliveries.WithLabelValues(eventType, status).Inc()
	m.WebhookLatency.WithLabelValues(eventType, status).Observe(float64(latency.Milliseconds()))
}

func (m *Metrics) eventTypeLabel(eventType string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.eventTypes[eventType]; ok {
		return eventType
	}
	if len(m.eventTypes) >= MaxEventTypes {
		return OtherEventType
	}
	m.eventTypes[eventType] = struct{}{}
	return eventType
}

// ObserveNotification records the end of a retry loop.
func (m *Metrics) ObserveNotification(outcome string) {
	m.Notifications.WithLabelValues(outcome).Inc()
}

// ObserveHTTP records one inbound request.
func (m *Metrics) ObserveHTTP(method, path string, status int, duration time.Duration) {
	code := strconv.Itoa(status)
	m.HTTPRequests.WithLabelValues(method, path, code).Inc()
	m.HTTPDuration.WithLabelValues(method, path, code).Observe(duration.Seconds())
}
