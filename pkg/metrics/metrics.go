package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-коллекторов сервиса.
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	admissionsTotal     *prometheus.CounterVec
}

// New регистрирует коллекторы в default registry и возвращает их обёртку.
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total number of HTTP requests.",
				ConstLabels: constLabels,
			},
			[]string{"method", "path", "status"},
		),
		httpRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "HTTP request duration in seconds.",
				ConstLabels: constLabels,
				Buckets:     prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		admissionsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "booking_admissions_total",
				Help:        "Booking admission decisions by outcome.",
				ConstLabels: constLabels,
			},
			[]string{"outcome"},
		),
	}
}

// ObserveHTTPRequest фиксирует один обработанный HTTP запрос.
func (m *Metrics) ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveAdmission фиксирует исход одной проверки допуска
// (admitted / rejected-причина).
func (m *Metrics) ObserveAdmission(outcome string) {
	m.admissionsTotal.WithLabelValues(outcome).Inc()
}
