package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics коллекторы Prometheus для сервиса
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	integrationRequestsTotal   *prometheus.CounterVec
	integrationRequestDuration *prometheus.HistogramVec

	activeSessions prometheus.Gauge
}

// New создает и регистрирует коллекторы метрик
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"method", "path"}),

		integrationRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "integration_requests_total",
			Help:        "Total number of requests to external services",
			ConstLabels: constLabels,
		}, []string{"target", "method", "status"}),

		integrationRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "integration_request_duration_seconds",
			Help:        "External service request duration in seconds",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"target", "method"}),

		activeSessions: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "booking_sessions_active",
			Help:        "Number of active booking sessions held in memory",
			ConstLabels: constLabels,
		}),
	}
}

// RecordHTTPRequest записывает метрики обработанного HTTP запроса
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordIntegrationRequest записывает метрики запроса к внешнему сервису
func (m *Metrics) RecordIntegrationRequest(target, method, status string, duration time.Duration) {
	m.integrationRequestsTotal.WithLabelValues(target, method, status).Inc()
	m.integrationRequestDuration.WithLabelValues(target, method).Observe(duration.Seconds())
}

// SetActiveSessions обновляет gauge активных сессий бронирования
func (m *Metrics) SetActiveSessions(n int) {
	m.activeSessions.Set(float64(n))
}
