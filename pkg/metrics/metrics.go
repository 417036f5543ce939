package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics набор метрик сервиса бронирования
type Metrics struct {
	registry    *prometheus.Registry
	serviceName string

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	BookingsCreated      *prometheus.CounterVec
	BookingsRemoved      prometheus.Counter
	CapacityRejections   *prometheus.CounterVec
	NotificationFailures prometheus.Counter
}

// New создает и регистрирует метрики в собственном реестре
func New(serviceName string) *Metrics {
	reg := prometheus.NewRegistry()
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		registry:    reg,
		serviceName: serviceName,
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		BookingsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Bookings committed to the store",
			ConstLabels: constLabels,
		}, []string{"type"}),
		BookingsRemoved: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_removed_total",
			Help:        "Bookings removed from the store",
			ConstLabels: constLabels,
		}),
		CapacityRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_capacity_rejections_total",
			Help:        "Booking attempts rejected because the slot had no capacity left",
			ConstLabels: constLabels,
		}, []string{"type"}),
		NotificationFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "booking_notification_failures_total",
			Help:        "Booking notifications that could not be delivered",
			ConstLabels: constLabels,
		}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.BookingsCreated,
		m.BookingsRemoved,
		m.CapacityRejections,
		m.NotificationFailures,
	)

	return m
}

// Handler отдает метрики реестра в формате Prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RegisterStoredBookings публикует текущее число бронирований в хранилище.
// count вызывается при каждом сборе метрик.
func (m *Metrics) RegisterStoredBookings(count func() int) {
	m.registry.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name:        "bookings_stored",
		Help:        "Bookings currently held in the store",
		ConstLabels: prometheus.Labels{"service": m.serviceName},
	}, func() float64 {
		return float64(count())
	}))
}

// ObserveHTTPRequest фиксирует завершенный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// BookingCreated увеличивает счетчик созданных бронирований
func (m *Metrics) BookingCreated(resourceType string) {
	m.BookingsCreated.WithLabelValues(resourceType).Inc()
}

// BookingRemoved увеличивает счетчик удаленных бронирований
func (m *Metrics) BookingRemoved() {
	m.BookingsRemoved.Inc()
}

// CapacityRejected увеличивает счетчик отказов по вместимости
func (m *Metrics) CapacityRejected(resourceType string) {
	m.CapacityRejections.WithLabelValues(resourceType).Inc()
}

// NotificationFailed увеличивает счетчик неотправленных уведомлений
func (m *Metrics) NotificationFailed() {
	m.NotificationFailures.Inc()
}
