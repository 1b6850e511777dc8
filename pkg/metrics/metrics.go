package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор Prometheus-метрик сервиса
type Metrics struct {
	// HTTPRequestsTotal количество HTTP-запросов
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration длительность обработки HTTP-запросов
	HTTPRequestDuration *prometheus.HistogramVec

	// BookingEvaluationsTotal количество вычислений окна бронирования по квоте и фазе
	BookingEvaluationsTotal *prometheus.CounterVec

	// ActiveWatchers количество активных подписок на обновление статуса
	ActiveWatchers prometheus.Gauge

	// PNRCacheLookupsTotal обращения к кэшу PNR (result = hit|miss|error)
	PNRCacheLookupsTotal *prometheus.CounterVec

	// RailwayRequestsTotal запросы к внешнему провайдеру ж/д данных
	RailwayRequestsTotal *prometheus.CounterVec
}

// New создает и регистрирует метрики в переданном реестре
func New(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),

		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration",
				Buckets:   []float64{.005, .01, .05, .1, .25, .5, 1, 2.5, 5},
			},
			[]string{"method", "path"},
		),

		BookingEvaluationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "booking_window_evaluations_total",
				Help:      "Total number of booking window evaluations",
			},
			[]string{"quota", "phase"},
		),

		ActiveWatchers: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "booking_window_active_watchers",
				Help:      "Current number of running booking status watchers",
			},
		),

		PNRCacheLookupsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "pnr_cache_lookups_total",
				Help:      "PNR cache lookups by result",
			},
			[]string{"result"},
		),

		RailwayRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "railway_requests_total",
				Help:      "Requests to the railway data provider",
			},
			[]string{"endpoint", "outcome"},
		),
	}
}

// ObserveEvaluation учитывает одно вычисление окна бронирования.
// Безопасен для nil-получателя, чтобы метрики можно было отключить.
func (m *Metrics) ObserveEvaluation(quota, phase string) {
	if m == nil {
		return
	}
	m.BookingEvaluationsTotal.WithLabelValues(quota, phase).Inc()
}

// WatcherStarted увеличивает счетчик активных подписок
func (m *Metrics) WatcherStarted() {
	if m == nil {
		return
	}
	m.ActiveWatchers.Inc()
}

// WatcherStopped уменьшает счетчик активных подписок
func (m *Metrics) WatcherStopped() {
	if m == nil {
		return
	}
	m.ActiveWatchers.Dec()
}

// ObserveCacheLookup учитывает обращение к кэшу PNR
func (m *Metrics) ObserveCacheLookup(result string) {
	if m == nil {
		return
	}
	m.PNRCacheLookupsTotal.WithLabelValues(result).Inc()
}

// ObserveRailwayRequest учитывает запрос к провайдеру ж/д данных
func (m *Metrics) ObserveRailwayRequest(endpoint, outcome string) {
	if m == nil {
		return
	}
	m.RailwayRequestsTotal.WithLabelValues(endpoint, outcome).Inc()
}

// ObserveHTTPRequest учитывает обработанный HTTP-запрос
func (m *Metrics) ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}
