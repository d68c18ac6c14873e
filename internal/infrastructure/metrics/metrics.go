// Package metrics expõe as métricas Prometheus da API.
//
// Cada Metrics tem seu próprio registry, montado em GET /metrics pelo router.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "kitanda"

// Metrics agrupa os coletores HTTP e de domínio
type Metrics struct {
	registry *prometheus.Registry

	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	requestInFlight prometheus.Gauge
	resourceViews   *prometheus.CounterVec
	loginAttempts   *prometheus.CounterVec
}

// New cria um registry com os coletores de runtime e os da aplicação
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
		requestTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests.",
			},
			[]string{"method", "route", "status"},
		),
		requestInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being served.",
		}),
		resourceViews: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "resource_views_total",
				Help:      "Single-resource reads that incremented a view counter.",
			},
			[]string{"resource"},
		),
		loginAttempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "auth",
				Name:      "logins_total",
				Help:      "Login attempts by result.",
			},
			[]string{"result"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requestDuration,
		m.requestTotal,
		m.requestInFlight,
		m.resourceViews,
		m.loginAttempts,
	)

	return m
}

// Registry retorna o registry para registrar coletores extras
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serve a página de métricas
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// RequestStarted incrementa o gauge de requisições em andamento e
// devolve a função que registra o término
func (m *Metrics) RequestStarted() func(method, route string, status int) {
	start := time.Now()
	m.requestInFlight.Inc()

	return func(method, route string, status int) {
		m.requestInFlight.Dec()
		code := strconv.Itoa(status)
		m.requestDuration.WithLabelValues(method, route, code).Observe(time.Since(start).Seconds())
		m.requestTotal.WithLabelValues(method, route, code).Inc()
	}
}

// ResourceViewed conta uma leitura de recurso único
func (m *Metrics) ResourceViewed(resource string) {
	m.resourceViews.WithLabelValues(resource).Inc()
}

// LoginAttempt conta uma tentativa de login pelo resultado
func (m *Metrics) LoginAttempt(result string) {
	m.loginAttempts.WithLabelValues(result).Inc()
}
