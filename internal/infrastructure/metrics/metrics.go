// Package metrics define las métricas Prometheus del servicio.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Resultados posibles de una petición a la fuente externa.
const (
	OutcomeOK          = "ok"
	OutcomeHTTPError   = "http_error"
	OutcomeParseError  = "parse_error"
	OutcomeNetworkFail = "network_error"
)

var (
	// HTTPRequests peticiones atendidas. route es el patrón registrado, no el path real.
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vitivinicultura_http_requests_total",
			Help: "Total de peticiones HTTP atendidas",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPDuration latencia de las peticiones HTTP.
	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "vitivinicultura_http_request_duration_seconds",
			Help: "Latencia de las peticiones HTTP en segundos",
			// Un rango largo de años puede tardar decenas de segundos.
			Buckets: []float64{0.005, 0.025, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"method", "route"},
	)

	// UpstreamFetches peticiones a Vitibrasil por categoría y resultado.
	UpstreamFetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vitivinicultura_upstream_fetches_total",
			Help: "Total de páginas anuales pedidas a Vitibrasil",
		},
		[]string{"category", "outcome"},
	)

	// UpstreamDuration latencia de cada página anual.
	UpstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "vitivinicultura_upstream_fetch_duration_seconds",
			Help:    "Latencia de cada petición a Vitibrasil en segundos",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"category"},
	)

	// BreakerState estado del circuit breaker: 0 closed, 1 half-open, 2 open.
	BreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "vitivinicultura_circuit_breaker_state",
			Help: "Estado del circuit breaker de la fuente externa (0 closed, 1 half-open, 2 open)",
		},
		[]string{"name"},
	)
)
