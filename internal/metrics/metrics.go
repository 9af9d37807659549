package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Service owns the prometheus registry and the exchange metrics.
type Service struct {
	registry *prometheus.Registry

	OperationsTotal     *prometheus.CounterVec
	ConfirmationSeconds *prometheus.HistogramVec
}

// New creates a metrics service with all collectors registered.
func New() *Service {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	operationsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "exchange_operations_total",
		Help: "Exchange operations by operation and result.",
	}, []string{"operation", "result"})
	registry.MustRegister(operationsTotal)

	confirmationSeconds := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "exchange_confirmation_seconds",
		Help:    "Wall-clock seconds from submission to chain confirmation.",
		Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
	}, []string{"operation"})
	registry.MustRegister(confirmationSeconds)

	return &Service{
		registry:            registry,
		OperationsTotal:     operationsTotal,
		ConfirmationSeconds: confirmationSeconds,
	}
}

// Handler exposes the registry for the management metrics endpoint.
func (s *Service) Handler() http.Handler {
	return promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})
}
