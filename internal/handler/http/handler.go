package http

import (
	"github.com/MKhiriev/go-car-keeper/internal/config"
	"github.com/MKhiriev/go-car-keeper/internal/logger"
	"github.com/MKhiriev/go-car-keeper/internal/service"
	"github.com/MKhiriev/go-car-keeper/internal/store"
	"github.com/prometheus/client_golang/prometheus"
)

type Handler struct {
	services    *service.Services
	connections store.ConnectionProvider
	cfg         config.Server

	metrics *httpMetrics

	logger *logger.Logger
}

// NewHandler wires the HTTP layer. connections may be nil, in which case
// requests run against the shared pool without a dedicated connection.
func NewHandler(services *service.Services, connections store.ConnectionProvider, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:    services,
		connections: connections,
		cfg:         cfg,
		metrics:     newHTTPMetrics(),
		logger:      logger,
	}
}

// RegisterCollector adds c to the registry served on /metrics.
func (h *Handler) RegisterCollector(c prometheus.Collector) error {
	return h.metrics.registry.Register(c)
}
