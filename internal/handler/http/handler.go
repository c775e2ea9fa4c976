package http

import (
	"github.com/MKhiriev/go-pilot-logbook/internal/config"
	"github.com/MKhiriev/go-pilot-logbook/internal/logger"
	"github.com/MKhiriev/go-pilot-logbook/internal/service"
)

// metricsDisabled turns the metrics endpoint off when used as its path.
const metricsDisabled = "-"

type Handler struct {
	services *service.Services

	metrics     *metrics
	metricsPath string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	metricsPath := cfg.MetricsPath
	if metricsPath == metricsDisabled {
		metricsPath = ""
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:    services,
		metrics:     newMetrics(),
		metricsPath: metricsPath,
		logger:      logger,
	}
}
