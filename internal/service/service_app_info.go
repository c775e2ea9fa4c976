package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-pilot-logbook/internal/config"
	"github.com/MKhiriev/go-pilot-logbook/internal/logger"
)

// appInfoService answers GET /api/version with the configured release.
type appInfoService struct {
	version string
	logger  *logger.Logger
}

// NewAppInfoService fails on a blank version so a server is never started
// without one.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{version: version, logger: logger}, nil
}

func (s *appInfoService) GetAppVersion(context.Context) string {
	return s.version
}
