package service

import (
	"context"

	"github.com/MKhiriev/go-car-keeper/internal/config"
	"github.com/MKhiriev/go-car-keeper/internal/logger"
	"github.com/MKhiriev/go-car-keeper/models"
)

// diagnostic is the fixed payload of the connectivity check endpoint.
var diagnostic = models.Diagnostic{
	Name:     "Test Subject",
	UserName: "TestingCode53",
	Age:      23,
}

type appInfoService struct {
	appVersion string

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) GetDiagnostic(ctx context.Context) models.Diagnostic {
	logger.FromContext(ctx).Debug().Str("func", "appInfoService.GetDiagnostic").Msg("grabbing current user")
	return diagnostic
}
