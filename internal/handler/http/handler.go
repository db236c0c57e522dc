package http

import (
	"github.com/MKhiriev/go-account-gate/internal/config"
	"github.com/MKhiriev/go-account-gate/internal/logger"
	"github.com/MKhiriev/go-account-gate/internal/service"
)

type Handler struct {
	services *service.Services

	// maxBodyBytes caps request bodies read by the validation middleware.
	// Zero disables the cap.
	maxBodyBytes int64

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Int64("max_body_bytes", cfg.MaxBodyBytes).Msg("http handler created")
	return &Handler{
		services:     services,
		maxBodyBytes: cfg.MaxBodyBytes,
		logger:       logger,
	}
}
