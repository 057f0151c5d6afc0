package http

import (
	"github.com/autovenda/go-car-market/internal/logger"
	"github.com/autovenda/go-car-market/internal/service"
)

type Handler struct {
	services *service.Services

	// allowedOrigins is the CORS allow-list applied by withCORS.
	allowedOrigins []string

	logger *logger.Logger
}

func NewHandler(services *service.Services, allowedOrigins []string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		allowedOrigins: allowedOrigins,
		logger:         logger,
	}
}
