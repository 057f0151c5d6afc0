package handler

import (
	"github.com/autovenda/go-car-market/internal/config"
	"github.com/autovenda/go-car-market/internal/handler/http"
	"github.com/autovenda/go-car-market/internal/logger"
	"github.com/autovenda/go-car-market/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg.AllowedOrigins, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
