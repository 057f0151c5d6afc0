package service

import (
	"github.com/autovenda/go-car-market/internal/advisor"
	"github.com/autovenda/go-car-market/internal/config"
	"github.com/autovenda/go-car-market/internal/logger"
	"github.com/autovenda/go-car-market/internal/store"
)

type Services struct {
	AuthService      AuthService
	ProfileService   ProfileService
	InventoryService InventoryService
	CheckoutService  CheckoutService
	AdvisoryService  AdvisoryService
}

func NewServices(repositories *store.Repositories, advisorClient advisor.Client, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:      NewAuthService(repositories.UserRepository, cfg.App, logger),
		ProfileService:   NewProfileService(repositories.UserRepository, logger),
		InventoryService: NewInventoryService(repositories.VehicleRepository, repositories.UserRepository, logger),
		CheckoutService:  NewCheckoutService(repositories.SaleRepository, logger),
		AdvisoryService:  NewAdvisoryService(advisorClient, repositories.AdvisoryLogRepository, logger),
	}
}
