package service

import (
	"context"
	"fmt"

	"github.com/autovenda/go-car-market/internal/logger"
	"github.com/autovenda/go-car-market/internal/store"
	"github.com/autovenda/go-car-market/models"
)

// checkoutService is the concrete implementation of [CheckoutService].
// The atomicity of the sale lives in the repository; this layer validates the
// request and shapes the result.
type checkoutService struct {
	saleRepository store.SaleRepository
	logger         *logger.Logger
}

// NewCheckoutService constructs a [CheckoutService].
func NewCheckoutService(saleRepository store.SaleRepository, logger *logger.Logger) CheckoutService {
	return &checkoutService{
		saleRepository: saleRepository,
		logger:         logger,
	}
}

// Checkout purchases the vehicle named in req on behalf of req.ClientID.
// The ValueTotal declared by the client is ignored for charging; the sale is
// recorded at the price read under the vehicle's row lock. A sold or missing
// vehicle surfaces [store.ErrVehicleNotAvailable] or
// [store.ErrVehicleNotFound] respectively.
func (c *checkoutService) Checkout(ctx context.Context, req models.CheckoutRequest) (models.Sale, error) {
	log := logger.FromContext(ctx)

	if req.ClientID <= 0 || req.VehicleID <= 0 {
		log.Error().
			Int64("client_id", req.ClientID).
			Int64("vehicle_id", req.VehicleID).
			Msg("invalid checkout data provided")
		return models.Sale{}, ErrInvalidDataProvided
	}

	sale, err := c.saleRepository.Checkout(ctx, req.ClientID, req.VehicleID)
	if err != nil {
		log.Err(err).
			Int64("client_id", req.ClientID).
			Int64("vehicle_id", req.VehicleID).
			Msg("checkout ended with error")
		return models.Sale{}, fmt.Errorf("checkout ended with error: %w", err)
	}

	log.Info().
		Int64("sale_id", sale.SaleID).
		Int64("vehicle_id", sale.VehicleID).
		Float64("total_value", sale.TotalValue).
		Msg("vehicle sold")

	return sale, nil
}
