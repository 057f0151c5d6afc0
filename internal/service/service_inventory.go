package service

import (
	"context"
	"fmt"

	"github.com/autovenda/go-car-market/internal/logger"
	"github.com/autovenda/go-car-market/internal/store"
	"github.com/autovenda/go-car-market/models"
)

// inventoryService is the concrete implementation of [InventoryService].
type inventoryService struct {
	vehicleRepository store.VehicleRepository
	userRepository    store.UserRepository
	logger            *logger.Logger
}

// NewInventoryService constructs an [InventoryService]. The user repository
// is consulted to snapshot the seller's account kind at listing time and to
// answer the companies listing.
func NewInventoryService(vehicleRepository store.VehicleRepository, userRepository store.UserRepository, logger *logger.Logger) InventoryService {
	return &inventoryService{
		vehicleRepository: vehicleRepository,
		userRepository:    userRepository,
		logger:            logger,
	}
}

// RegisterVehicle lists a vehicle for sale. The seller's account kind is
// read once and stored on the vehicle row; later account changes do not
// propagate to existing listings.
func (s *inventoryService) RegisterVehicle(ctx context.Context, req models.RegisterVehicleRequest) (models.Vehicle, error) {
	log := logger.FromContext(ctx)

	if req.SellerID <= 0 || req.Mark == "" || req.Model == "" || req.Price <= 0 {
		log.Error().Int64("seller_id", req.SellerID).Msg("invalid vehicle data provided")
		return models.Vehicle{}, ErrInvalidDataProvided
	}

	seller, err := s.userRepository.FindUserByID(ctx, req.SellerID)
	if err != nil {
		log.Err(err).Int64("seller_id", req.SellerID).Msg("seller lookup failed")
		return models.Vehicle{}, fmt.Errorf("seller lookup failed: %w", err)
	}

	vehicle := models.Vehicle{
		SellerID:    req.SellerID,
		SellerType:  seller.AccountType,
		Mark:        req.Mark,
		Model:       req.Model,
		Year:        req.Year,
		Mileage:     req.Mileage,
		Price:       req.Price,
		FuelType:    req.FuelType,
		Color:       req.Color,
		Status:      req.Status,
		Description: req.Description,
	}

	registeredVehicle, err := s.vehicleRepository.CreateVehicle(ctx, vehicle)
	if err != nil {
		log.Err(err).Int64("seller_id", req.SellerID).Msg("vehicle creation ended with error")
		return models.Vehicle{}, fmt.Errorf("vehicle creation ended with error: %w", err)
	}

	return registeredVehicle, nil
}

// ListAvailable returns the Available vehicles matching the filter.
func (s *inventoryService) ListAvailable(ctx context.Context, filter models.VehicleFilter) ([]models.Vehicle, error) {
	vehicles, err := s.vehicleRepository.ListAvailable(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("available vehicles listing failed")
		return nil, fmt.Errorf("available vehicles listing failed: %w", err)
	}

	return vehicles, nil
}

// ListCompanies returns every registered company profile.
func (s *inventoryService) ListCompanies(ctx context.Context) ([]models.CompanyProfile, error) {
	companies, err := s.userRepository.ListCompanies(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("companies listing failed")
		return nil, fmt.Errorf("companies listing failed: %w", err)
	}

	return companies, nil
}
