package store

import (
	"context"

	"github.com/autovenda/go-car-market/models"
)

// UserRepository owns user and company identity records: the account
// directory's persistence contract.
type UserRepository interface {
	// CreateUser inserts the user row and, when company is non-nil, the
	// owned companies child row within the same transaction.
	CreateUser(ctx context.Context, user models.User, company *models.Company) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	FindCompanyByUserID(ctx context.Context, userID int64) (models.Company, error)

	// UpdateProfile applies the pre-routed field maps to the users and
	// companies rows atomically. A company update that matches no row
	// rolls back the whole call with [ErrCompanyProfileNotFound].
	UpdateProfile(ctx context.Context, userID int64, userFields, companyFields map[string]any) error

	// UpdatePassword overwrites the stored credential hash of the account
	// identified by email.
	UpdatePassword(ctx context.Context, email, passwordHash string) error

	ListCompanies(ctx context.Context) ([]models.CompanyProfile, error)
}

// VehicleRepository owns vehicle records and availability queries.
type VehicleRepository interface {
	CreateVehicle(ctx context.Context, vehicle models.Vehicle) (models.Vehicle, error)
	ListAvailable(ctx context.Context, filter models.VehicleFilter) ([]models.Vehicle, error)
}

// SaleRepository owns the checkout workflow: the single multi-statement,
// invariant-bearing operation of the system.
type SaleRepository interface {
	// Checkout converts an Available vehicle into a completed sale
	// atomically, charging the price read under the row lock.
	Checkout(ctx context.Context, clientID, vehicleID int64) (models.Sale, error)
}

// AdvisoryLogRepository records text-generation interactions. Persistence is
// best effort; callers swallow its errors.
type AdvisoryLogRepository interface {
	SaveInteraction(ctx context.Context, entry models.AdvisoryLogEntry) error
}
