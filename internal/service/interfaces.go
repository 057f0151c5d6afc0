package service

import (
	"context"

	"github.com/autovenda/go-car-market/models"
)

// AuthService owns credential lifecycle: registration, login, password
// reset, and JWT issuance/verification.
type AuthService interface {
	// Register creates a user account (and, for Company accounts, the
	// owned company profile) and returns the persisted user.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login verifies credentials by email. Unknown email and wrong
	// password yield the same [ErrInvalidCredentials].
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	// ResetPassword re-hashes and overwrites the credential of the
	// account identified by email.
	ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error

	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ProfileService answers and mutates account profiles with kind-gated
// field routing.
type ProfileService interface {
	// GetProfile returns the account view without the credential field;
	// company fields are joined only for Company-kind accounts.
	GetProfile(ctx context.Context, userID int64) (models.Profile, error)

	// UpdateProfile applies a partial edit. Fields not permitted for the
	// account's kind are silently ignored; an edit that filters down to
	// nothing fails with [ErrNoFieldsToUpdate].
	UpdateProfile(ctx context.Context, userID int64, req models.ProfileUpdateRequest) error
}

// InventoryService owns vehicle listings and availability queries.
type InventoryService interface {
	// RegisterVehicle lists a vehicle with availability = Available,
	// snapshotting the seller's account kind at listing time.
	RegisterVehicle(ctx context.Context, req models.RegisterVehicleRequest) (models.Vehicle, error)

	ListAvailable(ctx context.Context, filter models.VehicleFilter) ([]models.Vehicle, error)
	ListCompanies(ctx context.Context) ([]models.CompanyProfile, error)
}

// CheckoutService converts an available vehicle into a completed sale.
type CheckoutService interface {
	// Checkout runs the atomic sale workflow. The declared total in req
	// is advisory only; the price read under the row lock is charged.
	Checkout(ctx context.Context, req models.CheckoutRequest) (models.Sale, error)
}

// AdvisoryService wraps the external text-generation collaborator. It never
// fails: errors from the collaborator are absorbed into a fallback text, and
// interaction logging is best effort.
type AdvisoryService interface {
	Suggest(ctx context.Context, preferences string, userID *int64) string
}
