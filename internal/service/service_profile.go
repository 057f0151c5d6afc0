package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/autovenda/go-car-market/internal/logger"
	"github.com/autovenda/go-car-market/internal/store"
	"github.com/autovenda/go-car-market/models"
)

// profileService is the concrete implementation of [ProfileService].
// Profile reads join company fields for Company accounts; profile edits
// route each submitted field to the users or companies row according to the
// account kind and silently drop anything the kind does not permit.
type profileService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewProfileService constructs a [ProfileService] backed by the given
// repository.
func NewProfileService(userRepository store.UserRepository, logger *logger.Logger) ProfileService {
	return &profileService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// GetProfile returns the account view of userID with the credential
// stripped. For Company accounts the companies row is joined in; a Company
// account that lost its companies row is still returned, just without the
// company fields.
func (p *profileService) GetProfile(ctx context.Context, userID int64) (models.Profile, error) {
	log := logger.FromContext(ctx)

	user, err := p.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("profile lookup failed")
		return models.Profile{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	profile := models.Profile{
		UserID:      user.UserID,
		Name:        user.Name,
		Email:       user.Email,
		AccountType: user.AccountType,
		PhoneNumber: user.PhoneNumber,
	}

	if user.AccountType == models.AccountTypeCompany {
		company, err := p.userRepository.FindCompanyByUserID(ctx, userID)
		switch {
		case err == nil:
			profile.CompanyName = company.CompanyName
			profile.CNPJ = company.CNPJ
		case errors.Is(err, store.ErrCompanyProfileNotFound):
			log.Warn().Int64("user_id", userID).Msg("company account without companies row")
		default:
			log.Err(err).Int64("user_id", userID).Msg("company lookup failed")
			return models.Profile{}, fmt.Errorf("company lookup failed: %w", err)
		}
	}

	return profile, nil
}

// UpdateProfile applies a partial profile edit with kind-gated routing:
//
//   - email   → users row, both kinds;
//   - name    → users row, Person only;
//   - phone   → users row, Person only;
//   - company → companies row, Company only.
//
// Disallowed fields are silently ignored. If nothing remains after the
// filtering the call fails with [ErrNoFieldsToUpdate]. A company-field edit
// against a user without a companies row surfaces the repository's
// [store.ErrCompanyProfileNotFound] after a full rollback.
func (p *profileService) UpdateProfile(ctx context.Context, userID int64, req models.ProfileUpdateRequest) error {
	log := logger.FromContext(ctx)

	user, err := p.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("profile edit target lookup failed")
		return fmt.Errorf("profile edit target lookup failed: %w", err)
	}

	userFields := make(map[string]any)
	companyFields := make(map[string]any)

	if req.Email != nil {
		userFields["email"] = *req.Email
	}

	switch user.AccountType {
	case models.AccountTypePerson:
		if req.Name != nil {
			userFields["name"] = *req.Name
		}
		if req.PhoneNumber != nil {
			userFields["phone_number"] = *req.PhoneNumber
		}
	case models.AccountTypeCompany:
		if req.CompanyName != nil {
			companyFields["company_name"] = *req.CompanyName
		}
	}

	if len(userFields) == 0 && len(companyFields) == 0 {
		log.Info().Int64("user_id", userID).Msg("profile edit filtered down to nothing")
		return ErrNoFieldsToUpdate
	}

	if err := p.userRepository.UpdateProfile(ctx, userID, userFields, companyFields); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("profile update failed")
		return fmt.Errorf("profile update failed: %w", err)
	}

	return nil
}
