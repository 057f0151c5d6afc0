package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/autovenda/go-car-market/internal/config"
	"github.com/autovenda/go-car-market/internal/logger"
	"github.com/autovenda/go-car-market/internal/store"
	"github.com/autovenda/go-car-market/internal/utils"
	"github.com/autovenda/go-car-market/models"
)

// minPasswordLength is the lower bound enforced by the password reset flow.
const minPasswordLength = 6

// authService is the concrete implementation of [AuthService].
// It handles account registration, credential verification, password reset,
// and JWT token lifecycle using a [store.UserRepository] for persistence and
// bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// bcryptCost is the work factor applied when hashing passwords.
	// Zero falls back to the library default.
	bcryptCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an [AuthService] wired to the given repository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		bcryptCost:     cfg.BcryptCost,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Register creates a new account.
//
// The raw password is hashed with bcrypt before any persistence and is never
// stored or logged. For Company accounts the company name and cnpj are
// mandatory; the validation runs before any row is written, and the company
// profile row is inserted in the same transaction as the user row.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - [ErrInvalidDataProvided] if name, email, password, or account kind is
//     missing or the kind is unknown.
//   - [ErrCompanyFieldsRequired] if a Company registration omits the company
//     name or cnpj.
//   - A wrapped storage error otherwise (e.g. [store.ErrEmailAlreadyExists]).
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Name == "" || req.Email == "" || req.Password == "" {
		log.Error().Str("email", req.Email).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}
	if req.AccountType != models.AccountTypePerson && req.AccountType != models.AccountTypeCompany {
		log.Error().Str("account_type", req.AccountType).Msg("unknown account type")
		return models.User{}, ErrInvalidDataProvided
	}

	var company *models.Company
	if req.AccountType == models.AccountTypeCompany {
		if req.CompanyName == "" || req.CNPJ == "" {
			log.Error().Str("email", req.Email).Msg("company fields missing for company registration")
			return models.User{}, ErrCompanyFieldsRequired
		}
		company = &models.Company{
			CompanyName: req.CompanyName,
			CNPJ:        req.CNPJ,
		}
	}

	passwordHash, err := utils.HashPassword(req.Password, a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: passwordHash,
		AccountType:  req.AccountType,
		PhoneNumber:  req.PhoneNumber,
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user, company)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user by email and password.
//
// Unknown email and wrong password both collapse into the same
// [ErrInvalidCredentials] so the caller cannot learn whether the email is
// registered.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Email == "" || req.Password == "" {
		log.Error().Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Info().Str("email", req.Email).Msg("login rejected: unknown email")
			return models.User{}, ErrInvalidCredentials
		}

		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.VerifyPassword(foundUser.PasswordHash, req.Password) {
		log.Info().Int64("id", foundUser.UserID).Msg("login rejected: wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// ResetPassword overwrites the credential of the account identified by email.
//
// Returns:
//   - [ErrPasswordsDoNotMatch] if the confirmation differs.
//   - [ErrPasswordTooShort] if the new password is shorter than six characters.
//   - [store.ErrNoUserWasFound] if the email is unknown.
func (a *authService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	log := logger.FromContext(ctx)

	if req.Email == "" {
		return ErrInvalidDataProvided
	}
	if req.NewPassword != req.ConfirmPassword {
		return ErrPasswordsDoNotMatch
	}
	if len(req.NewPassword) < minPasswordLength {
		return ErrPasswordTooShort
	}

	passwordHash, err := utils.HashPassword(req.NewPassword, a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	if err := a.userRepository.UpdatePassword(ctx, req.Email, passwordHash); err != nil {
		log.Err(err).Str("email", req.Email).Msg("password update failed")
		return fmt.Errorf("password update failed: %w", err)
	}

	return nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// [ErrTokenIsExpiredOrInvalid] so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
