package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/autovenda/go-car-market/internal/logger"
	"github.com/autovenda/go-car-market/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, lookup, and profile mutation against the
// "users" and "companies" tables.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and, for Company accounts, the owned
// companies child row. Both inserts run in one transaction so that a failed
// company insert leaves no orphan user row behind.
//
// Error handling:
//   - unique_violation on users.email → [ErrEmailAlreadyExists].
//   - unique_violation on companies.cnpj → [ErrCNPJAlreadyExists].
//   - Any other driver-level error → wrapped low-level sentinel.
func (r *userRepository) CreateUser(ctx context.Context, user models.User, company *models.Company) (models.User, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: cannot begin transaction")
		return models.User{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	// no-op after a successful commit
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, createUser, user.Name, user.Email, user.PasswordHash, user.AccountType, nullableString(user.PhoneNumber))
	if err := row.Scan(&user.UserID, &user.CreatedAt); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: inserting user row")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if company != nil {
		company.UserID = user.UserID
		if _, err := tx.ExecContext(ctx, createCompany, company.UserID, company.CompanyName, company.CNPJ); err != nil {
			log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: inserting company row")

			switch postgresError(err) {
			case pgerrcode.UniqueViolation:
				return models.User{}, ErrCNPJAlreadyExists
			default:
				return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
			}
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "*userRepository.CreateUser").Msg("error: commit failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return user, nil
}

// FindUserByEmail retrieves the user record whose email matches the given
// value. Returns [ErrNoUserWasFound] for an empty result set.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, findUserByEmail, email)
}

// FindUserByID retrieves the user record with the given identifier.
// Returns [ErrNoUserWasFound] for an empty result set.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findUser(ctx, findUserByID, userID)
}

func (r *userRepository) findUser(ctx context.Context, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	var phone sql.NullString

	row := r.db.QueryRowContext(ctx, query, arg)
	if err := row.Scan(&foundUser.UserID, &foundUser.Name, &foundUser.Email, &foundUser.PasswordHash, &foundUser.AccountType, &phone, &foundUser.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.findUser").Msg("error: scanning user row")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	foundUser.PhoneNumber = phone.String
	return foundUser, nil
}

// FindCompanyByUserID retrieves the companies child row of the given user.
// Returns [ErrCompanyProfileNotFound] when the user has no company profile.
func (r *userRepository) FindCompanyByUserID(ctx context.Context, userID int64) (models.Company, error) {
	log := logger.FromContext(ctx)

	var company models.Company
	row := r.db.QueryRowContext(ctx, findCompanyByUserID, userID)
	if err := row.Scan(&company.UserID, &company.CompanyName, &company.CNPJ); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Company{}, ErrCompanyProfileNotFound
		}

		log.Err(err).Str("func", "*userRepository.FindCompanyByUserID").Msg("error: scanning company row")
		return models.Company{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return company, nil
}

// UpdateProfile applies the pre-routed field maps inside one transaction.
// The caller (the account service) has already filtered the maps by account
// kind, so this method only enforces atomicity:
//
//   - an empty pair of maps → [ErrBuildingSQLQuery];
//   - a users update matching no row → [ErrNoUserWasFound];
//   - a companies update matching no row → [ErrCompanyProfileNotFound],
//     rolling back any users update applied in the same call.
func (r *userRepository) UpdateProfile(ctx context.Context, userID int64, userFields, companyFields map[string]any) error {
	log := logger.FromContext(ctx)

	if len(userFields) == 0 && len(companyFields) == 0 {
		return ErrBuildingSQLQuery
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateProfile").Msg("error: cannot begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if len(userFields) > 0 {
		query, args, err := sq.Update("users").
			SetMap(userFields).
			Where(sq.Eq{"id": userID}).
			PlaceholderFormat(sq.Dollar).
			ToSql()
		if err != nil {
			log.Err(err).Str("func", "*userRepository.UpdateProfile").Msg("error: building users update")
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			log.Err(err).Str("func", "*userRepository.UpdateProfile").Msg("error: executing users update")

			switch postgresError(err) {
			case pgerrcode.UniqueViolation:
				return ErrEmailAlreadyExists
			default:
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if affected == 0 {
			return ErrNoUserWasFound
		}
	}

	if len(companyFields) > 0 {
		query, args, err := sq.Update("companies").
			SetMap(companyFields).
			Where(sq.Eq{"user_id": userID}).
			PlaceholderFormat(sq.Dollar).
			ToSql()
		if err != nil {
			log.Err(err).Str("func", "*userRepository.UpdateProfile").Msg("error: building companies update")
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			log.Err(err).Str("func", "*userRepository.UpdateProfile").Msg("error: executing companies update")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if affected == 0 {
			// rolls back the users update applied above
			return ErrCompanyProfileNotFound
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "*userRepository.UpdateProfile").Msg("error: commit failed")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return nil
}

// UpdatePassword overwrites the stored credential hash of the account
// identified by email. Returns [ErrNoUserWasFound] when no account matches.
func (r *userRepository) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updatePassword, passwordHash, email)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdatePassword").Msg("error: executing password update")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

// ListCompanies returns every company profile joined with its owning user.
func (r *userRepository) ListCompanies(ctx context.Context) ([]models.CompanyProfile, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listCompanies)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListCompanies").Msg("error: executing companies query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	companies := make([]models.CompanyProfile, 0)
	for rows.Next() {
		var profile models.CompanyProfile
		var phone sql.NullString

		if err := rows.Scan(&profile.UserID, &profile.Name, &profile.Email, &phone, &profile.CompanyName, &profile.CNPJ); err != nil {
			log.Err(err).Str("func", "*userRepository.ListCompanies").Msg("error: scanning company profile")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		profile.PhoneNumber = phone.String
		companies = append(companies, profile)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return companies, nil
}

// nullableString maps an empty string to SQL NULL.
func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
