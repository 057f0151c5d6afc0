package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/autovenda/go-car-market/internal/logger"
	"github.com/autovenda/go-car-market/models"
	"github.com/jackc/pgerrcode"
)

// saleRepository is the PostgreSQL-backed implementation of [SaleRepository].
// It owns the one multi-statement operation of the system: converting an
// Available vehicle into a completed sale.
type saleRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSaleRepository constructs a [SaleRepository] backed by the provided
// database connection and logger.
func NewSaleRepository(db *DB, logger *logger.Logger) SaleRepository {
	logger.Debug().Msg("creating sale repository")
	return &saleRepository{
		db:     db,
		logger: logger,
	}
}

// Checkout converts one vehicle from Available to Sold and records a sale as
// a single atomic unit:
//
//  1. begin a transaction;
//  2. read the vehicle's availability and price under FOR UPDATE, so
//     concurrent checkouts on the same vehicle serialize instead of racing;
//  3. no such vehicle → [ErrVehicleNotFound], rollback;
//  4. availability ≠ Available → [ErrVehicleNotAvailable], rollback;
//  5. insert the sells row charging the price read in step 2;
//  6. flip the vehicle's availability to Sold;
//  7. commit.
//
// The deferred rollback covers every early return, including a transaction
// that was never fully opened, and degrades to a no-op after commit. The
// operation is never retried here: a lock conflict or stale read surfaces
// to the caller as-is.
func (r *saleRepository) Checkout(ctx context.Context, clientID, vehicleID int64) (models.Sale, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*saleRepository.Checkout").Msg("error: cannot begin transaction")
		return models.Sale{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var availability string
	var price float64

	row := tx.QueryRowContext(ctx, selectVehicleForUpdate, vehicleID)
	if err := row.Scan(&availability, &price); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Sale{}, ErrVehicleNotFound
		}

		log.Err(err).
			Str("func", "*saleRepository.Checkout").
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("error: locking vehicle row")
		return models.Sale{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if availability != models.AvailabilityAvailable {
		log.Info().
			Int64("vehicle_id", vehicleID).
			Str("availability", availability).
			Msg("checkout rejected: vehicle not available")
		return models.Sale{}, ErrVehicleNotAvailable
	}

	// the server-read price is authoritative, never the declared one
	sale := models.Sale{
		ClientID:       clientID,
		VehicleID:      vehicleID,
		TotalValue:     price,
		PurchaseStatus: models.PurchaseStatusCompleted,
	}

	saleRow := tx.QueryRowContext(ctx, createSale, sale.ClientID, sale.VehicleID, sale.TotalValue, sale.PurchaseStatus)
	if err := saleRow.Scan(&sale.SaleID, &sale.CreatedAt); err != nil {
		log.Err(err).Str("func", "*saleRepository.Checkout").Msg("error: inserting sale row")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Sale{}, ErrNoUserWasFound
		default:
			return models.Sale{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if _, err := tx.ExecContext(ctx, markVehicleSold, models.AvailabilitySold, vehicleID); err != nil {
		log.Err(err).Str("func", "*saleRepository.Checkout").Msg("error: updating vehicle availability")
		return models.Sale{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "*saleRepository.Checkout").Msg("error: commit failed")
		return models.Sale{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return sale, nil
}
