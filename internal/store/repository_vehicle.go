package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/autovenda/go-car-market/internal/logger"
	"github.com/autovenda/go-car-market/models"
	"github.com/jackc/pgerrcode"
)

// vehicleRepository is the PostgreSQL-backed implementation of
// [VehicleRepository] against the "vehicles" table.
type vehicleRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewVehicleRepository constructs a [VehicleRepository] backed by the
// provided database connection and logger.
func NewVehicleRepository(db *DB, logger *logger.Logger) VehicleRepository {
	logger.Debug().Msg("creating vehicle repository")
	return &vehicleRepository{
		db:     db,
		logger: logger,
	}
}

// CreateVehicle persists a new listing with availability = Available and
// returns the vehicle populated with server-assigned fields.
//
// A foreign_key_violation on seller_id maps to [ErrNoUserWasFound] so the
// caller can answer with a not-found rather than a bare 500.
func (r *vehicleRepository) CreateVehicle(ctx context.Context, vehicle models.Vehicle) (models.Vehicle, error) {
	log := logger.FromContext(ctx)

	vehicle.Availability = models.AvailabilityAvailable

	row := r.db.QueryRowContext(ctx, createVehicle,
		vehicle.SellerID,
		vehicle.SellerType,
		vehicle.Mark,
		vehicle.Model,
		vehicle.Year,
		vehicle.Mileage,
		vehicle.Price,
		vehicle.FuelType,
		vehicle.Color,
		vehicle.Status,
		vehicle.Availability,
		nullableString(vehicle.Description),
	)
	if err := row.Scan(&vehicle.VehicleID, &vehicle.CreatedAt); err != nil {
		log.Err(err).Str("func", "*vehicleRepository.CreateVehicle").Msg("error: inserting vehicle row")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Vehicle{}, ErrNoUserWasFound
		default:
			return models.Vehicle{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return vehicle, nil
}

// ListAvailable returns the vehicles with availability = Available matching
// the filter. Filters compose conjunctively; zero-valued filters impose no
// constraint. Mark is exact-match, MinPrice is an inclusive lower bound.
func (r *vehicleRepository) ListAvailable(ctx context.Context, filter models.VehicleFilter) ([]models.Vehicle, error) {
	log := logger.FromContext(ctx)

	builder := sq.Select(
		"id", "seller_id", "seller_type", "mark", "model", "year",
		"mileage", "price", "fuel_type", "color", "status",
		"availability", "description", "created_at",
	).
		From("vehicles").
		Where(sq.Eq{"availability": models.AvailabilityAvailable}).
		OrderBy("id").
		PlaceholderFormat(sq.Dollar)

	if filter.Mark != "" {
		builder = builder.Where(sq.Eq{"mark": filter.Mark})
	}
	if filter.MinPrice != nil {
		builder = builder.Where(sq.GtOrEq{"price": *filter.MinPrice})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*vehicleRepository.ListAvailable").Msg("error: building vehicles query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*vehicleRepository.ListAvailable").Msg("error: executing vehicles query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	vehicles := make([]models.Vehicle, 0)
	for rows.Next() {
		var vehicle models.Vehicle
		var description sql.NullString

		if err := rows.Scan(
			&vehicle.VehicleID,
			&vehicle.SellerID,
			&vehicle.SellerType,
			&vehicle.Mark,
			&vehicle.Model,
			&vehicle.Year,
			&vehicle.Mileage,
			&vehicle.Price,
			&vehicle.FuelType,
			&vehicle.Color,
			&vehicle.Status,
			&vehicle.Availability,
			&description,
			&vehicle.CreatedAt,
		); err != nil {
			log.Err(err).Str("func", "*vehicleRepository.ListAvailable").Msg("error: scanning vehicle row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		vehicle.Description = description.String
		vehicles = append(vehicles, vehicle)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return vehicles, nil
}
