package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/autovenda/go-car-market/internal/logger"
	"github.com/autovenda/go-car-market/models"
	"github.com/jackc/pgerrcode"
)

func newTestVehicleRepo(t *testing.T) (*vehicleRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &vehicleRepository{
		db:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

func vehicleColumns() []string {
	return []string{
		"id", "seller_id", "seller_type", "mark", "model", "year",
		"mileage", "price", "fuel_type", "color", "status",
		"availability", "description", "created_at",
	}
}

func TestCreateVehicle(t *testing.T) {
	repo, mock, db := newTestVehicleRepo(t)
	defer db.Close()

	vehicle := models.Vehicle{
		SellerID:   3,
		SellerType: models.AccountTypePerson,
		Mark:       "Toyota",
		Model:      "Corolla",
		Year:       "2021",
		Mileage:    35000,
		Price:      85000,
		FuelType:   "Flex",
		Color:      "Silver",
		Status:     "Used",
	}

	mock.ExpectQuery("INSERT INTO vehicles").
		WithArgs(
			vehicle.SellerID, vehicle.SellerType, vehicle.Mark, vehicle.Model,
			vehicle.Year, vehicle.Mileage, vehicle.Price, vehicle.FuelType,
			vehicle.Color, vehicle.Status, models.AvailabilityAvailable, sqlmock.AnyArg(),
		).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(42, time.Now()))

	created, err := repo.CreateVehicle(context.Background(), vehicle)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.VehicleID != 42 {
		t.Errorf("expected VehicleID=42, got %d", created.VehicleID)
	}
	if created.Availability != models.AvailabilityAvailable {
		t.Errorf("new listings must start Available, got %q", created.Availability)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateVehicle_UnknownSeller(t *testing.T) {
	repo, mock, db := newTestVehicleRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO vehicles").
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.CreateVehicle(context.Background(), models.Vehicle{SellerID: 999})
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestListAvailable_NoFilters(t *testing.T) {
	repo, mock, db := newTestVehicleRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows(vehicleColumns()).
		AddRow(1, 3, models.AccountTypePerson, "Toyota", "Corolla", "2021", 35000, 85000.0,
			"Flex", "Silver", "Used", models.AvailabilityAvailable, nil, time.Now()).
		AddRow(2, 12, models.AccountTypeCompany, "Honda", "Civic", "2022", 12000, 115000.0,
			"Gasoline", "Black", "Used", models.AvailabilityAvailable, "one owner", time.Now())

	mock.ExpectQuery("SELECT (.+) FROM vehicles").
		WillReturnRows(rows)

	vehicles, err := repo.ListAvailable(context.Background(), models.VehicleFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vehicles) != 2 {
		t.Fatalf("expected 2 vehicles, got %d", len(vehicles))
	}
	if vehicles[0].Description != "" {
		t.Errorf("expected empty description for NULL column, got %q", vehicles[0].Description)
	}
	if vehicles[1].Description != "one owner" {
		t.Errorf("expected description to survive the scan, got %q", vehicles[1].Description)
	}
}

func TestListAvailable_MarkAndMinPrice(t *testing.T) {
	repo, mock, db := newTestVehicleRepo(t)
	defer db.Close()

	minPrice := 90000.0

	rows := sqlmock.NewRows(vehicleColumns()).
		AddRow(2, 12, models.AccountTypeCompany, "Honda", "Civic", "2022", 12000, 115000.0,
			"Gasoline", "Black", "Used", models.AvailabilityAvailable, nil, time.Now())

	mock.ExpectQuery("SELECT (.+) FROM vehicles").
		WithArgs(models.AvailabilityAvailable, "Honda", minPrice).
		WillReturnRows(rows)

	vehicles, err := repo.ListAvailable(context.Background(), models.VehicleFilter{
		Mark:     "Honda",
		MinPrice: &minPrice,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vehicles) != 1 {
		t.Fatalf("expected 1 vehicle, got %d", len(vehicles))
	}
	if vehicles[0].Mark != "Honda" {
		t.Errorf("expected Honda, got %s", vehicles[0].Mark)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestListAvailable_EmptyResult(t *testing.T) {
	repo, mock, db := newTestVehicleRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM vehicles").
		WillReturnRows(sqlmock.NewRows(vehicleColumns()))

	vehicles, err := repo.ListAvailable(context.Background(), models.VehicleFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vehicles == nil {
		t.Fatal("expected an empty slice, got nil")
	}
	if len(vehicles) != 0 {
		t.Errorf("expected 0 vehicles, got %d", len(vehicles))
	}
}

func TestListAvailable_QueryError(t *testing.T) {
	repo, mock, db := newTestVehicleRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM vehicles").
		WillReturnError(errors.New("connection refused"))

	_, err := repo.ListAvailable(context.Background(), models.VehicleFilter{})
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}
