package store

import "github.com/autovenda/go-car-market/internal/logger"

// Repositories aggregates all persistence-layer contracts consumed by the
// service layer.
type Repositories struct {
	UserRepository        UserRepository
	VehicleRepository     VehicleRepository
	SaleRepository        SaleRepository
	AdvisoryLogRepository AdvisoryLogRepository
}

// NewRepositories constructs every repository against the shared database
// connection.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:        NewUserRepository(db, logger),
		VehicleRepository:     NewVehicleRepository(db, logger),
		SaleRepository:        NewSaleRepository(db, logger),
		AdvisoryLogRepository: NewAdvisoryLogRepository(db, logger),
	}
}
