package models

import "time"

// Availability is the inventory lifecycle flag of a vehicle. It moves from
// Available to Sold exactly once, only through the checkout workflow.
const (
	AvailabilityAvailable = "Available"
	AvailabilitySold      = "Sold"
)

// Vehicle is a marketplace listing. Apart from the availability flag the
// record is immutable after registration.
type Vehicle struct {
	VehicleID int64 `json:"id"`

	// SellerID references the user that listed the vehicle.
	SellerID int64 `json:"seller_id"`

	// SellerType is a snapshot of the seller's account kind taken at
	// listing time; it does not follow later account changes.
	SellerType string `json:"seller_type"`

	Mark     string  `json:"mark"`
	Model    string  `json:"model"`
	Year     string  `json:"year"`
	Mileage  int64   `json:"mileage"`
	Price    float64 `json:"price"`
	FuelType string  `json:"fuel_type"`
	Color    string  `json:"color"`

	// Status is the seller-entered listing status (free-form), distinct
	// from Availability which is owned by the checkout workflow.
	Status string `json:"status"`

	// Availability is [AvailabilityAvailable] or [AvailabilitySold].
	Availability string `json:"availability"`

	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Vehicle model.
func (v Vehicle) TableName() string {
	return "vehicles"
}

// VehicleFilter narrows the available-vehicles listing. Zero values impose
// no constraint; set filters compose conjunctively.
type VehicleFilter struct {
	// Mark is an exact-match filter on the vehicle mark.
	Mark string

	// MinPrice is an inclusive lower bound on the price.
	// Nil means unconstrained.
	MinPrice *float64
}
