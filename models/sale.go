package models

import "time"

// PurchaseStatusCompleted is the purchase status written by a successful
// checkout. Sale records are never mutated afterwards.
const PurchaseStatusCompleted = "Completed"

// Sale records a completed checkout. TotalValue is a point-in-time copy of
// the vehicle price read under the row lock, not a live reference to
// Vehicle.Price.
type Sale struct {
	SaleID         int64     `json:"id"`
	ClientID       int64     `json:"client_id"`
	VehicleID      int64     `json:"vehicle_id"`
	TotalValue     float64   `json:"total_value"`
	PurchaseStatus string    `json:"purchase_status"`
	CreatedAt      time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Sale model.
func (s Sale) TableName() string {
	return "sells"
}
