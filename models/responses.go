package models

// RegisterResponse is returned by POST /register and POST /login.
type RegisterResponse struct {
	UserID      int64  `json:"user_id"`
	AccountType string `json:"account_type"`
}

// RegisterVehicleResponse is returned by POST /vehicle.
type RegisterVehicleResponse struct {
	VehicleID int64 `json:"vehicle_id"`
}

// CheckoutResponse is returned by POST /checkout. ValueSold is the price
// actually charged: the server-read price, not the declared one.
type CheckoutResponse struct {
	SaleID    int64   `json:"sale_id"`
	VehicleID int64   `json:"vehicle_id"`
	ValueSold float64 `json:"value_sold"`
}

// SuggestResponse is returned by POST /suggest. Suggestion is either the
// generated text or a human-readable fallback; the endpoint never fails.
type SuggestResponse struct {
	Suggestion string `json:"suggestion"`
}
