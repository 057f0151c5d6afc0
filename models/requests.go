package models

// RegisterRequest is the payload of POST /register. CompanyName and CNPJ
// are mandatory when AccountType is Company and ignored otherwise.
type RegisterRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	AccountType string `json:"account_type"`
	PhoneNumber string `json:"phone_number,omitempty"`
	CompanyName string `json:"company_name,omitempty"`
	CNPJ        string `json:"cnpj,omitempty"`
}

// LoginRequest is the payload of POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ResetPasswordRequest is the payload of POST /auth/reset-password.
type ResetPasswordRequest struct {
	Email           string `json:"email"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

// ProfileUpdateRequest carries the partial profile edit of
// PUT /profile/edit/{userId}. Nil pointers mean "not submitted".
// Fields not permitted for the account's kind are silently ignored.
type ProfileUpdateRequest struct {
	Name        *string `json:"name,omitempty"`
	Email       *string `json:"email,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	CompanyName *string `json:"company_name,omitempty"`
}

// RegisterVehicleRequest is the payload of POST /vehicle.
type RegisterVehicleRequest struct {
	SellerID    int64   `json:"seller_id"`
	Mark        string  `json:"mark"`
	Model       string  `json:"model"`
	Year        string  `json:"year"`
	Mileage     int64   `json:"mileage"`
	Price       float64 `json:"price"`
	FuelType    string  `json:"fuel_type"`
	Color       string  `json:"color"`
	Status      string  `json:"status"`
	Description string  `json:"description,omitempty"`
}

// CheckoutRequest is the payload of POST /checkout. TotalValue is the
// caller-declared price; the server-read price under lock is always the
// authoritative amount charged.
type CheckoutRequest struct {
	ClientID   int64   `json:"client_id"`
	VehicleID  int64   `json:"vehicle_id"`
	TotalValue float64 `json:"total_value"`
}

// SuggestRequest is the payload of POST /suggest.
type SuggestRequest struct {
	Preferences string `json:"preferences"`
}
