package models

// Company holds the company-only profile fields of a Company-kind user.
// The row exists iff the owning user's account type is Company; it is
// created in the same transaction as the user row during registration.
type Company struct {
	// UserID is the owning user's identifier (one-to-one foreign key).
	UserID int64 `json:"user_id"`

	// CompanyName is the registered trade name.
	CompanyName string `json:"company_name"`

	// CNPJ is the national tax identifier. Expected unique.
	CNPJ string `json:"cnpj"`
}

// TableName returns the name of the database table
// associated with the Company model.
func (c Company) TableName() string {
	return "companies"
}

// CompanyProfile is the read model returned by the companies listing:
// the users row joined with its companies child row.
type CompanyProfile struct {
	UserID      int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number,omitempty"`
	CompanyName string `json:"company_name"`
	CNPJ        string `json:"cnpj"`
}

// Profile is the account view returned by GET /profile/{userId}.
// Company fields are populated only for Company-kind accounts.
// The credential hash is never part of this model.
type Profile struct {
	UserID      int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	AccountType string `json:"account_type"`
	PhoneNumber string `json:"phone_number,omitempty"`
	CompanyName string `json:"company_name,omitempty"`
	CNPJ        string `json:"cnpj,omitempty"`
}
