package models

import "time"

// Account kinds stored in the users.account_type column. The kind decides
// which profile fields are writable: name and phone belong to Person
// accounts, company fields belong to Company accounts, email to both.
const (
	AccountTypePerson  = "Person"
	AccountTypeCompany = "Company"
)

// User represents a marketplace account used for authentication and as the
// owner of vehicle listings and purchases. Sensitive fields must never be
// exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Name is the display name of the account holder.
	Name string `json:"name"`

	// Email is the unique login identifier.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt digest of the user's password.
	// This value MUST be a derived value, never plaintext, and is
	// excluded from every JSON response.
	PasswordHash string `json:"-"`

	// AccountType is either [AccountTypePerson] or [AccountTypeCompany].
	AccountType string `json:"account_type"`

	// PhoneNumber is optional contact information.
	PhoneNumber string `json:"phone_number,omitempty"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
