package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is the uniform login failure: it never reveals
	// whether the email exists or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid email/password")

	// ErrCompanyFieldsRequired is returned when a Company registration is
	// missing the company name or the national tax id.
	ErrCompanyFieldsRequired = errors.New("company name and cnpj are required for company registration")

	// ErrNoFieldsToUpdate is returned when a profile edit contains no field
	// permitted for the account's kind.
	ErrNoFieldsToUpdate = errors.New("no valid fields to update")

	// ErrPasswordsDoNotMatch is returned when the password confirmation
	// differs from the new password.
	ErrPasswordsDoNotMatch = errors.New("passwords do not match")

	// ErrPasswordTooShort is returned when the new password is below the
	// minimum length threshold.
	ErrPasswordTooShort = errors.New("password is too short")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
)
