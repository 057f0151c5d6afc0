package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token is the session credential issued on registration and login.
//
// It embeds [jwt.Token] for signing and claim inspection and
// [jwt.RegisteredClaims] for the standard claim set. Only SignedString ever
// leaves the server, carried in the Authorization response header; everything
// else is server-side state and excluded from JSON.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// RegisteredClaims holds the standard claim set (sub, exp, iat, iss).
	jwt.RegisteredClaims

	// SignedString is the compact JWS form (header.payload.signature)
	// transmitted as "Bearer <SignedString>".
	SignedString string `json:"-"`

	// UserID caches the "sub" claim parsed to int64 so callers do not
	// re-parse the subject on every access.
	UserID int64 `json:"-"`
}

// GetUserID parses the "sub" claim as a base-10 int64 account identifier.
//
// Returns an error if the subject claim is missing, empty, or not numeric.
func (t *Token) GetUserID() (int64, error) {
	userIDString, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token. It implements
// [fmt.Stringer].
func (t *Token) String() string {
	return t.SignedString
}
