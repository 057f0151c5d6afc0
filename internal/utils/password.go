package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a salted one-way bcrypt digest from the raw password.
// The raw password is never stored or logged; only the digest is persisted.
//
// Parameters:
//
//	rawPassword - the plaintext password received at the API boundary
//	cost        - bcrypt work factor; values below bcrypt.MinCost fall back
//	              to bcrypt.DefaultCost
//
// Returns:
//
//	string - the bcrypt digest, including algorithm, cost, and salt
//	error  - non-nil if the password exceeds bcrypt's length limit or
//	         hashing fails
func HashPassword(rawPassword string, cost int) (string, error) {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(rawPassword), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// VerifyPassword reports whether rawPassword matches the stored bcrypt
// digest. Any comparison failure (wrong password, malformed digest) yields
// false; callers must not distinguish the cases.
func VerifyPassword(digest, rawPassword string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(rawPassword)) == nil
}
