package utils

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	digest, err := HashPassword("s3cret-password", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if digest == "s3cret-password" {
		t.Fatal("digest must not equal the raw password")
	}

	if !VerifyPassword(digest, "s3cret-password") {
		t.Error("expected digest to verify against the original password")
	}
}

func TestHashPassword_DefaultCostFallback(t *testing.T) {
	digest, err := HashPassword("another-password", 0)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	cost, err := bcrypt.Cost([]byte(digest))
	if err != nil {
		t.Fatalf("expected parsable digest, got: %v", err)
	}
	if cost != bcrypt.DefaultCost {
		t.Errorf("expected default cost %d, got %d", bcrypt.DefaultCost, cost)
	}
}

func TestHashPassword_TooLong(t *testing.T) {
	// bcrypt rejects passwords longer than 72 bytes
	_, err := HashPassword(strings.Repeat("x", 100), bcrypt.MinCost)
	if err == nil {
		t.Fatal("expected error for over-long password, got nil")
	}
}

func TestVerifyPassword_WrongPassword(t *testing.T) {
	digest, err := HashPassword("correct-password", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if VerifyPassword(digest, "wrong-password") {
		t.Error("expected verification to fail for a wrong password")
	}
}

func TestVerifyPassword_MalformedDigest(t *testing.T) {
	if VerifyPassword("not-a-bcrypt-digest", "whatever") {
		t.Error("expected verification to fail for a malformed digest")
	}
}
