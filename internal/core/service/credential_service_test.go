package service

import (
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/usermanager/user-management-api/internal/core/domain"
)

const testSecret = "unit-test-secret-at-least-32-chars-long"

func TestHashAndVerifyPassword(t *testing.T) {
	creds := NewCredentialService(testSecret, time.Hour, bcrypt.MinCost)

	hash, err := creds.HashPassword("password123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "password123" {
		t.Fatal("hash equals plaintext")
	}

	if !creds.VerifyPassword("password123", hash) {
		t.Fatal("correct password rejected")
	}
	if creds.VerifyPassword("wrong", hash) {
		t.Fatal("wrong password accepted")
	}
}

func TestIssueAndVerifyToken(t *testing.T) {
	creds := NewCredentialService(testSecret, time.Hour, bcrypt.MinCost)

	token, err := creds.IssueToken("user-123")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	userID, err := creds.VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if userID != "user-123" {
		t.Fatalf("expected user-123, got %q", userID)
	}
}

func TestVerifyTokenExpired(t *testing.T) {
	creds := NewCredentialService(testSecret, -time.Minute, bcrypt.MinCost)
	// Negative TTL falls back to the default, so build the service directly.
	creds.tokenTTL = -time.Minute

	token, err := creds.IssueToken("user-123")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	if _, err := creds.VerifyToken(token); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestVerifyTokenInvalid(t *testing.T) {
	creds := NewCredentialService(testSecret, time.Hour, bcrypt.MinCost)
	other := NewCredentialService("another-secret-also-32-characters-ok", time.Hour, bcrypt.MinCost)

	foreign, err := other.IssueToken("user-123")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	for name, token := range map[string]string{
		"garbage":      "not.a.token",
		"empty":        "",
		"wrong secret": foreign,
	} {
		if _, err := creds.VerifyToken(token); !errors.Is(err, domain.ErrTokenInvalid) {
			t.Fatalf("%s: expected ErrTokenInvalid, got %v", name, err)
		}
	}
}
