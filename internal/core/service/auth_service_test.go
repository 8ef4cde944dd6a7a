package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/usermanager/user-management-api/internal/core/domain"
	"github.com/usermanager/user-management-api/internal/core/ports"
)

func newTestAuthService() (*AuthService, *stubUserRepo, *stubAuditRepo) {
	users := newStubUserRepo()
	audit := &stubAuditRepo{}
	creds := NewCredentialService(testSecret, time.Hour, bcrypt.MinCost)
	return NewAuthService(users, audit, creds, zerolog.Nop()), users, audit
}

func registerInput(email string) ports.RegisterInput {
	return ports.RegisterInput{
		FirstName: "John",
		LastName:  "Smith",
		Email:     email,
		Password:  "password123",
	}
}

func TestRegister(t *testing.T) {
	svc, users, audit := newTestAuthService()
	ctx := context.Background()

	user, token, err := svc.Register(ctx, registerInput("John@Example.com"))
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if token == "" {
		t.Fatal("expected a token")
	}
	if user.Email != "john@example.com" {
		t.Fatalf("email not normalized: %q", user.Email)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected role user, got %q", user.Role)
	}
	if user.Status != domain.StatusActive {
		t.Fatalf("expected status active, got %q", user.Status)
	}

	stored, err := users.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if stored.PasswordHash == "password123" {
		t.Fatal("plaintext password stored")
	}

	// The hash must never leak through JSON serialization.
	body, err := json.Marshal(user)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if strings.Contains(string(body), "password") {
		t.Fatalf("serialized user leaks password material: %s", body)
	}

	entry := audit.lastEntry()
	if entry == nil {
		t.Fatal("expected an audit entry")
	}
	if entry.Action != domain.AuditCreate {
		t.Fatalf("expected CREATE audit entry, got %q", entry.Action)
	}
	if entry.EntityID != user.ID {
		t.Fatalf("audit entry targets %q, want %q", entry.EntityID, user.ID)
	}
}

func TestRegisterDuplicateEmailCaseInsensitive(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, registerInput("john@example.com")); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, _, err := svc.Register(ctx, registerInput("JOHN@EXAMPLE.COM"))
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	svc, users, _ := newTestAuthService()
	ctx := context.Background()

	registered, _, err := svc.Register(ctx, registerInput("john@example.com"))
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	user, token, err := svc.Login(ctx, "John@Example.com", "password123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Fatal("expected a token")
	}
	if user.ID != registered.ID {
		t.Fatalf("logged in as %q, want %q", user.ID, registered.ID)
	}

	// Unknown email and wrong password must be indistinguishable.
	if _, _, err := svc.Login(ctx, "nobody@example.com", "password123"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login(ctx, "john@example.com", "wrong-password"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}

	inactive := domain.StatusInactive
	if _, err := users.Update(ctx, registered.ID, ports.UserPatch{Status: &inactive}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if _, _, err := svc.Login(ctx, "john@example.com", "password123"); !errors.Is(err, domain.ErrAccountInactive) {
		t.Fatalf("inactive account: expected ErrAccountInactive, got %v", err)
	}
}

func TestUpdateProfile(t *testing.T) {
	svc, _, audit := newTestAuthService()
	ctx := context.Background()

	user, _, err := svc.Register(ctx, registerInput("john@example.com"))
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	phone := "555-0100"
	city := "Springfield"
	updated, err := svc.UpdateProfile(ctx, user, ports.ProfileInput{Phone: &phone, City: &city})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if updated.Phone != phone || updated.City != city {
		t.Fatalf("profile not applied: %+v", updated)
	}
	if updated.Email != "john@example.com" {
		t.Fatalf("email changed through profile path: %q", updated.Email)
	}

	entry := audit.lastEntry()
	if entry == nil || entry.Action != domain.AuditUpdate {
		t.Fatalf("expected UPDATE audit entry, got %+v", entry)
	}
}

func TestChangePassword(t *testing.T) {
	svc, users, audit := newTestAuthService()
	ctx := context.Background()

	user, _, err := svc.Register(ctx, registerInput("john@example.com"))
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	before, _ := users.FindByID(ctx, user.ID)

	if _, err := svc.ChangePassword(ctx, user, "password123", "short"); !errors.Is(err, domain.ErrPasswordTooShort) {
		t.Fatalf("expected ErrPasswordTooShort, got %v", err)
	}
	unchanged, _ := users.FindByID(ctx, user.ID)
	if unchanged.PasswordHash != before.PasswordHash {
		t.Fatal("hash changed after rejected password")
	}

	if _, err := svc.ChangePassword(ctx, user, "wrong-current", "newpassword"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	token, err := svc.ChangePassword(ctx, user, "password123", "newpassword")
	if err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}
	if token == "" {
		t.Fatal("expected a fresh token")
	}

	if _, _, err := svc.Login(ctx, "john@example.com", "newpassword"); err != nil {
		t.Fatalf("login with new password: %v", err)
	}
	if _, _, err := svc.Login(ctx, "john@example.com", "password123"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("old password still accepted: %v", err)
	}

	entry := audit.lastEntry()
	if entry == nil || entry.Action != domain.AuditUpdate {
		t.Fatalf("expected UPDATE audit entry, got %+v", entry)
	}
	if changed, ok := entry.Details["passwordChanged"].(bool); !ok || !changed {
		t.Fatalf("expected passwordChanged detail, got %+v", entry.Details)
	}
}

func TestRegisterAuditFailureDoesNotFailRequest(t *testing.T) {
	users := newStubUserRepo()
	audit := &stubAuditRepo{err: errors.New("audit store down")}
	creds := NewCredentialService(testSecret, time.Hour, bcrypt.MinCost)
	svc := NewAuthService(users, audit, creds, zerolog.Nop())

	if _, _, err := svc.Register(context.Background(), registerInput("john@example.com")); err != nil {
		t.Fatalf("Register should succeed despite audit failure: %v", err)
	}
}
