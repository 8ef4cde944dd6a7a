package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/usermanager/user-management-api/internal/core/domain"
	"github.com/usermanager/user-management-api/internal/core/ports"
)

const minPasswordLength = 6

// AuthService implements registration, login and self-service account
// operations.
type AuthService struct {
	users ports.UserRepository
	creds ports.CredentialService
	audit auditRecorder
	log   zerolog.Logger
}

func NewAuthService(users ports.UserRepository, audit ports.AuditRepository, creds ports.CredentialService, log zerolog.Logger) *AuthService {
	return &AuthService{
		users: users,
		creds: creds,
		audit: auditRecorder{repo: audit, log: log},
		log:   log,
	}
}

// normalizeEmail lowercases and trims an email so uniqueness is
// case-insensitive everywhere.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new account with role forced to "user" and issues a
// session token. The email pre-check gives a friendly error; the storage
// layer's unique index is the authority under concurrency.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, string, error) {
	email := normalizeEmail(in.Email)
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, "", domain.ErrDuplicateEmail
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, "", err
	}

	hash, err := s.creds.HashPassword(in.Password)
	if err != nil {
		return nil, "", err
	}

	now := time.Now().UTC()
	user := &domain.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		Status:       domain.StatusActive,
		Phone:        in.Phone,
		Address:      in.Address,
		City:         in.City,
		State:        in.State,
		ZipCode:      in.ZipCode,
		JoinDate:     now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, "", err
	}

	s.audit.record(ctx, domain.AuditCreate, created.ID, created, map[string]any{
		"firstName": created.FirstName,
		"lastName":  created.LastName,
		"email":     created.Email,
	})

	token, err := s.creds.IssueToken(created.ID)
	if err != nil {
		return nil, "", err
	}

	s.log.Info().Str("user_id", created.ID).Str("email", created.Email).Msg("user registered")
	return created, token, nil
}

// Login authenticates by email and password. Unknown email and wrong
// password produce the same error to avoid account enumeration.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !s.creds.VerifyPassword(password, user.PasswordHash) {
		return nil, "", domain.ErrInvalidCredentials
	}

	if user.Status == domain.StatusInactive {
		return nil, "", domain.ErrAccountInactive
	}

	token, err := s.creds.IssueToken(user.ID)
	if err != nil {
		return nil, "", err
	}

	s.log.Info().Str("user_id", user.ID).Msg("user logged in")
	return user, token, nil
}

// UpdateProfile applies a self-service update. Email, password, role and
// status are never mutable through this path.
func (s *AuthService) UpdateProfile(ctx context.Context, actor *domain.User, in ports.ProfileInput) (*domain.User, error) {
	if d := domain.Decide(actor, domain.ActionUpdateOwnProfile, actor, 0); !d.Allowed {
		return nil, d.Err()
	}

	patch := ports.UserPatch{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Phone:     in.Phone,
		Address:   in.Address,
		City:      in.City,
		State:     in.State,
		ZipCode:   in.ZipCode,
	}

	updated, err := s.users.Update(ctx, actor.ID, patch)
	if err != nil {
		return nil, err
	}

	s.audit.record(ctx, domain.AuditUpdate, updated.ID, updated, map[string]any{
		"updatedFields": patch.Fields(),
	})

	return updated, nil
}

// ChangePassword verifies the current password, stores a fresh hash and
// issues a new token. The audit detail records only that the password
// changed, never its value.
func (s *AuthService) ChangePassword(ctx context.Context, actor *domain.User, currentPassword, newPassword string) (string, error) {
	if d := domain.Decide(actor, domain.ActionChangeOwnPassword, actor, 0); !d.Allowed {
		return "", d.Err()
	}

	if len(newPassword) < minPasswordLength {
		return "", domain.ErrPasswordTooShort
	}

	user, err := s.users.FindByID(ctx, actor.ID)
	if err != nil {
		return "", err
	}

	if !s.creds.VerifyPassword(currentPassword, user.PasswordHash) {
		return "", domain.ErrInvalidCredentials
	}

	hash, err := s.creds.HashPassword(newPassword)
	if err != nil {
		return "", err
	}

	if _, err := s.users.Update(ctx, actor.ID, ports.UserPatch{PasswordHash: &hash}); err != nil {
		return "", err
	}

	s.audit.record(ctx, domain.AuditUpdate, user.ID, user, map[string]any{
		"passwordChanged": true,
	})

	s.log.Info().Str("user_id", user.ID).Msg("password changed")
	return s.creds.IssueToken(user.ID)
}
