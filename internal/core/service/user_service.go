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

const (
	defaultPage  = 1
	defaultLimit = 10
)

// UserService implements admin CRUD on user records plus the shared read
// paths. Mutations consult the authorization policy first and append an
// audit entry after the primary write commits.
type UserService struct {
	users ports.UserRepository
	creds ports.CredentialService
	audit auditRecorder
	log   zerolog.Logger
}

func NewUserService(users ports.UserRepository, audit ports.AuditRepository, creds ports.CredentialService, log zerolog.Logger) *UserService {
	return &UserService{
		users: users,
		creds: creds,
		audit: auditRecorder{repo: audit, log: log},
		log:   log,
	}
}

// List returns one page of users, newest-created first, with pagination
// metadata. Admin only.
func (s *UserService) List(ctx context.Context, actor *domain.User, page, limit int) (*ports.ListUsersResult, error) {
	if d := domain.Decide(actor, domain.ActionListUsers, nil, 0); !d.Allowed {
		return nil, d.Err()
	}

	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}

	users, total, err := s.users.List(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &ports.ListUsersResult{
		Users: users,
		Pagination: ports.Pagination{
			CurrentPage: page,
			TotalPages:  totalPages,
			TotalUsers:  total,
			Limit:       limit,
			HasNextPage: page < totalPages,
			HasPrevPage: page > 1,
		},
	}, nil
}

// Get returns a single user. Any authenticated actor may view any record
// in the current scope.
func (s *UserService) Get(ctx context.Context, actor *domain.User, id string) (*domain.User, error) {
	if d := domain.Decide(actor, domain.ActionViewUser, nil, 0); !d.Allowed {
		return nil, d.Err()
	}
	return s.users.FindByID(ctx, id)
}

// Create is the admin-initiated creation path: role and status are
// selectable, unlike self-registration.
func (s *UserService) Create(ctx context.Context, actor *domain.User, in ports.CreateUserInput) (*domain.User, error) {
	if d := domain.Decide(actor, domain.ActionCreateUser, nil, 0); !d.Allowed {
		return nil, d.Err()
	}

	email := normalizeEmail(in.Email)
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrDuplicateEmail
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	role := in.Role
	if role == "" {
		role = domain.RoleUser
	}
	status := in.Status
	if status == "" {
		status = domain.StatusActive
	}

	hash, err := s.creds.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.users.Create(ctx, &domain.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Status:       status,
		Phone:        in.Phone,
		Address:      in.Address,
		City:         in.City,
		State:        in.State,
		ZipCode:      in.ZipCode,
		JoinDate:     now,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	s.audit.record(ctx, domain.AuditCreate, created.ID, actor, map[string]any{
		"email":     created.Email,
		"firstName": created.FirstName,
		"lastName":  created.LastName,
		"status":    created.Status,
	})

	s.log.Info().Str("user_id", created.ID).Str("by", actor.Email).Msg("user created")
	return created, nil
}

// Update applies an admin edit to any field except the password, which has
// a dedicated change-password operation.
func (s *UserService) Update(ctx context.Context, actor *domain.User, id string, patch ports.UserPatch) (*domain.User, error) {
	if d := domain.Decide(actor, domain.ActionUpdateUser, nil, 0); !d.Allowed {
		return nil, d.Err()
	}

	patch.PasswordHash = nil

	if patch.Email != nil {
		email := normalizeEmail(*patch.Email)
		patch.Email = &email
		if other, err := s.users.FindByEmail(ctx, email); err == nil && other.ID != id {
			return nil, domain.ErrDuplicateEmail
		} else if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
	}

	updated, err := s.users.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.audit.record(ctx, domain.AuditUpdate, updated.ID, actor, map[string]any{
		"updatedFields": patch.Fields(),
		"currentData": map[string]any{
			"email":     updated.Email,
			"firstName": updated.FirstName,
			"lastName":  updated.LastName,
			"status":    updated.Status,
		},
	})

	return updated, nil
}

// Delete removes a user, subject to the self-deletion and last-admin
// guards. The target is resolved first so a missing record reports
// not-found rather than a policy denial.
func (s *UserService) Delete(ctx context.Context, actor *domain.User, id string) (*domain.User, error) {
	target, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var adminCount int64
	if target.IsAdmin() {
		adminCount, err = s.users.CountByRole(ctx, domain.RoleAdmin)
		if err != nil {
			return nil, err
		}
	}

	if d := domain.Decide(actor, domain.ActionDeleteUser, target, adminCount); !d.Allowed {
		return nil, d.Err()
	}

	deleted, err := s.users.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.audit.record(ctx, domain.AuditDelete, deleted.ID, actor, map[string]any{
		"deletedUser": map[string]any{
			"email":     deleted.Email,
			"firstName": deleted.FirstName,
			"lastName":  deleted.LastName,
			"status":    deleted.Status,
			"role":      deleted.Role,
		},
	})

	s.log.Info().Str("user_id", deleted.ID).Str("by", actor.Email).Msg("user deleted")
	return deleted, nil
}

// Search matches name as a case-insensitive substring of first or last
// name. Read-only; no audit entry.
func (s *UserService) Search(ctx context.Context, actor *domain.User, name string) ([]*domain.User, error) {
	if d := domain.Decide(actor, domain.ActionViewUser, nil, 0); !d.Allowed {
		return nil, d.Err()
	}
	if strings.TrimSpace(name) == "" {
		return nil, domain.ErrNameRequired
	}
	return s.users.Search(ctx, name)
}

// Seed replaces all non-admin users with the built-in dummy dataset.
// Existing admins are preserved by email and dummy rows colliding with a
// preserved admin are skipped. The bulk operation is recorded as a single
// summary audit entry rather than one per row.
func (s *UserService) Seed(ctx context.Context, actor *domain.User) (*ports.SeedResult, error) {
	if d := domain.Decide(actor, domain.ActionSeedUsers, nil, 0); !d.Allowed {
		return nil, d.Err()
	}

	admins, err := s.users.FindByRole(ctx, domain.RoleAdmin)
	if err != nil {
		return nil, err
	}
	preserved := make(map[string]struct{}, len(admins))
	for _, a := range admins {
		preserved[a.Email] = struct{}{}
	}

	removed, err := s.users.DeleteWhereRoleNot(ctx, domain.RoleAdmin)
	if err != nil {
		return nil, err
	}

	inserted := make([]*domain.User, 0, len(dummyUsers))
	for _, du := range dummyUsers {
		email := normalizeEmail(du.Email)
		if _, ok := preserved[email]; ok {
			continue
		}

		hash, err := s.creds.HashPassword(du.Password)
		if err != nil {
			return nil, err
		}

		now := time.Now().UTC()
		created, err := s.users.Create(ctx, &domain.User{
			FirstName:    du.FirstName,
			LastName:     du.LastName,
			Email:        email,
			PasswordHash: hash,
			Role:         domain.RoleUser,
			Status:       domain.StatusActive,
			Phone:        du.Phone,
			Address:      du.Address,
			City:         du.City,
			State:        du.State,
			ZipCode:      du.ZipCode,
			JoinDate:     now,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			if errors.Is(err, domain.ErrDuplicateEmail) {
				continue
			}
			return nil, err
		}
		inserted = append(inserted, created)
	}

	s.audit.record(ctx, domain.AuditCreate, "", actor, map[string]any{
		"seeded":          len(inserted),
		"adminsPreserved": len(admins),
		"removed":         removed,
	})

	s.log.Info().
		Int("inserted", len(inserted)).
		Int("admins_preserved", len(admins)).
		Int64("removed", removed).
		Str("by", actor.Email).
		Msg("database seeded")

	return &ports.SeedResult{
		Inserted:        len(inserted),
		AdminsPreserved: len(admins),
		Users:           inserted,
	}, nil
}
