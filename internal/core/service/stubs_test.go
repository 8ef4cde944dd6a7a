package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/usermanager/user-management-api/internal/core/domain"
	"github.com/usermanager/user-management-api/internal/core/ports"
)

// stubUserRepo is an in-memory ports.UserRepository. Records are kept in
// insertion order; reads that promise newest-first return them reversed.
type stubUserRepo struct {
	users  []*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{nextID: 1}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrDuplicateEmail
		}
	}
	clone := *user
	clone.ID = fmt.Sprintf("id-%d", r.nextID)
	r.nextID++
	r.users = append(r.users, &clone)
	return &clone, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Update(_ context.Context, id string, patch ports.UserPatch) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID != id {
			continue
		}
		if patch.FirstName != nil {
			u.FirstName = *patch.FirstName
		}
		if patch.LastName != nil {
			u.LastName = *patch.LastName
		}
		if patch.Email != nil {
			u.Email = *patch.Email
		}
		if patch.PasswordHash != nil {
			u.PasswordHash = *patch.PasswordHash
		}
		if patch.Role != nil {
			u.Role = *patch.Role
		}
		if patch.Status != nil {
			u.Status = *patch.Status
		}
		if patch.Phone != nil {
			u.Phone = *patch.Phone
		}
		if patch.Address != nil {
			u.Address = *patch.Address
		}
		if patch.City != nil {
			u.City = *patch.City
		}
		if patch.State != nil {
			u.State = *patch.State
		}
		if patch.ZipCode != nil {
			u.ZipCode = *patch.ZipCode
		}
		clone := *u
		return &clone, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Delete(_ context.Context, id string) (*domain.User, error) {
	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context, page, limit int) ([]*domain.User, int64, error) {
	newest := make([]*domain.User, len(r.users))
	for i, u := range r.users {
		newest[len(r.users)-1-i] = u
	}

	start := (page - 1) * limit
	if start >= len(newest) {
		return nil, int64(len(r.users)), nil
	}
	end := start + limit
	if end > len(newest) {
		end = len(newest)
	}
	return newest[start:end], int64(len(r.users)), nil
}

func (r *stubUserRepo) Search(_ context.Context, name string) ([]*domain.User, error) {
	needle := strings.ToLower(name)
	var matches []*domain.User
	for i := len(r.users) - 1; i >= 0; i-- {
		u := r.users[i]
		if strings.Contains(strings.ToLower(u.FirstName), needle) ||
			strings.Contains(strings.ToLower(u.LastName), needle) {
			matches = append(matches, u)
		}
	}
	return matches, nil
}

func (r *stubUserRepo) CountByRole(_ context.Context, role domain.Role) (int64, error) {
	var n int64
	for _, u := range r.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

func (r *stubUserRepo) FindByRole(_ context.Context, role domain.Role) ([]*domain.User, error) {
	var matches []*domain.User
	for _, u := range r.users {
		if u.Role == role {
			matches = append(matches, u)
		}
	}
	return matches, nil
}

func (r *stubUserRepo) DeleteWhereRoleNot(_ context.Context, role domain.Role) (int64, error) {
	var kept []*domain.User
	var removed int64
	for _, u := range r.users {
		if u.Role == role {
			kept = append(kept, u)
		} else {
			removed++
		}
	}
	r.users = kept
	return removed, nil
}

// stubAuditRepo records inserted entries for assertions.
type stubAuditRepo struct {
	entries []*domain.AuditEntry
	err     error
}

func (r *stubAuditRepo) Insert(_ context.Context, entry *domain.AuditEntry) error {
	if r.err != nil {
		return r.err
	}
	r.entries = append(r.entries, entry)
	return nil
}

func (r *stubAuditRepo) List(_ context.Context, limit int) ([]*domain.AuditEntry, error) {
	if limit > len(r.entries) {
		limit = len(r.entries)
	}
	newest := make([]*domain.AuditEntry, 0, limit)
	for i := len(r.entries) - 1; i >= 0 && len(newest) < limit; i-- {
		newest = append(newest, r.entries[i])
	}
	return newest, nil
}

func (r *stubAuditRepo) ListByEntity(_ context.Context, entityID string) ([]*domain.AuditEntry, error) {
	var matches []*domain.AuditEntry
	for i := len(r.entries) - 1; i >= 0; i-- {
		if r.entries[i].EntityID == entityID {
			matches = append(matches, r.entries[i])
		}
	}
	return matches, nil
}

func (r *stubAuditRepo) lastEntry() *domain.AuditEntry {
	if len(r.entries) == 0 {
		return nil
	}
	return r.entries[len(r.entries)-1]
}
