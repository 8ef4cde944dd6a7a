package ports

import (
	"context"

	"github.com/usermanager/user-management-api/internal/core/domain"
)

// UserPatch describes a partial update to a user record. Nil fields are
// left unchanged.
type UserPatch struct {
	FirstName    *string
	LastName     *string
	Email        *string
	PasswordHash *string
	Role         *domain.Role
	Status       *domain.Status
	Phone        *string
	Address      *string
	City         *string
	State        *string
	ZipCode      *string
}

// Fields returns the names of the fields the patch sets, in a fixed order.
// Used for audit details.
func (p UserPatch) Fields() []string {
	var fields []string
	if p.FirstName != nil {
		fields = append(fields, "firstName")
	}
	if p.LastName != nil {
		fields = append(fields, "lastName")
	}
	if p.Email != nil {
		fields = append(fields, "email")
	}
	if p.PasswordHash != nil {
		fields = append(fields, "password")
	}
	if p.Role != nil {
		fields = append(fields, "role")
	}
	if p.Status != nil {
		fields = append(fields, "status")
	}
	if p.Phone != nil {
		fields = append(fields, "phone")
	}
	if p.Address != nil {
		fields = append(fields, "address")
	}
	if p.City != nil {
		fields = append(fields, "city")
	}
	if p.State != nil {
		fields = append(fields, "state")
	}
	if p.ZipCode != nil {
		fields = append(fields, "zipCode")
	}
	return fields
}

// UserRepository defines persistence operations for user records.
// Implementations must enforce email uniqueness atomically at the storage
// layer and surface violations as domain.ErrDuplicateEmail; the service
// layer's pre-checks only exist for friendlier error ordering.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByID resolves a user by id. Malformed identifiers are reported
	// as domain.ErrUserNotFound, not as a separate error.
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Update applies the non-nil fields of patch and returns the updated
	// record.
	Update(ctx context.Context, id string, patch UserPatch) (*domain.User, error)
	// Delete removes the user and returns a snapshot of the deleted record.
	Delete(ctx context.Context, id string) (*domain.User, error)
	// List returns one page of users ordered newest-created first, plus the
	// total count.
	List(ctx context.Context, page, limit int) ([]*domain.User, int64, error)
	// Search matches name as a case-insensitive substring of first or last
	// name, ordered newest-created first.
	Search(ctx context.Context, name string) ([]*domain.User, error)
	CountByRole(ctx context.Context, role domain.Role) (int64, error)
	FindByRole(ctx context.Context, role domain.Role) ([]*domain.User, error)
	// DeleteWhereRoleNot removes every user whose role differs from role and
	// returns the number of records removed.
	DeleteWhereRoleNot(ctx context.Context, role domain.Role) (int64, error)
}
