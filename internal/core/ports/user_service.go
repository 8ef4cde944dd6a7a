package ports

import (
	"context"

	"github.com/usermanager/user-management-api/internal/core/domain"
)

// CreateUserInput carries an admin-initiated user creation. Unlike
// self-registration, role and status are selectable.
type CreateUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      domain.Role
	Status    domain.Status
	Phone     string
	Address   string
	City      string
	State     string
	ZipCode   string
}

// Pagination is the metadata returned alongside a user page.
type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalUsers  int64 `json:"totalUsers"`
	Limit       int   `json:"limit"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// ListUsersResult is returned by UserService.List.
type ListUsersResult struct {
	Users      []*domain.User
	Pagination Pagination
}

// SeedResult is returned by UserService.Seed.
type SeedResult struct {
	Inserted        int
	AdminsPreserved int
	Users           []*domain.User
}

// UserService implements the admin-facing user management operations plus
// the shared read paths. Every method takes the acting user and consults
// the authorization policy before touching storage.
type UserService interface {
	List(ctx context.Context, actor *domain.User, page, limit int) (*ListUsersResult, error)
	Get(ctx context.Context, actor *domain.User, id string) (*domain.User, error)
	Create(ctx context.Context, actor *domain.User, input CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, actor *domain.User, id string, patch UserPatch) (*domain.User, error)
	Delete(ctx context.Context, actor *domain.User, id string) (*domain.User, error)
	Search(ctx context.Context, actor *domain.User, name string) ([]*domain.User, error)
	// Seed replaces all non-admin users with the built-in dummy dataset,
	// preserving existing admins by email.
	Seed(ctx context.Context, actor *domain.User) (*SeedResult, error)
}
