package ports

import (
	"context"

	"github.com/usermanager/user-management-api/internal/core/domain"
)

// RegisterInput carries the self-registration payload. Role is always
// forced to "user" by the service.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Phone     string
	Address   string
	City      string
	State     string
	ZipCode   string
}

// ProfileInput carries a self-service profile update. Only these fields are
// mutable through the profile path; nil fields are left unchanged.
type ProfileInput struct {
	FirstName *string
	LastName  *string
	Phone     *string
	Address   *string
	City      *string
	State     *string
	ZipCode   *string
}

// AuthService implements registration, login and self-service account
// operations.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	UpdateProfile(ctx context.Context, actor *domain.User, input ProfileInput) (*domain.User, error)
	// ChangePassword verifies the current password, stores a fresh hash and
	// returns a newly issued token.
	ChangePassword(ctx context.Context, actor *domain.User, currentPassword, newPassword string) (string, error)
}
