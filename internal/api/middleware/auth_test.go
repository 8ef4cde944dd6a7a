package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/usermanager/user-management-api/internal/core/domain"
	"github.com/usermanager/user-management-api/internal/core/ports"
)

type stubCreds struct {
	userID string
	err    error
}

func (s *stubCreds) HashPassword(string) (string, error) { return "", nil }
func (s *stubCreds) VerifyPassword(string, string) bool  { return true }
func (s *stubCreds) IssueToken(string) (string, error)   { return "", nil }
func (s *stubCreds) VerifyToken(string) (string, error)  { return s.userID, s.err }

type stubUsers struct {
	user *domain.User
	err  error
}

func (s *stubUsers) Create(context.Context, *domain.User) (*domain.User, error) { return nil, nil }
func (s *stubUsers) FindByID(context.Context, string) (*domain.User, error)     { return s.user, s.err }
func (s *stubUsers) FindByEmail(context.Context, string) (*domain.User, error)  { return nil, nil }
func (s *stubUsers) Update(context.Context, string, ports.UserPatch) (*domain.User, error) {
	return nil, nil
}
func (s *stubUsers) Delete(context.Context, string) (*domain.User, error) { return nil, nil }
func (s *stubUsers) List(context.Context, int, int) ([]*domain.User, int64, error) {
	return nil, 0, nil
}
func (s *stubUsers) Search(context.Context, string) ([]*domain.User, error)  { return nil, nil }
func (s *stubUsers) CountByRole(context.Context, domain.Role) (int64, error) { return 0, nil }
func (s *stubUsers) FindByRole(context.Context, domain.Role) ([]*domain.User, error) {
	return nil, nil
}
func (s *stubUsers) DeleteWhereRoleNot(context.Context, domain.Role) (int64, error) { return 0, nil }

func invokeAuth(t *testing.T, creds ports.CredentialService, users ports.UserRepository, header string) (error, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	err := Auth(creds, users)(next)(c)
	return err, c
}

func TestAuthMissingHeader(t *testing.T) {
	err, _ := invokeAuth(t, &stubCreds{}, &stubUsers{}, "")

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
	if httpErr.Message != "not authorized, no token provided" {
		t.Fatalf("unexpected message: %v", httpErr.Message)
	}
}

func TestAuthMalformedHeader(t *testing.T) {
	err, _ := invokeAuth(t, &stubCreds{}, &stubUsers{}, "Token abc")

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
	if httpErr.Message != "invalid authorization header" {
		t.Fatalf("unexpected message: %v", httpErr.Message)
	}
}

func TestAuthExpiredToken(t *testing.T) {
	err, _ := invokeAuth(t, &stubCreds{err: domain.ErrTokenExpired}, &stubUsers{}, "Bearer abc")

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
	if httpErr.Message != "token expired" {
		t.Fatalf("unexpected message: %v", httpErr.Message)
	}
}

func TestAuthInvalidToken(t *testing.T) {
	err, _ := invokeAuth(t, &stubCreds{err: domain.ErrTokenInvalid}, &stubUsers{}, "Bearer abc")

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
	if httpErr.Message != "not authorized, invalid token" {
		t.Fatalf("unexpected message: %v", httpErr.Message)
	}
}

func TestAuthUserDeleted(t *testing.T) {
	err, _ := invokeAuth(t, &stubCreds{userID: "u1"}, &stubUsers{err: domain.ErrUserNotFound}, "Bearer abc")

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuthInactiveUser(t *testing.T) {
	users := &stubUsers{user: &domain.User{ID: "u1", Status: domain.StatusInactive}}
	err, _ := invokeAuth(t, &stubCreds{userID: "u1"}, users, "Bearer abc")

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
	if httpErr.Message != "user account is inactive" {
		t.Fatalf("unexpected message: %v", httpErr.Message)
	}
}

func TestAuthSuccessSetsActor(t *testing.T) {
	user := &domain.User{ID: "u1", Status: domain.StatusActive, Role: domain.RoleUser}
	err, c := invokeAuth(t, &stubCreds{userID: "u1"}, &stubUsers{user: user}, "Bearer abc")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}

	actor, ok := c.Get(ActorKey).(*domain.User)
	if !ok || actor.ID != "u1" {
		t.Fatalf("actor not stored in context: %+v", c.Get(ActorKey))
	}
}
