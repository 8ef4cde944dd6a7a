package domain

import (
	"errors"
	"fmt"
)

var ErrDuplicateEmail = errors.New("email already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrAccountInactive = errors.New("user account is inactive")
var ErrUserNotFound = errors.New("user not found")
var ErrTokenExpired = errors.New("token expired")
var ErrTokenInvalid = errors.New("invalid token")
var ErrTokenMissing = errors.New("no token provided")
var ErrPasswordTooShort = errors.New("new password must be at least 6 characters")
var ErrSelfDeletion = errors.New("cannot delete own account")
var ErrLastAdmin = errors.New("cannot delete the last administrator")
var ErrNotAuthorized = errors.New("not authorized")
var ErrNameRequired = errors.New("name query parameter is required")

// NotAuthorizedError is a role violation that names the offending role in
// its message. It unwraps to ErrNotAuthorized for errors.Is matching.
type NotAuthorizedError struct {
	Role Role
}

func (e *NotAuthorizedError) Error() string {
	return fmt.Sprintf("user role '%s' is not authorized to access this route", e.Role)
}

func (e *NotAuthorizedError) Unwrap() error {
	return ErrNotAuthorized
}
