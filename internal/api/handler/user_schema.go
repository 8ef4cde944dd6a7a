package handler

import (
	"github.com/usermanager/user-management-api/internal/core/domain"
	"github.com/usermanager/user-management-api/internal/core/ports"
)

type registerRequest struct {
	FirstName string `json:"firstName" validate:"required,max=50"`
	LastName  string `json:"lastName" validate:"required,max=50"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type updateProfileRequest struct {
	FirstName *string `json:"firstName" validate:"omitempty,max=50"`
	LastName  *string `json:"lastName" validate:"omitempty,max=50"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
	City      *string `json:"city"`
	State     *string `json:"state"`
	ZipCode   *string `json:"zipCode"`
}

// changePasswordRequest leaves the minimum-length rule to the service so
// the error message and status stay consistent across entry points.
type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required"`
}

type createUserRequest struct {
	FirstName string `json:"firstName" validate:"required,max=50"`
	LastName  string `json:"lastName" validate:"required,max=50"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	Role      string `json:"role" validate:"omitempty,oneof=user admin"`
	Status    string `json:"status" validate:"omitempty,oneof=active inactive"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
}

type updateUserRequest struct {
	FirstName *string `json:"firstName" validate:"omitempty,max=50"`
	LastName  *string `json:"lastName" validate:"omitempty,max=50"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Role      *string `json:"role" validate:"omitempty,oneof=user admin"`
	Status    *string `json:"status" validate:"omitempty,oneof=active inactive"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
	City      *string `json:"city"`
	State     *string `json:"state"`
	ZipCode   *string `json:"zipCode"`
}

type authSuccessResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Data    *domain.User `json:"data"`
	Token   string       `json:"token,omitempty"`
}

type userDataResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Data    *domain.User `json:"data"`
}

type userListResponse struct {
	Success    bool              `json:"success"`
	Count      int               `json:"count"`
	Data       []*domain.User    `json:"data"`
	Pagination *ports.Pagination `json:"pagination,omitempty"`
}

type deleteResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    struct{} `json:"data"`
}

type seedResponse struct {
	Success         bool           `json:"success"`
	Count           int            `json:"count"`
	AdminsPreserved int            `json:"adminsPreserved"`
	Message         string         `json:"message"`
	Data            []*domain.User `json:"data"`
}

type auditListResponse struct {
	Success bool                 `json:"success"`
	Count   int                  `json:"count"`
	Data    []*domain.AuditEntry `json:"data"`
}
