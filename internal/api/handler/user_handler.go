package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/usermanager/user-management-api/internal/api/metrics"
	"github.com/usermanager/user-management-api/internal/core/ports"
)

// UserHandler serves the user management routes.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// List godoc
// @Summary List users with pagination
// @Tags users
// @Produce json
// @Security BearerAuth
// @Router /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.service.List(c.Request().Context(), actor, page, limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userListResponse{
		Success:    true,
		Count:      len(result.Users),
		Data:       result.Users,
		Pagination: &result.Pagination,
	})
}

// Get godoc
// @Summary Get a user by id
// @Tags users
// @Produce json
// @Security BearerAuth
// @Router /api/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	user, err := h.service.Get(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userDataResponse{Success: true, Data: user})
}

// Create godoc
// @Summary Create a user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Router /api/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Create(c.Request().Context(), actor, toCreateUserInput(req))
	if err != nil {
		return err
	}

	metrics.UserMutationsTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, userDataResponse{
		Success: true,
		Message: "User created successfully",
		Data:    user,
	})
}

// Update godoc
// @Summary Update a user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Router /api/users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Update(c.Request().Context(), actor, c.Param("id"), toUserPatch(req))
	if err != nil {
		return err
	}

	metrics.UserMutationsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, userDataResponse{
		Success: true,
		Message: "User updated successfully",
		Data:    user,
	})
}

// Delete godoc
// @Summary Delete a user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Router /api/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if _, err := h.service.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}

	metrics.UserMutationsTotal.WithLabelValues("delete").Inc()
	return c.JSON(http.StatusOK, deleteResponse{
		Success: true,
		Message: "User deleted successfully",
	})
}

// Search godoc
// @Summary Search users by name
// @Tags users
// @Produce json
// @Security BearerAuth
// @Router /api/users/search [get]
func (h *UserHandler) Search(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	users, err := h.service.Search(c.Request().Context(), actor, c.QueryParam("name"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userListResponse{
		Success: true,
		Count:   len(users),
		Data:    users,
	})
}

// Seed godoc
// @Summary Replace non-admin users with the sample dataset
// @Tags users
// @Produce json
// @Security BearerAuth
// @Router /api/users/seed [post]
func (h *UserHandler) Seed(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	result, err := h.service.Seed(c.Request().Context(), actor)
	if err != nil {
		return err
	}

	metrics.UserMutationsTotal.WithLabelValues("seed").Inc()
	return c.JSON(http.StatusCreated, seedResponse{
		Success:         true,
		Count:           result.Inserted,
		AdminsPreserved: result.AdminsPreserved,
		Message: fmt.Sprintf("Database seeded with %d users (%d admin accounts preserved)",
			result.Inserted, result.AdminsPreserved),
		Data: result.Users,
	})
}
