package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/usermanager/user-management-api/internal/api/middleware"
	"github.com/usermanager/user-management-api/internal/core/domain"
)

// ctxActor extracts the authenticated user placed by the auth middleware.
func ctxActor(c echo.Context) (*domain.User, error) {
	actor, ok := c.Get(middleware.ActorKey).(*domain.User)
	if !ok || actor == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return actor, nil
}
