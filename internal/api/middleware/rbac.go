package middleware

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/usermanager/user-management-api/internal/core/domain"
)

// RBAC rejects requests whose acting user's role is not in allowedRoles.
// It must run after Auth.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := c.Get(ActorKey).(*domain.User)
			if !ok || actor == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authorized, no token provided")
			}

			for _, role := range allowedRoles {
				if actor.Role == role {
					return next(c)
				}
			}

			return echo.NewHTTPError(http.StatusForbidden,
				fmt.Sprintf("user role '%s' is not authorized to access this route", actor.Role))
		}
	}
}
