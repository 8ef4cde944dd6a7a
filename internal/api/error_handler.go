package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/usermanager/user-management-api/internal/core/domain"
)

type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewHTTPErrorHandler maps domain errors to HTTP statuses so handlers can
// return service errors unmodified. Unknown errors are logged and hidden
// behind a generic 500.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, message := resolveError(err, log)

		if c.Request().Method == http.MethodHead {
			if err := c.NoContent(status); err != nil {
				log.Error().Err(err).Msg("failed to write error response")
			}
			return
		}

		if err := c.JSON(status, errorResponse{Success: false, Message: message}); err != nil {
			log.Error().Err(err).Msg("failed to write error response")
		}
	}
}

func resolveError(err error, log zerolog.Logger) (int, string) {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if msg, ok := httpErr.Message.(string); ok {
			return httpErr.Code, msg
		}
		return httpErr.Code, http.StatusText(httpErr.Code)
	}

	switch {
	case errors.Is(err, domain.ErrDuplicateEmail),
		errors.Is(err, domain.ErrNameRequired),
		errors.Is(err, domain.ErrPasswordTooShort):
		return http.StatusBadRequest, err.Error()

	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"

	case errors.Is(err, domain.ErrAccountInactive),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrTokenInvalid),
		errors.Is(err, domain.ErrTokenMissing):
		return http.StatusUnauthorized, err.Error()

	case errors.Is(err, domain.ErrSelfDeletion),
		errors.Is(err, domain.ErrLastAdmin),
		errors.Is(err, domain.ErrNotAuthorized):
		return http.StatusForbidden, err.Error()

	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	}

	log.Error().Err(err).Msg("unhandled error")
	return http.StatusInternalServerError, "internal server error"
}
