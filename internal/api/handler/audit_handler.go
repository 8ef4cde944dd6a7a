package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/usermanager/user-management-api/internal/core/ports"
)

// AuditHandler serves the read-only audit trail routes.
type AuditHandler struct {
	service ports.AuditService
}

func NewAuditHandler(service ports.AuditService) *AuditHandler {
	return &AuditHandler{service: service}
}

// List godoc
// @Summary List the most recent audit entries
// @Tags audit
// @Produce json
// @Security BearerAuth
// @Router /api/audit [get]
func (h *AuditHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	entries, err := h.service.List(c.Request().Context(), actor, limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, auditListResponse{
		Success: true,
		Count:   len(entries),
		Data:    entries,
	})
}

// ListByEntity godoc
// @Summary List audit entries for one entity
// @Tags audit
// @Produce json
// @Security BearerAuth
// @Router /api/audit/entity/{id} [get]
func (h *AuditHandler) ListByEntity(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	entries, err := h.service.ListByEntity(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, auditListResponse{
		Success: true,
		Count:   len(entries),
		Data:    entries,
	})
}
