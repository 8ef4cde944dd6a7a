package ports

import (
	"context"

	"github.com/usermanager/user-management-api/internal/core/domain"
)

// AuditService exposes read access to the audit trail.
type AuditService interface {
	// List returns the most recent entries; limit <= 0 falls back to the
	// service default.
	List(ctx context.Context, actor *domain.User, limit int) ([]*domain.AuditEntry, error)
	ListByEntity(ctx context.Context, actor *domain.User, entityID string) ([]*domain.AuditEntry, error)
}
