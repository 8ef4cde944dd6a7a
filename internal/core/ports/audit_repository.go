package ports

import (
	"context"

	"github.com/usermanager/user-management-api/internal/core/domain"
)

// AuditRepository persists the append-only audit trail. There is
// deliberately no update or delete operation.
type AuditRepository interface {
	Insert(ctx context.Context, entry *domain.AuditEntry) error
	// List returns the most recent entries, newest first, capped at limit.
	List(ctx context.Context, limit int) ([]*domain.AuditEntry, error)
	// ListByEntity returns all entries for one entity id, newest first.
	ListByEntity(ctx context.Context, entityID string) ([]*domain.AuditEntry, error)
}
