package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/usermanager/user-management-api/internal/core/domain"
	"github.com/usermanager/user-management-api/internal/core/ports"
)

// auditRecorder appends audit entries after a primary mutation has
// committed. The append is best-effort: the primary write already stands,
// so a failed insert is logged at error level and the request still
// succeeds. There is no cross-collection transaction.
type auditRecorder struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

func (r *auditRecorder) record(ctx context.Context, action domain.AuditAction, entityID string, actor *domain.User, details map[string]any) {
	entry := &domain.AuditEntry{
		Action:     action,
		EntityType: domain.EntityTypeUser,
		EntityID:   entityID,
		Details:    details,
		Timestamp:  time.Now().UTC(),
	}
	if actor != nil {
		entry.UserEmail = actor.Email
		entry.UserName = actor.FullName()
	}

	if err := r.repo.Insert(ctx, entry); err != nil {
		r.log.Error().
			Err(err).
			Str("action", string(action)).
			Str("entity_id", entityID).
			Msg("failed to insert audit entry")
	}
}
