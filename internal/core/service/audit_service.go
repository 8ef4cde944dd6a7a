package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/usermanager/user-management-api/internal/core/domain"
	"github.com/usermanager/user-management-api/internal/core/ports"
)

const defaultAuditLimit = 100

// AuditService exposes read access to the audit trail. Any authenticated
// actor may read it in the current scope.
type AuditService struct {
	audit ports.AuditRepository
	log   zerolog.Logger
}

func NewAuditService(audit ports.AuditRepository, log zerolog.Logger) *AuditService {
	return &AuditService{audit: audit, log: log}
}

func (s *AuditService) List(ctx context.Context, actor *domain.User, limit int) ([]*domain.AuditEntry, error) {
	if d := domain.Decide(actor, domain.ActionViewAudit, nil, 0); !d.Allowed {
		return nil, d.Err()
	}
	if limit <= 0 {
		limit = defaultAuditLimit
	}
	return s.audit.List(ctx, limit)
}

func (s *AuditService) ListByEntity(ctx context.Context, actor *domain.User, entityID string) ([]*domain.AuditEntry, error) {
	if d := domain.Decide(actor, domain.ActionViewAudit, nil, 0); !d.Allowed {
		return nil, d.Err()
	}
	return s.audit.ListByEntity(ctx, entityID)
}
