package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/usermanager/user-management-api/internal/core/domain"
)

func TestAuditList(t *testing.T) {
	repo := &stubAuditRepo{}
	for i := 0; i < 150; i++ {
		repo.entries = append(repo.entries, &domain.AuditEntry{
			ID:     fmt.Sprintf("e%d", i),
			Action: domain.AuditCreate,
		})
	}
	svc := NewAuditService(repo, zerolog.Nop())
	actor := &domain.User{ID: "u1", Role: domain.RoleUser}

	entries, err := svc.List(context.Background(), actor, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != defaultAuditLimit {
		t.Fatalf("expected default limit %d, got %d", defaultAuditLimit, len(entries))
	}

	entries, err = svc.List(context.Background(), actor, 5)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(entries))
	}

	if _, err := svc.List(context.Background(), nil, 5); !errors.Is(err, domain.ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized, got %v", err)
	}
}

func TestAuditListByEntity(t *testing.T) {
	repo := &stubAuditRepo{entries: []*domain.AuditEntry{
		{ID: "e1", EntityID: "u1", Action: domain.AuditCreate},
		{ID: "e2", EntityID: "u2", Action: domain.AuditUpdate},
		{ID: "e3", EntityID: "u1", Action: domain.AuditDelete},
	}}
	svc := NewAuditService(repo, zerolog.Nop())
	actor := &domain.User{ID: "u1", Role: domain.RoleUser}

	entries, err := svc.ListByEntity(context.Background(), actor, "u1")
	if err != nil {
		t.Fatalf("ListByEntity: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	for _, e := range entries {
		if e.EntityID != "u1" {
			t.Fatalf("entry for wrong entity: %+v", e)
		}
	}
}
