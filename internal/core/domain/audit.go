package domain

import "time"

// AuditAction is the closed set of mutation kinds recorded in the audit trail.
type AuditAction string

const (
	AuditCreate AuditAction = "CREATE"
	AuditUpdate AuditAction = "UPDATE"
	AuditDelete AuditAction = "DELETE"
)

// EntityTypeUser is the only audited entity type in the current scope.
const EntityTypeUser = "USER"

// AuditEntry is an immutable record of a successful mutation: who did what
// to which record. Entries are only ever inserted; the application never
// updates or deletes them.
type AuditEntry struct {
	ID         string         `json:"id"`
	Action     AuditAction    `json:"action"`
	EntityType string         `json:"entityType"`
	EntityID   string         `json:"entityId,omitempty"`
	Details    map[string]any `json:"details,omitempty"`
	UserEmail  string         `json:"userEmail,omitempty"`
	UserName   string         `json:"userName,omitempty"`
	Timestamp  time.Time      `json:"timestamp"`
	CreatedAt  time.Time      `json:"createdAt"`
}
