package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditRecord logs a mutation event on a domain entity.
type AuditRecord struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	EntityType EntityType
	EntityID   *uuid.UUID
	Action     AuditAction
	Changes    map[string]any
	CreatedAt  time.Time
}

// Report is a user's complaint about a question or an answer.
type Report struct {
	ID         uuid.UUID
	Target     Target
	ReporterID uuid.UUID
	Reason     string
	ResolvedAt *time.Time
	CreatedAt  time.Time
}

func (r *Report) IsResolved() bool { return r.ResolvedAt != nil }

// ReportFilter narrows a report listing.
type ReportFilter struct {
	// OnlyOpen limits the listing to unresolved reports.
	OnlyOpen bool
	Kind     *TargetKind
	Limit    int
	Offset   int
}
