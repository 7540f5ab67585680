package repositories

import (
	"context"

	"github.com/finwyse/fin_tracker_app/internal/core/domain"
)

// AuditLogRepositoryFacade persists the bounded audit log as a whole.
// Entries are ordered newest first; callers enforce the cap before saving.
type AuditLogRepositoryFacade interface {
	// LoadEntries returns the stored entries, newest first. An empty slice is
	// returned when the log has never been written.
	LoadEntries(ctx context.Context) ([]domain.AuditEntry, error)

	// SaveEntries replaces the stored log with entries.
	SaveEntries(ctx context.Context, entries []domain.AuditEntry) error

	// ClearEntries removes the stored log.
	ClearEntries(ctx context.Context) error
}
