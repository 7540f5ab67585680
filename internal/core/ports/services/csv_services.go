package services

import (
	"context"

	"github.com/finwyse/fin_tracker_app/internal/core/domain"
)

// CSVSvcFacade serializes transactions to CSV and parses the same format back.
type CSVSvcFacade interface {
	// ExportCSV renders all transactions. The filename carries the current date.
	ExportCSV(ctx context.Context) (filename string, data []byte, err error)

	// ImportCSV parses raw CSV text, prepends every successfully parsed row to
	// the transaction list with a fresh ID, and returns the aggregate count
	// plus per-row diagnostics for the rows that were dropped.
	ImportCSV(ctx context.Context, data []byte) (*domain.ImportResult, error)
}

// AuditSvcFacade maintains the bounded, newest-first audit log.
type AuditSvcFacade interface {
	// Record prepends an entry, evicting the oldest entries beyond the cap.
	Record(ctx context.Context, action domain.AuditAction, details string) error

	// List returns all entries, newest first.
	List(ctx context.Context) ([]domain.AuditEntry, error)

	// Clear removes every entry.
	Clear(ctx context.Context) error
}
