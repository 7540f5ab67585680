package sqlite

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/finwyse/fin_tracker_app/internal/apperrors"
	"github.com/finwyse/fin_tracker_app/internal/core/domain"
	portsrepo "github.com/finwyse/fin_tracker_app/internal/core/ports/repositories"
)

const auditLogKey = "audit_log"

// auditRepository persists the audit log as one JSON array in the KV store.
// The log is small (capped upstream), so whole-document writes are fine.
type auditRepository struct {
	kv portsrepo.KVStore
}

func newAuditRepository(kv portsrepo.KVStore) *auditRepository {
	return &auditRepository{kv: kv}
}

var _ portsrepo.AuditLogRepositoryFacade = (*auditRepository)(nil)

func (r *auditRepository) LoadEntries(ctx context.Context) ([]domain.AuditEntry, error) {
	raw, err := r.kv.Get(ctx, auditLogKey)
	if errors.Is(err, apperrors.ErrNotFound) {
		return []domain.AuditEntry{}, nil
	}
	if err != nil {
		return nil, err
	}
	var entries []domain.AuditEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		// A corrupt log is not worth failing a mutation over; start fresh.
		return []domain.AuditEntry{}, nil
	}
	return entries, nil
}

func (r *auditRepository) SaveEntries(ctx context.Context, entries []domain.AuditEntry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode audit log: %w", err)
	}
	return r.kv.Set(ctx, auditLogKey, string(raw))
}

func (r *auditRepository) ClearEntries(ctx context.Context) error {
	return r.kv.Delete(ctx, auditLogKey)
}
