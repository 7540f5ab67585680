package sqlite

import (
	"database/sql"

	portsrepo "github.com/finwyse/fin_tracker_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires the SQLite-backed repositories over a shared
// KV store.
func NewRepositoryProvider(db *sql.DB) portsrepo.RepositoryProvider {
	kv := newKVStore(db)
	return portsrepo.RepositoryProvider{
		ProfileRepo: newProfileRepository(kv),
		AuditRepo:   newAuditRepository(kv),
	}
}

// NewKVStore exposes the raw KV store for the full local-data wipe.
func NewKVStore(db *sql.DB) portsrepo.KVStore {
	return newKVStore(db)
}
