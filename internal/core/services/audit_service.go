package services

import (
	"context"
	"sync"
	"time"

	"github.com/finwyse/fin_tracker_app/internal/core/domain"
	portsrepo "github.com/finwyse/fin_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/finwyse/fin_tracker_app/internal/core/ports/services"
)

// auditService maintains the bounded, newest-first audit log. The log is a
// write-mostly side channel: mutations append here, nothing else reads it.
type auditService struct {
	BaseService
	auditRepo portsrepo.AuditLogRepositoryFacade
	clock     func() time.Time

	mu sync.Mutex
}

// NewAuditService creates the audit log service.
func NewAuditService(auditRepo portsrepo.AuditLogRepositoryFacade) portssvc.AuditSvcFacade {
	return &auditService{auditRepo: auditRepo, clock: time.Now}
}

var _ portssvc.AuditSvcFacade = (*auditService)(nil)

// Record prepends an entry and evicts anything beyond the cap.
func (s *auditService) Record(ctx context.Context, action domain.AuditAction, details string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.auditRepo.LoadEntries(ctx)
	if err != nil {
		return err
	}

	entries = append([]domain.AuditEntry{{
		Timestamp: s.clock().UTC(),
		Action:    action,
		Details:   details,
	}}, entries...)
	if len(entries) > domain.MaxAuditEntries {
		entries = entries[:domain.MaxAuditEntries]
	}
	return s.auditRepo.SaveEntries(ctx, entries)
}

// List returns all entries, newest first.
func (s *auditService) List(ctx context.Context) ([]domain.AuditEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.auditRepo.LoadEntries(ctx)
}

// Clear removes every entry.
func (s *auditService) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.auditRepo.ClearEntries(ctx); err != nil {
		return err
	}
	s.LogInfo(ctx, "audit log cleared")
	return nil
}
