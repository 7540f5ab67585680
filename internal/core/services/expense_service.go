package services

import (
	"context"
	"fmt"
	"time"

	"github.com/finwyse/fin_tracker_app/internal/apperrors"
	"github.com/finwyse/fin_tracker_app/internal/core/domain"
	portssvc "github.com/finwyse/fin_tracker_app/internal/core/ports/services"
	"github.com/finwyse/fin_tracker_app/internal/dto"
	"github.com/finwyse/fin_tracker_app/internal/utils/pagination"
	"github.com/google/uuid"
)

// expenseService manages the profile's transaction list through the profile
// state container.
type expenseService struct {
	BaseService
	profile portssvc.ProfileSvcFacade
	audit   portssvc.AuditSvcFacade
}

// NewExpenseService creates the expense service.
func NewExpenseService(profile portssvc.ProfileSvcFacade, audit portssvc.AuditSvcFacade) portssvc.ExpenseSvcFacade {
	return &expenseService{profile: profile, audit: audit}
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

const defaultExpensePageSize = 50

// AddExpense validates and prepends a new transaction. Transactions are
// immutable once created; an edit is a delete plus a recreate.
func (s *expenseService) AddExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.Transaction, error) {
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: amount must be non-negative", apperrors.ErrValidation)
	}
	if _, err := time.Parse(domain.DateLayout, req.Date); err != nil {
		return nil, fmt.Errorf("%w: date must be a valid calendar date (%s)", apperrors.ErrValidation, domain.DateLayout)
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Description:   req.Description,
		Amount:        req.Amount,
		Category:      req.Category,
		Date:          req.Date,
		CurrencyCode:  req.Currency,
		AuditFields:   domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}

	_, err := s.profile.MutateProfile(ctx, func(p *domain.Profile) error {
		if txn.Category == "" {
			txn.Category = domain.FallbackCategory
		} else if !p.HasCategory(txn.Category) && txn.Category != domain.FallbackCategory {
			return fmt.Errorf("%w: unknown category '%s'", apperrors.ErrValidation, txn.Category)
		}
		p.Expenses = append([]domain.Transaction{txn}, p.Expenses...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if auditErr := s.audit.Record(ctx, domain.AuditExpenseAdded, txn.Description); auditErr != nil {
		s.LogWarn(ctx, "Failed to record audit entry", "error", auditErr.Error())
	}
	s.LogInfo(ctx, "Expense added", "transaction_id", txn.TransactionID, "category", txn.Category)
	return &txn, nil
}

// DeleteExpense removes the transaction with the given ID.
func (s *expenseService) DeleteExpense(ctx context.Context, transactionID string) error {
	_, err := s.profile.MutateProfile(ctx, func(p *domain.Profile) error {
		for i, txn := range p.Expenses {
			if txn.TransactionID == transactionID {
				p.Expenses = append(p.Expenses[:i], p.Expenses[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("%w: transaction '%s'", apperrors.ErrNotFound, transactionID)
	})
	if err != nil {
		return err
	}

	if auditErr := s.audit.Record(ctx, domain.AuditExpenseDeleted, transactionID); auditErr != nil {
		s.LogWarn(ctx, "Failed to record audit entry", "error", auditErr.Error())
	}
	return nil
}

// ListExpenses pages through the transaction list in stored order (newest
// first). The page token is the ID of the last transaction already served.
func (s *expenseService) ListExpenses(ctx context.Context, limit int, pageToken string) ([]domain.Transaction, string, error) {
	if limit <= 0 {
		limit = defaultExpensePageSize
	}

	profile, err := s.profile.GetProfile(ctx)
	if err != nil {
		return nil, "", err
	}

	start := 0
	if pageToken != "" {
		fields, err := pagination.DecodeMultiFieldToken(pageToken, 1)
		if err != nil {
			return nil, "", fmt.Errorf("%w: invalid page token", apperrors.ErrValidation)
		}
		lastID := fields[0]
		for i, txn := range profile.Expenses {
			if txn.TransactionID == lastID {
				start = i + 1
				break
			}
		}
	}

	if start >= len(profile.Expenses) {
		return []domain.Transaction{}, "", nil
	}

	end := start + limit
	if end > len(profile.Expenses) {
		end = len(profile.Expenses)
	}
	page := append([]domain.Transaction(nil), profile.Expenses[start:end]...)

	nextToken := ""
	if end < len(profile.Expenses) {
		nextToken = pagination.EncodeMultiFieldToken(page[len(page)-1].TransactionID)
	}
	return page, nextToken, nil
}
