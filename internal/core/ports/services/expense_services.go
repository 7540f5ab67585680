package services

import (
	"context"

	"github.com/finwyse/fin_tracker_app/internal/core/domain"
	"github.com/finwyse/fin_tracker_app/internal/dto"
)

// ExpenseSvcFacade manages the profile's transaction list. Transactions are
// immutable: there is no update operation, edits are delete plus recreate.
type ExpenseSvcFacade interface {
	// AddExpense validates and prepends a new transaction.
	AddExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.Transaction, error)

	// DeleteExpense removes the transaction with the given ID.
	DeleteExpense(ctx context.Context, transactionID string) error

	// ListExpenses returns up to limit transactions in stored order together
	// with a token for the next page; the token is empty on the last page.
	ListExpenses(ctx context.Context, limit int, pageToken string) ([]domain.Transaction, string, error)
}
