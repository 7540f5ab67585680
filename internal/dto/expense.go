package dto

import (
	"time"

	"github.com/finwyse/fin_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest defines the data needed to record a new expense.
type CreateExpenseRequest struct {
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Category    string          `json:"category"` // empty falls back to "Other"
	Date        string          `json:"date" binding:"required"`
	Currency    string          `json:"currency" binding:"omitempty,uppercase,len=3"` // empty means the profile currency
}

// ExpenseResponse defines the data returned for a transaction.
type ExpenseResponse struct {
	TransactionID string          `json:"transactionID"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Category      string          `json:"category"`
	Date          string          `json:"date"`
	Currency      string          `json:"currency,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ToExpenseResponse converts a domain.Transaction to ExpenseResponse DTO
func ToExpenseResponse(txn *domain.Transaction) ExpenseResponse {
	return ExpenseResponse{
		TransactionID: txn.TransactionID,
		Description:   txn.Description,
		Amount:        txn.Amount,
		Category:      txn.Category,
		Date:          txn.Date,
		Currency:      txn.CurrencyCode,
		CreatedAt:     txn.CreatedAt,
	}
}

// ToListExpenseResponse converts a slice of domain.Transaction to a slice of ExpenseResponse DTOs
func ToListExpenseResponse(txns []domain.Transaction) []ExpenseResponse {
	res := make([]ExpenseResponse, len(txns))
	for i, txn := range txns {
		res[i] = ToExpenseResponse(&txn)
	}
	return res
}

// ListExpensesParams defines query parameters for listing transactions.
type ListExpensesParams struct {
	Limit     int    `form:"limit,default=50"`
	PageToken string `form:"pageToken"`
}

// ListExpensesResponse wraps a page of transactions.
type ListExpensesResponse struct {
	Expenses      []ExpenseResponse `json:"expenses"`
	NextPageToken string            `json:"nextPageToken,omitempty"`
}
