package dto

import (
	"github.com/finwyse/fin_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SetBudgetRequest defines the data needed to set a category's monthly limit.
// A limit of zero removes the limit.
type SetBudgetRequest struct {
	Category string          `json:"category" binding:"required"`
	Limit    decimal.Decimal `json:"limit"`
}

// BudgetEvaluationResponse defines the data returned for one category's
// budget standing in the current month.
type BudgetEvaluationResponse struct {
	Category   string          `json:"category"`
	Limit      decimal.Decimal `json:"limit"`
	Spend      decimal.Decimal `json:"spend"`
	Percentage decimal.Decimal `json:"percentage"`
	Status     string          `json:"status"`
	Remaining  decimal.Decimal `json:"remaining"`
	Overage    decimal.Decimal `json:"overage"`
}

// ToBudgetEvaluationResponse converts a domain.BudgetEvaluation to BudgetEvaluationResponse DTO
func ToBudgetEvaluationResponse(ev *domain.BudgetEvaluation) BudgetEvaluationResponse {
	return BudgetEvaluationResponse{
		Category:   ev.Category,
		Limit:      ev.Limit,
		Spend:      ev.Spend,
		Percentage: ev.Percentage,
		Status:     string(ev.Status),
		Remaining:  ev.Remaining,
		Overage:    ev.Overage,
	}
}

// ToListBudgetEvaluationResponse converts a slice of domain.BudgetEvaluation to DTOs
func ToListBudgetEvaluationResponse(evs []domain.BudgetEvaluation) []BudgetEvaluationResponse {
	res := make([]BudgetEvaluationResponse, len(evs))
	for i, ev := range evs {
		res[i] = ToBudgetEvaluationResponse(&ev)
	}
	return res
}
