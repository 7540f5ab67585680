package dto

import (
	"github.com/finwyse/fin_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateGoalRequest defines the data needed to create a savings goal.
type CreateGoalRequest struct {
	Name         string          `json:"name" binding:"required"`
	TargetAmount decimal.Decimal `json:"targetAmount" binding:"required"`
	SavedAmount  decimal.Decimal `json:"savedAmount"`
	Deadline     string          `json:"deadline"` // optional, calendar date
	Category     string          `json:"category" binding:"omitempty,oneof=Emergency Travel Home Vehicle Education Gadget Investment Other"`
}

// UpdateGoalRequest defines the data allowed for updating a goal.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateGoalRequest struct {
	Name         *string          `json:"name"`
	TargetAmount *decimal.Decimal `json:"targetAmount"`
	SavedAmount  *decimal.Decimal `json:"savedAmount"`
	Deadline     *string          `json:"deadline"` // empty string clears the deadline
	Category     *string          `json:"category" binding:"omitempty,oneof=Emergency Travel Home Vehicle Education Gadget Investment Other"`
}

// ContributeRequest defines the data needed to add to a goal's saved amount.
type ContributeRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// GoalResponse defines the data returned for a savings goal. Icon and color
// are derived from the category on the server so clients stay consistent.
type GoalResponse struct {
	GoalID       string          `json:"goalID"`
	Name         string          `json:"name"`
	TargetAmount decimal.Decimal `json:"targetAmount"`
	SavedAmount  decimal.Decimal `json:"savedAmount"`
	Deadline     string          `json:"deadline,omitempty"`
	Category     string          `json:"category"`
	Icon         string          `json:"icon"`
	Color        string          `json:"color"`
}

// ToGoalResponse converts a domain.SavingsGoal to GoalResponse DTO
func ToGoalResponse(g *domain.SavingsGoal) GoalResponse {
	return GoalResponse{
		GoalID:       g.GoalID,
		Name:         g.Name,
		TargetAmount: g.TargetAmount,
		SavedAmount:  g.SavedAmount,
		Deadline:     g.Deadline,
		Category:     string(g.Category),
		Icon:         g.Category.Icon(),
		Color:        g.Category.Color(),
	}
}

// ToListGoalResponse converts a slice of domain.SavingsGoal to a slice of GoalResponse DTOs
func ToListGoalResponse(goals []domain.SavingsGoal) []GoalResponse {
	res := make([]GoalResponse, len(goals))
	for i, g := range goals {
		res[i] = ToGoalResponse(&g)
	}
	return res
}

// GoalEvaluationResponse pairs a goal with its display evaluation.
type GoalEvaluationResponse struct {
	Goal            GoalResponse     `json:"goal"`
	Progress        decimal.Decimal  `json:"progress"`
	MonthsRemaining int              `json:"monthsRemaining"`
	MonthlyNeed     *decimal.Decimal `json:"monthlyNeed,omitempty"`
}

// ToGoalEvaluationResponse converts a domain.GoalEvaluation to GoalEvaluationResponse DTO
func ToGoalEvaluationResponse(ev *domain.GoalEvaluation) GoalEvaluationResponse {
	return GoalEvaluationResponse{
		Goal:            ToGoalResponse(&ev.Goal),
		Progress:        ev.Progress,
		MonthsRemaining: ev.MonthsRemaining,
		MonthlyNeed:     ev.MonthlyNeed,
	}
}

// ToListGoalEvaluationResponse converts a slice of domain.GoalEvaluation to DTOs
func ToListGoalEvaluationResponse(evs []domain.GoalEvaluation) []GoalEvaluationResponse {
	res := make([]GoalEvaluationResponse, len(evs))
	for i, ev := range evs {
		res[i] = ToGoalEvaluationResponse(&ev)
	}
	return res
}
