package services

import (
	"context"

	"github.com/finwyse/fin_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BudgetSvcFacade manages per-category monthly limits and evaluates spending
// against them.
type BudgetSvcFacade interface {
	// SetBudget sets the monthly limit for a category. A limit of zero means
	// "no limit set".
	SetBudget(ctx context.Context, category string, limit decimal.Decimal) error

	// EvaluateBudgets compares the current calendar month's aggregated spend
	// against each category's limit. Categories without spend are included so
	// a budget can be set before any spending occurs.
	EvaluateBudgets(ctx context.Context) ([]domain.BudgetEvaluation, error)
}

// GoalSvcFacade manages savings goals and their projections.
type GoalSvcFacade interface {
	CreateGoal(ctx context.Context, req CreateGoalParams) (*domain.SavingsGoal, error)
	UpdateGoal(ctx context.Context, goalID string, req UpdateGoalParams) (*domain.SavingsGoal, error)
	DeleteGoal(ctx context.Context, goalID string) error

	// Contribute increments the goal's saved amount. There is no upper bound:
	// the stored amount may exceed the target.
	Contribute(ctx context.Context, goalID string, amount decimal.Decimal) (*domain.SavingsGoal, error)

	// ListGoals returns each goal with its display evaluation (clamped
	// progress, months remaining, required monthly contribution).
	ListGoals(ctx context.Context) ([]domain.GoalEvaluation, error)
}

// CreateGoalParams carries validated goal creation input.
type CreateGoalParams struct {
	Name         string
	TargetAmount decimal.Decimal
	SavedAmount  decimal.Decimal
	Deadline     string // domain.DateLayout, optional
	Category     domain.GoalCategory
}

// UpdateGoalParams carries goal update input. Nil fields are left unchanged.
type UpdateGoalParams struct {
	Name         *string
	TargetAmount *decimal.Decimal
	SavedAmount  *decimal.Decimal
	Deadline     *string
	Category     *domain.GoalCategory
}
