package services

import (
	"context"
	"fmt"
	"time"

	"github.com/finwyse/fin_tracker_app/internal/apperrors"
	"github.com/finwyse/fin_tracker_app/internal/core/domain"
	portssvc "github.com/finwyse/fin_tracker_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// budgetService compares aggregated spending against per-category monthly
// limits.
type budgetService struct {
	BaseService
	profile   portssvc.ProfileSvcFacade
	reporting portssvc.ReportingSvcFacade
	audit     portssvc.AuditSvcFacade
	now       func() time.Time
}

// BudgetServiceOption is a functional option for configuring the budget service.
type BudgetServiceOption func(*budgetService)

// WithBudgetClock overrides the time source, used by tests to pin the month.
func WithBudgetClock(now func() time.Time) BudgetServiceOption {
	return func(s *budgetService) {
		s.now = now
	}
}

// NewBudgetService creates the budget evaluator.
func NewBudgetService(profile portssvc.ProfileSvcFacade, reporting portssvc.ReportingSvcFacade, audit portssvc.AuditSvcFacade, options ...BudgetServiceOption) portssvc.BudgetSvcFacade {
	svc := &budgetService{profile: profile, reporting: reporting, audit: audit, now: time.Now}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

var (
	hundred          = decimal.NewFromInt(100)
	warningThreshold = decimal.NewFromInt(80)
)

// SetBudget sets the monthly limit for a category. Zero means "no limit set".
func (s *budgetService) SetBudget(ctx context.Context, category string, limit decimal.Decimal) error {
	if limit.IsNegative() {
		return fmt.Errorf("%w: budget limit must be non-negative", apperrors.ErrValidation)
	}
	_, err := s.profile.MutateProfile(ctx, func(p *domain.Profile) error {
		// Budgets may be set for any category in the universe, including
		// removed-but-used ones still shown in the budget manager.
		known := false
		for _, c := range p.CategoryUniverse() {
			if c == category {
				known = true
				break
			}
		}
		if !known {
			return fmt.Errorf("%w: category '%s'", apperrors.ErrNotFound, category)
		}
		if limit.IsZero() {
			delete(p.Budgets, category)
		} else {
			p.Budgets[category] = limit
		}
		return nil
	})
	if err != nil {
		return err
	}
	if auditErr := s.audit.Record(ctx, domain.AuditBudgetSet, category); auditErr != nil {
		s.LogWarn(ctx, "Failed to record audit entry", "error", auditErr.Error())
	}
	return nil
}

// EvaluateBudgets compares the current calendar month's spend against each
// category's limit. Zero-spend categories are included so a budget can be set
// before any spending occurs.
func (s *budgetService) EvaluateBudgets(ctx context.Context) ([]domain.BudgetEvaluation, error) {
	profile, err := s.profile.GetProfile(ctx)
	if err != nil {
		return nil, err
	}

	currentMonth := s.now().Format(domain.MonthLayout)
	totals, err := s.reporting.CategoryTotals(ctx, portssvc.ReportWindow{Month: currentMonth}, true)
	if err != nil {
		return nil, err
	}

	evaluations := make([]domain.BudgetEvaluation, 0, len(totals))
	for _, t := range totals {
		limit := profile.Budgets[t.Category] // zero value means unset
		evaluations = append(evaluations, EvaluateBudget(t.Category, t.Total, limit))
	}
	return evaluations, nil
}

// EvaluateBudget classifies a single category's spend against its limit.
// Exposed as a pure function so the tier math is testable in isolation.
func EvaluateBudget(category string, spend, limit decimal.Decimal) domain.BudgetEvaluation {
	eval := domain.BudgetEvaluation{
		Category:   category,
		Limit:      limit,
		Spend:      spend,
		Percentage: decimal.Zero,
		Remaining:  decimal.Zero,
		Overage:    decimal.Zero,
	}

	if !limit.IsPositive() {
		eval.Status = domain.BudgetUnset
		return eval
	}

	eval.Percentage = spend.Div(limit).Mul(hundred)
	switch {
	case eval.Percentage.GreaterThan(hundred):
		eval.Status = domain.BudgetOver
		eval.Overage = spend.Sub(limit)
	case eval.Percentage.GreaterThan(warningThreshold):
		eval.Status = domain.BudgetWarning
	default:
		eval.Status = domain.BudgetOK
	}

	if remaining := limit.Sub(spend); remaining.IsPositive() {
		eval.Remaining = remaining
	}
	return eval
}
