package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/finwyse/fin_tracker_app/internal/apperrors"
	"github.com/finwyse/fin_tracker_app/internal/core/domain"
	portssvc "github.com/finwyse/fin_tracker_app/internal/core/ports/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// goalService manages savings goals and their display evaluations.
type goalService struct {
	BaseService
	profile portssvc.ProfileSvcFacade
	audit   portssvc.AuditSvcFacade
	now     func() time.Time
}

// GoalServiceOption is a functional option for configuring the goal service.
type GoalServiceOption func(*goalService)

// WithGoalClock overrides the time source, used by tests to pin "today".
func WithGoalClock(now func() time.Time) GoalServiceOption {
	return func(s *goalService) {
		s.now = now
	}
}

// NewGoalService creates the goal evaluator.
func NewGoalService(profile portssvc.ProfileSvcFacade, audit portssvc.AuditSvcFacade, options ...GoalServiceOption) portssvc.GoalSvcFacade {
	svc := &goalService{profile: profile, audit: audit, now: time.Now}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.GoalSvcFacade = (*goalService)(nil)

func validateDeadline(deadline string) error {
	if deadline == "" {
		return nil
	}
	if _, err := time.Parse(domain.DateLayout, deadline); err != nil {
		return fmt.Errorf("%w: deadline must be a valid calendar date (%s)", apperrors.ErrValidation, domain.DateLayout)
	}
	return nil
}

// CreateGoal validates and appends a new savings goal.
func (s *goalService) CreateGoal(ctx context.Context, req portssvc.CreateGoalParams) (*domain.SavingsGoal, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: goal name is required", apperrors.ErrValidation)
	}
	if !req.TargetAmount.IsPositive() {
		return nil, fmt.Errorf("%w: target amount must be positive", apperrors.ErrValidation)
	}
	if req.SavedAmount.IsNegative() {
		return nil, fmt.Errorf("%w: saved amount must be non-negative", apperrors.ErrValidation)
	}
	if err := validateDeadline(req.Deadline); err != nil {
		return nil, err
	}
	category := req.Category
	if category == "" {
		category = domain.GoalOther
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("%w: unknown goal category '%s'", apperrors.ErrValidation, category)
	}

	now := s.now()
	goal := domain.SavingsGoal{
		GoalID:       uuid.NewString(),
		Name:         strings.TrimSpace(req.Name),
		TargetAmount: req.TargetAmount,
		SavedAmount:  req.SavedAmount,
		Deadline:     req.Deadline,
		Category:     category,
		AuditFields:  domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}

	_, err := s.profile.MutateProfile(ctx, func(p *domain.Profile) error {
		p.Goals = append(p.Goals, goal)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if auditErr := s.audit.Record(ctx, domain.AuditGoalAdded, goal.Name); auditErr != nil {
		s.LogWarn(ctx, "Failed to record audit entry", "error", auditErr.Error())
	}
	return &goal, nil
}

// UpdateGoal applies the non-nil fields of req to the goal.
func (s *goalService) UpdateGoal(ctx context.Context, goalID string, req portssvc.UpdateGoalParams) (*domain.SavingsGoal, error) {
	var updated domain.SavingsGoal
	_, err := s.profile.MutateProfile(ctx, func(p *domain.Profile) error {
		goal := p.FindGoal(goalID)
		if goal == nil {
			return fmt.Errorf("%w: goal '%s'", apperrors.ErrNotFound, goalID)
		}
		if req.Name != nil {
			if strings.TrimSpace(*req.Name) == "" {
				return fmt.Errorf("%w: goal name is required", apperrors.ErrValidation)
			}
			goal.Name = strings.TrimSpace(*req.Name)
		}
		if req.TargetAmount != nil {
			if !req.TargetAmount.IsPositive() {
				return fmt.Errorf("%w: target amount must be positive", apperrors.ErrValidation)
			}
			goal.TargetAmount = *req.TargetAmount
		}
		if req.SavedAmount != nil {
			if req.SavedAmount.IsNegative() {
				return fmt.Errorf("%w: saved amount must be non-negative", apperrors.ErrValidation)
			}
			goal.SavedAmount = *req.SavedAmount
		}
		if req.Deadline != nil {
			if err := validateDeadline(*req.Deadline); err != nil {
				return err
			}
			goal.Deadline = *req.Deadline
		}
		if req.Category != nil {
			if !req.Category.IsValid() {
				return fmt.Errorf("%w: unknown goal category '%s'", apperrors.ErrValidation, *req.Category)
			}
			goal.Category = *req.Category
		}
		goal.LastUpdatedAt = s.now()
		updated = *goal
		return nil
	})
	if err != nil {
		return nil, err
	}

	if auditErr := s.audit.Record(ctx, domain.AuditGoalUpdated, updated.Name); auditErr != nil {
		s.LogWarn(ctx, "Failed to record audit entry", "error", auditErr.Error())
	}
	return &updated, nil
}

// DeleteGoal removes the goal with the given ID.
func (s *goalService) DeleteGoal(ctx context.Context, goalID string) error {
	var name string
	_, err := s.profile.MutateProfile(ctx, func(p *domain.Profile) error {
		for i, g := range p.Goals {
			if g.GoalID == goalID {
				name = g.Name
				p.Goals = append(p.Goals[:i], p.Goals[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("%w: goal '%s'", apperrors.ErrNotFound, goalID)
	})
	if err != nil {
		return err
	}

	if auditErr := s.audit.Record(ctx, domain.AuditGoalDeleted, name); auditErr != nil {
		s.LogWarn(ctx, "Failed to record audit entry", "error", auditErr.Error())
	}
	return nil
}

// Contribute increments the goal's saved amount. The stored amount is never
// clamped; only progress display caps at 100 percent.
func (s *goalService) Contribute(ctx context.Context, goalID string, amount decimal.Decimal) (*domain.SavingsGoal, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: contribution must be positive", apperrors.ErrValidation)
	}

	var updated domain.SavingsGoal
	_, err := s.profile.MutateProfile(ctx, func(p *domain.Profile) error {
		goal := p.FindGoal(goalID)
		if goal == nil {
			return fmt.Errorf("%w: goal '%s'", apperrors.ErrNotFound, goalID)
		}
		goal.SavedAmount = goal.SavedAmount.Add(amount)
		goal.LastUpdatedAt = s.now()
		updated = *goal
		return nil
	})
	if err != nil {
		return nil, err
	}

	if auditErr := s.audit.Record(ctx, domain.AuditGoalContribution, fmt.Sprintf("%s +%s", updated.Name, amount.String())); auditErr != nil {
		s.LogWarn(ctx, "Failed to record audit entry", "error", auditErr.Error())
	}
	return &updated, nil
}

// ListGoals returns each goal with its display evaluation.
func (s *goalService) ListGoals(ctx context.Context) ([]domain.GoalEvaluation, error) {
	profile, err := s.profile.GetProfile(ctx)
	if err != nil {
		return nil, err
	}

	evaluations := make([]domain.GoalEvaluation, len(profile.Goals))
	for i, goal := range profile.Goals {
		evaluations[i] = EvaluateGoal(goal, s.now())
	}
	return evaluations, nil
}

// MonthsRemaining computes whole calendar months between now and the deadline
// as a difference of year*12+month, not day-precise.
func MonthsRemaining(deadline, now time.Time) int {
	return (deadline.Year()*12 + int(deadline.Month())) - (now.Year()*12 + int(now.Month()))
}

// EvaluateGoal derives the display view of a goal: progress clamped to 100,
// months remaining, and the monthly contribution needed to hit the deadline.
// A deadline in the past reports a monthly need of 0 (due now, not an error).
func EvaluateGoal(goal domain.SavingsGoal, now time.Time) domain.GoalEvaluation {
	eval := domain.GoalEvaluation{Goal: goal, Progress: decimal.Zero}

	if goal.TargetAmount.IsPositive() {
		progress := goal.SavedAmount.Div(goal.TargetAmount).Mul(hundred)
		if progress.GreaterThan(hundred) {
			progress = hundred
		}
		eval.Progress = progress
	}

	deadline, ok := goal.ParsedDeadline()
	if !ok {
		return eval
	}

	months := MonthsRemaining(deadline, now)
	eval.MonthsRemaining = months

	need := decimal.Zero
	if months > 0 {
		if shortfall := goal.TargetAmount.Sub(goal.SavedAmount); shortfall.IsPositive() {
			need = shortfall.Div(decimal.NewFromInt(int64(months)))
		}
	}
	eval.MonthlyNeed = &need
	return eval
}
