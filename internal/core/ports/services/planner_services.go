package services

import (
	"context"

	"github.com/finwyse/fin_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PlannerSvcFacade produces the illustrative projection and tax figures.
type PlannerSvcFacade interface {
	// Projection applies the fixed-rate compound-growth formula to a monthly
	// contribution. A nil contribution uses the suggested contribution: the
	// configured ratio of the current monthly net savings, floored at zero.
	Projection(ctx context.Context, contribution *decimal.Decimal) (*domain.SIPProjection, error)

	// TaxEstimate applies the simplified progressive brackets to the profile's
	// total annual income. The result is illustrative, not jurisdiction-accurate.
	TaxEstimate(ctx context.Context) (*domain.TaxEstimate, error)
}

// AdvisorSvcFacade generates the narrative financial plan.
type AdvisorSvcFacade interface {
	// GenerateAdvice builds the deterministic prompt from the aggregated
	// profile and sends it to the advisor port. Only one request may be in
	// flight; concurrent calls fail with apperrors.ErrBusy. Any collaborator
	// failure is absorbed into a fixed fallback message, never an error.
	GenerateAdvice(ctx context.Context) (string, error)
}
