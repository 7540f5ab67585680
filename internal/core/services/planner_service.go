package services

import (
	"context"

	"github.com/finwyse/fin_tracker_app/internal/core/domain"
	portssvc "github.com/finwyse/fin_tracker_app/internal/core/ports/services"
	"github.com/finwyse/fin_tracker_app/internal/platform/config"
	"github.com/shopspring/decimal"
)

// plannerService produces the illustrative SIP projection and the simplified
// tax estimate. Both are policy-constant formulas, not financial advice.
type plannerService struct {
	BaseService
	profile   portssvc.ProfileReaderSvc
	reporting portssvc.ReportingSvcFacade

	annualRate        decimal.Decimal
	horizonYears      int
	contributionRatio decimal.Decimal
}

// NewPlannerService creates the projection calculator with policy constants
// taken from configuration.
func NewPlannerService(cfg *config.Config, profile portssvc.ProfileReaderSvc, reporting portssvc.ReportingSvcFacade) portssvc.PlannerSvcFacade {
	return &plannerService{
		profile:           profile,
		reporting:         reporting,
		annualRate:        decimal.NewFromFloat(cfg.SIPAnnualRate),
		horizonYears:      cfg.SIPHorizonYears,
		contributionRatio: decimal.NewFromFloat(cfg.SIPContributionRatio),
	}
}

var _ portssvc.PlannerSvcFacade = (*plannerService)(nil)

// taxSlab is one simplified progressive bracket. Upper is exclusive; a nil
// Upper means unbounded.
type taxSlab struct {
	Upper *decimal.Decimal
	Rate  decimal.Decimal
}

var taxSlabs = func() []taxSlab {
	upper := func(v int64) *decimal.Decimal {
		d := decimal.NewFromInt(v)
		return &d
	}
	return []taxSlab{
		{Upper: upper(10000), Rate: decimal.NewFromFloat(0.10)},
		{Upper: upper(40000), Rate: decimal.NewFromFloat(0.20)},
		{Upper: upper(80000), Rate: decimal.NewFromFloat(0.30)},
		{Upper: nil, Rate: decimal.NewFromFloat(0.30)},
	}
}()

// Projection applies the fixed-rate compound-growth formula. A nil
// contribution uses the suggested contribution: the configured ratio of the
// current monthly net savings, floored at zero.
func (s *plannerService) Projection(ctx context.Context, contribution *decimal.Decimal) (*domain.SIPProjection, error) {
	var monthly decimal.Decimal
	if contribution != nil {
		monthly = *contribution
	} else {
		summary, err := s.reporting.Summary(ctx)
		if err != nil {
			return nil, err
		}
		savings := summary.MonthlySavings
		if savings.IsNegative() {
			savings = decimal.Zero
		}
		monthly = savings.Mul(s.contributionRatio)
	}

	projection := ProjectSIP(monthly, s.annualRate, s.horizonYears)
	s.LogInfo(ctx, "SIP projection computed",
		"contribution", projection.MonthlyContribution.String(),
		"future_value", projection.FutureValue.String())
	return &projection, nil
}

// ProjectSIP computes the future value of a fixed monthly contribution as an
// annuity with contributions at the start of each period:
// FV = c * ((1+r)^n - 1) / r * (1+r). A non-positive contribution yields all
// zeros; negative savings never produce a negative projection.
func ProjectSIP(contribution, annualRate decimal.Decimal, horizonYears int) domain.SIPProjection {
	projection := domain.SIPProjection{
		MonthlyContribution: contribution,
		AnnualRate:          annualRate,
		HorizonYears:        horizonYears,
		FutureValue:         decimal.Zero,
		Invested:            decimal.Zero,
		WealthGain:          decimal.Zero,
	}
	if !contribution.IsPositive() || horizonYears <= 0 {
		projection.MonthlyContribution = decimal.Zero
		return projection
	}

	months := int64(horizonYears) * 12
	n := decimal.NewFromInt(months)
	r := annualRate.Div(decimal.NewFromInt(12))

	if r.IsZero() {
		projection.FutureValue = contribution.Mul(n)
	} else {
		onePlusR := decimal.NewFromInt(1).Add(r)
		growth := onePlusR.Pow(n).Sub(decimal.NewFromInt(1)).Div(r)
		projection.FutureValue = contribution.Mul(growth).Mul(onePlusR)
	}
	projection.Invested = contribution.Mul(n)
	projection.WealthGain = projection.FutureValue.Sub(projection.Invested)
	return projection
}

// TaxEstimate applies the simplified progressive brackets to the profile's
// total annual income. Illustrative only.
func (s *plannerService) TaxEstimate(ctx context.Context) (*domain.TaxEstimate, error) {
	profile, err := s.profile.GetProfile(ctx)
	if err != nil {
		return nil, err
	}
	estimate := EstimateTax(profile.Income.TotalAnnual())
	return &estimate, nil
}

// EstimateTax walks the fixed slabs, taxing only the income slice inside each.
func EstimateTax(income decimal.Decimal) domain.TaxEstimate {
	estimate := domain.TaxEstimate{
		AnnualIncome:  income,
		Tax:           decimal.Zero,
		EffectiveRate: decimal.Zero,
		NetIncome:     income,
	}
	if !income.IsPositive() {
		return estimate
	}

	tax := decimal.Zero
	lower := decimal.Zero
	for _, slab := range taxSlabs {
		top := income
		if slab.Upper != nil && slab.Upper.LessThan(top) {
			top = *slab.Upper
		}
		if slice := top.Sub(lower); slice.IsPositive() {
			tax = tax.Add(slice.Mul(slab.Rate))
		}
		if slab.Upper == nil || income.LessThanOrEqual(*slab.Upper) {
			break
		}
		lower = *slab.Upper
	}

	estimate.Tax = tax
	estimate.EffectiveRate = tax.Div(income).Mul(hundred)
	estimate.NetIncome = income.Sub(tax)
	return estimate
}
