package dto

import (
	"github.com/finwyse/fin_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ProjectionParams defines query parameters for the SIP projection. A missing
// contribution means "use the suggested contribution".
type ProjectionParams struct {
	MonthlyContribution *decimal.Decimal `form:"monthlyContribution"`
}

// SIPProjectionResponse defines the compound-growth projection figures.
type SIPProjectionResponse struct {
	MonthlyContribution decimal.Decimal `json:"monthlyContribution"`
	AnnualRate          decimal.Decimal `json:"annualRate"`
	HorizonYears        int             `json:"horizonYears"`
	FutureValue         decimal.Decimal `json:"futureValue"`
	Invested            decimal.Decimal `json:"invested"`
	WealthGain          decimal.Decimal `json:"wealthGain"`
}

// ToSIPProjectionResponse converts a domain.SIPProjection to its DTO
func ToSIPProjectionResponse(p *domain.SIPProjection) SIPProjectionResponse {
	return SIPProjectionResponse{
		MonthlyContribution: p.MonthlyContribution,
		AnnualRate:          p.AnnualRate,
		HorizonYears:        p.HorizonYears,
		FutureValue:         p.FutureValue,
		Invested:            p.Invested,
		WealthGain:          p.WealthGain,
	}
}

// TaxEstimateResponse defines the simplified tax estimate. Illustrative only.
type TaxEstimateResponse struct {
	AnnualIncome  decimal.Decimal `json:"annualIncome"`
	Tax           decimal.Decimal `json:"tax"`
	EffectiveRate decimal.Decimal `json:"effectiveRate"`
	NetIncome     decimal.Decimal `json:"netIncome"`
	Disclaimer    string          `json:"disclaimer"`
}

// TaxDisclaimer is attached to every tax estimate response.
const TaxDisclaimer = "Illustrative estimate using simplified brackets; not tax advice."

// ToTaxEstimateResponse converts a domain.TaxEstimate to its DTO
func ToTaxEstimateResponse(e *domain.TaxEstimate) TaxEstimateResponse {
	return TaxEstimateResponse{
		AnnualIncome:  e.AnnualIncome,
		Tax:           e.Tax,
		EffectiveRate: e.EffectiveRate,
		NetIncome:     e.NetIncome,
		Disclaimer:    TaxDisclaimer,
	}
}

// AdviceResponse wraps the generated financial plan text.
type AdviceResponse struct {
	Advice string `json:"advice"`
}
