package dto

import (
	"github.com/finwyse/fin_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CategoryTotalsParams defines query parameters for the category aggregation.
// Days takes precedence over Month when both are set; neither means all time.
type CategoryTotalsParams struct {
	Days        int    `form:"days" binding:"omitempty,min=1"`
	Month       string `form:"month"` // calendar month, e.g. "2026-08"
	IncludeZero bool   `form:"includeZero"`
}

// CategoryTotalResponse defines one category's aggregated spend.
type CategoryTotalResponse struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// CategoryTotalsResponse wraps the aggregation with its display currency.
type CategoryTotalsResponse struct {
	Currency string                  `json:"currency"`
	Totals   []CategoryTotalResponse `json:"totals"`
}

// ToCategoryTotalsResponse converts domain.CategoryTotal values to the response DTO
func ToCategoryTotalsResponse(currency string, totals []domain.CategoryTotal) CategoryTotalsResponse {
	res := CategoryTotalsResponse{Currency: currency, Totals: make([]CategoryTotalResponse, len(totals))}
	for i, t := range totals {
		res.Totals[i] = CategoryTotalResponse{Category: t.Category, Total: t.Total}
	}
	return res
}

// CurrencyTrendParams defines query parameters for the trend series.
type CurrencyTrendParams struct {
	Months int `form:"months,default=6" binding:"omitempty,min=1,max=36"`
}

// MonthlyAmountResponse is one bucket of a trend series.
type MonthlyAmountResponse struct {
	Month  string          `json:"month"`
	Amount decimal.Decimal `json:"amount"`
}

// CurrencyTrendResponse is a per-currency monthly series. Amounts are in the
// transaction's own currency, not converted.
type CurrencyTrendResponse struct {
	CurrencyCode string                  `json:"currencyCode"`
	Series       []MonthlyAmountResponse `json:"series"`
}

// ToListCurrencyTrendResponse converts domain.CurrencyTrend values to DTOs
func ToListCurrencyTrendResponse(trends []domain.CurrencyTrend) []CurrencyTrendResponse {
	res := make([]CurrencyTrendResponse, len(trends))
	for i, t := range trends {
		series := make([]MonthlyAmountResponse, len(t.Series))
		for j, m := range t.Series {
			series[j] = MonthlyAmountResponse{Month: m.Month, Amount: m.Amount}
		}
		res[i] = CurrencyTrendResponse{CurrencyCode: t.CurrencyCode, Series: series}
	}
	return res
}

// FinancialSummaryResponse defines the dashboard headline figures.
type FinancialSummaryResponse struct {
	CurrencyCode   string          `json:"currencyCode"`
	MonthlyGross   decimal.Decimal `json:"monthlyGross"`
	MonthlySpend   decimal.Decimal `json:"monthlySpend"`
	MonthlySavings decimal.Decimal `json:"monthlySavings"`
	SavingsRate    decimal.Decimal `json:"savingsRate"`
}

// ToFinancialSummaryResponse converts a domain.FinancialSummary to its DTO
func ToFinancialSummaryResponse(s *domain.FinancialSummary) FinancialSummaryResponse {
	return FinancialSummaryResponse{
		CurrencyCode:   s.CurrencyCode,
		MonthlyGross:   s.MonthlyGross,
		MonthlySpend:   s.MonthlySpend,
		MonthlySavings: s.MonthlySavings,
		SavingsRate:    s.SavingsRate,
	}
}
