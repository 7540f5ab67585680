package domain

import "github.com/shopspring/decimal"

// CategoryTotal is a category's aggregated spend in the display currency.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// MonthlyAmount is one bucket of a per-currency trend series.
type MonthlyAmount struct {
	Month  string          `json:"month"` // MonthLayout
	Amount decimal.Decimal `json:"amount"`
}

// CurrencyTrend is a per-currency monthly series over a trailing window.
// Amounts are intentionally not converted: the series shows raw multi-currency
// figures side by side for trend visualization, not a blended total.
type CurrencyTrend struct {
	CurrencyCode string          `json:"currencyCode"`
	Series       []MonthlyAmount `json:"series"`
}

// FinancialSummary is the dashboard headline view, in the display currency.
type FinancialSummary struct {
	CurrencyCode   string          `json:"currencyCode"`
	MonthlyGross   decimal.Decimal `json:"monthlyGross"`
	MonthlySpend   decimal.Decimal `json:"monthlySpend"` // current calendar month
	MonthlySavings decimal.Decimal `json:"monthlySavings"`
	SavingsRate    decimal.Decimal `json:"savingsRate"` // percent, 0 when gross is 0
}

// SIPProjection is the illustrative compound-growth projection for a fixed
// monthly contribution.
type SIPProjection struct {
	MonthlyContribution decimal.Decimal `json:"monthlyContribution"`
	AnnualRate          decimal.Decimal `json:"annualRate"`
	HorizonYears        int             `json:"horizonYears"`
	FutureValue         decimal.Decimal `json:"futureValue"`
	Invested            decimal.Decimal `json:"invested"`
	WealthGain          decimal.Decimal `json:"wealthGain"`
}

// TaxEstimate is the simplified progressive-bracket estimate. It is
// illustrative only and must be labeled as such wherever it is shown.
type TaxEstimate struct {
	AnnualIncome  decimal.Decimal `json:"annualIncome"`
	Tax           decimal.Decimal `json:"tax"`
	EffectiveRate decimal.Decimal `json:"effectiveRate"` // percent, 0 when income is 0
	NetIncome     decimal.Decimal `json:"netIncome"`
}
