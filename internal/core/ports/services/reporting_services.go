package services

import (
	"context"

	"github.com/finwyse/fin_tracker_app/internal/core/domain"
)

// ReportWindow restricts an aggregation to a time window. The zero value
// means all time. Days takes precedence over Month when both are set.
type ReportWindow struct {
	Days  int    // trailing window, e.g. 7
	Month string // named calendar month, domain.MonthLayout
}

// ReportingSvcFacade is the expense aggregation engine.
type ReportingSvcFacade interface {
	// CategoryTotals aggregates spend per category in the display currency,
	// normalizing each transaction from its own currency tag. The category
	// universe is the union of declared and actually-used categories. When
	// includeZero is false, zero-total categories are dropped and the result
	// is sorted descending by amount (stable); when true, all categories are
	// returned in universe order for budget-manager display.
	CategoryTotals(ctx context.Context, window ReportWindow, includeZero bool) ([]domain.CategoryTotal, error)

	// CurrencyTrend returns per-currency monthly series over the trailing
	// months window. Amounts are not converted.
	CurrencyTrend(ctx context.Context, months int) ([]domain.CurrencyTrend, error)

	// Summary computes the dashboard headline figures for the current
	// calendar month.
	Summary(ctx context.Context) (*domain.FinancialSummary, error)
}
