package services

import (
	"context"
	"sort"
	"time"

	"github.com/finwyse/fin_tracker_app/internal/core/domain"
	portssvc "github.com/finwyse/fin_tracker_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// reportingService is the expense aggregation engine: category totals in the
// display currency, windowed breakdowns, and the un-converted multi-currency
// trend series.
type reportingService struct {
	BaseService
	profile portssvc.ProfileReaderSvc
	fx      portssvc.FxSvcFacade
	now     func() time.Time
}

// ReportingServiceOption is a functional option for configuring the reporting service.
type ReportingServiceOption func(*reportingService)

// WithReportingClock overrides the time source, used by tests to pin "today".
func WithReportingClock(now func() time.Time) ReportingServiceOption {
	return func(s *reportingService) {
		s.now = now
	}
}

// NewReportingService creates the aggregation engine.
func NewReportingService(profile portssvc.ProfileReaderSvc, fx portssvc.FxSvcFacade, options ...ReportingServiceOption) portssvc.ReportingSvcFacade {
	svc := &reportingService{profile: profile, fx: fx, now: time.Now}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// inWindow reports whether the transaction date falls inside the window.
// Transactions whose date does not parse are excluded from windowed views but
// still count toward all-time totals.
func (s *reportingService) inWindow(txn domain.Transaction, window portssvc.ReportWindow) bool {
	if window.Days <= 0 && window.Month == "" {
		return true
	}
	date, err := txn.ParsedDate()
	if err != nil {
		return false
	}
	if window.Days > 0 {
		cutoff := s.now().AddDate(0, 0, -window.Days)
		return !date.Before(cutoff.Truncate(24 * time.Hour))
	}
	return date.Format(domain.MonthLayout) == window.Month
}

// CategoryTotals aggregates spend per category in the profile's display
// currency. Each transaction is normalized from its own currency tag, falling
// back to the profile currency when untagged. The category universe is the
// union of declared and actually-used categories, so a transaction tagged
// with a category the user later removed still contributes.
func (s *reportingService) CategoryTotals(ctx context.Context, window portssvc.ReportWindow, includeZero bool) ([]domain.CategoryTotal, error) {
	profile, err := s.profile.GetProfile(ctx)
	if err != nil {
		return nil, err
	}

	universe := profile.CategoryUniverse()
	totals := make(map[string]decimal.Decimal, len(universe))
	for _, c := range universe {
		totals[c] = decimal.Zero
	}

	for _, txn := range profile.Expenses {
		if !s.inWindow(txn, window) {
			continue
		}
		category := txn.Category
		if category == "" {
			category = domain.FallbackCategory
		}
		converted := s.fx.Convert(txn.Amount, txn.EffectiveCurrency(profile.CurrencyCode), profile.CurrencyCode)
		totals[category] = totals[category].Add(converted)
	}

	// Universe order is the first-encountered order, which makes the
	// descending sort below stable across calls.
	result := make([]domain.CategoryTotal, 0, len(universe))
	for _, c := range universe {
		if !includeZero && totals[c].IsZero() {
			continue
		}
		result = append(result, domain.CategoryTotal{Category: c, Total: totals[c]})
	}

	if !includeZero {
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Total.GreaterThan(result[j].Total)
		})
	}
	return result, nil
}

// CurrencyTrend returns per-currency monthly series over the trailing months
// window. Amounts are intentionally left in their original currencies.
func (s *reportingService) CurrencyTrend(ctx context.Context, months int) ([]domain.CurrencyTrend, error) {
	if months <= 0 {
		months = 6
	}
	profile, err := s.profile.GetProfile(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	// Month buckets oldest to newest, ending at the current month.
	buckets := make([]string, months)
	bucketIndex := make(map[string]int, months)
	for i := 0; i < months; i++ {
		m := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, i-months+1, 0)
		key := m.Format(domain.MonthLayout)
		buckets[i] = key
		bucketIndex[key] = i
	}

	perCurrency := make(map[string][]decimal.Decimal)
	currencyOrder := []string{}
	for _, txn := range profile.Expenses {
		date, err := txn.ParsedDate()
		if err != nil {
			continue
		}
		idx, ok := bucketIndex[date.Format(domain.MonthLayout)]
		if !ok {
			continue
		}
		code := txn.EffectiveCurrency(profile.CurrencyCode)
		series, seen := perCurrency[code]
		if !seen {
			series = make([]decimal.Decimal, months)
			for i := range series {
				series[i] = decimal.Zero
			}
			perCurrency[code] = series
			currencyOrder = append(currencyOrder, code)
		}
		series[idx] = series[idx].Add(txn.Amount)
	}

	sort.Strings(currencyOrder)
	result := make([]domain.CurrencyTrend, 0, len(currencyOrder))
	for _, code := range currencyOrder {
		trend := domain.CurrencyTrend{CurrencyCode: code, Series: make([]domain.MonthlyAmount, months)}
		for i, month := range buckets {
			trend.Series[i] = domain.MonthlyAmount{Month: month, Amount: perCurrency[code][i]}
		}
		result = append(result, trend)
	}
	return result, nil
}

// Summary computes the dashboard headline figures for the current calendar
// month in the display currency.
func (s *reportingService) Summary(ctx context.Context) (*domain.FinancialSummary, error) {
	profile, err := s.profile.GetProfile(ctx)
	if err != nil {
		return nil, err
	}

	currentMonth := s.now().Format(domain.MonthLayout)
	totals, err := s.CategoryTotals(ctx, portssvc.ReportWindow{Month: currentMonth}, false)
	if err != nil {
		return nil, err
	}

	spend := decimal.Zero
	for _, t := range totals {
		spend = spend.Add(t.Total)
	}

	gross := profile.Income.MonthlyGross()
	savings := gross.Sub(spend)
	rate := decimal.Zero
	if gross.IsPositive() {
		rate = savings.Div(gross).Mul(decimal.NewFromInt(100))
	}

	return &domain.FinancialSummary{
		CurrencyCode:   profile.CurrencyCode,
		MonthlyGross:   gross,
		MonthlySpend:   spend,
		MonthlySavings: savings,
		SavingsRate:    rate,
	}, nil
}
