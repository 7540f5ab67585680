package services

import (
	"sort"

	"github.com/finwyse/fin_tracker_app/internal/core/domain"
	portssvc "github.com/finwyse/fin_tracker_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// fxService converts amounts between currencies through a static
// rate-to-USD-base table. Rates are fixed by design: the application has no
// live exchange-rate source and the figures it produces are illustrative.
type fxService struct {
	rates      map[string]decimal.Decimal
	currencies []domain.Currency
}

// baseRates maps a currency code to its fixed rate against the USD base unit.
var baseRates = map[string]string{
	"USD": "1",
	"EUR": "1.09",
	"GBP": "1.27",
	"INR": "0.012",
	"JPY": "0.0067",
	"AUD": "0.66",
	"CAD": "0.74",
	"CHF": "1.13",
	"CNY": "0.14",
	"SGD": "0.74",
}

var currencyDetails = map[string]domain.Currency{
	"USD": {CurrencyCode: "USD", Symbol: "$", Name: "US Dollar", Precision: 2},
	"EUR": {CurrencyCode: "EUR", Symbol: "€", Name: "Euro", Precision: 2},
	"GBP": {CurrencyCode: "GBP", Symbol: "£", Name: "British Pound", Precision: 2},
	"INR": {CurrencyCode: "INR", Symbol: "₹", Name: "Indian Rupee", Precision: 2},
	"JPY": {CurrencyCode: "JPY", Symbol: "¥", Name: "Japanese Yen", Precision: 0},
	"AUD": {CurrencyCode: "AUD", Symbol: "A$", Name: "Australian Dollar", Precision: 2},
	"CAD": {CurrencyCode: "CAD", Symbol: "C$", Name: "Canadian Dollar", Precision: 2},
	"CHF": {CurrencyCode: "CHF", Symbol: "Fr", Name: "Swiss Franc", Precision: 2},
	"CNY": {CurrencyCode: "CNY", Symbol: "¥", Name: "Chinese Yuan", Precision: 2},
	"SGD": {CurrencyCode: "SGD", Symbol: "S$", Name: "Singapore Dollar", Precision: 2},
}

// NewFxService creates the currency normalizer backed by the static rate table.
func NewFxService() portssvc.FxSvcFacade {
	svc := &fxService{rates: make(map[string]decimal.Decimal, len(baseRates))}
	for code, rate := range baseRates {
		svc.rates[code] = decimal.RequireFromString(rate)
	}
	codes := make([]string, 0, len(currencyDetails))
	for code := range currencyDetails {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		svc.currencies = append(svc.currencies, currencyDetails[code])
	}
	return svc
}

var _ portssvc.FxSvcFacade = (*fxService)(nil)

// Rate returns the rate-to-base for code. Unknown codes fall back to 1.0:
// the amount is treated as already being in the base unit so historical data
// with an unrecognized code stays renderable.
func (s *fxService) Rate(code string) decimal.Decimal {
	if rate, ok := s.rates[code]; ok {
		return rate
	}
	return decimal.NewFromInt(1)
}

// Convert expresses amount in the target currency via the base unit.
// Identity when from equals to, so the common case carries no drift.
func (s *fxService) Convert(amount decimal.Decimal, from, to string) decimal.Decimal {
	if from == to {
		return amount
	}
	return amount.Mul(s.Rate(from)).Div(s.Rate(to))
}

// ListCurrencies returns the supported currencies in code order.
func (s *fxService) ListCurrencies() []domain.Currency {
	out := make([]domain.Currency, len(s.currencies))
	copy(out, s.currencies)
	return out
}
