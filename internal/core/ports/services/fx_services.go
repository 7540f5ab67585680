package services

import (
	"github.com/finwyse/fin_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FxSvcFacade converts amounts between currencies through a static
// rate-to-base table. Conversion is pure and never fails: an unrecognized
// code is treated as already being in the base unit (rate 1.0), which keeps
// historical data renderable when a stored code is unknown.
type FxSvcFacade interface {
	// Convert returns amount expressed in the target currency. Identity when
	// from equals to. No rounding is applied; rounding is a display concern.
	Convert(amount decimal.Decimal, from, to string) decimal.Decimal

	// Rate returns the rate-to-base for code, 1.0 for unknown codes.
	Rate(code string) decimal.Decimal

	// ListCurrencies returns the currencies in the rate table.
	ListCurrencies() []domain.Currency
}
