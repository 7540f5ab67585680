package dto

import "github.com/finwyse/fin_tracker_app/internal/core/domain"

// CurrencyResponse defines the data returned for a supported currency.
type CurrencyResponse struct {
	CurrencyCode string `json:"currencyCode"`
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
	Precision    int    `json:"precision"`
}

// ToListCurrencyResponse converts a slice of domain.Currency to CurrencyResponse DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i, c := range currencies {
		res[i] = CurrencyResponse{
			CurrencyCode: c.CurrencyCode,
			Symbol:       c.Symbol,
			Name:         c.Name,
			Precision:    c.Precision,
		}
	}
	return res
}
