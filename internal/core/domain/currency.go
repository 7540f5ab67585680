package domain

// Currency represents a supported display currency.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // e.g. "USD"
	Symbol       string `json:"symbol"`       // e.g. "$"
	Name         string `json:"name"`         // e.g. "US Dollar"
	Precision    int    `json:"precision"`    // display decimal places
}
