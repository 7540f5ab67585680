package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FallbackCategory is the category assigned to transactions whose own category
// is empty or no longer declared on the profile.
const FallbackCategory = "Other"

// Transaction is a single dated, categorized expense entry.
// Transactions are never mutated in place: an edit is modeled as a delete
// followed by a recreate, so the stored record is immutable once written.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // UUID
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`             // non-negative
	Category      string          `json:"category"`           // one of the profile's categories or "Other"
	Date          string          `json:"date"`               // calendar date, DateLayout
	CurrencyCode  string          `json:"currency,omitempty"` // ISO 4217; empty means the profile currency
	AuditFields
}

// EffectiveCurrency resolves the transaction's currency, falling back to the
// profile's home currency for untagged records.
func (t Transaction) EffectiveCurrency(profileCurrency string) string {
	if t.CurrencyCode == "" {
		return profileCurrency
	}
	return t.CurrencyCode
}

// ParsedDate parses the transaction date. The date is stored as an opaque
// string (CSV imports keep whatever the row carried), so callers that need
// calendar arithmetic must be prepared for a parse failure.
func (t Transaction) ParsedDate() (time.Time, error) {
	return time.Parse(DateLayout, t.Date)
}
