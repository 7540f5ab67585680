package domain

import "github.com/shopspring/decimal"

// Profile is the aggregate root holding the single user's full financial
// state. It is the unit of persistence: every mutation serializes the whole
// profile, and it is deserialized once at startup.
type Profile struct {
	Income       Income                     `json:"income"`
	Expenses     []Transaction              `json:"expenses"`
	CurrencyCode string                     `json:"currency"` // home display currency
	Language     string                     `json:"language"` // locale code, e.g. "en"
	Budgets      map[string]decimal.Decimal `json:"budgets"`  // category -> monthly limit; 0 or absent means no limit
	Categories   []string                   `json:"categories"` // user-reorderable; order drives UI and default selection
	Goals        []SavingsGoal              `json:"goals"`
}

// ApplyDefaults fills in fields that older persisted blobs may lack, so a
// profile written before goals or budgets existed still loads cleanly.
func (p *Profile) ApplyDefaults() {
	if p.Budgets == nil {
		p.Budgets = map[string]decimal.Decimal{}
	}
	if p.Goals == nil {
		p.Goals = []SavingsGoal{}
	}
	if p.Expenses == nil {
		p.Expenses = []Transaction{}
	}
	if p.Categories == nil {
		p.Categories = []string{}
	}
	if p.CurrencyCode == "" {
		p.CurrencyCode = "USD"
	}
	if p.Language == "" {
		p.Language = "en"
	}
}

// CategoryUniverse returns the union of the declared category list and every
// category actually used by a transaction, preserving declared order first and
// appending used-but-undeclared categories in first-encountered order. This is
// the single derived view consumed everywhere category lists are needed.
func (p *Profile) CategoryUniverse() []string {
	seen := make(map[string]bool, len(p.Categories))
	universe := make([]string, 0, len(p.Categories))
	for _, c := range p.Categories {
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		universe = append(universe, c)
	}
	for _, txn := range p.Expenses {
		c := txn.Category
		if c == "" {
			c = FallbackCategory
		}
		if !seen[c] {
			seen[c] = true
			universe = append(universe, c)
		}
	}
	return universe
}

// HasCategory reports whether name is in the declared category list.
func (p *Profile) HasCategory(name string) bool {
	for _, c := range p.Categories {
		if c == name {
			return true
		}
	}
	return false
}

// FindGoal returns the goal with the given ID, or nil.
func (p *Profile) FindGoal(goalID string) *SavingsGoal {
	for i := range p.Goals {
		if p.Goals[i].GoalID == goalID {
			return &p.Goals[i]
		}
	}
	return nil
}
