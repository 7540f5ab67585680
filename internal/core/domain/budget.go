package domain

import "github.com/shopspring/decimal"

// BudgetStatus classifies spend against a monthly limit for presentation.
type BudgetStatus string

const (
	BudgetOver    BudgetStatus = "over"    // percentage > 100
	BudgetWarning BudgetStatus = "warning" // 80 < percentage <= 100
	BudgetOK      BudgetStatus = "ok"      // percentage <= 80
	BudgetUnset   BudgetStatus = "unset"   // no limit configured
)

// BudgetEvaluation is the result of comparing a category's aggregated spend
// against its configured monthly limit, in the profile's display currency.
type BudgetEvaluation struct {
	Category   string          `json:"category"`
	Limit      decimal.Decimal `json:"limit"`
	Spend      decimal.Decimal `json:"spend"`
	Percentage decimal.Decimal `json:"percentage"` // 0 when no limit set
	Status     BudgetStatus    `json:"status"`
	Remaining  decimal.Decimal `json:"remaining"` // max(0, limit-spend)
	Overage    decimal.Decimal `json:"overage"`   // spend-limit when over, else 0
}

// GoalEvaluation is the display-oriented view of a savings goal.
type GoalEvaluation struct {
	Goal            SavingsGoal     `json:"goal"`
	Progress        decimal.Decimal `json:"progress"` // percent, clamped to 100 for display
	MonthsRemaining int             `json:"monthsRemaining"`
	// MonthlyNeed is the contribution required each remaining month to hit the
	// deadline. Present only when a deadline is set; 0 when the deadline has
	// passed (due now, not an error).
	MonthlyNeed *decimal.Decimal `json:"monthlyNeed,omitempty"`
}
