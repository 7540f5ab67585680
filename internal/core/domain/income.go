package domain

import "github.com/shopspring/decimal"

// Income holds the user's annual income figures. Both fields are always
// present; an unset figure is zero, never null.
type Income struct {
	GrossAnnualSalary decimal.Decimal `json:"grossAnnualSalary"`
	OtherIncome       decimal.Decimal `json:"otherIncome"`
}

// TotalAnnual returns salary plus other income.
func (i Income) TotalAnnual() decimal.Decimal {
	return i.GrossAnnualSalary.Add(i.OtherIncome)
}

// MonthlyGross returns one twelfth of the total annual income.
func (i Income) MonthlyGross() decimal.Decimal {
	return i.TotalAnnual().Div(decimal.NewFromInt(12))
}
