package dto

import (
	"github.com/finwyse/fin_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpdateIncomeRequest defines the data needed to replace the income figures.
// Both fields are full replacements; a missing figure is zero, not "unchanged".
type UpdateIncomeRequest struct {
	GrossAnnualSalary decimal.Decimal `json:"grossAnnualSalary"`
	OtherIncome       decimal.Decimal `json:"otherIncome"`
}

// SetCurrencyRequest defines the data needed to change the display currency.
type SetCurrencyRequest struct {
	Currency string `json:"currency" binding:"required,uppercase,len=3"`
}

// SetLanguageRequest defines the data needed to change the UI language.
type SetLanguageRequest struct {
	Language string `json:"language" binding:"required,min=2,max=8"`
}

// CreateCategoryRequest defines the data needed to declare a new category.
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// RenameCategoryRequest defines the data needed to rename a category.
type RenameCategoryRequest struct {
	NewName string `json:"newName" binding:"required"`
}

// ReorderCategoriesRequest carries the full category list in its new order.
// It must be a permutation of the currently declared categories.
type ReorderCategoriesRequest struct {
	Categories []string `json:"categories" binding:"required,min=1"`
}

// IncomeResponse defines the data returned for the income figures.
type IncomeResponse struct {
	GrossAnnualSalary decimal.Decimal `json:"grossAnnualSalary"`
	OtherIncome       decimal.Decimal `json:"otherIncome"`
	TotalAnnual       decimal.Decimal `json:"totalAnnual"`
}

// ProfileResponse defines the data returned for the whole profile.
type ProfileResponse struct {
	Income       IncomeResponse             `json:"income"`
	Currency     string                     `json:"currency"`
	Language     string                     `json:"language"`
	Categories   []string                   `json:"categories"`
	Budgets      map[string]decimal.Decimal `json:"budgets"`
	Goals        []GoalResponse             `json:"goals"`
	ExpenseCount int                        `json:"expenseCount"`
}

// ToProfileResponse converts a domain.Profile to ProfileResponse DTO
func ToProfileResponse(p *domain.Profile) ProfileResponse {
	return ProfileResponse{
		Income: IncomeResponse{
			GrossAnnualSalary: p.Income.GrossAnnualSalary,
			OtherIncome:       p.Income.OtherIncome,
			TotalAnnual:       p.Income.TotalAnnual(),
		},
		Currency:     p.CurrencyCode,
		Language:     p.Language,
		Categories:   p.Categories,
		Budgets:      p.Budgets,
		Goals:        ToListGoalResponse(p.Goals),
		ExpenseCount: len(p.Expenses),
	}
}
