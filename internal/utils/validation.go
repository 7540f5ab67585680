package utils

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CategoryNameResult is the typed outcome of category-name validation, kept
// independent of any HTTP framework so services can validate directly.
type CategoryNameResult struct {
	Valid  bool
	Reason string
}

var (
	validate = validator.New()

	// Letters, digits, spaces and a few separators. Mirrors what the expense
	// sheet accepts for user-defined category labels.
	categoryNamePattern = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N} &/\-]*$`)
)

// ValidateCategoryName checks a proposed category name. It does not check
// uniqueness; that depends on the profile and is enforced at the mutation
// entry point.
func ValidateCategoryName(name string) CategoryNameResult {
	trimmed := strings.TrimSpace(name)
	if err := validate.Var(trimmed, "required,min=1,max=24"); err != nil {
		return CategoryNameResult{Valid: false, Reason: "category name must be between 1 and 24 characters"}
	}
	if !categoryNamePattern.MatchString(trimmed) {
		return CategoryNameResult{Valid: false, Reason: "category name contains invalid characters"}
	}
	return CategoryNameResult{Valid: true}
}
