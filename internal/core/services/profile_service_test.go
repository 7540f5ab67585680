package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/finwyse/fin_tracker_app/internal/apperrors"
	"github.com/finwyse/fin_tracker_app/internal/core/domain"
	"github.com/finwyse/fin_tracker_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ProfileServiceTestSuite struct {
	suite.Suite
	env *serviceEnv
}

func (suite *ProfileServiceTestSuite) SetupTest() {
	suite.env = newServiceEnv(fixtureProfile())
}

func (suite *ProfileServiceTestSuite) TestGetProfile_SeedsSampleDataWhenEmpty() {
	env := newServiceEnv(nil)

	profile, err := env.profile.GetProfile(context.Background())

	suite.Require().NoError(err)
	suite.Require().NotNil(profile)
	suite.Equal("USD", profile.CurrencyCode)
	suite.NotEmpty(profile.Categories)
	suite.NotEmpty(profile.Expenses, "a fresh install starts with sample transactions")
	suite.Equal(1, env.profileRepo.saves, "the seeded profile is persisted immediately")
}

func (suite *ProfileServiceTestSuite) TestGetProfile_CorruptStateFallsBackToSample() {
	env := newServiceEnv(nil)
	env.profileRepo.loadErr = fmt.Errorf("failed to decode profile: %w", apperrors.ErrCorruptState)

	profile, err := env.profile.GetProfile(context.Background())

	suite.Require().NoError(err)
	suite.Require().NotNil(profile)
	suite.NotEmpty(profile.Categories)

	// The replacement profile is saved, so the next load succeeds normally.
	reloaded, err := env.profile.GetProfile(context.Background())
	suite.Require().NoError(err)
	suite.Equal(profile.CurrencyCode, reloaded.CurrencyCode)
}

func (suite *ProfileServiceTestSuite) TestUpdateIncome() {
	ctx := context.Background()

	profile, err := suite.env.profile.UpdateIncome(ctx, dto.UpdateIncomeRequest{
		GrossAnnualSalary: decimal.NewFromInt(72000),
		OtherIncome:       decimal.NewFromInt(3000),
	})

	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(75000).Equal(profile.Income.TotalAnnual()))
	suite.Equal(domain.AuditIncomeUpdated, suite.env.lastAuditAction())
}

func (suite *ProfileServiceTestSuite) TestUpdateIncome_RejectsNegative() {
	_, err := suite.env.profile.UpdateIncome(context.Background(), dto.UpdateIncomeRequest{
		GrossAnnualSalary: decimal.NewFromInt(-1),
	})

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
}

func (suite *ProfileServiceTestSuite) TestSetCurrency_NormalizesCode() {
	profile, err := suite.env.profile.SetCurrency(context.Background(), " eur ")

	suite.Require().NoError(err)
	suite.Equal("EUR", profile.CurrencyCode)
	suite.Equal(domain.AuditCurrencyChanged, suite.env.lastAuditAction())
}

func (suite *ProfileServiceTestSuite) TestSetCurrency_RejectsBadCode() {
	_, err := suite.env.profile.SetCurrency(context.Background(), "EURO")

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
}

func (suite *ProfileServiceTestSuite) TestSetLanguage() {
	profile, err := suite.env.profile.SetLanguage(context.Background(), "hi")

	suite.Require().NoError(err)
	suite.Equal("hi", profile.Language)
	suite.Equal(domain.AuditLanguageChanged, suite.env.lastAuditAction())
}

func (suite *ProfileServiceTestSuite) TestAddCategory() {
	profile, err := suite.env.profile.AddCategory(context.Background(), "Pets")

	suite.Require().NoError(err)
	suite.Contains(profile.Categories, "Pets")
	suite.Equal(domain.AuditCategoryAdded, suite.env.lastAuditAction())
}

func (suite *ProfileServiceTestSuite) TestAddCategory_DuplicateIsCaseInsensitive() {
	_, err := suite.env.profile.AddCategory(context.Background(), "  food ")

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrDuplicate))
}

func (suite *ProfileServiceTestSuite) TestRenameCategory_MovesBudget() {
	ctx := context.Background()

	_, err := suite.env.profile.MutateProfile(ctx, func(p *domain.Profile) error {
		p.Budgets["Food"] = decimal.NewFromInt(500)
		return nil
	})
	suite.Require().NoError(err)

	profile, err := suite.env.profile.RenameCategory(ctx, "Food", "Groceries")

	suite.Require().NoError(err)
	suite.Contains(profile.Categories, "Groceries")
	suite.NotContains(profile.Categories, "Food")

	_, hadOld := profile.Budgets["Food"]
	suite.False(hadOld)
	suite.True(decimal.NewFromInt(500).Equal(profile.Budgets["Groceries"]))

	// Transactions keep their historical tag.
	suite.Equal("Food", profile.Expenses[1].Category)

	suite.Equal(domain.AuditCategoryRenamed, suite.env.lastAuditAction())
}

func (suite *ProfileServiceTestSuite) TestRenameCategory_Errors() {
	ctx := context.Background()

	_, err := suite.env.profile.RenameCategory(ctx, "Yachts", "Boats")
	suite.True(errors.Is(err, apperrors.ErrNotFound))

	_, err = suite.env.profile.RenameCategory(ctx, "Food", "housing")
	suite.True(errors.Is(err, apperrors.ErrDuplicate))
}

func (suite *ProfileServiceTestSuite) TestRemoveCategory_DropsBudget() {
	ctx := context.Background()

	_, err := suite.env.profile.MutateProfile(ctx, func(p *domain.Profile) error {
		p.Budgets["Food"] = decimal.NewFromInt(500)
		return nil
	})
	suite.Require().NoError(err)

	profile, err := suite.env.profile.RemoveCategory(ctx, "Food")

	suite.Require().NoError(err)
	suite.NotContains(profile.Categories, "Food")
	_, hasBudget := profile.Budgets["Food"]
	suite.False(hasBudget)
	suite.Equal(domain.AuditCategoryRemoved, suite.env.lastAuditAction())
}

func (suite *ProfileServiceTestSuite) TestReorderCategories() {
	ctx := context.Background()

	current, err := suite.env.profile.GetProfile(ctx)
	suite.Require().NoError(err)

	reversed := make([]string, len(current.Categories))
	for i, c := range current.Categories {
		reversed[len(reversed)-1-i] = c
	}

	profile, err := suite.env.profile.ReorderCategories(ctx, reversed)

	suite.Require().NoError(err)
	suite.Equal(reversed, profile.Categories)
	suite.Equal(domain.AuditCategoryReorder, suite.env.lastAuditAction())
}

func (suite *ProfileServiceTestSuite) TestReorderCategories_MustBePermutation() {
	ctx := context.Background()

	_, err := suite.env.profile.ReorderCategories(ctx, []string{"Food"})
	suite.True(errors.Is(err, apperrors.ErrValidation))

	current, err := suite.env.profile.GetProfile(ctx)
	suite.Require().NoError(err)

	wrong := append([]string(nil), current.Categories...)
	wrong[0] = "Yachts"
	_, err = suite.env.profile.ReorderCategories(ctx, wrong)
	suite.True(errors.Is(err, apperrors.ErrValidation))
}

func (suite *ProfileServiceTestSuite) TestResetProfile() {
	ctx := context.Background()

	_, err := suite.env.profile.AddCategory(ctx, "Pets")
	suite.Require().NoError(err)

	profile, err := suite.env.profile.ResetProfile(ctx)

	suite.Require().NoError(err)
	suite.NotContains(profile.Categories, "Pets")
	suite.Equal(domain.AuditProfileReset, suite.env.lastAuditAction())
}

func TestProfileServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProfileServiceTestSuite))
}
