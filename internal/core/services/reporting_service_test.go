package services_test

import (
	"context"
	"testing"

	"github.com/finwyse/fin_tracker_app/internal/core/domain"
	portssvc "github.com/finwyse/fin_tracker_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	env *serviceEnv
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.env = newServiceEnv(fixtureProfile())
}

func (suite *ReportingServiceTestSuite) TestCategoryTotals_SortedDescending() {
	ctx := context.Background()

	totals, err := suite.env.reporting.CategoryTotals(ctx, portssvc.ReportWindow{}, false)

	suite.Require().NoError(err)
	suite.Require().Len(totals, 4)
	suite.Equal("Housing", totals[0].Category)
	suite.True(decimal.NewFromInt(1500).Equal(totals[0].Total))
	suite.Equal("Food", totals[1].Category)
	suite.Equal("Transport", totals[2].Category)
	suite.Equal("Entertainment", totals[3].Category)
}

func (suite *ReportingServiceTestSuite) TestCategoryTotals_IncludeZeroKeepsUniverseOrder() {
	ctx := context.Background()

	totals, err := suite.env.reporting.CategoryTotals(ctx, portssvc.ReportWindow{}, true)

	suite.Require().NoError(err)
	suite.Require().Len(totals, 8)
	suite.Equal("Housing", totals[0].Category)
	suite.Equal("Shopping", totals[4].Category)
	suite.True(totals[4].Total.IsZero())
	suite.Equal("Other", totals[7].Category)
}

func (suite *ReportingServiceTestSuite) TestCategoryTotals_RemovedCategoryStillCounted() {
	ctx := context.Background()

	_, err := suite.env.profile.RemoveCategory(ctx, "Entertainment")
	suite.Require().NoError(err)

	totals, err := suite.env.reporting.CategoryTotals(ctx, portssvc.ReportWindow{}, false)
	suite.Require().NoError(err)

	found := false
	for _, t := range totals {
		if t.Category == "Entertainment" {
			found = true
			suite.True(decimal.NewFromInt(15).Equal(t.Total))
		}
	}
	suite.True(found, "spend tagged with a removed category must stay visible")
}

func (suite *ReportingServiceTestSuite) TestCategoryTotals_NormalizesForeignCurrency() {
	ctx := context.Background()

	_, err := suite.env.profile.MutateProfile(ctx, func(p *domain.Profile) error {
		txn := fixtureTxn("Hotel in Paris", "100", "Other", testNow.Format(domain.DateLayout))
		txn.CurrencyCode = "EUR"
		p.Expenses = append(p.Expenses, txn)
		return nil
	})
	suite.Require().NoError(err)

	totals, err := suite.env.reporting.CategoryTotals(ctx, portssvc.ReportWindow{}, false)
	suite.Require().NoError(err)

	for _, t := range totals {
		if t.Category == "Other" {
			// 100 EUR at the fixed 1.09 rate is 109 USD.
			suite.True(decimal.NewFromInt(109).Equal(t.Total), "got %s", t.Total)
			return
		}
	}
	suite.Fail("expected an Other total")
}

func (suite *ReportingServiceTestSuite) TestCategoryTotals_DaysWindowExcludesOldSpend() {
	ctx := context.Background()

	_, err := suite.env.profile.MutateProfile(ctx, func(p *domain.Profile) error {
		old := testNow.AddDate(0, 0, -30).Format(domain.DateLayout)
		p.Expenses = append(p.Expenses, fixtureTxn("Old purchase", "999", "Shopping", old))
		return nil
	})
	suite.Require().NoError(err)

	totals, err := suite.env.reporting.CategoryTotals(ctx, portssvc.ReportWindow{Days: 7}, false)
	suite.Require().NoError(err)

	for _, t := range totals {
		suite.NotEqual("Shopping", t.Category, "a 30-day-old purchase must fall outside a 7-day window")
	}
}

func (suite *ReportingServiceTestSuite) TestSummary() {
	ctx := context.Background()

	summary, err := suite.env.reporting.Summary(ctx)

	suite.Require().NoError(err)
	suite.Equal("USD", summary.CurrencyCode)
	suite.True(decimal.NewFromInt(5000).Equal(summary.MonthlyGross), "got %s", summary.MonthlyGross)
	suite.True(decimal.NewFromInt(2265).Equal(summary.MonthlySpend), "got %s", summary.MonthlySpend)
	suite.True(decimal.NewFromInt(2735).Equal(summary.MonthlySavings))
	suite.True(decimal.RequireFromString("54.7").Equal(summary.SavingsRate), "got %s", summary.SavingsRate)
}

func (suite *ReportingServiceTestSuite) TestSummary_ZeroIncome() {
	ctx := context.Background()

	_, err := suite.env.profile.MutateProfile(ctx, func(p *domain.Profile) error {
		p.Income = domain.Income{GrossAnnualSalary: decimal.Zero, OtherIncome: decimal.Zero}
		return nil
	})
	suite.Require().NoError(err)

	summary, err := suite.env.reporting.Summary(ctx)
	suite.Require().NoError(err)
	suite.True(summary.SavingsRate.IsZero(), "savings rate must be 0 when gross is 0")
	suite.True(summary.MonthlySavings.IsNegative())
}

func (suite *ReportingServiceTestSuite) TestCurrencyTrend() {
	ctx := context.Background()

	_, err := suite.env.profile.MutateProfile(ctx, func(p *domain.Profile) error {
		lastMonth := testNow.AddDate(0, -1, 0).Format(domain.DateLayout)
		eur := fixtureTxn("Flight", "200", "Other", lastMonth)
		eur.CurrencyCode = "EUR"
		p.Expenses = append(p.Expenses, eur)
		return nil
	})
	suite.Require().NoError(err)

	trends, err := suite.env.reporting.CurrencyTrend(ctx, 2)

	suite.Require().NoError(err)
	suite.Require().Len(trends, 2)
	suite.Equal("EUR", trends[0].CurrencyCode)
	suite.Equal("USD", trends[1].CurrencyCode)

	suite.Require().Len(trends[0].Series, 2)
	suite.Equal("2025-02", trends[0].Series[0].Month)
	suite.Equal("2025-03", trends[0].Series[1].Month)
	// EUR amounts stay in EUR; the trend view never converts.
	suite.True(decimal.NewFromInt(200).Equal(trends[0].Series[0].Amount))
	suite.True(trends[0].Series[1].Amount.IsZero())
	suite.True(decimal.NewFromInt(2265).Equal(trends[1].Series[1].Amount))
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
