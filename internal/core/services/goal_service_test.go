package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/finwyse/fin_tracker_app/internal/apperrors"
	"github.com/finwyse/fin_tracker_app/internal/core/domain"
	portssvc "github.com/finwyse/fin_tracker_app/internal/core/ports/services"
	"github.com/finwyse/fin_tracker_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

func TestMonthsRemaining(t *testing.T) {
	now := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 8, services.MonthsRemaining(time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC), now))
	assert.Equal(t, 0, services.MonthsRemaining(time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC), now))
	assert.Equal(t, -2, services.MonthsRemaining(time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), now))
}

func TestEvaluateGoal(t *testing.T) {
	goal := domain.SavingsGoal{
		Name:         "Emergency fund",
		TargetAmount: decimal.NewFromInt(5000),
		SavedAmount:  decimal.NewFromInt(1000),
		Deadline:     "2025-11-01",
		Category:     domain.GoalEmergency,
	}

	eval := services.EvaluateGoal(goal, testNow)

	assert.True(t, decimal.NewFromInt(20).Equal(eval.Progress))
	assert.Equal(t, 8, eval.MonthsRemaining)
	if assert.NotNil(t, eval.MonthlyNeed) {
		assert.True(t, decimal.NewFromInt(500).Equal(*eval.MonthlyNeed), "got %s", eval.MonthlyNeed)
	}
}

func TestEvaluateGoal_Overfunded(t *testing.T) {
	goal := domain.SavingsGoal{
		Name:         "Gadget",
		TargetAmount: decimal.NewFromInt(5000),
		SavedAmount:  decimal.NewFromInt(6000),
		Deadline:     "2025-11-01",
	}

	eval := services.EvaluateGoal(goal, testNow)

	assert.True(t, decimal.NewFromInt(100).Equal(eval.Progress), "progress caps at 100")
	if assert.NotNil(t, eval.MonthlyNeed) {
		assert.True(t, eval.MonthlyNeed.IsZero(), "no shortfall means nothing more per month")
	}
}

func TestEvaluateGoal_PastDeadline(t *testing.T) {
	goal := domain.SavingsGoal{
		Name:         "Trip",
		TargetAmount: decimal.NewFromInt(2000),
		SavedAmount:  decimal.NewFromInt(100),
		Deadline:     "2025-01-01",
	}

	eval := services.EvaluateGoal(goal, testNow)

	assert.Equal(t, -2, eval.MonthsRemaining)
	if assert.NotNil(t, eval.MonthlyNeed) {
		assert.True(t, eval.MonthlyNeed.IsZero(), "an overdue goal is due now, not a division by zero")
	}
}

func TestEvaluateGoal_NoDeadline(t *testing.T) {
	goal := domain.SavingsGoal{
		Name:         "Someday house",
		TargetAmount: decimal.NewFromInt(100000),
		SavedAmount:  decimal.NewFromInt(5000),
	}

	eval := services.EvaluateGoal(goal, testNow)

	assert.Nil(t, eval.MonthlyNeed)
	assert.Equal(t, 0, eval.MonthsRemaining)
	assert.True(t, decimal.NewFromInt(5).Equal(eval.Progress))
}

type GoalServiceTestSuite struct {
	suite.Suite
	env     *serviceEnv
	service portssvc.GoalSvcFacade
}

func (suite *GoalServiceTestSuite) SetupTest() {
	suite.env = newServiceEnv(fixtureProfile())
	suite.service = services.NewGoalService(suite.env.profile, suite.env.audit, services.WithGoalClock(testClock))
}

func (suite *GoalServiceTestSuite) TestCreateGoal_Success() {
	ctx := context.Background()

	goal, err := suite.service.CreateGoal(ctx, portssvc.CreateGoalParams{
		Name:         "  Emergency fund  ",
		TargetAmount: decimal.NewFromInt(5000),
		SavedAmount:  decimal.NewFromInt(1000),
		Deadline:     "2025-11-01",
		Category:     domain.GoalEmergency,
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(goal)
	suite.NotEmpty(goal.GoalID)
	suite.Equal("Emergency fund", goal.Name)
	suite.Equal(domain.GoalEmergency, goal.Category)
	suite.Equal(domain.AuditGoalAdded, suite.env.lastAuditAction())
}

func (suite *GoalServiceTestSuite) TestCreateGoal_DefaultsCategoryToOther() {
	goal, err := suite.service.CreateGoal(context.Background(), portssvc.CreateGoalParams{
		Name:         "Rainy day",
		TargetAmount: decimal.NewFromInt(100),
	})

	suite.Require().NoError(err)
	suite.Equal(domain.GoalOther, goal.Category)
}

func (suite *GoalServiceTestSuite) TestCreateGoal_Validation() {
	ctx := context.Background()

	cases := []portssvc.CreateGoalParams{
		{Name: "   ", TargetAmount: decimal.NewFromInt(100)},
		{Name: "No target", TargetAmount: decimal.Zero},
		{Name: "Negative saved", TargetAmount: decimal.NewFromInt(100), SavedAmount: decimal.NewFromInt(-1)},
		{Name: "Bad deadline", TargetAmount: decimal.NewFromInt(100), Deadline: "next year"},
		{Name: "Bad category", TargetAmount: decimal.NewFromInt(100), Category: domain.GoalCategory("Yolo")},
	}
	for _, params := range cases {
		_, err := suite.service.CreateGoal(ctx, params)
		suite.Require().Error(err, "params %+v", params)
		suite.True(errors.Is(err, apperrors.ErrValidation), "params %+v", params)
	}
}

func (suite *GoalServiceTestSuite) TestUpdateGoal() {
	ctx := context.Background()

	goal, err := suite.service.CreateGoal(ctx, portssvc.CreateGoalParams{
		Name:         "Trip",
		TargetAmount: decimal.NewFromInt(2000),
	})
	suite.Require().NoError(err)

	newName := "Trip to Japan"
	newTarget := decimal.NewFromInt(3000)
	updated, err := suite.service.UpdateGoal(ctx, goal.GoalID, portssvc.UpdateGoalParams{
		Name:         &newName,
		TargetAmount: &newTarget,
	})

	suite.Require().NoError(err)
	suite.Equal("Trip to Japan", updated.Name)
	suite.True(newTarget.Equal(updated.TargetAmount))
	suite.True(updated.SavedAmount.IsZero(), "untouched fields stay as they were")
}

func (suite *GoalServiceTestSuite) TestUpdateGoal_NotFound() {
	_, err := suite.service.UpdateGoal(context.Background(), "missing", portssvc.UpdateGoalParams{})
	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrNotFound))
}

func (suite *GoalServiceTestSuite) TestContribute() {
	ctx := context.Background()

	goal, err := suite.service.CreateGoal(ctx, portssvc.CreateGoalParams{
		Name:         "Gadget",
		TargetAmount: decimal.NewFromInt(500),
		SavedAmount:  decimal.NewFromInt(450),
	})
	suite.Require().NoError(err)

	updated, err := suite.service.Contribute(ctx, goal.GoalID, decimal.NewFromInt(100))

	suite.Require().NoError(err)
	// Contributions may push the saved amount past the target.
	suite.True(decimal.NewFromInt(550).Equal(updated.SavedAmount))
	suite.Equal(domain.AuditGoalContribution, suite.env.lastAuditAction())
}

func (suite *GoalServiceTestSuite) TestContribute_RejectsNonPositive() {
	ctx := context.Background()

	goal, err := suite.service.CreateGoal(ctx, portssvc.CreateGoalParams{
		Name:         "Gadget",
		TargetAmount: decimal.NewFromInt(500),
	})
	suite.Require().NoError(err)

	_, err = suite.service.Contribute(ctx, goal.GoalID, decimal.Zero)
	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
}

func (suite *GoalServiceTestSuite) TestDeleteGoal() {
	ctx := context.Background()

	goal, err := suite.service.CreateGoal(ctx, portssvc.CreateGoalParams{
		Name:         "Short lived",
		TargetAmount: decimal.NewFromInt(100),
	})
	suite.Require().NoError(err)

	suite.Require().NoError(suite.service.DeleteGoal(ctx, goal.GoalID))

	err = suite.service.DeleteGoal(ctx, goal.GoalID)
	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrNotFound))
}

func (suite *GoalServiceTestSuite) TestListGoals() {
	ctx := context.Background()

	_, err := suite.service.CreateGoal(ctx, portssvc.CreateGoalParams{
		Name:         "Emergency fund",
		TargetAmount: decimal.NewFromInt(5000),
		SavedAmount:  decimal.NewFromInt(1000),
		Deadline:     "2025-11-01",
		Category:     domain.GoalEmergency,
	})
	suite.Require().NoError(err)

	evaluations, err := suite.service.ListGoals(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(evaluations, 1)
	suite.Equal("Emergency fund", evaluations[0].Goal.Name)
	suite.Equal(8, evaluations[0].MonthsRemaining)
	suite.Require().NotNil(evaluations[0].MonthlyNeed)
	suite.True(decimal.NewFromInt(500).Equal(*evaluations[0].MonthlyNeed))
}

func TestGoalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GoalServiceTestSuite))
}
