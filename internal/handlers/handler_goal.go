package handlers

import (
	"log/slog"
	"net/http"

	"github.com/finwyse/fin_tracker_app/internal/core/domain"
	portssvc "github.com/finwyse/fin_tracker_app/internal/core/ports/services"
	"github.com/finwyse/fin_tracker_app/internal/dto"
	"github.com/finwyse/fin_tracker_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// goalHandler handles HTTP requests related to savings goals.
type goalHandler struct {
	goalService portssvc.GoalSvcFacade
}

func newGoalHandler(gs portssvc.GoalSvcFacade) *goalHandler {
	return &goalHandler{goalService: gs}
}

// registerGoalRoutes registers routes related to savings goals.
func registerGoalRoutes(rg *gin.RouterGroup, goalService portssvc.GoalSvcFacade) {
	h := newGoalHandler(goalService)

	goals := rg.Group("/goals")
	{
		goals.GET("", h.listGoals)
		goals.POST("", h.createGoal)
		goals.PUT("/:goalID", h.updateGoal)
		goals.DELETE("/:goalID", h.deleteGoal)
		goals.POST("/:goalID/contribute", h.contribute)
	}
}

// createGoal godoc
// @Summary Create a savings goal
// @Tags goals
// @Accept json
// @Produce json
// @Param goal body dto.CreateGoalRequest true "Goal details"
// @Success 201 {object} dto.GoalResponse
// @Failure 400 {object} ErrorResponse "Invalid target, deadline or category"
// @Security BearerAuth
// @Router /goals [post]
func (h *goalHandler) createGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateGoal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	category := domain.GoalCategory(req.Category)
	if req.Category == "" {
		category = domain.GoalOther
	}
	goal, err := h.goalService.CreateGoal(c.Request.Context(), portssvc.CreateGoalParams{
		Name:         req.Name,
		TargetAmount: req.TargetAmount,
		SavedAmount:  req.SavedAmount,
		Deadline:     req.Deadline,
		Category:     category,
	})
	if err != nil {
		respondServiceError(c, err, "Failed to create goal")
		return
	}
	c.JSON(http.StatusCreated, dto.ToGoalResponse(goal))
}

// listGoals godoc
// @Summary List savings goals
// @Description Returns each goal with its evaluation: progress (clamped to 100), months remaining and required monthly contribution.
// @Tags goals
// @Produce json
// @Success 200 {array} dto.GoalEvaluationResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /goals [get]
func (h *goalHandler) listGoals(c *gin.Context) {
	evaluations, err := h.goalService.ListGoals(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to list goals")
		return
	}
	c.JSON(http.StatusOK, dto.ToListGoalEvaluationResponse(evaluations))
}

// updateGoal godoc
// @Summary Update a savings goal
// @Description Updates the provided fields only. An empty deadline string clears the deadline.
// @Tags goals
// @Accept json
// @Produce json
// @Param goalID path string true "Goal ID"
// @Param goal body dto.UpdateGoalRequest true "Fields to update"
// @Success 200 {object} dto.GoalResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Goal not found"
// @Security BearerAuth
// @Router /goals/{goalID} [put]
func (h *goalHandler) updateGoal(c *gin.Context) {
	var req dto.UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	params := portssvc.UpdateGoalParams{
		Name:         req.Name,
		TargetAmount: req.TargetAmount,
		SavedAmount:  req.SavedAmount,
		Deadline:     req.Deadline,
	}
	if req.Category != nil {
		category := domain.GoalCategory(*req.Category)
		params.Category = &category
	}

	goal, err := h.goalService.UpdateGoal(c.Request.Context(), c.Param("goalID"), params)
	if err != nil {
		respondServiceError(c, err, "Failed to update goal")
		return
	}
	c.JSON(http.StatusOK, dto.ToGoalResponse(goal))
}

// deleteGoal godoc
// @Summary Delete a savings goal
// @Tags goals
// @Produce json
// @Param goalID path string true "Goal ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Goal not found"
// @Security BearerAuth
// @Router /goals/{goalID} [delete]
func (h *goalHandler) deleteGoal(c *gin.Context) {
	if err := h.goalService.DeleteGoal(c.Request.Context(), c.Param("goalID")); err != nil {
		respondServiceError(c, err, "Failed to delete goal")
		return
	}
	c.Status(http.StatusNoContent)
}

// contribute godoc
// @Summary Contribute to a goal
// @Description Adds to the goal's saved amount. The total is not capped at the target.
// @Tags goals
// @Accept json
// @Produce json
// @Param goalID path string true "Goal ID"
// @Param contribution body dto.ContributeRequest true "Contribution amount"
// @Success 200 {object} dto.GoalResponse
// @Failure 400 {object} ErrorResponse "Non-positive amount"
// @Failure 404 {object} ErrorResponse "Goal not found"
// @Security BearerAuth
// @Router /goals/{goalID}/contribute [post]
func (h *goalHandler) contribute(c *gin.Context) {
	var req dto.ContributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	goal, err := h.goalService.Contribute(c.Request.Context(), c.Param("goalID"), req.Amount)
	if err != nil {
		respondServiceError(c, err, "Failed to record contribution")
		return
	}
	c.JSON(http.StatusOK, dto.ToGoalResponse(goal))
}
