package handlers

import (
	"net/http"

	portssvc "github.com/finwyse/fin_tracker_app/internal/core/ports/services"
	"github.com/finwyse/fin_tracker_app/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// budgetHandler handles HTTP requests related to monthly budgets.
type budgetHandler struct {
	budgetService portssvc.BudgetSvcFacade
}

func newBudgetHandler(bs portssvc.BudgetSvcFacade) *budgetHandler {
	return &budgetHandler{budgetService: bs}
}

// registerBudgetRoutes registers routes related to budgets.
func registerBudgetRoutes(rg *gin.RouterGroup, budgetService portssvc.BudgetSvcFacade) {
	h := newBudgetHandler(budgetService)

	budgets := rg.Group("/budgets")
	{
		budgets.GET("", h.evaluateBudgets)
		budgets.PUT("/:category", h.setBudget)
	}
}

// setBudgetBody carries just the limit; the category comes from the path.
type setBudgetBody struct {
	Limit decimal.Decimal `json:"limit"`
}

// setBudget godoc
// @Summary Set a category's monthly limit
// @Description Sets the monthly budget for a category. A limit of zero removes the budget.
// @Tags budgets
// @Accept json
// @Produce json
// @Param category path string true "Category name"
// @Param budget body setBudgetBody true "Monthly limit"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Unknown category or negative limit"
// @Security BearerAuth
// @Router /budgets/{category} [put]
func (h *budgetHandler) setBudget(c *gin.Context) {
	var body setBudgetBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	if err := h.budgetService.SetBudget(c.Request.Context(), c.Param("category"), body.Limit); err != nil {
		respondServiceError(c, err, "Failed to set budget")
		return
	}
	c.Status(http.StatusNoContent)
}

// evaluateBudgets godoc
// @Summary Current-month budget standing
// @Description Compares this month's spend per category against the configured limits. Categories without spend are included.
// @Tags budgets
// @Produce json
// @Success 200 {array} dto.BudgetEvaluationResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /budgets [get]
func (h *budgetHandler) evaluateBudgets(c *gin.Context) {
	evaluations, err := h.budgetService.EvaluateBudgets(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to evaluate budgets")
		return
	}
	c.JSON(http.StatusOK, dto.ToListBudgetEvaluationResponse(evaluations))
}
