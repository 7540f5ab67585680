package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/finwyse/fin_tracker_app/internal/core/ports/services"
	"github.com/finwyse/fin_tracker_app/internal/dto"
	"github.com/finwyse/fin_tracker_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// expenseHandler handles HTTP requests related to transactions.
type expenseHandler struct {
	expenseService portssvc.ExpenseSvcFacade
}

func newExpenseHandler(es portssvc.ExpenseSvcFacade) *expenseHandler {
	return &expenseHandler{expenseService: es}
}

// RegisterExpenseRoutes registers routes related to transactions.
func RegisterExpenseRoutes(rg *gin.RouterGroup, expenseService portssvc.ExpenseSvcFacade) {
	h := newExpenseHandler(expenseService)

	expenses := rg.Group("/expenses")
	{
		expenses.GET("", h.listExpenses)
		expenses.POST("", h.createExpense)
		expenses.DELETE("/:expenseID", h.deleteExpense)
	}
}

// createExpense godoc
// @Summary Record an expense
// @Description Validates and prepends a new transaction. An empty category falls back to "Other".
// @Tags expenses
// @Accept json
// @Produce json
// @Param expense body dto.CreateExpenseRequest true "Expense details"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} ErrorResponse "Invalid amount, date or category"
// @Security BearerAuth
// @Router /expenses [post]
func (h *expenseHandler) createExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.expenseService.AddExpense(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "Failed to add expense")
		return
	}
	c.JSON(http.StatusCreated, dto.ToExpenseResponse(txn))
}

// listExpenses godoc
// @Summary List transactions
// @Description Returns a page of transactions in stored order (newest first) with an opaque continuation token.
// @Tags expenses
// @Produce json
// @Param limit query int false "Page size" default(50)
// @Param pageToken query string false "Continuation token from the previous page"
// @Success 200 {object} dto.ListExpensesResponse
// @Failure 400 {object} ErrorResponse "Invalid page token"
// @Security BearerAuth
// @Router /expenses [get]
func (h *expenseHandler) listExpenses(c *gin.Context) {
	var params dto.ListExpensesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	txns, nextToken, err := h.expenseService.ListExpenses(c.Request.Context(), params.Limit, params.PageToken)
	if err != nil {
		respondServiceError(c, err, "Failed to list expenses")
		return
	}
	c.JSON(http.StatusOK, dto.ListExpensesResponse{
		Expenses:      dto.ToListExpenseResponse(txns),
		NextPageToken: nextToken,
	})
}

// deleteExpense godoc
// @Summary Delete a transaction
// @Tags expenses
// @Produce json
// @Param expenseID path string true "Transaction ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Transaction not found"
// @Security BearerAuth
// @Router /expenses/{expenseID} [delete]
func (h *expenseHandler) deleteExpense(c *gin.Context) {
	if err := h.expenseService.DeleteExpense(c.Request.Context(), c.Param("expenseID")); err != nil {
		respondServiceError(c, err, "Failed to delete expense")
		return
	}
	c.Status(http.StatusNoContent)
}
