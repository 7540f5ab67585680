package handlers

import (
	"net/http"

	portssvc "github.com/finwyse/fin_tracker_app/internal/core/ports/services"
	"github.com/finwyse/fin_tracker_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for the aggregation views.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
	profileService   portssvc.ProfileReaderSvc
}

func newReportingHandler(rs portssvc.ReportingSvcFacade, ps portssvc.ProfileReaderSvc) *reportingHandler {
	return &reportingHandler{reportingService: rs, profileService: ps}
}

// registerReportingRoutes registers routes related to reports.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade, profileService portssvc.ProfileReaderSvc) {
	h := newReportingHandler(reportingService, profileService)

	reports := rg.Group("/reports")
	{
		reports.GET("/categories", h.categoryTotals)
		reports.GET("/trend", h.currencyTrend)
		reports.GET("/summary", h.summary)
	}
}

// categoryTotals godoc
// @Summary Spend per category
// @Description Aggregates spend per category in the display currency. Supports a trailing-days or named-month window; days wins when both are given.
// @Tags reports
// @Produce json
// @Param days query int false "Trailing window in days"
// @Param month query string false "Calendar month, e.g. 2026-08"
// @Param includeZero query bool false "Include zero-total categories in declared order"
// @Success 200 {object} dto.CategoryTotalsResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/categories [get]
func (h *reportingHandler) categoryTotals(c *gin.Context) {
	var params dto.CategoryTotalsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	window := portssvc.ReportWindow{Days: params.Days, Month: params.Month}
	totals, err := h.reportingService.CategoryTotals(c.Request.Context(), window, params.IncludeZero)
	if err != nil {
		respondServiceError(c, err, "Failed to aggregate categories")
		return
	}

	profile, err := h.profileService.GetProfile(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to load profile")
		return
	}
	c.JSON(http.StatusOK, dto.ToCategoryTotalsResponse(profile.CurrencyCode, totals))
}

// currencyTrend godoc
// @Summary Monthly spend trend per currency
// @Description Returns a per-currency series of monthly totals over the trailing window. Amounts stay in their own currency.
// @Tags reports
// @Produce json
// @Param months query int false "Trailing window in months" default(6)
// @Success 200 {array} dto.CurrencyTrendResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/trend [get]
func (h *reportingHandler) currencyTrend(c *gin.Context) {
	var params dto.CurrencyTrendParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	trends, err := h.reportingService.CurrencyTrend(c.Request.Context(), params.Months)
	if err != nil {
		respondServiceError(c, err, "Failed to compute trend")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCurrencyTrendResponse(trends))
}

// summary godoc
// @Summary Dashboard summary
// @Description Returns the current month's headline figures: gross, spend, savings and savings rate.
// @Tags reports
// @Produce json
// @Success 200 {object} dto.FinancialSummaryResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/summary [get]
func (h *reportingHandler) summary(c *gin.Context) {
	summary, err := h.reportingService.Summary(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to compute summary")
		return
	}
	c.JSON(http.StatusOK, dto.ToFinancialSummaryResponse(summary))
}
