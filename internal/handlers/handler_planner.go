package handlers

import (
	"errors"
	"net/http"

	"github.com/finwyse/fin_tracker_app/internal/apperrors"
	portssvc "github.com/finwyse/fin_tracker_app/internal/core/ports/services"
	"github.com/finwyse/fin_tracker_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// plannerHandler handles HTTP requests for projections and the advice plan.
type plannerHandler struct {
	plannerService portssvc.PlannerSvcFacade
	advisorService portssvc.AdvisorSvcFacade
}

func newPlannerHandler(ps portssvc.PlannerSvcFacade, as portssvc.AdvisorSvcFacade) *plannerHandler {
	return &plannerHandler{plannerService: ps, advisorService: as}
}

// registerPlannerRoutes registers routes related to planning.
func registerPlannerRoutes(rg *gin.RouterGroup, plannerService portssvc.PlannerSvcFacade, advisorService portssvc.AdvisorSvcFacade) {
	h := newPlannerHandler(plannerService, advisorService)

	planner := rg.Group("/planner")
	{
		planner.GET("/projection", h.projection)
		planner.GET("/tax", h.taxEstimate)
		planner.POST("/advice", h.generateAdvice)
	}
}

// projection godoc
// @Summary SIP projection
// @Description Projects the future value of a fixed monthly contribution. Omitting the contribution uses the suggested one derived from current savings.
// @Tags planner
// @Produce json
// @Param monthlyContribution query number false "Monthly contribution; omit for the suggestion"
// @Success 200 {object} dto.SIPProjectionResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /planner/projection [get]
func (h *plannerHandler) projection(c *gin.Context) {
	var params dto.ProjectionParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	projection, err := h.plannerService.Projection(c.Request.Context(), params.MonthlyContribution)
	if err != nil {
		respondServiceError(c, err, "Failed to compute projection")
		return
	}
	c.JSON(http.StatusOK, dto.ToSIPProjectionResponse(projection))
}

// taxEstimate godoc
// @Summary Simplified tax estimate
// @Description Applies the simplified progressive brackets to the total annual income. Illustrative only.
// @Tags planner
// @Produce json
// @Success 200 {object} dto.TaxEstimateResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /planner/tax [get]
func (h *plannerHandler) taxEstimate(c *gin.Context) {
	estimate, err := h.plannerService.TaxEstimate(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to compute tax estimate")
		return
	}
	c.JSON(http.StatusOK, dto.ToTaxEstimateResponse(estimate))
}

// generateAdvice godoc
// @Summary Generate a financial plan
// @Description Builds a prompt from the aggregated profile and returns the generated narrative plan. Only one generation may run at a time.
// @Tags planner
// @Produce json
// @Success 200 {object} dto.AdviceResponse
// @Failure 409 {object} ErrorResponse "Generation already in progress"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /planner/advice [post]
func (h *plannerHandler) generateAdvice(c *gin.Context) {
	advice, err := h.advisorService.GenerateAdvice(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrBusy) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Advice generation already in progress"})
			return
		}
		respondServiceError(c, err, "Failed to generate advice")
		return
	}
	c.JSON(http.StatusOK, dto.AdviceResponse{Advice: advice})
}
