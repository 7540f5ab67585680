package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/finwyse/fin_tracker_app/internal/core/ports/services"
	"github.com/finwyse/fin_tracker_app/internal/dto"
	"github.com/finwyse/fin_tracker_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// profileHandler handles HTTP requests for the profile aggregate.
type profileHandler struct {
	profileService portssvc.ProfileSvcFacade
}

func newProfileHandler(ps portssvc.ProfileSvcFacade) *profileHandler {
	return &profileHandler{profileService: ps}
}

// registerProfileRoutes registers routes related to the profile.
func registerProfileRoutes(rg *gin.RouterGroup, profileService portssvc.ProfileSvcFacade) {
	h := newProfileHandler(profileService)

	profile := rg.Group("/profile")
	{
		profile.GET("", h.getProfile)
		profile.PUT("/income", h.updateIncome)
		profile.PUT("/currency", h.setCurrency)
		profile.PUT("/language", h.setLanguage)
		profile.POST("/reset", h.resetProfile)
	}
}

// getProfile godoc
// @Summary Get the profile
// @Description Returns the full profile: income, categories, budgets, goals and counts.
// @Tags profile
// @Produce json
// @Success 200 {object} dto.ProfileResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /profile [get]
func (h *profileHandler) getProfile(c *gin.Context) {
	profile, err := h.profileService.GetProfile(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to load profile")
		return
	}
	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}

// updateIncome godoc
// @Summary Update income figures
// @Description Replaces the annual salary and other-income figures.
// @Tags profile
// @Accept json
// @Produce json
// @Param income body dto.UpdateIncomeRequest true "Income figures"
// @Success 200 {object} dto.ProfileResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /profile/income [put]
func (h *profileHandler) updateIncome(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateIncome", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	profile, err := h.profileService.UpdateIncome(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "Failed to update income")
		return
	}
	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}

// setCurrency godoc
// @Summary Change the display currency
// @Description Sets the home currency used for aggregation and display. Stored amounts are not rewritten.
// @Tags profile
// @Accept json
// @Produce json
// @Param currency body dto.SetCurrencyRequest true "Currency code"
// @Success 200 {object} dto.ProfileResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /profile/currency [put]
func (h *profileHandler) setCurrency(c *gin.Context) {
	var req dto.SetCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	profile, err := h.profileService.SetCurrency(c.Request.Context(), req.Currency)
	if err != nil {
		respondServiceError(c, err, "Failed to set currency")
		return
	}
	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}

// setLanguage godoc
// @Summary Change the UI language
// @Tags profile
// @Accept json
// @Produce json
// @Param language body dto.SetLanguageRequest true "Locale code"
// @Success 200 {object} dto.ProfileResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /profile/language [put]
func (h *profileHandler) setLanguage(c *gin.Context) {
	var req dto.SetLanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	profile, err := h.profileService.SetLanguage(c.Request.Context(), req.Language)
	if err != nil {
		respondServiceError(c, err, "Failed to set language")
		return
	}
	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}

// resetProfile godoc
// @Summary Reset all data
// @Description Wipes every stored transaction, budget, goal and setting, restoring the sample profile.
// @Tags profile
// @Produce json
// @Success 200 {object} dto.ProfileResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /profile/reset [post]
func (h *profileHandler) resetProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to reset profile")

	profile, err := h.profileService.ResetProfile(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to reset profile")
		return
	}
	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}
