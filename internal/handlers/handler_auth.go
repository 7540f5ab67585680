package handlers

import (
	"errors"
	"net/http"

	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/finwyse/fin_tracker_app/internal/apperrors"
	portssvc "github.com/finwyse/fin_tracker_app/internal/core/ports/services"
	"github.com/finwyse/fin_tracker_app/internal/dto"
	"github.com/finwyse/fin_tracker_app/internal/middleware"
	"github.com/finwyse/fin_tracker_app/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// authHandler handles the mock OTP login flow.
type authHandler struct {
	authService portssvc.AuthSvcFacade
	cfg         *config.Config
}

func newAuthHandler(as portssvc.AuthSvcFacade, cfg *config.Config) *authHandler {
	return &authHandler{authService: as, cfg: cfg}
}

// registerAuthRoutes sets up the routes for authentication.
func registerAuthRoutes(rg *gin.Engine, cfg *config.Config, authService portssvc.AuthSvcFacade) {
	h := newAuthHandler(authService, cfg)

	// Rate limit the unauthenticated endpoints: 5 requests per minute per IP.
	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)
	limitMiddleware := limitergin.NewMiddleware(ipLimiter)

	auth := rg.Group("/api/v1/auth")
	{
		auth.POST("/otp", limitMiddleware, h.requestOTP)
		auth.POST("/verify", limitMiddleware, h.verifyOTP)
		auth.POST("/refresh", h.refresh)
		auth.POST("/logout", h.logout)
	}
}

// requestOTP godoc
// @Summary Request a one-time login code
// @Description Issues a fresh OTP for the local user. Delivery is mocked: the code appears in the server log.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.OTPRequestedResponse
// @Failure 429 {object} ErrorResponse "Too many requests"
// @Failure 500 {object} ErrorResponse
// @Router /auth/otp [post]
func (h *authHandler) requestOTP(c *gin.Context) {
	expiresIn, err := h.authService.RequestOTP(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to issue one-time code")
		return
	}
	c.JSON(http.StatusOK, dto.OTPRequestedResponse{ExpiresInSeconds: expiresIn})
}

// verifyOTP godoc
// @Summary Verify a one-time code
// @Description Exchanges a valid OTP for a JWT access token. The refresh token is set as an HTTP-only cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.VerifyOTPRequest true "Submitted code"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse "Incorrect or expired code"
// @Router /auth/verify [post]
func (h *authHandler) verifyOTP(c *gin.Context) {
	var req dto.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	tokens, err := h.authService.VerifyOTP(c.Request.Context(), req.Code)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Incorrect or expired one-time code"})
			return
		}
		respondServiceError(c, err, "Failed to verify one-time code")
		return
	}

	h.setRefreshCookie(c, tokens.RefreshToken)
	c.JSON(http.StatusOK, dto.LoginResponse{Token: tokens.AccessToken, ExpiresAt: tokens.AccessExpiresAt})
}

// refresh godoc
// @Summary Refresh the access token
// @Description Rotates the refresh token cookie and returns a new access token.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.RefreshTokenResponse
// @Failure 401 {object} ErrorResponse "Missing or invalid refresh token"
// @Router /auth/refresh [post]
func (h *authHandler) refresh(c *gin.Context) {
	refreshToken, err := c.Cookie(h.cfg.RefreshTokenCookieName)
	if err != nil || refreshToken == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Refresh token missing"})
		return
	}

	tokens, err := h.authService.Refresh(c.Request.Context(), refreshToken)
	if err != nil {
		h.clearRefreshCookie(c)
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid refresh token"})
		return
	}

	h.setRefreshCookie(c, tokens.RefreshToken)
	c.JSON(http.StatusOK, dto.RefreshTokenResponse{Token: tokens.AccessToken, ExpiresAt: tokens.AccessExpiresAt})
}

// logout godoc
// @Summary Log out
// @Description Invalidates the session and clears the refresh token cookie.
// @Tags auth
// @Produce json
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	if err := h.authService.Logout(c.Request.Context()); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Logout failed", "error", err.Error())
	}
	h.clearRefreshCookie(c)
	c.Status(http.StatusNoContent)
}

func (h *authHandler) setRefreshCookie(c *gin.Context, token string) {
	c.SetCookie(
		h.cfg.RefreshTokenCookieName,
		token,
		int(h.cfg.RefreshTokenExpiryDuration.Seconds()),
		h.cfg.RefreshTokenCookiePath,
		"",
		h.cfg.IsProduction,
		true,
	)
}

func (h *authHandler) clearRefreshCookie(c *gin.Context) {
	c.SetCookie(h.cfg.RefreshTokenCookieName, "", -1, h.cfg.RefreshTokenCookiePath, "", h.cfg.IsProduction, true)
}
