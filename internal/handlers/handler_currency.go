package handlers

import (
	"net/http"

	portssvc "github.com/finwyse/fin_tracker_app/internal/core/ports/services"
	"github.com/finwyse/fin_tracker_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// currencyHandler handles HTTP requests for the supported currencies.
type currencyHandler struct {
	fxService portssvc.FxSvcFacade
}

func newCurrencyHandler(fx portssvc.FxSvcFacade) *currencyHandler {
	return &currencyHandler{fxService: fx}
}

// registerCurrencyRoutes registers routes related to currencies.
func registerCurrencyRoutes(rg *gin.RouterGroup, fxService portssvc.FxSvcFacade) {
	h := newCurrencyHandler(fxService)

	currencies := rg.Group("/currencies")
	{
		currencies.GET("", h.listCurrencies)
	}
}

// listCurrencies godoc
// @Summary List supported currencies
// @Description Returns the currencies in the static rate table with their display metadata.
// @Tags currencies
// @Produce json
// @Success 200 {array} dto.CurrencyResponse
// @Security BearerAuth
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(h.fxService.ListCurrencies()))
}
