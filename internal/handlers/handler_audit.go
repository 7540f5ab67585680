package handlers

import (
	"net/http"

	"github.com/finwyse/fin_tracker_app/internal/core/domain"
	portssvc "github.com/finwyse/fin_tracker_app/internal/core/ports/services"
	"github.com/finwyse/fin_tracker_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// auditHandler handles HTTP requests for the audit log.
type auditHandler struct {
	auditService portssvc.AuditSvcFacade
}

func newAuditHandler(as portssvc.AuditSvcFacade) *auditHandler {
	return &auditHandler{auditService: as}
}

// registerAuditRoutes registers routes related to the audit log.
func registerAuditRoutes(rg *gin.RouterGroup, auditService portssvc.AuditSvcFacade) {
	h := newAuditHandler(auditService)

	audit := rg.Group("/audit")
	{
		audit.GET("", h.listEntries)
		audit.DELETE("", h.clearEntries)
	}
}

// listEntries godoc
// @Summary List audit entries
// @Description Returns the audit log, newest first, capped at the most recent 100 entries.
// @Tags audit
// @Produce json
// @Success 200 {array} dto.AuditEntryResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /audit [get]
func (h *auditHandler) listEntries(c *gin.Context) {
	entries, err := h.auditService.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to load audit log")
		return
	}
	c.JSON(http.StatusOK, dto.ToListAuditEntryResponse(entries))
}

// clearEntries godoc
// @Summary Clear the audit log
// @Tags audit
// @Produce json
// @Success 204 "No Content"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /audit [delete]
func (h *auditHandler) clearEntries(c *gin.Context) {
	if err := h.auditService.Clear(c.Request.Context()); err != nil {
		respondServiceError(c, err, "Failed to clear audit log")
		return
	}
	// The clear itself is recorded so the log never silently loses history.
	if err := h.auditService.Record(c.Request.Context(), domain.AuditLogCleared, ""); err != nil {
		respondServiceError(c, err, "Failed to record audit entry")
		return
	}
	c.Status(http.StatusNoContent)
}
