package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	portssvc "github.com/finwyse/fin_tracker_app/internal/core/ports/services"
	"github.com/finwyse/fin_tracker_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// maxImportBytes caps an uploaded CSV at 5 MiB.
const maxImportBytes = 5 << 20

// csvHandler handles transaction export and import.
type csvHandler struct {
	csvService portssvc.CSVSvcFacade
}

func newCSVHandler(cs portssvc.CSVSvcFacade) *csvHandler {
	return &csvHandler{csvService: cs}
}

// registerCSVRoutes registers routes related to CSV transfer.
func registerCSVRoutes(rg *gin.RouterGroup, csvService portssvc.CSVSvcFacade) {
	h := newCSVHandler(csvService)

	transactions := rg.Group("/transactions")
	{
		transactions.GET("/export", h.exportCSV)
		transactions.POST("/import", h.importCSV)
	}
}

// exportCSV godoc
// @Summary Export transactions as CSV
// @Description Downloads every transaction as a CSV file with a date-stamped filename.
// @Tags transactions
// @Produce text/csv
// @Success 200 {string} string "CSV data"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/export [get]
func (h *csvHandler) exportCSV(c *gin.Context) {
	filename, data, err := h.csvService.ExportCSV(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to export transactions")
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

// importCSV godoc
// @Summary Import transactions from CSV
// @Description Accepts CSV as a multipart file upload, raw text/csv body, or JSON payload. Bad rows are dropped and reported; good rows are imported.
// @Tags transactions
// @Accept json
// @Produce json
// @Success 200 {object} dto.ImportResultResponse
// @Failure 400 {object} ErrorResponse "Empty or unreadable upload"
// @Security BearerAuth
// @Router /transactions/import [post]
func (h *csvHandler) importCSV(c *gin.Context) {
	data, err := readImportPayload(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.csvService.ImportCSV(c.Request.Context(), data)
	if err != nil {
		respondServiceError(c, err, "Failed to import transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ToImportResultResponse(result))
}

// readImportPayload extracts CSV bytes from whichever shape the client sent.
func readImportPayload(c *gin.Context) ([]byte, error) {
	contentType := c.ContentType()

	if strings.HasPrefix(contentType, "multipart/form-data") {
		file, err := c.FormFile("file")
		if err != nil {
			return nil, fmt.Errorf("missing 'file' form field")
		}
		f, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open uploaded file")
		}
		defer f.Close()
		data, err := io.ReadAll(io.LimitReader(f, maxImportBytes))
		if err != nil {
			return nil, fmt.Errorf("failed to read uploaded file")
		}
		return data, nil
	}

	if contentType == "application/json" {
		var req dto.ImportCSVRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			return nil, fmt.Errorf("invalid request body: %s", err.Error())
		}
		return []byte(req.Data), nil
	}

	data, err := io.ReadAll(io.LimitReader(c.Request.Body, maxImportBytes))
	if err != nil || len(data) == 0 {
		return nil, fmt.Errorf("empty request body")
	}
	return data, nil
}
