package dto

import "github.com/finwyse/fin_tracker_app/internal/core/domain"

// ImportCSVRequest carries the raw CSV text to import.
type ImportCSVRequest struct {
	Data string `json:"data" binding:"required"`
}

// ImportIssueResponse describes one dropped row.
type ImportIssueResponse struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// ImportResultResponse summarizes an import.
type ImportResultResponse struct {
	Imported int                   `json:"imported"`
	Issues   []ImportIssueResponse `json:"issues,omitempty"`
}

// ToImportResultResponse converts a domain.ImportResult to its DTO
func ToImportResultResponse(r *domain.ImportResult) ImportResultResponse {
	res := ImportResultResponse{Imported: r.Imported}
	for _, issue := range r.Issues {
		res.Issues = append(res.Issues, ImportIssueResponse{Line: issue.Line, Reason: issue.Reason})
	}
	return res
}
