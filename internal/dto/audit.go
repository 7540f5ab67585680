package dto

import (
	"time"

	"github.com/finwyse/fin_tracker_app/internal/core/domain"
)

// AuditEntryResponse defines the data returned for one audit log entry.
type AuditEntryResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
	Details   string    `json:"details,omitempty"`
}

// ToListAuditEntryResponse converts a slice of domain.AuditEntry to DTOs
func ToListAuditEntryResponse(entries []domain.AuditEntry) []AuditEntryResponse {
	res := make([]AuditEntryResponse, len(entries))
	for i, e := range entries {
		res[i] = AuditEntryResponse{Timestamp: e.Timestamp, Action: string(e.Action), Details: e.Details}
	}
	return res
}
