package domain

// ImportIssue describes one CSV row that was dropped during import.
type ImportIssue struct {
	Line   int    `json:"line"` // 1-based line number in the uploaded file
	Reason string `json:"reason"`
}

// ImportResult summarizes a CSV import. The aggregate count is the default
// user-facing message; Issues carries the per-row diagnostics.
type ImportResult struct {
	Imported int           `json:"imported"`
	Issues   []ImportIssue `json:"issues,omitempty"`
}
