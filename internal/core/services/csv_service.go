package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/finwyse/fin_tracker_app/internal/core/domain"
	portssvc "github.com/finwyse/fin_tracker_app/internal/core/ports/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const csvHeader = "Date,Description,Category,Amount,Currency"

// csvService implements transaction export and the tolerant import parser.
// Import never fails the whole file on a bad row: bad rows are dropped and
// reported as per-row diagnostics.
type csvService struct {
	BaseService
	profile portssvc.ProfileSvcFacade
	audit   portssvc.AuditSvcFacade
	clock   func() time.Time
}

// NewCSVService creates the CSV import/export service.
func NewCSVService(profile portssvc.ProfileSvcFacade, audit portssvc.AuditSvcFacade) portssvc.CSVSvcFacade {
	return &csvService{profile: profile, audit: audit, clock: time.Now}
}

var _ portssvc.CSVSvcFacade = (*csvService)(nil)

// ExportCSV renders every transaction, newest first, in the same column order
// the importer accepts. Descriptions are quoted so commas and quotes survive a
// round trip.
func (s *csvService) ExportCSV(ctx context.Context) (string, []byte, error) {
	profile, err := s.profile.GetProfile(ctx)
	if err != nil {
		return "", nil, err
	}

	var b strings.Builder
	b.WriteString(csvHeader)
	b.WriteByte('\n')
	for _, txn := range profile.Expenses {
		b.WriteString(strings.Join([]string{
			txn.Date,
			quoteCSVField(txn.Description),
			quoteCSVField(txn.Category),
			txn.Amount.String(),
			txn.EffectiveCurrency(profile.CurrencyCode),
		}, ","))
		b.WriteByte('\n')
	}

	filename := fmt.Sprintf("transactions_%s.csv", s.clock().Format(domain.DateLayout))
	s.LogInfo(ctx, "transactions exported", "rows", len(profile.Expenses), "filename", filename)
	if err := s.audit.Record(ctx, domain.AuditDataExport, fmt.Sprintf("Exported %d transactions", len(profile.Expenses))); err != nil {
		s.LogWarn(ctx, "Failed to record audit entry", "error", err.Error())
	}
	return filename, []byte(b.String()), nil
}

// ImportCSV parses uploaded CSV text. Every well-formed row becomes a new
// transaction with a fresh ID, prepended so imported rows surface first. Rows
// that fail to parse are dropped and reported, never aborting the import.
func (s *csvService) ImportCSV(ctx context.Context, data []byte) (*domain.ImportResult, error) {
	result := &domain.ImportResult{}
	var parsed []domain.Transaction

	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	for i, line := range lines {
		lineNo := i + 1
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if i == 0 && looksLikeHeader(line) {
			continue
		}
		txn, reason := parseCSVRow(line)
		if reason != "" {
			result.Issues = append(result.Issues, domain.ImportIssue{Line: lineNo, Reason: reason})
			continue
		}
		parsed = append(parsed, txn)
	}

	if len(parsed) > 0 {
		_, err := s.profile.MutateProfile(ctx, func(p *domain.Profile) error {
			p.Expenses = append(parsed, p.Expenses...)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	result.Imported = len(parsed)
	s.LogInfo(ctx, "transactions imported", "imported", result.Imported, "dropped", len(result.Issues))
	if err := s.audit.Record(ctx, domain.AuditDataImport, fmt.Sprintf("Imported %d transactions", result.Imported)); err != nil {
		s.LogWarn(ctx, "Failed to record audit entry", "error", err.Error())
	}
	return result, nil
}

// looksLikeHeader sniffs the first line for a column-name row so files both
// with and without a header import cleanly.
func looksLikeHeader(line string) bool {
	first := strings.ToLower(strings.Trim(strings.SplitN(line, ",", 2)[0], `" `))
	return first == "date"
}

// parseCSVRow converts one data line into a transaction, returning a
// non-empty reason when the row must be dropped.
func parseCSVRow(line string) (domain.Transaction, string) {
	fields := splitCSVLine(line)
	if len(fields) < 4 {
		return domain.Transaction{}, fmt.Sprintf("expected at least 4 fields, got %d", len(fields))
	}

	date := strings.TrimSpace(fields[0])
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return domain.Transaction{}, fmt.Sprintf("invalid date %q", date)
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(fields[3]))
	if err != nil {
		return domain.Transaction{}, fmt.Sprintf("invalid amount %q", strings.TrimSpace(fields[3]))
	}
	if amount.IsNegative() {
		return domain.Transaction{}, "amount must not be negative"
	}

	category := strings.TrimSpace(fields[2])
	if category == "" {
		category = domain.FallbackCategory
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Description:   strings.TrimSpace(fields[1]),
		Amount:        amount,
		Category:      category,
		Date:          date,
	}
	if len(fields) >= 5 {
		txn.CurrencyCode = strings.ToUpper(strings.TrimSpace(fields[4]))
	}
	return txn, ""
}

// splitCSVLine splits a line on commas, honoring double-quoted fields with
// doubled-quote escapes.
func splitCSVLine(line string) []string {
	var fields []string
	var field strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				field.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case c == ',' && !inQuotes:
			fields = append(fields, field.String())
			field.Reset()
		default:
			field.WriteByte(c)
		}
	}
	fields = append(fields, field.String())
	return fields
}

// quoteCSVField wraps a value in double quotes when it contains a comma,
// quote, or newline, doubling embedded quotes.
func quoteCSVField(v string) string {
	if !strings.ContainsAny(v, ",\"\n") {
		return v
	}
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}
