package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/finwyse/fin_tracker_app/internal/apperrors"
	"github.com/finwyse/fin_tracker_app/internal/core/domain"
	portsrepo "github.com/finwyse/fin_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/finwyse/fin_tracker_app/internal/core/ports/services"
	"github.com/finwyse/fin_tracker_app/internal/utils"
)

// FallbackAdvice is returned whenever the advisor collaborator fails. The
// caller never sees the underlying error.
const FallbackAdvice = "We could not generate a personalized plan right now. " +
	"As a rule of thumb: keep essential spending under 50% of income, build an " +
	"emergency fund covering 6 months of expenses, and invest the rest regularly."

// taxInstruments maps a display currency to the jurisdiction-flavored
// instruments the prompt asks the model to mention.
var taxInstruments = map[string]string{
	"INR": "ELSS mutual funds, PPF and NPS",
	"USD": "401(k) and IRA accounts",
	"GBP": "ISA and SIPP accounts",
}

// advisorService builds the deterministic prompt from the aggregated profile
// and forwards it to the advisor port. At most one generation is in flight.
type advisorService struct {
	BaseService
	profile   portssvc.ProfileReaderSvc
	reporting portssvc.ReportingSvcFacade
	fx        portssvc.FxSvcFacade
	advisor   portsrepo.Advisor
	audit     portssvc.AuditSvcFacade

	busy atomic.Bool
}

// NewAdvisorService creates the financial-plan generator.
func NewAdvisorService(profile portssvc.ProfileReaderSvc, reporting portssvc.ReportingSvcFacade, fx portssvc.FxSvcFacade, advisor portsrepo.Advisor, audit portssvc.AuditSvcFacade) portssvc.AdvisorSvcFacade {
	return &advisorService{
		profile:   profile,
		reporting: reporting,
		fx:        fx,
		advisor:   advisor,
		audit:     audit,
	}
}

var _ portssvc.AdvisorSvcFacade = (*advisorService)(nil)

// GenerateAdvice aggregates the profile into a prompt and returns the
// collaborator's text, or the fixed fallback when generation fails.
func (s *advisorService) GenerateAdvice(ctx context.Context) (string, error) {
	if !s.busy.CompareAndSwap(false, true) {
		return "", fmt.Errorf("advice generation already in progress: %w", apperrors.ErrBusy)
	}
	defer s.busy.Store(false)

	profile, err := s.profile.GetProfile(ctx)
	if err != nil {
		return "", err
	}
	totals, err := s.reporting.CategoryTotals(ctx, portssvc.ReportWindow{}, false)
	if err != nil {
		return "", err
	}

	prompt := buildAdvicePrompt(profile, totals, s.topTransactions(profile, 5), s.displayCurrency(profile.CurrencyCode))

	advice, err := s.advisor.GenerateAdvice(ctx, prompt)
	if err != nil || strings.TrimSpace(advice) == "" {
		s.LogWarn(ctx, "Advice generation failed, using fallback", "error", fmt.Sprint(err))
		advice = FallbackAdvice
	}

	if err := s.audit.Record(ctx, domain.AuditAdviceGenerated, "Financial plan generated"); err != nil {
		s.LogWarn(ctx, "Failed to record audit entry", "error", err.Error())
	}
	return advice, nil
}

// displayCurrency resolves the full currency record for code, defaulting to a
// two-decimal placeholder for codes outside the rate table.
func (s *advisorService) displayCurrency(code string) domain.Currency {
	for _, c := range s.fx.ListCurrencies() {
		if c.CurrencyCode == code {
			return c
		}
	}
	return domain.Currency{CurrencyCode: code, Precision: 2}
}

// topTransactions returns the n largest transactions by amount in the display
// currency.
func (s *advisorService) topTransactions(profile *domain.Profile, n int) []domain.Transaction {
	sorted := make([]domain.Transaction, len(profile.Expenses))
	copy(sorted, profile.Expenses)
	sort.SliceStable(sorted, func(i, j int) bool {
		a := s.fx.Convert(sorted[i].Amount, sorted[i].EffectiveCurrency(profile.CurrencyCode), profile.CurrencyCode)
		b := s.fx.Convert(sorted[j].Amount, sorted[j].EffectiveCurrency(profile.CurrencyCode), profile.CurrencyCode)
		return a.GreaterThan(b)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// buildAdvicePrompt renders the aggregated snapshot as a deterministic,
// plain-text prompt. Same profile state, same prompt.
func buildAdvicePrompt(profile *domain.Profile, totals []domain.CategoryTotal, top []domain.Transaction, currency domain.Currency) string {
	cur := profile.CurrencyCode

	var b strings.Builder
	b.WriteString("You are a pragmatic personal finance advisor. ")
	b.WriteString("Write a concise, actionable financial plan for the user below. ")
	b.WriteString("Use short sections with headers. Do not ask questions.\n\n")

	fmt.Fprintf(&b, "Annual income: %s %s (salary %s, other %s)\n",
		profile.Income.TotalAnnual().String(), cur,
		profile.Income.GrossAnnualSalary.String(), profile.Income.OtherIncome.String())

	b.WriteString("\nSpending by category (all time, in display currency):\n")
	for _, t := range totals {
		fmt.Fprintf(&b, "- %s: %s %s\n", t.Category, utils.FormatWithCurrencyPrecision(t.Total, currency), cur)
	}

	if len(top) > 0 {
		b.WriteString("\nLargest transactions:\n")
		for _, txn := range top {
			fmt.Fprintf(&b, "- %s: %s %s (%s, %s)\n",
				txn.Description, txn.Amount.String(), txn.EffectiveCurrency(cur), txn.Category, txn.Date)
		}
	}

	if focus := topCategories(totals, 2); len(focus) > 0 {
		fmt.Fprintf(&b, "\nFocus cost-cutting suggestions on the top spending categories: %s.\n",
			strings.Join(focus, " and "))
	}

	if len(profile.Goals) > 0 {
		b.WriteString("\nSavings goals:\n")
		for _, g := range profile.Goals {
			fmt.Fprintf(&b, "- %s: %s of %s %s saved", g.Name, g.SavedAmount.String(), g.TargetAmount.String(), cur)
			if g.Deadline != "" {
				fmt.Fprintf(&b, ", deadline %s", g.Deadline)
			}
			b.WriteByte('\n')
		}
	}

	if instruments, ok := taxInstruments[cur]; ok {
		fmt.Fprintf(&b, "\nWhen covering tax-efficient investing, mention %s.\n", instruments)
	} else {
		b.WriteString("\nWhen covering tax-efficient investing, keep suggestions jurisdiction-neutral.\n")
	}

	if profile.Language != "" && !strings.EqualFold(profile.Language, "en") {
		fmt.Fprintf(&b, "\nRespond in the language with ISO code %q.\n", profile.Language)
	}
	return b.String()
}

// topCategories returns the names of the n largest category totals.
func topCategories(totals []domain.CategoryTotal, n int) []string {
	sorted := make([]domain.CategoryTotal, len(totals))
	copy(sorted, totals)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Total.GreaterThan(sorted[j].Total) })
	var names []string
	for _, t := range sorted {
		if len(names) == n {
			break
		}
		if t.Total.IsPositive() {
			names = append(names, t.Category)
		}
	}
	return names
}
