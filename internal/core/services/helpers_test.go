package services_test

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/finwyse/fin_tracker_app/internal/apperrors"
	"github.com/finwyse/fin_tracker_app/internal/core/domain"
	portssvc "github.com/finwyse/fin_tracker_app/internal/core/ports/services"
	"github.com/finwyse/fin_tracker_app/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// testNow is the pinned "current time" for every suite that needs one.
var testNow = time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

func testClock() time.Time { return testNow }

// --- In-memory ProfileRepository ---

// memProfileRepo backs the profile service with an in-memory blob, cloning
// through JSON so tests observe exactly what a real store would round-trip.
type memProfileRepo struct {
	mu      sync.Mutex
	profile *domain.Profile
	loadErr error
	saves   int
}

func (m *memProfileRepo) LoadProfile(ctx context.Context) (*domain.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if m.profile == nil {
		return nil, apperrors.ErrNotFound
	}
	return cloneProfile(m.profile), nil
}

func (m *memProfileRepo) SaveProfile(ctx context.Context, profile *domain.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profile = cloneProfile(profile)
	m.loadErr = nil
	m.saves++
	return nil
}

func (m *memProfileRepo) DeleteProfile(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profile = nil
	return nil
}

func cloneProfile(p *domain.Profile) *domain.Profile {
	data, err := json.Marshal(p)
	if err != nil {
		panic(err)
	}
	var out domain.Profile
	if err := json.Unmarshal(data, &out); err != nil {
		panic(err)
	}
	return &out
}

// --- In-memory AuditLogRepository ---

type memAuditRepo struct {
	mu      sync.Mutex
	entries []domain.AuditEntry
}

func (m *memAuditRepo) LoadEntries(ctx context.Context) ([]domain.AuditEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.AuditEntry(nil), m.entries...), nil
}

func (m *memAuditRepo) SaveEntries(ctx context.Context, entries []domain.AuditEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append([]domain.AuditEntry(nil), entries...)
	return nil
}

func (m *memAuditRepo) ClearEntries(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = nil
	return nil
}

// --- Shared fixture ---

// fixtureProfile is a deterministic profile with four current-month expenses
// totaling 2265 USD and an annual income of 60000.
func fixtureProfile() *domain.Profile {
	today := testNow.Format(domain.DateLayout)
	p := &domain.Profile{
		Income: domain.Income{
			GrossAnnualSalary: decimal.NewFromInt(60000),
			OtherIncome:       decimal.Zero,
		},
		CurrencyCode: "USD",
		Language:     "en",
		Categories:   []string{"Housing", "Food", "Transport", "Entertainment", "Shopping", "Utilities", "Health", "Other"},
		Expenses: []domain.Transaction{
			fixtureTxn("Rent", "1500", "Housing", today),
			fixtureTxn("Groceries", "400", "Food", today),
			fixtureTxn("Car payment", "350", "Transport", today),
			fixtureTxn("Streaming subscription", "15", "Entertainment", today),
		},
	}
	p.ApplyDefaults()
	return p
}

func fixtureTxn(description, amount, category, date string) domain.Transaction {
	return domain.Transaction{
		TransactionID: uuid.NewString(),
		Description:   description,
		Amount:        decimal.RequireFromString(amount),
		Category:      category,
		Date:          date,
		AuditFields:   domain.AuditFields{CreatedAt: testNow, LastUpdatedAt: testNow},
	}
}

// --- Wiring helper ---

// serviceEnv wires the profile-backed service graph against in-memory
// repositories with the clock pinned at testNow.
type serviceEnv struct {
	profileRepo *memProfileRepo
	auditRepo   *memAuditRepo

	audit     portssvc.AuditSvcFacade
	profile   portssvc.ProfileSvcFacade
	fx        portssvc.FxSvcFacade
	reporting portssvc.ReportingSvcFacade
}

func newServiceEnv(seed *domain.Profile) *serviceEnv {
	env := &serviceEnv{
		profileRepo: &memProfileRepo{},
		auditRepo:   &memAuditRepo{},
	}
	if seed != nil {
		env.profileRepo.profile = cloneProfile(seed)
	}
	env.audit = services.NewAuditService(env.auditRepo)
	env.profile = services.NewProfileService(env.profileRepo, env.audit)
	env.fx = services.NewFxService()
	env.reporting = services.NewReportingService(env.profile, env.fx, services.WithReportingClock(testClock))
	return env
}

// lastAuditAction returns the newest recorded action, or "" when empty.
func (e *serviceEnv) lastAuditAction() domain.AuditAction {
	entries, _ := e.auditRepo.LoadEntries(context.Background())
	if len(entries) == 0 {
		return ""
	}
	return entries[0].Action
}
