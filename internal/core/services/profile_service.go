package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/finwyse/fin_tracker_app/internal/apperrors"
	"github.com/finwyse/fin_tracker_app/internal/core/domain"
	portsrepo "github.com/finwyse/fin_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/finwyse/fin_tracker_app/internal/core/ports/services"
	"github.com/finwyse/fin_tracker_app/internal/dto"
	"github.com/finwyse/fin_tracker_app/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// profileService is the application-state container: every profile mutation
// goes through MutateProfile, which serializes the read-modify-write cycle and
// persists the whole aggregate (last-writer-wins, single-writer context).
type profileService struct {
	BaseService
	profileRepo portsrepo.ProfileRepositoryFacade
	audit       portssvc.AuditSvcFacade

	// mu is the Go rendition of the source's single UI thread: one mutation
	// at a time, reads of a consistent snapshot.
	mu sync.Mutex
}

// NewProfileService creates the profile state container.
func NewProfileService(profileRepo portsrepo.ProfileRepositoryFacade, audit portssvc.AuditSvcFacade) portssvc.ProfileSvcFacade {
	return &profileService{profileRepo: profileRepo, audit: audit}
}

var _ portssvc.ProfileSvcFacade = (*profileService)(nil)

// sampleProfile seeds a fresh install, and is the fallback when the persisted
// blob turns out to be corrupt.
func sampleProfile() *domain.Profile {
	now := time.Now()
	today := now.Format(domain.DateLayout)
	p := &domain.Profile{
		Income: domain.Income{
			GrossAnnualSalary: decimal.NewFromInt(60000),
			OtherIncome:       decimal.Zero,
		},
		CurrencyCode: "USD",
		Language:     "en",
		Categories:   []string{"Housing", "Food", "Transport", "Entertainment", "Shopping", "Utilities", "Health", "Other"},
		Budgets:      map[string]decimal.Decimal{},
		Goals:        []domain.SavingsGoal{},
		Expenses: []domain.Transaction{
			{
				TransactionID: uuid.NewString(),
				Description:   "Rent",
				Amount:        decimal.NewFromInt(1500),
				Category:      "Housing",
				Date:          today,
				AuditFields:   domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
			},
			{
				TransactionID: uuid.NewString(),
				Description:   "Groceries",
				Amount:        decimal.NewFromInt(400),
				Category:      "Food",
				Date:          today,
				AuditFields:   domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
			},
			{
				TransactionID: uuid.NewString(),
				Description:   "Car payment",
				Amount:        decimal.NewFromInt(350),
				Category:      "Transport",
				Date:          today,
				AuditFields:   domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
			},
			{
				TransactionID: uuid.NewString(),
				Description:   "Streaming subscription",
				Amount:        decimal.NewFromInt(15),
				Category:      "Entertainment",
				Date:          today,
				AuditFields:   domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
			},
		},
	}
	return p
}

// loadOrSeed loads the stored profile. A missing profile seeds sample data;
// a corrupt blob is logged and replaced with sample data rather than failing
// startup.
func (s *profileService) loadOrSeed(ctx context.Context) (*domain.Profile, error) {
	profile, err := s.profileRepo.LoadProfile(ctx)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			profile = sampleProfile()
		case errors.Is(err, apperrors.ErrCorruptState):
			s.LogError(ctx, err, "Stored profile is corrupt, falling back to sample data")
			profile = sampleProfile()
		default:
			return nil, fmt.Errorf("failed to load profile: %w", err)
		}
		if saveErr := s.profileRepo.SaveProfile(ctx, profile); saveErr != nil {
			return nil, fmt.Errorf("failed to persist seeded profile: %w", saveErr)
		}
	}
	profile.ApplyDefaults()
	return profile, nil
}

// GetProfile returns the current profile.
func (s *profileService) GetProfile(ctx context.Context) (*domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadOrSeed(ctx)
}

// MutateProfile is the single controlled mutation entry point. fn receives the
// freshly loaded profile; when fn returns nil the whole aggregate is persisted.
func (s *profileService) MutateProfile(ctx context.Context, fn func(p *domain.Profile) error) (*domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile, err := s.loadOrSeed(ctx)
	if err != nil {
		return nil, err
	}
	if err := fn(profile); err != nil {
		return nil, err
	}
	profile.ApplyDefaults()
	if err := s.profileRepo.SaveProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to persist profile: %w", err)
	}
	return profile, nil
}

// recordAudit writes an audit entry, logging rather than propagating failure:
// the audit log is a side channel and must never fail a mutation.
func (s *profileService) recordAudit(ctx context.Context, action domain.AuditAction, details string) {
	if err := s.audit.Record(ctx, action, details); err != nil {
		s.LogWarn(ctx, "Failed to record audit entry", "action", string(action), "error", err.Error())
	}
}

func (s *profileService) UpdateIncome(ctx context.Context, req dto.UpdateIncomeRequest) (*domain.Profile, error) {
	if req.GrossAnnualSalary.IsNegative() || req.OtherIncome.IsNegative() {
		return nil, fmt.Errorf("%w: income figures must be non-negative", apperrors.ErrValidation)
	}
	profile, err := s.MutateProfile(ctx, func(p *domain.Profile) error {
		p.Income = domain.Income{
			GrossAnnualSalary: req.GrossAnnualSalary,
			OtherIncome:       req.OtherIncome,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.recordAudit(ctx, domain.AuditIncomeUpdated, "")
	return profile, nil
}

func (s *profileService) SetCurrency(ctx context.Context, currencyCode string) (*domain.Profile, error) {
	currencyCode = strings.ToUpper(strings.TrimSpace(currencyCode))
	if len(currencyCode) != 3 {
		return nil, fmt.Errorf("%w: currency code must be 3 letters", apperrors.ErrValidation)
	}
	profile, err := s.MutateProfile(ctx, func(p *domain.Profile) error {
		p.CurrencyCode = currencyCode
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.recordAudit(ctx, domain.AuditCurrencyChanged, currencyCode)
	return profile, nil
}

func (s *profileService) SetLanguage(ctx context.Context, language string) (*domain.Profile, error) {
	language = strings.TrimSpace(language)
	if language == "" {
		return nil, fmt.Errorf("%w: language is required", apperrors.ErrValidation)
	}
	profile, err := s.MutateProfile(ctx, func(p *domain.Profile) error {
		p.Language = language
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.recordAudit(ctx, domain.AuditLanguageChanged, language)
	return profile, nil
}

func (s *profileService) AddCategory(ctx context.Context, name string) (*domain.Profile, error) {
	name = strings.TrimSpace(name)
	if result := utils.ValidateCategoryName(name); !result.Valid {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, result.Reason)
	}
	profile, err := s.MutateProfile(ctx, func(p *domain.Profile) error {
		for _, existing := range p.Categories {
			if strings.EqualFold(existing, name) {
				return fmt.Errorf("%w: category '%s' already exists", apperrors.ErrDuplicate, name)
			}
		}
		p.Categories = append(p.Categories, name)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.recordAudit(ctx, domain.AuditCategoryAdded, name)
	return profile, nil
}

// RenameCategory renames a declared category and moves its budget limit.
// Existing transactions keep their original tag; the category universe keeps
// historical tags visible in totals.
func (s *profileService) RenameCategory(ctx context.Context, oldName, newName string) (*domain.Profile, error) {
	newName = strings.TrimSpace(newName)
	if result := utils.ValidateCategoryName(newName); !result.Valid {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, result.Reason)
	}
	profile, err := s.MutateProfile(ctx, func(p *domain.Profile) error {
		idx := -1
		for i, existing := range p.Categories {
			if existing == oldName {
				idx = i
			} else if strings.EqualFold(existing, newName) {
				return fmt.Errorf("%w: category '%s' already exists", apperrors.ErrDuplicate, newName)
			}
		}
		if idx < 0 {
			return fmt.Errorf("%w: category '%s'", apperrors.ErrNotFound, oldName)
		}
		p.Categories[idx] = newName
		if limit, ok := p.Budgets[oldName]; ok {
			delete(p.Budgets, oldName)
			p.Budgets[newName] = limit
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.recordAudit(ctx, domain.AuditCategoryRenamed, fmt.Sprintf("%s -> %s", oldName, newName))
	return profile, nil
}

// RemoveCategory removes a declared category and drops its budget limit.
// Transactions tagged with the removed category still contribute to
// historical totals via the category universe.
func (s *profileService) RemoveCategory(ctx context.Context, name string) (*domain.Profile, error) {
	profile, err := s.MutateProfile(ctx, func(p *domain.Profile) error {
		idx := -1
		for i, existing := range p.Categories {
			if existing == name {
				idx = i
				break
			}
		}
		if idx < 0 {
			return fmt.Errorf("%w: category '%s'", apperrors.ErrNotFound, name)
		}
		p.Categories = append(p.Categories[:idx], p.Categories[idx+1:]...)
		delete(p.Budgets, name)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.recordAudit(ctx, domain.AuditCategoryRemoved, name)
	return profile, nil
}

// ReorderCategories replaces the declared category order. The new order must
// be a permutation of the current list; order is significant and drives UI
// and default-selection order.
func (s *profileService) ReorderCategories(ctx context.Context, ordered []string) (*domain.Profile, error) {
	profile, err := s.MutateProfile(ctx, func(p *domain.Profile) error {
		if len(ordered) != len(p.Categories) {
			return fmt.Errorf("%w: reordered list must contain exactly the declared categories", apperrors.ErrValidation)
		}
		current := make(map[string]int, len(p.Categories))
		for _, c := range p.Categories {
			current[c]++
		}
		for _, c := range ordered {
			if current[c] == 0 {
				return fmt.Errorf("%w: unknown category '%s' in reordered list", apperrors.ErrValidation, c)
			}
			current[c]--
		}
		p.Categories = append([]string(nil), ordered...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.recordAudit(ctx, domain.AuditCategoryReorder, "")
	return profile, nil
}

// ResetProfile wipes the persisted profile and restores sample data.
func (s *profileService) ResetProfile(ctx context.Context) (*domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.profileRepo.DeleteProfile(ctx); err != nil {
		return nil, fmt.Errorf("failed to delete profile: %w", err)
	}
	profile := sampleProfile()
	if err := s.profileRepo.SaveProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to persist reset profile: %w", err)
	}
	s.recordAudit(ctx, domain.AuditProfileReset, "")
	s.LogInfo(ctx, "Profile reset to sample data")
	return profile, nil
}
