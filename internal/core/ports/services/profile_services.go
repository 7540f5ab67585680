package services

import (
	"context"

	"github.com/finwyse/fin_tracker_app/internal/core/domain"
	"github.com/finwyse/fin_tracker_app/internal/dto"
)

// ProfileReaderSvc defines read access to the single user's profile.
type ProfileReaderSvc interface {
	// GetProfile returns the current profile, loading sample data when no
	// profile has been persisted yet or the stored blob is corrupt.
	GetProfile(ctx context.Context) (*domain.Profile, error)
}

// ProfileMutatorSvc is the controlled mutation entry point for the profile
// aggregate. All writes are serialized: fn receives the freshly loaded
// profile, and the whole aggregate is persisted after fn returns nil.
type ProfileMutatorSvc interface {
	MutateProfile(ctx context.Context, fn func(p *domain.Profile) error) (*domain.Profile, error)
}

// ProfileWriterSvc defines the profile-level mutations exposed over HTTP.
type ProfileWriterSvc interface {
	UpdateIncome(ctx context.Context, req dto.UpdateIncomeRequest) (*domain.Profile, error)
	SetCurrency(ctx context.Context, currencyCode string) (*domain.Profile, error)
	SetLanguage(ctx context.Context, language string) (*domain.Profile, error)

	AddCategory(ctx context.Context, name string) (*domain.Profile, error)
	RenameCategory(ctx context.Context, oldName, newName string) (*domain.Profile, error)
	RemoveCategory(ctx context.Context, name string) (*domain.Profile, error)
	ReorderCategories(ctx context.Context, ordered []string) (*domain.Profile, error)

	// ResetProfile wipes all persisted state and restores sample data.
	ResetProfile(ctx context.Context) (*domain.Profile, error)
}

// ProfileSvcFacade combines all profile-related service interfaces.
type ProfileSvcFacade interface {
	ProfileReaderSvc
	ProfileMutatorSvc
	ProfileWriterSvc
}
