package repositories

import (
	"context"

	"github.com/finwyse/fin_tracker_app/internal/core/domain"
)

// ProfileReader defines read operations for the persisted profile.
type ProfileReader interface {
	// LoadProfile deserializes the stored profile blob. It returns
	// apperrors.ErrNotFound when no profile has been saved yet and
	// apperrors.ErrCorruptState (wrapped) when the blob does not parse.
	LoadProfile(ctx context.Context) (*domain.Profile, error)
}

// ProfileWriter defines write operations for the persisted profile.
type ProfileWriter interface {
	// SaveProfile serializes and stores the whole profile. The profile is the
	// unit of persistence; partial writes are not supported.
	SaveProfile(ctx context.Context, profile *domain.Profile) error

	// DeleteProfile removes the stored profile blob.
	DeleteProfile(ctx context.Context) error
}

// ProfileRepositoryFacade combines profile persistence operations.
type ProfileRepositoryFacade interface {
	ProfileReader
	ProfileWriter
}
