package sqlite

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/finwyse/fin_tracker_app/internal/apperrors"
	"github.com/finwyse/fin_tracker_app/internal/core/domain"
	portsrepo "github.com/finwyse/fin_tracker_app/internal/core/ports/repositories"
)

const profileKey = "profile"

// profileRepository persists the profile aggregate as a single JSON document
// in the KV store.
type profileRepository struct {
	kv portsrepo.KVStore
}

func newProfileRepository(kv portsrepo.KVStore) *profileRepository {
	return &profileRepository{kv: kv}
}

var _ portsrepo.ProfileRepositoryFacade = (*profileRepository)(nil)

func (r *profileRepository) LoadProfile(ctx context.Context) (*domain.Profile, error) {
	raw, err := r.kv.Get(ctx, profileKey)
	if err != nil {
		return nil, err
	}
	var profile domain.Profile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w: %w", apperrors.ErrCorruptState, err)
	}
	profile.ApplyDefaults()
	return &profile, nil
}

func (r *profileRepository) SaveProfile(ctx context.Context, profile *domain.Profile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	return r.kv.Set(ctx, profileKey, string(raw))
}

func (r *profileRepository) DeleteProfile(ctx context.Context) error {
	return r.kv.Delete(ctx, profileKey)
}
