package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/zoomlevels/internal/domain/entity"
	"github.com/bnema/zoomlevels/internal/domain/repository"
	"github.com/bnema/zoomlevels/internal/logging"
)

// ErrProfileNotFound is returned when a named zoom profile does not exist.
var ErrProfileNotFound = errors.New("zoom profile not found")

// ManageZoomProfilesUseCase handles named zoom level profile operations.
type ManageZoomProfilesUseCase struct {
	profileRepo repository.ZoomProfileRepository
}

// NewManageZoomProfilesUseCase creates a new zoom profile management use case.
func NewManageZoomProfilesUseCase(profileRepo repository.ZoomProfileRepository) *ManageZoomProfilesUseCase {
	return &ManageZoomProfilesUseCase{profileRepo: profileRepo}
}

// Save validates the levels and stores them, normalized, under name.
// An existing profile keeps its creation time.
func (uc *ManageZoomProfilesUseCase) Save(ctx context.Context, name string, levels []float64) (*entity.ZoomProfile, error) {
	log := logging.FromContext(ctx)

	profile, err := entity.NewZoomProfile(name, levels)
	if err != nil {
		return nil, err
	}

	existing, err := uc.profileRepo.Get(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get zoom profile: %w", err)
	}
	if existing != nil {
		profile.CreatedAt = existing.CreatedAt
	}

	if err := uc.profileRepo.Save(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to save zoom profile: %w", err)
	}

	log.Info().Str("profile", name).Floats64("levels", profile.Levels).Msg("zoom profile saved")
	return profile, nil
}

// Get retrieves a profile, returning ErrProfileNotFound when absent.
func (uc *ManageZoomProfilesUseCase) Get(ctx context.Context, name string) (*entity.ZoomProfile, error) {
	log := logging.FromContext(ctx)
	log.Debug().Str("profile", name).Msg("getting zoom profile")

	if err := entity.ValidateProfileName(name); err != nil {
		return nil, err
	}

	profile, err := uc.profileRepo.Get(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get zoom profile: %w", err)
	}
	if profile == nil {
		return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, name)
	}
	return profile, nil
}

// Resolve returns the validated levels of a stored profile.
func (uc *ManageZoomProfilesUseCase) Resolve(ctx context.Context, name string) (entity.PermittedLevels, error) {
	profile, err := uc.Get(ctx, name)
	if err != nil {
		return entity.PermittedLevels{}, err
	}

	levels, err := profile.PermittedLevels()
	if err != nil {
		return entity.PermittedLevels{}, fmt.Errorf("stored zoom profile %s is invalid: %w", name, err)
	}
	return levels, nil
}

// List returns all stored profiles.
func (uc *ManageZoomProfilesUseCase) List(ctx context.Context) ([]*entity.ZoomProfile, error) {
	profiles, err := uc.profileRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list zoom profiles: %w", err)
	}

	logging.FromContext(ctx).Debug().Int("count", len(profiles)).Msg("retrieved zoom profiles")
	return profiles, nil
}

// Delete removes a profile, returning ErrProfileNotFound when absent.
func (uc *ManageZoomProfilesUseCase) Delete(ctx context.Context, name string) error {
	if _, err := uc.Get(ctx, name); err != nil {
		return err
	}

	if err := uc.profileRepo.Delete(ctx, name); err != nil {
		return fmt.Errorf("failed to delete zoom profile: %w", err)
	}

	logging.FromContext(ctx).Info().Str("profile", name).Msg("zoom profile deleted")
	return nil
}
