package repository

import (
	"context"

	"github.com/bnema/zoomlevels/internal/domain/entity"
)

// ZoomProfileRepository defines operations for named zoom level profile persistence.
type ZoomProfileRepository interface {
	// Get retrieves a profile by name.
	// Returns nil if no profile with that name exists.
	Get(ctx context.Context, name string) (*entity.ZoomProfile, error)

	// Save creates or replaces a profile.
	Save(ctx context.Context, profile *entity.ZoomProfile) error

	// Delete removes a profile. Deleting a missing profile is not an error.
	Delete(ctx context.Context, name string) error

	// List returns all profiles ordered by name.
	List(ctx context.Context) ([]*entity.ZoomProfile, error)
}
