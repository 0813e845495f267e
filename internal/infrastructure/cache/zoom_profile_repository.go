package cache

import (
	"context"
	"slices"

	"github.com/bnema/zoomlevels/internal/domain/entity"
	"github.com/bnema/zoomlevels/internal/domain/repository"
	"github.com/bnema/zoomlevels/internal/logging"
)

// CachedZoomProfileRepository keeps recently read profiles in an LRU keyed by name.
// Writes go to the wrapped repository first and then refresh or drop the cached entry.
type CachedZoomProfileRepository struct {
	repo  repository.ZoomProfileRepository
	cache *LRU[string, *entity.ZoomProfile]
}

var _ repository.ZoomProfileRepository = (*CachedZoomProfileRepository)(nil)

// NewCachedZoomProfileRepository wraps repo with an LRU of the given size.
func NewCachedZoomProfileRepository(repo repository.ZoomProfileRepository, size int) *CachedZoomProfileRepository {
	return &CachedZoomProfileRepository{
		repo:  repo,
		cache: NewLRU[string, *entity.ZoomProfile](size),
	}
}

func (r *CachedZoomProfileRepository) Get(ctx context.Context, name string) (*entity.ZoomProfile, error) {
	if profile, ok := r.cache.Get(name); ok {
		logging.FromContext(ctx).Trace().Str("profile", name).Msg("zoom profile cache hit")
		return cloneProfile(profile), nil
	}

	profile, err := r.repo.Get(ctx, name)
	if err != nil || profile == nil {
		return profile, err
	}
	r.cache.Set(name, cloneProfile(profile))
	return profile, nil
}

func (r *CachedZoomProfileRepository) Save(ctx context.Context, profile *entity.ZoomProfile) error {
	if err := r.repo.Save(ctx, profile); err != nil {
		r.cache.Remove(profile.Name)
		return err
	}
	r.cache.Set(profile.Name, cloneProfile(profile))
	return nil
}

func (r *CachedZoomProfileRepository) Delete(ctx context.Context, name string) error {
	r.cache.Remove(name)
	return r.repo.Delete(ctx, name)
}

// List always reads through; it is used for listings, not hot paths.
func (r *CachedZoomProfileRepository) List(ctx context.Context) ([]*entity.ZoomProfile, error) {
	return r.repo.List(ctx)
}

// Stats exposes the underlying cache counters.
func (r *CachedZoomProfileRepository) Stats() Stats {
	return r.cache.Stats()
}

func cloneProfile(p *entity.ZoomProfile) *entity.ZoomProfile {
	c := *p
	c.Levels = slices.Clone(p.Levels)
	return &c
}
