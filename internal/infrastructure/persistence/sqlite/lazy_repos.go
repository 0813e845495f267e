// Package sqlite provides SQLite implementations of domain repositories.
//
// Repositories come in two flavours: eager ones built on an open *sql.DB, and
// lazy wrappers that open the database on first use through a port.DatabaseProvider.
// The CLI uses the lazy form so commands that never read a profile never open the file.
package sqlite

import (
	"context"
	"sync"

	"github.com/bnema/zoomlevels/internal/application/port"
	"github.com/bnema/zoomlevels/internal/domain/entity"
	"github.com/bnema/zoomlevels/internal/domain/repository"
)

// LazyZoomProfileRepository wraps a zoom profile repository with lazy database initialization.
type LazyZoomProfileRepository struct {
	provider port.DatabaseProvider
	repo     repository.ZoomProfileRepository
	once     sync.Once
	initErr  error
}

// NewLazyZoomProfileRepository creates a lazy-loading zoom profile repository.
func NewLazyZoomProfileRepository(provider port.DatabaseProvider) repository.ZoomProfileRepository {
	return &LazyZoomProfileRepository{provider: provider}
}

func (r *LazyZoomProfileRepository) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.initErr = err
			return
		}
		r.repo = NewZoomProfileRepository(db)
	})
	return r.initErr
}

func (r *LazyZoomProfileRepository) Get(ctx context.Context, name string) (*entity.ZoomProfile, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.Get(ctx, name)
}

func (r *LazyZoomProfileRepository) Save(ctx context.Context, profile *entity.ZoomProfile) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Save(ctx, profile)
}

func (r *LazyZoomProfileRepository) Delete(ctx context.Context, name string) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Delete(ctx, name)
}

func (r *LazyZoomProfileRepository) List(ctx context.Context) ([]*entity.ZoomProfile, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.List(ctx)
}
