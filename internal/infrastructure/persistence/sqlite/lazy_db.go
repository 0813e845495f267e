package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/bnema/zoomlevels/internal/application/port"
	"github.com/bnema/zoomlevels/internal/logging"
)

// LazyDB opens the profile database on the first DB call.
// A failed open is remembered; later calls return the same error.
type LazyDB struct {
	path string

	mu      sync.Mutex
	tried   bool
	db      *sql.DB
	openErr error
}

var _ port.DatabaseProvider = (*LazyDB)(nil)

// NewLazyDB returns a provider for the database at path without touching the file.
func NewLazyDB(path string) *LazyDB {
	return &LazyDB{path: path}
}

// DB returns the shared connection, opening and migrating it on first use.
func (l *LazyDB) DB(ctx context.Context) (*sql.DB, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.tried {
		l.tried = true
		l.db, l.openErr = NewConnection(ctx, l.path)
		if l.openErr != nil {
			logging.FromContext(ctx).Error().Err(l.openErr).Str("path", l.path).Msg("profile database unavailable")
		}
	}
	if l.openErr != nil {
		return nil, fmt.Errorf("database initialization failed: %w", l.openErr)
	}
	return l.db, nil
}

// Close closes the connection if one was opened.
func (l *LazyDB) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.db == nil {
		return nil
	}
	return l.db.Close()
}

// IsInitialized reports whether a connection has been opened successfully.
func (l *LazyDB) IsInitialized() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.db != nil
}

// Path returns the database file path.
func (l *LazyDB) Path() string {
	return l.path
}
