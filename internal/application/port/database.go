package port

import (
	"context"
	"database/sql"
)

// DatabaseProvider hands out the profile database connection.
// Commands that never read a stored profile must not cause the file to be opened.
type DatabaseProvider interface {
	DB(ctx context.Context) (*sql.DB, error)
	// IsInitialized reports whether DB has opened a connection.
	IsInitialized() bool
	Close() error
}
