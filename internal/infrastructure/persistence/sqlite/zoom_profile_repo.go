package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/zoomlevels/internal/domain/entity"
	"github.com/bnema/zoomlevels/internal/domain/repository"
	"github.com/bnema/zoomlevels/internal/logging"
)

const (
	getZoomProfile = `SELECT name, levels, created_at, updated_at FROM zoom_profiles WHERE name = ?`

	upsertZoomProfile = `INSERT INTO zoom_profiles (name, levels, created_at, updated_at)
VALUES (?, ?, ?, ?)
ON CONFLICT(name) DO UPDATE SET
    levels = excluded.levels,
    updated_at = excluded.updated_at`

	deleteZoomProfile = `DELETE FROM zoom_profiles WHERE name = ?`

	listZoomProfiles = `SELECT name, levels, created_at, updated_at FROM zoom_profiles ORDER BY name`
)

// Layouts accepted when reading timestamps; the last one is SQLite's CURRENT_TIMESTAMP.
var timestampLayouts = []string{time.RFC3339Nano, "2006-01-02 15:04:05"}

type zoomProfileRepo struct {
	db *sql.DB
}

// NewZoomProfileRepository creates a new SQLite-backed zoom profile repository.
func NewZoomProfileRepository(db *sql.DB) repository.ZoomProfileRepository {
	return &zoomProfileRepo{db: db}
}

func (r *zoomProfileRepo) Get(ctx context.Context, name string) (*entity.ZoomProfile, error) {
	log := logging.FromContext(ctx)
	log.Debug().Str("profile", name).Msg("getting zoom profile")

	profile, err := scanZoomProfile(r.db.QueryRowContext(ctx, getZoomProfile, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return profile, nil
}

func (r *zoomProfileRepo) Save(ctx context.Context, profile *entity.ZoomProfile) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("profile", profile.Name).Floats64("levels", profile.Levels).Msg("saving zoom profile")

	levels := profile.Levels
	if levels == nil {
		levels = []float64{}
	}
	encoded, err := json.Marshal(levels)
	if err != nil {
		return fmt.Errorf("failed to encode levels: %w", err)
	}

	now := time.Now()
	createdAt := profile.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}
	updatedAt := profile.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = now
	}

	_, err = r.db.ExecContext(ctx, upsertZoomProfile,
		profile.Name,
		string(encoded),
		formatTimestamp(createdAt),
		formatTimestamp(updatedAt),
	)
	return err
}

func (r *zoomProfileRepo) Delete(ctx context.Context, name string) error {
	_, err := r.db.ExecContext(ctx, deleteZoomProfile, name)
	return err
}

func (r *zoomProfileRepo) List(ctx context.Context) ([]*entity.ZoomProfile, error) {
	rows, err := r.db.QueryContext(ctx, listZoomProfiles)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	profiles := make([]*entity.ZoomProfile, 0)
	for rows.Next() {
		profile, err := scanZoomProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	return profiles, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanZoomProfile(row rowScanner) (*entity.ZoomProfile, error) {
	var (
		profile              entity.ZoomProfile
		levels               string
		createdAt, updatedAt string
	)
	if err := row.Scan(&profile.Name, &levels, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(levels), &profile.Levels); err != nil {
		return nil, fmt.Errorf("zoom profile %s: failed to decode levels: %w", profile.Name, err)
	}
	profile.CreatedAt = parseTimestamp(createdAt)
	profile.UpdatedAt = parseTimestamp(updatedAt)
	return &profile, nil
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTimestamp(value string) time.Time {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
