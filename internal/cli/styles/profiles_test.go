package styles_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bnema/zoomlevels/internal/cli/styles"
	"github.com/bnema/zoomlevels/internal/domain/build"
	"github.com/bnema/zoomlevels/internal/domain/entity"
)

func TestProfilesRenderer(t *testing.T) {
	r := styles.NewProfilesRenderer(styles.NewTheme())

	require.Contains(t, r.RenderList(nil), "No zoom profiles saved.")

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	profile := &entity.ZoomProfile{Name: "slides", Levels: []float64{0.5, 1, 2}, CreatedAt: now, UpdatedAt: now}

	out := r.RenderList([]*entity.ZoomProfile{profile})
	require.Contains(t, out, "slides")
	require.Contains(t, out, "[0.5, 1, 2]")
	require.Contains(t, out, "3 levels")

	require.Contains(t, r.RenderProfile(profile), "2026-03-01T12:00:00Z")
	require.Contains(t, r.RenderSaved(profile), "Saved profile")
	require.Contains(t, r.RenderDeleted("slides"), "Deleted profile")
}

func TestVersionRenderer(t *testing.T) {
	out := styles.NewVersionRenderer(styles.NewTheme()).Render(build.Info{
		Version:   "v1.2.0",
		Commit:    "abc123",
		BuildDate: "2026-03-01",
		GoVersion: "go1.25.3",
	})
	require.Contains(t, out, "v1.2.0")
	require.Contains(t, out, "abc123")
	require.Contains(t, out, build.RepoURL())
}
