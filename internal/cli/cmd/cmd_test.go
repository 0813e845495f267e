package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/zoomlevels/internal/application/usecase"
	"github.com/bnema/zoomlevels/internal/cli/styles"
	"github.com/bnema/zoomlevels/internal/domain/build"
)

const testLevels = "[zoom]\nlevels = [0.25, 0.5, 1]\n"

// setupEnv isolates XDG directories and writes a config file.
func setupEnv(t *testing.T, body string) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	t.Setenv("ZOOMLEVELS_LOG_LEVEL", "")

	dir := filepath.Join(root, "config", "zoomlevels")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, stdin io.Reader, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(stdin)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	closeApp()
	return out.String(), err
}

func run(t *testing.T, configPath string, args ...string) (string, error) {
	t.Helper()
	return execute(t, nil, append([]string{"--config", configPath, "--log-level", "disabled"}, args...)...)
}

func TestResolve(t *testing.T) {
	path := setupEnv(t, testLevels)

	out, err := run(t, path, "resolve", "3", "--up")
	require.NoError(t, err)
	assert.Contains(t, out, "3 "+styles.IconArrow+" 4")

	out, err = run(t, path, "resolve", "3", "--down")
	require.NoError(t, err)
	assert.Contains(t, out, "3 "+styles.IconArrow+" 2")
}

func TestResolve_AdHocLevels(t *testing.T) {
	path := setupEnv(t, testLevels)

	out, err := run(t, path, "resolve", "3", "--down", "--levels", "0.5,2")
	require.NoError(t, err)
	assert.Contains(t, out, "3 "+styles.IconArrow+" 2")

	// 2 in image space is 8 in the viewport, beyond max zoom 4.4.
	out, err = run(t, path, "resolve", "3", "--up", "--levels", "0.5,2")
	require.NoError(t, err)
	assert.Contains(t, out, "3 "+styles.IconArrow+" 4.4")
}

func TestResolve_Errors(t *testing.T) {
	path := setupEnv(t, testLevels)

	_, err := run(t, path, "resolve", "3")
	require.Error(t, err)

	_, err = run(t, path, "resolve", "3", "--up", "--down")
	require.Error(t, err)

	_, err = run(t, path, "resolve", "abc", "--up")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "zoom must be a positive number")
}

func TestLevels(t *testing.T) {
	path := setupEnv(t, "[zoom]\nlevels = [0.1, 0.5]\n")

	out, err := run(t, path, "levels")
	require.NoError(t, err)
	assert.Contains(t, out, "Zoom levels")
	assert.Contains(t, out, "(config)")
	assert.Contains(t, out, "0.4")
	assert.Contains(t, out, "outside viewport bounds")
}

func TestLevels_Empty(t *testing.T) {
	path := setupEnv(t, "[zoom]\nlevels = []\n")

	out, err := run(t, path, "levels")
	require.NoError(t, err)
	assert.Contains(t, out, "snapping is disabled")
}

func TestProfileLifecycle(t *testing.T) {
	path := setupEnv(t, testLevels)

	out, err := run(t, path, "profile", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No zoom profiles saved.")

	out, err = run(t, path, "profile", "save", "coarse", "1", "0.25")
	require.NoError(t, err)
	assert.Contains(t, out, "Saved profile")

	out, err = run(t, path, "profiles", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "coarse")
	assert.Contains(t, out, "2 levels")

	out, err = run(t, path, "profile", "show", "coarse")
	require.NoError(t, err)
	assert.Contains(t, out, "[0.25, 1]")

	out, err = run(t, path, "levels", "--profile", "coarse")
	require.NoError(t, err)
	assert.Contains(t, out, "profile coarse")

	out, err = run(t, path, "profile", "delete", "coarse")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted profile")

	_, err = run(t, path, "profile", "show", "coarse")
	require.Error(t, err)
	assert.ErrorIs(t, err, usecase.ErrProfileNotFound)
}

func TestProfileSave_InvalidLevel(t *testing.T) {
	path := setupEnv(t, testLevels)

	_, err := run(t, path, "profile", "save", "bad", "0")
	require.Error(t, err)
}

func TestConfigPath(t *testing.T) {
	path := setupEnv(t, testLevels)

	out, err := run(t, path, "config", "path")
	require.NoError(t, err)
	assert.Contains(t, out, path)
	assert.Contains(t, out, "exists")
	assert.Contains(t, out, "zoomlevels.db")
}

func TestConfigShow(t *testing.T) {
	path := setupEnv(t, testLevels)

	out, err := run(t, path, "config", "show")
	require.NoError(t, err)

	var cfg map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &cfg))
	zoom, ok := cfg["zoom"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{0.25, 0.5, 1.0}, zoom["levels"])
}

func TestConfigSchema(t *testing.T) {
	path := setupEnv(t, testLevels)

	out, err := run(t, path, "config", "schema")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(out)))

	out, err = run(t, path, "config", "schema", "--write")
	require.NoError(t, err)
	assert.Contains(t, out, "Schema written to")
	assert.FileExists(t, filepath.Join(filepath.Dir(path), "config.schema.json"))
}

func TestConfigKeys(t *testing.T) {
	path := setupEnv(t, testLevels)

	out, err := run(t, path, "config", "keys", "--section", "zoom")
	require.NoError(t, err)
	assert.Contains(t, out, "zoom.levels")
	assert.NotContains(t, out, "viewport.image_width")

	out, err = run(t, path, "config", "keys", "--json")
	require.NoError(t, err)
	var keys []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &keys))
	assert.NotEmpty(t, keys)
}

func TestReplay_Stdin(t *testing.T) {
	path := setupEnv(t, testLevels)

	out, err := execute(t, strings.NewReader("# session\n{\"zoom\": 3}\n"),
		"--config", path, "--log-level", "disabled", "replay")
	require.NoError(t, err)
	assert.Contains(t, out, "-:2")
	assert.Contains(t, out, styles.IconArrow+" 4")
	assert.Contains(t, out, "1 events")
	assert.Contains(t, out, "1 snapped")
}

func TestReplay_Files(t *testing.T) {
	path := setupEnv(t, testLevels)
	dir := t.TempDir()
	a := filepath.Join(dir, "a.jsonl")
	b := filepath.Join(dir, "b.jsonl")
	require.NoError(t, os.WriteFile(a, []byte("{\"zoom\": 3}\n{\"zoom\": 4}\n"), 0o600))
	require.NoError(t, os.WriteFile(b, []byte("{\"zoom\": 3, \"current\": 3.5}\n"), 0o600))

	out, err := run(t, path, "replay", a, b, "--parallel", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "a.jsonl:1")
	assert.Contains(t, out, "b.jsonl:1")
	assert.Contains(t, out, "pass")
	assert.Contains(t, out, "3 events")
	assert.Contains(t, out, "2 files")
}

func TestReplay_Errors(t *testing.T) {
	path := setupEnv(t, testLevels)

	_, err := run(t, path, "replay", filepath.Join(t.TempDir(), "missing.jsonl"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open replay file")

	bad := filepath.Join(t.TempDir(), "bad.jsonl")
	require.NoError(t, os.WriteFile(bad, []byte("{\"zoom\": -1}\n"), 0o600))
	_, err = run(t, path, "replay", bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "zoom must be a positive number")
}

func TestVersion(t *testing.T) {
	SetBuildInfo(build.Info{Version: "1.2.3", Commit: "abc123"})
	t.Cleanup(func() { SetBuildInfo(build.Info{}) })

	out, err := execute(t, nil, "version", "--json")
	require.NoError(t, err)

	var info build.Info
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, "1.2.3", info.Version)
	assert.Equal(t, "abc123", info.Commit)

	out, err = execute(t, nil, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "1.2.3")
}

func TestGenDocs_Markdown(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, nil, "gen-docs", "--format", "markdown", "--output", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "zoomlevels.md")
	assert.FileExists(t, filepath.Join(dir, "zoomlevels_resolve.md"))
}

func TestGenDocs_UnsupportedFormat(t *testing.T) {
	_, err := execute(t, nil, "gen-docs", "--format", "pdf", "--output", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}
