package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("STRATDECK_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	cfg, err := Load()
	require.NoError(t, err)
	require.NotEmpty(t, cfg.Database.Path)
	require.NotEmpty(t, cfg.Log.Path)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, DefaultFeatured, cfg.UI.Featured)
	require.Equal(t, 12, cfg.UI.RowsPerPage)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[database]
path = "/tmp/elsewhere.db"

[ui]
featured = ["SWOT Analysis"]
rows_per_page = 20
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("STRATDECK_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "/tmp/elsewhere.db", cfg.Database.Path)
	require.Equal(t, []string{"SWOT Analysis"}, cfg.UI.Featured)
	require.Equal(t, 20, cfg.UI.RowsPerPage)
}

func TestLoadClampsRowsPerPage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui]\nrows_per_page = 1\n"), 0o644))
	t.Setenv("STRATDECK_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 5, cfg.UI.RowsPerPage)
}
