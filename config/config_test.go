package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andareed/siftly-sheetchart/charts"
	"github.com/andareed/siftly-sheetchart/render"
	"github.com/andareed/siftly-sheetchart/viewport"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, render.DefaultPalette, cfg.Chart.Palette)
	assert.Equal(t, viewport.DefaultOptions(), cfg.ViewportOptions())
	assert.Equal(t, "tr", cfg.Locale.Name)
}

func TestLoadMissingDefaultFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoadFillsMissingValues(t *testing.T) {
	path := writeConfig(t, `
[chart]
min_span = 25
palette = ["#111111", "#222222"]

[locale]
name = "en"
timezone = "UTC"

[ids]
scheme = "uuid"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.Chart.MinSpan)
	assert.Equal(t, viewport.DefaultZoomIn, cfg.Chart.ZoomIn)
	assert.Equal(t, []string{"#111111", "#222222"}, cfg.Chart.Palette)
	assert.Equal(t, 1280, cfg.Export.Width)

	loc, err := cfg.IngestLocale()
	require.NoError(t, err)
	assert.Equal(t, "en", loc.Name)
	assert.Equal(t, time.UTC, loc.Location)

	gen, err := cfg.IDGenerator()
	require.NoError(t, err)
	assert.IsType(t, charts.UUIDGenerator{}, gen)
}

func TestLoadRejectsBadValues(t *testing.T) {
	for _, body := range []string{
		"[chart]\nzoom_in = 1.5\n",
		"[chart]\nzoom_out = 0.5\n",
		"[chart]\nmin_span = -2\n",
		"[locale]\nname = \"fr\"\n",
		"[locale]\ntimezone = \"Mars/Olympus\"\n",
		"[ids]\nscheme = \"serial\"\n",
		"[export]\nwidth = 10\n",
		"not toml at all = = =",
	} {
		_, err := Load(writeConfig(t, body))
		assert.Error(t, err, body)
	}
}

func TestPathHonoursXDG(t *testing.T) {
	if runtime.GOOS == "darwin" || runtime.GOOS == "windows" {
		t.Skip("xdg only applies on unix-like systems")
	}
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	assert.Equal(t, filepath.Join(dir, "sheetchart", "config.toml"), Path())
}
