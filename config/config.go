// Package config loads user settings from a TOML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/andareed/siftly-sheetchart/charts"
	"github.com/andareed/siftly-sheetchart/ingest"
	"github.com/andareed/siftly-sheetchart/render"
	"github.com/andareed/siftly-sheetchart/viewport"
)

const appName = "sheetchart"

// Config represents user settings stored in the config directory.
type Config struct {
	Chart  ChartConfig  `toml:"chart"`
	Locale LocaleConfig `toml:"locale"`
	IDs    IDConfig     `toml:"ids"`
	Export ExportConfig `toml:"export"`
}

// ChartConfig controls drawing and zoom behaviour.
type ChartConfig struct {
	Palette []string `toml:"palette"`
	MinSpan int      `toml:"min_span"`
	ZoomIn  float64  `toml:"zoom_in"`
	ZoomOut float64  `toml:"zoom_out"`
}

// LocaleConfig controls date and number formatting.
type LocaleConfig struct {
	Name     string `toml:"name"`
	Timezone string `toml:"timezone"`
}

type IDConfig struct {
	Scheme string `toml:"scheme"`
}

// ExportConfig sizes PNG exports in pixels.
type ExportConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// Default returns a config with default values.
func Default() *Config {
	palette := make([]string, len(render.DefaultPalette))
	copy(palette, render.DefaultPalette)
	return &Config{
		Chart: ChartConfig{
			Palette: palette,
			MinSpan: viewport.DefaultMinSpan,
			ZoomIn:  viewport.DefaultZoomIn,
			ZoomOut: viewport.DefaultZoomOut,
		},
		Locale: LocaleConfig{
			Name:     "tr",
			Timezone: "Local",
		},
		IDs: IDConfig{
			Scheme: "ulid",
		},
		Export: ExportConfig{
			Width:  1280,
			Height: 480,
		},
	}
}

// Path returns the default config file location, following the XDG base
// directory layout on Linux and platform conventions elsewhere.
func Path() string {
	var dir string
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, "Library", "Application Support", appName)
	case "windows":
		dir = filepath.Join(os.Getenv("APPDATA"), appName)
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			dir = filepath.Join(xdg, appName)
		} else {
			home, _ := os.UserHomeDir()
			dir = filepath.Join(home, ".config", appName)
		}
	}
	return filepath.Join(dir, "config.toml")
}

// Load reads path, or the default location when path is empty. A missing
// default file yields the defaults; a missing explicit file is an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = Path()
	}

	cfg := Default()
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	} else if explicit {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// fillDefaults applies defaults for any missing values.
func (c *Config) fillDefaults() {
	d := Default()
	if len(c.Chart.Palette) == 0 {
		c.Chart.Palette = d.Chart.Palette
	}
	if c.Chart.MinSpan == 0 {
		c.Chart.MinSpan = d.Chart.MinSpan
	}
	if c.Chart.ZoomIn == 0 {
		c.Chart.ZoomIn = d.Chart.ZoomIn
	}
	if c.Chart.ZoomOut == 0 {
		c.Chart.ZoomOut = d.Chart.ZoomOut
	}
	if c.Locale.Name == "" {
		c.Locale.Name = d.Locale.Name
	}
	if c.Locale.Timezone == "" {
		c.Locale.Timezone = d.Locale.Timezone
	}
	if c.IDs.Scheme == "" {
		c.IDs.Scheme = d.IDs.Scheme
	}
	if c.Export.Width == 0 {
		c.Export.Width = d.Export.Width
	}
	if c.Export.Height == 0 {
		c.Export.Height = d.Export.Height
	}
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Chart.MinSpan < 1 {
		return fmt.Errorf("chart.min_span must be at least 1, got %d", c.Chart.MinSpan)
	}
	if c.Chart.ZoomIn <= 0 || c.Chart.ZoomIn >= 1 {
		return fmt.Errorf("chart.zoom_in must be between 0 and 1, got %g", c.Chart.ZoomIn)
	}
	if c.Chart.ZoomOut <= 1 {
		return fmt.Errorf("chart.zoom_out must be greater than 1, got %g", c.Chart.ZoomOut)
	}
	if _, ok := ingest.LocaleByName(c.Locale.Name); !ok {
		return fmt.Errorf("unknown locale.name %q", c.Locale.Name)
	}
	if _, err := time.LoadLocation(c.Locale.Timezone); err != nil {
		return fmt.Errorf("unknown locale.timezone %q: %w", c.Locale.Timezone, err)
	}
	if _, err := charts.GeneratorFor(c.IDs.Scheme); err != nil {
		return err
	}
	if c.Export.Width < 64 || c.Export.Height < 64 {
		return fmt.Errorf("export size must be at least 64x64, got %dx%d", c.Export.Width, c.Export.Height)
	}
	return nil
}

// ViewportOptions returns the zoom settings.
func (c *Config) ViewportOptions() viewport.Options {
	return viewport.Options{MinSpan: c.Chart.MinSpan, ZoomIn: c.Chart.ZoomIn, ZoomOut: c.Chart.ZoomOut}
}

// IngestLocale resolves the locale and time zone.
func (c *Config) IngestLocale() (ingest.Locale, error) {
	loc, ok := ingest.LocaleByName(c.Locale.Name)
	if !ok {
		return ingest.Locale{}, fmt.Errorf("unknown locale %q", c.Locale.Name)
	}
	tz, err := time.LoadLocation(c.Locale.Timezone)
	if err != nil {
		return ingest.Locale{}, fmt.Errorf("failed to load time zone: %w", err)
	}
	return loc.WithLocation(tz), nil
}

// IDGenerator returns the configured chart id generator.
func (c *Config) IDGenerator() (charts.IDGenerator, error) {
	return charts.GeneratorFor(c.IDs.Scheme)
}
