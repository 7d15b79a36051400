package config

import (
	"embed"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/go-homedir"
)

//go:embed default/*.toml
var configFS embed.FS

type Config struct {
	Window WindowConfig `toml:"window"`
	Canvas CanvasConfig `toml:"canvas"`
	Assets AssetsConfig `toml:"assets"`
	Export ExportConfig `toml:"export"`
	Debug  DebugConfig  `toml:"debug"`
}

type WindowConfig struct {
	Title        string  `toml:"title"`
	Width        int     `toml:"width"`
	Height       int     `toml:"height"`
	PaletteWidth float64 `toml:"palette_width"`
}

type CanvasConfig struct {
	TickIntervalMs int `toml:"tick_interval_ms"`
	DoubleClickMs  int `toml:"double_click_ms"`
}

func (c CanvasConfig) TickInterval() time.Duration {
	return time.Duration(c.TickIntervalMs) * time.Millisecond
}

func (c CanvasConfig) DoubleClick() time.Duration {
	return time.Duration(c.DoubleClickMs) * time.Millisecond
}

type AssetsConfig struct {
	Dir      string  `toml:"dir"`
	FontFile string  `toml:"font_file"`
	FontSize float64 `toml:"font_size"`
}

type ExportConfig struct {
	Path         string `toml:"path"`
	Clipboard    bool   `toml:"clipboard"`
	ParentsFirst bool   `toml:"parents_first"`
}

type DebugConfig struct {
	Enabled       bool   `toml:"enabled"`
	ScreenshotDir string `toml:"screenshot_dir"`
}

// Load decodes data on top of the current values, so keys missing from data
// keep what was there before.
func (c *Config) Load(data string) error {
	if _, err := toml.Decode(data, c); err != nil {
		return err
	}
	return c.Validate()
}

// Validate rejects values the designer cannot run with and expands "~" in
// paths.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.PaletteWidth < 0 || c.Window.PaletteWidth >= float64(c.Window.Width) {
		return fmt.Errorf("palette_width %g does not fit a window %d wide", c.Window.PaletteWidth, c.Window.Width)
	}
	if c.Canvas.TickIntervalMs <= 0 {
		return fmt.Errorf("tick_interval_ms must be positive, got %d", c.Canvas.TickIntervalMs)
	}
	if c.Canvas.DoubleClickMs < 0 {
		return fmt.Errorf("double_click_ms must not be negative, got %d", c.Canvas.DoubleClickMs)
	}
	if c.Assets.FontSize <= 0 {
		return fmt.Errorf("font_size must be positive, got %g", c.Assets.FontSize)
	}

	for _, p := range []*string{&c.Assets.Dir, &c.Assets.FontFile, &c.Export.Path, &c.Debug.ScreenshotDir} {
		expanded, err := homedir.Expand(*p)
		if err != nil {
			return fmt.Errorf("expanding %q: %w", *p, err)
		}
		*p = expanded
	}
	return nil
}
