package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Preset PresetConfig
	Hook   HookConfig
	UI     UIConfig
	Canvas CanvasConfig
}

// PresetConfig selects the tool preset file.
type PresetConfig struct {
	Path  string
	Watch bool
}

// HookConfig points at an optional tengo mode-change script.
type HookConfig struct {
	Script string
}

// UIConfig holds window settings.
type UIConfig struct {
	InitialMode string `mapstructure:"initial_mode"`
	Width       int
	Height      int
	Clipboard   bool
}

// CanvasConfig sizes the document and its on-screen zoom.
type CanvasConfig struct {
	Width  int
	Height int
	Zoom   int
}

// Load reads configuration from file and env. Env var overrides use prefix PIXELED_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("preset.path", "")
	v.SetDefault("preset.watch", true)
	v.SetDefault("hook.script", "")
	v.SetDefault("ui.initial_mode", "")
	v.SetDefault("ui.width", 1280)
	v.SetDefault("ui.height", 800)
	v.SetDefault("ui.clipboard", true)
	v.SetDefault("canvas.width", 64)
	v.SetDefault("canvas.height", 64)
	v.SetDefault("canvas.zoom", 8)

	v.SetConfigType("yaml")

	cfgPath := os.Getenv("PIXELED_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "pixeled"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("PIXELED")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.UI.Width <= 0 || c.UI.Height <= 0 {
		return Config{}, fmt.Errorf("config: invalid window size %dx%d", c.UI.Width, c.UI.Height)
	}
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 || c.Canvas.Zoom <= 0 {
		return Config{}, fmt.Errorf("config: invalid canvas %dx%d at zoom %d", c.Canvas.Width, c.Canvas.Height, c.Canvas.Zoom)
	}
	return c, nil
}
