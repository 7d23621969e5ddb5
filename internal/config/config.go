package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI      UIConfig      `mapstructure:"ui"`
	Render  RenderConfig  `mapstructure:"render"`
	History HistoryConfig `mapstructure:"history"`
	// Keys maps action names to replacement key lists, overriding the
	// built-in bindings action by action.
	Keys map[string][]string `mapstructure:"keys"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	// AttrPaneRatio is the width share of the attribute pane relative
	// to the detail pane.
	AttrPaneRatio float64 `mapstructure:"attr_pane_ratio"`
}

// RenderConfig holds preview and highlighting settings.
type RenderConfig struct {
	PreviewDepth   int    `mapstructure:"preview_depth"`
	Highlight      bool   `mapstructure:"highlight"`
	HighlightStyle string `mapstructure:"highlight_style"`
}

// HistoryConfig holds visit-history settings.
type HistoryConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// Load reads configuration from file and env. Env var overrides use prefix OBJBROWSE_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("ui.attr_pane_ratio", 1.0)
	v.SetDefault("render.preview_depth", 6)
	v.SetDefault("render.highlight", true)
	v.SetDefault("render.highlight_style", "monokai")
	v.SetDefault("history.enabled", true)
	v.SetDefault("history.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "objbrowse", "history.db"))

	v.SetConfigType("toml")

	cfgPath := os.Getenv("OBJBROWSE_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "objbrowse"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("OBJBROWSE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.UI.AttrPaneRatio <= 0 {
		c.UI.AttrPaneRatio = 1.0
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if needed.
// Used for persisting preferences changed from inside the browser.
func Save(cfg Config) error {
	path := os.Getenv("OBJBROWSE_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "objbrowse", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("ui.attr_pane_ratio", cfg.UI.AttrPaneRatio)
	v.Set("render.preview_depth", cfg.Render.PreviewDepth)
	v.Set("render.highlight", cfg.Render.Highlight)
	v.Set("render.highlight_style", cfg.Render.HighlightStyle)
	v.Set("history.enabled", cfg.History.Enabled)
	v.Set("history.path", cfg.History.Path)
	for action, keys := range cfg.Keys {
		v.Set("keys."+action, keys)
	}

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
