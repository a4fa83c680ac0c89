// Package config provides configuration types, defaults, and persistence
// for tessera.
package config

import (
	"fmt"
	"regexp"
)

// Config holds all configuration options for tessera.
type Config struct {
	// FeedPath is the YAML feed file to render. Empty means the built-in
	// sample feed.
	FeedPath string `mapstructure:"feed_path"`

	// AutoRefresh reloads the feed when the feed file changes on disk.
	AutoRefresh bool `mapstructure:"auto_refresh"`

	// AutoRefreshDebounce is the settle time in milliseconds before a file
	// change triggers a reload.
	AutoRefreshDebounce int `mapstructure:"auto_refresh_debounce"`

	UI    UIConfig    `mapstructure:"ui"`
	Theme ThemeConfig `mapstructure:"theme"`
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	ShowStatusBar bool   `mapstructure:"show_status_bar"`
	MarkdownStyle string `mapstructure:"markdown_style"` // "dark" (default) or "light"
}

// ThemeConfig holds theme color overrides as hex strings.
type ThemeConfig struct {
	Highlight string `mapstructure:"highlight"`
	Subtle    string `mapstructure:"subtle"`
	Error     string `mapstructure:"error"`
	Success   string `mapstructure:"success"`
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		AutoRefresh:         true,
		AutoRefreshDebounce: 500,
		UI: UIConfig{
			ShowStatusBar: true,
			MarkdownStyle: "dark",
		},
		Theme: ThemeConfig{
			Highlight: "#7D56F4",
			Subtle:    "#6C7086",
			Error:     "#F38BA8",
			Success:   "#73F59F",
		},
	}
}

var hexColorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Validate checks the configuration for values that would break rendering.
func Validate(cfg Config) error {
	if cfg.AutoRefreshDebounce < 0 {
		return fmt.Errorf("auto_refresh_debounce must be >= 0, got %d", cfg.AutoRefreshDebounce)
	}
	if s := cfg.UI.MarkdownStyle; s != "" && s != "dark" && s != "light" {
		return fmt.Errorf("ui.markdown_style must be \"dark\" or \"light\", got %q", s)
	}
	for name, val := range map[string]string{
		"theme.highlight": cfg.Theme.Highlight,
		"theme.subtle":    cfg.Theme.Subtle,
		"theme.error":     cfg.Theme.Error,
		"theme.success":   cfg.Theme.Success,
	} {
		if val != "" && !hexColorRe.MatchString(val) {
			return fmt.Errorf("%s: invalid hex color %q", name, val)
		}
	}
	return nil
}
