package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// defaultFileTemplate documents every option when a starter config is
// written for a new user.
const defaultFileTemplate = `# tessera configuration
#
# feed_path: path to a YAML feed file. Empty uses the built-in sample feed.
# auto_refresh: reload the feed when the file changes on disk.
# auto_refresh_debounce: settle time in milliseconds before reloading.
`

// yamlConfig mirrors Config with yaml tags for writing.
type yamlConfig struct {
	FeedPath            string          `yaml:"feed_path,omitempty"`
	AutoRefresh         bool            `yaml:"auto_refresh"`
	AutoRefreshDebounce int             `yaml:"auto_refresh_debounce"`
	UI                  yamlUIConfig    `yaml:"ui"`
	Theme               yamlThemeConfig `yaml:"theme"`
}

type yamlUIConfig struct {
	ShowStatusBar bool   `yaml:"show_status_bar"`
	MarkdownStyle string `yaml:"markdown_style"`
}

type yamlThemeConfig struct {
	Highlight string `yaml:"highlight"`
	Subtle    string `yaml:"subtle"`
	Error     string `yaml:"error"`
	Success   string `yaml:"success"`
}

// WriteDefaultConfig writes a commented starter config file at path,
// creating parent directories as needed. Existing files are left alone.
func WriteDefaultConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	d := Defaults()
	out, err := yaml.Marshal(yamlConfig{
		FeedPath:            d.FeedPath,
		AutoRefresh:         d.AutoRefresh,
		AutoRefreshDebounce: d.AutoRefreshDebounce,
		UI:                  yamlUIConfig(d.UI),
		Theme:               yamlThemeConfig(d.Theme),
	})
	if err != nil {
		return fmt.Errorf("marshaling defaults: %w", err)
	}

	data := append([]byte(defaultFileTemplate), out...)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
