package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	require.True(t, cfg.AutoRefresh)
	require.Equal(t, 500, cfg.AutoRefreshDebounce)
	require.Equal(t, "dark", cfg.UI.MarkdownStyle)
	require.True(t, cfg.UI.ShowStatusBar)
	require.NoError(t, Validate(cfg), "defaults must validate")
}

func TestValidate_NegativeDebounce(t *testing.T) {
	cfg := Defaults()
	cfg.AutoRefreshDebounce = -1

	err := Validate(cfg)

	require.Error(t, err)
	require.Contains(t, err.Error(), "auto_refresh_debounce")
}

func TestValidate_BadMarkdownStyle(t *testing.T) {
	cfg := Defaults()
	cfg.UI.MarkdownStyle = "sepia"

	err := Validate(cfg)

	require.Error(t, err)
	require.Contains(t, err.Error(), "markdown_style")
}

func TestValidate_BadThemeColor(t *testing.T) {
	cfg := Defaults()
	cfg.Theme.Highlight = "purple"

	err := Validate(cfg)

	require.Error(t, err)
	require.Contains(t, err.Error(), "theme.highlight")
}

func TestValidate_EmptyThemeColorsAllowed(t *testing.T) {
	cfg := Defaults()
	cfg.Theme = ThemeConfig{}

	require.NoError(t, Validate(cfg))
}

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	require.NoError(t, WriteDefaultConfig(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "# tessera configuration")

	var parsed yamlConfig
	require.NoError(t, yaml.Unmarshal(data, &parsed))
	require.True(t, parsed.AutoRefresh)
	require.Equal(t, 500, parsed.AutoRefreshDebounce)
	require.Equal(t, "#7D56F4", parsed.Theme.Highlight)
}

func TestWriteDefaultConfig_ExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("feed_path: mine.yaml\n"), 0o644))

	err := WriteDefaultConfig(path)

	require.Error(t, err)
	require.Contains(t, err.Error(), "already exists")
}
