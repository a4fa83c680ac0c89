package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tmtek/tessera/internal/config"
	"github.com/tmtek/tessera/internal/feed"
	"github.com/tmtek/tessera/internal/log"
	"github.com/tmtek/tessera/internal/pubsub"
	"github.com/tmtek/tessera/internal/ui/feedview"
	"github.com/tmtek/tessera/internal/ui/styles"
	"github.com/tmtek/tessera/internal/watcher"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var (
	version = "dev"
	cfgFile string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:     "tessera",
	Short:   "A terminal feed viewer with type-dispatch rendering",
	Long:    `A terminal viewer for mixed-shape feed files. Every item is routed through an ordered binding table that picks its renderer, so new item shapes only need a new binding.`,
	Version: version,
	RunE:    runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/tessera/config.yaml)")
	rootCmd.Flags().StringP("feed", "f", "",
		"path to a YAML feed file (default: built-in sample feed)")
	rootCmd.Flags().Bool("no-auto-refresh", false,
		"disable automatic reload when the feed file changes")
	rootCmd.PersistentFlags().Bool("debug", false,
		"write debug logs to .tessera/debug.log")

	// Bind flags to viper
	_ = viper.BindPFlag("feed_path", rootCmd.Flags().Lookup("feed"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("auto_refresh", defaults.AutoRefresh)
	viper.SetDefault("auto_refresh_debounce", defaults.AutoRefreshDebounce)
	viper.SetDefault("ui.show_status_bar", defaults.UI.ShowStatusBar)
	viper.SetDefault("ui.markdown_style", defaults.UI.MarkdownStyle)
	viper.SetDefault("theme.highlight", defaults.Theme.Highlight)
	viper.SetDefault("theme.subtle", defaults.Theme.Subtle)
	viper.SetDefault("theme.error", defaults.Theme.Error)
	viper.SetDefault("theme.success", defaults.Theme.Success)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .tessera/config.yaml (current directory)
		// 2. ~/.config/tessera/config.yaml (user config)
		if _, err := os.Stat(".tessera/config.yaml"); err == nil {
			viper.SetConfigFile(".tessera/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "tessera"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create default at .tessera/config.yaml
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			defaultPath := ".tessera/config.yaml"
			if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
				viper.SetConfigFile(defaultPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

func runApp(cmd *cobra.Command, args []string) error {
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var logTail *log.LogListener
	debug, _ := cmd.Flags().GetBool("debug")
	if debug || os.Getenv("TESSERA_DEBUG") != "" {
		cleanup, err := log.Init(".tessera/debug.log")
		if err != nil {
			return fmt.Errorf("initializing debug log: %w", err)
		}
		defer cleanup()
		logTail = log.NewListener(ctx)
	}

	items, label, err := loadFeed(cfg.FeedPath)
	if err != nil {
		return err
	}

	theme := styles.ThemeFromColors(
		cfg.Theme.Highlight, cfg.Theme.Subtle, cfg.Theme.Error, cfg.Theme.Success)

	model := feedview.New(items, theme, cfg.UI.MarkdownStyle).
		WithStatusBar(cfg.UI.ShowStatusBar).
		WithFeedLabel(label)
	if logTail != nil {
		model = model.WithLogTail(logTail)
	}

	// Handle --no-auto-refresh flag (negated logic)
	if noAutoRefresh, _ := cmd.Flags().GetBool("no-auto-refresh"); noAutoRefresh {
		cfg.AutoRefresh = false
	}

	var w *watcher.Watcher
	if cfg.AutoRefresh && cfg.FeedPath != "" {
		broker := pubsub.NewBroker[[]feed.Item]()
		defer broker.Close()

		w, err = watcher.New(watcher.Config{
			FeedPath:    cfg.FeedPath,
			DebounceDur: time.Duration(cfg.AutoRefreshDebounce) * time.Millisecond,
		})
		if err != nil {
			return fmt.Errorf("creating feed watcher: %w", err)
		}

		changes, err := w.Start()
		if err != nil {
			return fmt.Errorf("watching feed file: %w", err)
		}
		go reloadLoop(ctx, cfg.FeedPath, changes, broker)

		model = model.WithReload(pubsub.NewContinuousListener(ctx, broker))
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()

	if w != nil {
		if stopErr := w.Stop(); stopErr != nil && err == nil {
			err = stopErr
		}
	}

	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// loadFeed resolves the item collection: a feed file when configured, the
// built-in sample otherwise. The label names the source for the status bar.
func loadFeed(path string) ([]feed.Item, string, error) {
	if path == "" {
		return feed.Sample(), "sample feed", nil
	}
	items, err := feed.Load(path)
	if err != nil {
		return nil, "", fmt.Errorf("loading feed: %w", err)
	}
	return items, filepath.Base(path), nil
}

// reloadLoop re-reads the feed file after each settled change and publishes
// the fresh item set. Parse failures keep the last good items on screen.
func reloadLoop(ctx context.Context, path string, changes <-chan struct{}, pub pubsub.Publisher[[]feed.Item]) {
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-changes:
			if !ok {
				return
			}
			items, err := feed.Load(path)
			if err != nil {
				log.ErrorErr(log.CatWatcher, "reloading feed failed", err, "path", path)
				continue
			}
			log.Info(log.CatWatcher, "feed changed on disk", "items", len(items))
			pub.Publish(pubsub.UpdatedEvent, items)
		}
	}
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
