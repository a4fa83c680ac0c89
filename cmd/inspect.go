package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tmtek/tessera/internal/binder"
	"github.com/tmtek/tessera/internal/ui/feedview"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [feed.yaml]",
	Short: "Show which binding each feed item resolves to",
	Long: `Classify every item in a feed without starting the UI.

Prints one row per item with the binding index and name the dispatch
table resolved, or "-" when no binding matched. Useful for checking
binding order when a feed renders unexpectedly.

Examples:
  # Inspect the built-in sample feed
  tessera inspect

  # Inspect a feed file
  tessera inspect my-feed.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfg.FeedPath
		if len(args) > 0 {
			path = args[0]
		}

		items, label, err := loadFeed(path)
		if err != nil {
			return err
		}

		registry, names := feedview.DefaultRegistry()

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
		fmt.Fprintf(w, "ID\tTITLE\tBINDING\n")
		unmatched := 0
		for _, item := range items {
			idx := registry.Classify(item)
			binding := "-"
			if idx != binder.NoMatch {
				binding = fmt.Sprintf("%d:%s", idx, names[idx])
			} else {
				unmatched++
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", item.ID(), item.Title(), binding)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "\n%s: %d items, %d unmatched\n", label, len(items), unmatched)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
