package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ziadkadry99/portfolio/internal/content"
	"github.com/ziadkadry99/portfolio/internal/view"
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Validate the content files and print a summary",
	Long:  `Loads the configured content directory (or the bundled content), reports every problem found, and prints per-collection counts and archive years.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		store, err := loadContent(cfg, zap.NewNop())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		counts := store.Counts()
		keys := make([]string, 0, len(counts))
		for k := range counts {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(out, "%-22s %d\n", k, counts[k])
		}

		years := view.DistinctKeys(store.Episodes(), content.Episode.ArchiveYear)
		fmt.Fprintf(out, "%-22s %v\n", "archive years", years)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(contentCmd)
}
