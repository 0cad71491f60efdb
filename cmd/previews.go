package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/portfolio/internal/preview"
	"github.com/ziadkadry99/portfolio/internal/progress"
)

var (
	previewsConcurrency int
	previewsStrict      bool
)

var previewsCmd = &cobra.Command{
	Use:   "previews",
	Short: "Check that every episode outro resolves to a playable preview",
	Long:  `Looks up every distinct outro track against the music catalog and lists the ones without a preview.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer logger.Sync()

		store, err := loadContent(cfg, logger)
		if err != nil {
			return err
		}
		search, err := newSearcher(cfg)
		if err != nil {
			return err
		}

		var terms []string
		seen := make(map[string]bool)
		for _, ep := range store.Episodes() {
			if ep.OutroMusic == nil || ep.OutroMusic.Title == "" || seen[ep.OutroMusic.Title] {
				continue
			}
			seen[ep.OutroMusic.Title] = true
			terms = append(terms, ep.OutroMusic.Title)
		}
		if len(terms) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No outro tracks to check.")
			return nil
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		reporter := progress.NewReporter(cmd.ErrOrStderr())
		reporter.Start(len(terms), "Resolving previews")
		outcomes, err := preview.Resolve(ctx, search, terms, previewsConcurrency, func(o preview.Outcome) {
			reporter.Step(o.Term)
		})
		reporter.Finish()
		if err != nil {
			return fmt.Errorf("resolving previews: %w", err)
		}

		out := cmd.OutOrStdout()
		var missing, failed int
		for _, o := range outcomes {
			switch {
			case o.Found():
				fmt.Fprintf(out, "  ok       %s -> %s\n", o.Term, o.Track.Name)
			case o.Missing():
				missing++
				fmt.Fprintf(out, "  missing  %s\n", o.Term)
			default:
				failed++
				fmt.Fprintf(out, "  failed   %s: %v\n", o.Term, o.Err)
			}
		}
		fmt.Fprintf(out, "%d tracks, %d missing, %d failed\n", len(outcomes), missing, failed)

		if previewsStrict && missing+failed > 0 {
			return fmt.Errorf("%d outro tracks without a preview", missing+failed)
		}
		return nil
	},
}

func init() {
	previewsCmd.Flags().IntVar(&previewsConcurrency, "concurrency", 4, "parallel catalog requests")
	previewsCmd.Flags().BoolVar(&previewsStrict, "strict", false, "exit non-zero when any track has no preview")
	rootCmd.AddCommand(previewsCmd)
}
