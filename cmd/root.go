package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Live personal portfolio server",
	Long: `Portfolio serves a five-page personal site: a landing page, a content
archive with an unlockable memo tab, an orbiting production log, a side
project scene and a passcode-gated year review. Every page runs on the
server and streams its markup to the browser over a websocket.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "portfolio.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug logging)")
}
