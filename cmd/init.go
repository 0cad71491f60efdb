package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/portfolio/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a portfolio config file with an interactive wizard",
	Long:  `Asks for the listen port, passcode, content directory and log format, then writes the config file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.RunWizard(cfgFile)
		if err != nil {
			return err
		}
		fmt.Printf("Wrote %s (port %d)\n", cfgFile, cfg.Port)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
