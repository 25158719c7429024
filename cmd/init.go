package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hzidan/blogsmith/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a config file through an interactive wizard",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(cfgFile); err == nil {
			return fmt.Errorf("%s already exists; remove it first to re-run init", cfgFile)
		}

		cfg, err := config.RunWizard(cfgFile)
		if err != nil {
			return err
		}

		if err := os.MkdirAll(cfg.ContentDir, 0o755); err != nil {
			return fmt.Errorf("creating content dir: %w", err)
		}

		fmt.Printf("Wrote %s. Put markdown posts in %s/ and run `blogsmith build`.\n", cfgFile, cfg.ContentDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
