package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hzidan/blogsmith/internal/config"
	"github.com/hzidan/blogsmith/internal/prefstore"
	"github.com/hzidan/blogsmith/internal/theme"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "blogsmith",
	Short: "Static personal blog and portfolio generator",
	Long: `Blogsmith turns a directory of markdown posts and a profile document
into a static site with light/dark themes, color palettes, and
collapsible code blocks. It ships a dev server with live reload.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".blogsmith.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	return cfg.Build()
}

// openPreferences opens the persisted preference store for the site.
func openPreferences(cfg *config.Config) (*prefstore.Store, *theme.Store, error) {
	kv, err := prefstore.Open(cfg.PrefsPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening preference store: %w", err)
	}
	store, err := theme.NewStore(kv, cfg.DefaultTheme, cfg.DefaultPalette, false)
	if err != nil {
		kv.Close()
		return nil, nil, err
	}
	return kv, store, nil
}
