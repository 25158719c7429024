package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hzidan/blogsmith/internal/progress"
	"github.com/hzidan/blogsmith/internal/server"
	"github.com/hzidan/blogsmith/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Render the site into the output directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if drafts, _ := cmd.Flags().GetBool("drafts"); drafts {
			cfg.Drafts = true
		}

		kv, store, err := openPreferences(cfg)
		if err != nil {
			return err
		}
		defer kv.Close()

		b := site.New(cfg, store.Preference())
		b.Reporter = progress.New()

		pages, warnings, err := b.Build()
		if err != nil {
			return fmt.Errorf("building site: %w", err)
		}

		for _, w := range warnings {
			fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
		}
		fmt.Printf("Site built: %s (%d pages)\n", cfg.OutputDir, pages)

		if watch, _ := cmd.Flags().GetBool("watch"); !watch {
			return nil
		}

		log, err := newLogger()
		if err != nil {
			return err
		}
		defer log.Sync()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		fmt.Println("Watching for changes — press Ctrl+C to stop")
		// The hub has no browser clients in plain watch mode; rebuilds
		// just land in the output directory.
		watcher := server.NewWatcher(cfg.ContentDir, server.NewHub(log), log, func() error {
			rb := site.New(cfg, store.Preference())
			_, _, err := rb.Build()
			return err
		})
		if err := watcher.Watch(ctx); err != nil && ctx.Err() == nil {
			return err
		}
		return nil
	},
}

func init() {
	buildCmd.Flags().Bool("drafts", false, "include draft posts")
	buildCmd.Flags().Bool("watch", false, "rebuild when content changes")
	rootCmd.AddCommand(buildCmd)
}
