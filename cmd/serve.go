package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hzidan/blogsmith/internal/server"
	"github.com/hzidan/blogsmith/internal/site"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Build the site and serve it locally with live reload",
	Long: `Builds the site with the live reload client enabled, watches the
content directory for changes, and serves the result. Preferences set
in the browser are persisted through the preference API.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if port, _ := cmd.Flags().GetInt("port"); port != 0 {
			cfg.Serve.Port = port
		}
		if open, _ := cmd.Flags().GetBool("open"); open {
			cfg.Serve.Open = true
		}

		log, err := newLogger()
		if err != nil {
			return err
		}
		defer log.Sync()

		kv, store, err := openPreferences(cfg)
		if err != nil {
			return err
		}
		defer kv.Close()

		b := site.New(cfg, store.Preference())
		b.LiveReload = true
		_, warnings, err := b.Build()
		if err != nil {
			return fmt.Errorf("building site: %w", err)
		}
		for _, w := range warnings {
			fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
		}

		srv := server.New(cfg, store, b, log)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		watcher := server.NewWatcher(cfg.ContentDir, srv.Hub(), log, func() error {
			// Rebuild with the latest persisted preference so pages
			// keep the baked default in sync with the API.
			rb := site.New(cfg, store.Preference())
			rb.LiveReload = true
			_, _, err := rb.Build()
			return err
		})
		go func() {
			if err := watcher.Watch(ctx); err != nil && ctx.Err() == nil {
				log.Error("watcher stopped", zap.Error(err))
			}
		}()

		url := fmt.Sprintf("http://localhost:%d", cfg.Serve.Port)
		fmt.Printf("Serving at %s — press Ctrl+C to stop\n", url)
		if cfg.Serve.Open {
			go openBrowser(url)
		}

		errCh := make(chan error, 1)
		go func() { errCh <- srv.Start() }()

		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		case err := <-errCh:
			if err == http.ErrServerClosed {
				return nil
			}
			return err
		}
	},
}

func init() {
	serveCmd.Flags().Int("port", 0, "port for the dev server (overrides config)")
	serveCmd.Flags().Bool("open", false, "open browser automatically")
	rootCmd.AddCommand(serveCmd)
}

func openBrowser(url string) {
	var c *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		c = exec.Command("open", url)
	case "windows":
		c = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		c = exec.Command("xdg-open", url)
	}
	if err := c.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Could not open browser: %v\n", err)
	}
}
