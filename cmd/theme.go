package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hzidan/blogsmith/internal/prefstore"
	"github.com/hzidan/blogsmith/internal/theme"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Inspect or change the persisted theme preference",
}

var themeGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the current theme and palette",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		kv, store, err := openPreferences(cfg)
		if err != nil {
			return err
		}
		defer kv.Close()

		pref := store.Preference()
		fmt.Printf("theme: %s\npalette: %s\n", pref.Mode, pref.Palette)
		return nil
	},
}

var themeSetCmd = &cobra.Command{
	Use:   "set <light|dark>",
	Short: "Set the theme",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !theme.ValidMode(args[0]) {
			return fmt.Errorf("unknown theme %q; use light or dark", args[0])
		}
		return updatePreference(func(store *theme.Store) {
			store.SetMode(theme.Mode(args[0]))
		})
	},
}

var themeToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Switch between light and dark",
	RunE: func(cmd *cobra.Command, args []string) error {
		return updatePreference(func(store *theme.Store) {
			store.Toggle()
		})
	},
}

var themePaletteCmd = &cobra.Command{
	Use:   "palette [name]",
	Short: "Show available palettes, or set one",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			for _, p := range theme.Palettes() {
				fmt.Printf("%-8s %s\n", p.Name, p.Label)
			}
			return nil
		}
		if !theme.Known(args[0]) {
			return fmt.Errorf("unknown palette %q; run `blogsmith theme palette` to list them", args[0])
		}
		return updatePreference(func(store *theme.Store) {
			store.SetPalette(args[0])
		})
	},
}

var themeResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the persisted preference and fall back to the defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		kv, err := prefstore.Open(cfg.PrefsPath)
		if err != nil {
			return err
		}
		defer kv.Close()

		if err := kv.Delete(theme.KeyTheme); err != nil {
			return err
		}
		if err := kv.Delete(theme.KeyPalette); err != nil {
			return err
		}

		// Re-resolve so the printed state shows what the next build
		// will use.
		store, err := theme.NewStore(kv, cfg.DefaultTheme, cfg.DefaultPalette, false)
		if err != nil {
			return err
		}
		pref := store.Preference()
		fmt.Printf("theme: %s\npalette: %s\n", pref.Mode, pref.Palette)
		return nil
	},
}

func updatePreference(apply func(*theme.Store)) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	kv, store, err := openPreferences(cfg)
	if err != nil {
		return err
	}
	defer kv.Close()

	apply(store)
	if err := store.Save(); err != nil {
		return err
	}

	pref := store.Preference()
	fmt.Printf("theme: %s\npalette: %s\n", pref.Mode, pref.Palette)
	return nil
}

func init() {
	themeCmd.AddCommand(themeGetCmd, themeSetCmd, themeToggleCmd, themePaletteCmd, themeResetCmd)
	rootCmd.AddCommand(themeCmd)
}
