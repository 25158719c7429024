package config

import (
	"fmt"
	"os"

	"github.com/manifoldco/promptui"

	"github.com/hzidan/blogsmith/internal/theme"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to the given path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to blogsmith! Let's set up your site.")
	fmt.Println()

	cfg := DefaultConfig()

	titlePrompt := promptui.Prompt{
		Label:   "Site title",
		Default: cfg.Title,
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site title: %w", err)
	}
	cfg.Title = title

	authorPrompt := promptui.Prompt{
		Label: "Author name",
	}
	author, err := authorPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("author: %w", err)
	}
	cfg.Author = author

	themePrompt := promptui.Select{
		Label: "Default theme",
		Items: []string{
			"system — follow the visitor's OS preference",
			"light",
			"dark",
		},
	}
	themeIdx, _, err := themePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("theme selection: %w", err)
	}
	themes := []string{"", "light", "dark"}
	cfg.DefaultTheme = themes[themeIdx]

	palettes := theme.Palettes()
	paletteLabels := make([]string, len(palettes))
	for i, p := range palettes {
		paletteLabels[i] = p.Label
	}
	palettePrompt := promptui.Select{
		Label: "Color palette",
		Items: paletteLabels,
	}
	paletteIdx, _, err := palettePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("palette selection: %w", err)
	}
	cfg.DefaultPalette = palettes[paletteIdx].Name

	profilePrompt := promptui.Prompt{
		Label:   "Profile JSON source (URL or path, empty to skip)",
		Default: "",
	}
	profile, err := profilePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("profile source: %w", err)
	}
	cfg.ProfileSource = profile

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, err
	}

	fmt.Println()
	fmt.Printf("Configuration written to %s\n", path)
	if _, statErr := os.Stat(cfg.ContentDir); os.IsNotExist(statErr) {
		fmt.Printf("Create your first post under %s/ with `blogsmith new`\n", cfg.ContentDir)
	}

	return cfg, nil
}
