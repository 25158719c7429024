package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/spf13/cobra"
)

var newCmd = &cobra.Command{
	Use:   "new <title>",
	Short: "Scaffold a new draft post",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		title := strings.Join(args, " ")
		slug := slugify(title)
		if slug == "" {
			return fmt.Errorf("title %q produces an empty file name", title)
		}

		path := filepath.Join(cfg.ContentDir, slug+".md")
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists", path)
		}

		body := fmt.Sprintf(`---
title: %s
date: %s
draft: true
---

`, title, time.Now().Format("2006-01-02"))

		if err := os.MkdirAll(cfg.ContentDir, 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			return fmt.Errorf("writing post: %w", err)
		}

		fmt.Printf("Created %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
}

// slugify lowercases the title and keeps letters and digits, joining
// runs of anything else with a single hyphen.
func slugify(title string) string {
	var sb strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingHyphen && sb.Len() > 0 {
				sb.WriteByte('-')
			}
			pendingHyphen = false
			sb.WriteRune(r)
		} else {
			pendingHyphen = true
		}
	}
	return sb.String()
}
