package config

// DefaultInclude selects all markdown under the content directory.
var DefaultInclude = []string{"**/*.md"}

// DefaultExcludes are glob patterns skipped during content discovery.
var DefaultExcludes = []string{
	"drafts/**",
	"**/_*.md",
	"**/README.md",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Title:      "My Blog",
		ContentDir: "content",
		OutputDir:  "public",
		Include:    DefaultInclude,
		Exclude:    DefaultExcludes,
		PrefsPath:  ".blogsmith/prefs.db",
		Serve: ServeConfig{
			Port: 8080,
		},
	}
}
