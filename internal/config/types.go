package config

// Config is the top-level blogsmith configuration, corresponding to
// .blogsmith.yml.
type Config struct {
	Title          string      `yaml:"title" koanf:"title"`
	Author         string      `yaml:"author" koanf:"author"`
	BaseURL        string      `yaml:"base_url" koanf:"base_url"`
	ContentDir     string      `yaml:"content_dir" koanf:"content_dir"`
	OutputDir      string      `yaml:"output_dir" koanf:"output_dir"`
	Include        []string    `yaml:"include" koanf:"include"`
	Exclude        []string    `yaml:"exclude" koanf:"exclude"`
	DefaultTheme   string      `yaml:"default_theme" koanf:"default_theme"`     // "", "light" or "dark"; empty follows the OS
	DefaultPalette string      `yaml:"default_palette" koanf:"default_palette"` // empty falls back to the built-in default
	ProfileSource  string      `yaml:"profile_source" koanf:"profile_source"`   // URL or local path of profile.json
	PrefsPath      string      `yaml:"prefs_path" koanf:"prefs_path"`           // preference store location
	Drafts         bool        `yaml:"drafts" koanf:"drafts"`                   // include draft posts in builds
	Serve          ServeConfig `yaml:"serve" koanf:"serve"`
}

// ServeConfig holds dev-server settings.
type ServeConfig struct {
	Port int  `yaml:"port" koanf:"port"`
	Open bool `yaml:"open" koanf:"open"`
}
