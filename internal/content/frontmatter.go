package content

import (
	"bytes"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// FrontMatter is the YAML header of a post file.
type FrontMatter struct {
	Title       string   `yaml:"title"`
	Date        string   `yaml:"date"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
	Draft       bool     `yaml:"draft"`
}

var frontMatterDelim = []byte("---\n")

// splitFrontMatter separates the YAML front matter from the markdown
// body. Files without a front matter block return a zero FrontMatter
// and the input unchanged.
func splitFrontMatter(src []byte) (FrontMatter, []byte, error) {
	var fm FrontMatter

	if !bytes.HasPrefix(src, frontMatterDelim) {
		return fm, src, nil
	}

	rest := src[len(frontMatterDelim):]
	end := bytes.Index(rest, frontMatterDelim)
	if end == -1 {
		// An unterminated header is treated as body content.
		return fm, src, nil
	}

	if err := yaml.Unmarshal(rest[:end], &fm); err != nil {
		return fm, nil, fmt.Errorf("parsing front matter: %w", err)
	}
	body := rest[end+len(frontMatterDelim):]
	return fm, body, nil
}

// dateFormats are accepted front matter date layouts, most common first.
var dateFormats = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04",
}

// parseDate parses a front matter date. An empty value yields the zero
// time, which sorts last.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
