package site

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/hzidan/blogsmith/internal/content"
)

// SearchEntry is one document in the client-side search index.
type SearchEntry struct {
	Path    string `json:"path"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Content string `json:"content"`
}

const summaryLimit = 200

// BuildSearchIndex creates search entries from the rendered posts. The
// indexed content is the markdown source, not the HTML, so markup does
// not pollute matches.
func BuildSearchIndex(posts []content.Post) []SearchEntry {
	entries := make([]SearchEntry, 0, len(posts))
	for _, p := range posts {
		text := strings.TrimSpace(string(p.Markdown))
		summary := p.Description
		if summary == "" {
			summary = firstWords(text, summaryLimit)
		}
		entries = append(entries, SearchEntry{
			Path:    p.OutPath,
			Title:   p.Title,
			Summary: summary,
			Content: text,
		})
	}
	return entries
}

// WriteSearchIndex writes the index as JSON to the given path.
func WriteSearchIndex(entries []SearchEntry, path string) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func firstWords(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	cut := text[:limit]
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return cut + "…"
}
