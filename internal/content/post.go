// Package content collects and renders the markdown posts that make up
// the blog.
package content

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Post is one rendered blog post.
type Post struct {
	RelPath     string // content-relative source path, slash-separated
	OutPath     string // output path of the rendered page (.html)
	Title       string
	Date        time.Time
	Description string
	Tags        []string
	Draft       bool
	HTML        string // rendered body markup
	Markdown    []byte // body source, kept for terminal preview
}

// LoadOptions control post discovery.
type LoadOptions struct {
	Include       []string
	Exclude       []string
	IncludeDrafts bool
}

// LoadPosts walks the content directory, renders every matching
// markdown file, and returns posts sorted newest-first. Files that fail
// to parse produce warnings, not a failed build.
func LoadPosts(dir string, opts LoadOptions) ([]Post, []string, error) {
	var posts []Post
	var warnings []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".md") {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if !MatchesInclude(rel, opts.Include) || MatchesExclude(rel, opts.Exclude) {
			return nil
		}

		post, err := loadPost(path, rel)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: %v", rel, err))
			return nil
		}
		if post.Draft && !opts.IncludeDrafts {
			return nil
		}
		posts = append(posts, post)
		return nil
	})
	if err != nil {
		return nil, warnings, fmt.Errorf("walking content dir: %w", err)
	}

	sort.SliceStable(posts, func(i, j int) bool {
		if !posts[i].Date.Equal(posts[j].Date) {
			return posts[i].Date.After(posts[j].Date)
		}
		return posts[i].RelPath < posts[j].RelPath
	})

	return posts, warnings, nil
}

func loadPost(path, rel string) (Post, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Post{}, err
	}

	fm, body, err := splitFrontMatter(src)
	if err != nil {
		return Post{}, err
	}

	date, err := parseDate(fm.Date)
	if err != nil {
		return Post{}, err
	}

	rendered, err := RenderMarkdown(body)
	if err != nil {
		return Post{}, err
	}

	title := fm.Title
	if title == "" {
		fallback := strings.TrimSuffix(filepath.Base(rel), ".md")
		title = extractTitle(string(body), fallback)
	}

	return Post{
		RelPath:     rel,
		OutPath:     strings.TrimSuffix(rel, ".md") + ".html",
		Title:       title,
		Date:        date,
		Description: fm.Description,
		Tags:        fm.Tags,
		Draft:       fm.Draft,
		HTML:        rendered,
		Markdown:    body,
	}, nil
}
