package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writePost(t *testing.T, dir, rel, body string) {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestSplitFrontMatter(t *testing.T) {
	src := []byte(`---
title: Hello
date: 2026-01-15
tags: [go, web]
draft: true
---
# Heading

Body text.
`)
	fm, body, err := splitFrontMatter(src)
	if err != nil {
		t.Fatalf("splitFrontMatter error: %v", err)
	}
	if fm.Title != "Hello" || fm.Date != "2026-01-15" || !fm.Draft {
		t.Errorf("front matter = %+v", fm)
	}
	if len(fm.Tags) != 2 {
		t.Errorf("tags = %v", fm.Tags)
	}
	if !strings.HasPrefix(string(body), "# Heading") {
		t.Errorf("body = %q", body)
	}
}

func TestSplitFrontMatterAbsent(t *testing.T) {
	src := []byte("# Just markdown\n")
	fm, body, err := splitFrontMatter(src)
	if err != nil {
		t.Fatal(err)
	}
	if fm.Title != "" {
		t.Errorf("title = %q, want empty", fm.Title)
	}
	if string(body) != string(src) {
		t.Error("body should be unchanged when no front matter exists")
	}
}

func TestSplitFrontMatterUnterminated(t *testing.T) {
	src := []byte("---\ntitle: Broken\n\nNo closing delimiter.\n")
	fm, body, err := splitFrontMatter(src)
	if err != nil {
		t.Fatal(err)
	}
	if fm.Title != "" {
		t.Error("unterminated header should not parse as front matter")
	}
	if string(body) != string(src) {
		t.Error("unterminated header should be kept as body")
	}
}

func TestParseDateFormats(t *testing.T) {
	for _, s := range []string{"2026-03-01", "2026-03-01T10:00:00Z", "2026-03-01 10:00"} {
		d, err := parseDate(s)
		if err != nil {
			t.Errorf("parseDate(%q) error: %v", s, err)
		}
		if d.Year() != 2026 {
			t.Errorf("parseDate(%q) = %v", s, d)
		}
	}
	if _, err := parseDate("March 1st"); err == nil {
		t.Error("expected error for unrecognized date")
	}
}

func TestRenderMarkdownHighlightsCode(t *testing.T) {
	html, err := RenderMarkdown([]byte("```go\npackage main\n```\n"))
	if err != nil {
		t.Fatalf("RenderMarkdown error: %v", err)
	}
	if !strings.Contains(html, "<pre") || !strings.Contains(html, "<code") {
		t.Errorf("rendered = %q, want highlighted code block", html)
	}
}

func TestLoadPostsSortedNewestFirst(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "old.md", "---\ntitle: Old\ndate: 2025-01-01\n---\nbody\n")
	writePost(t, dir, "new.md", "---\ntitle: New\ndate: 2026-06-01\n---\nbody\n")
	writePost(t, dir, "mid.md", "---\ntitle: Mid\ndate: 2025-12-31\n---\nbody\n")

	posts, warnings, err := LoadPosts(dir, LoadOptions{})
	if err != nil {
		t.Fatalf("LoadPosts error: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %v", warnings)
	}
	var titles []string
	for _, p := range posts {
		titles = append(titles, p.Title)
	}
	want := []string{"New", "Mid", "Old"}
	for i := range want {
		if titles[i] != want[i] {
			t.Fatalf("order = %v, want %v", titles, want)
		}
	}
}

func TestLoadPostsSkipsDrafts(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "done.md", "---\ntitle: Done\ndate: 2026-01-01\n---\nbody\n")
	writePost(t, dir, "wip.md", "---\ntitle: WIP\ndate: 2026-01-02\ndraft: true\n---\nbody\n")

	posts, _, err := LoadPosts(dir, LoadOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if len(posts) != 1 || posts[0].Title != "Done" {
		t.Errorf("posts = %+v, want only Done", posts)
	}

	posts, _, err = LoadPosts(dir, LoadOptions{IncludeDrafts: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(posts) != 2 {
		t.Errorf("with drafts: %d posts, want 2", len(posts))
	}
}

func TestLoadPostsTitleFallback(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "heading.md", "# From Heading\n\ntext\n")
	writePost(t, dir, "bare.md", "no heading at all\n")

	posts, _, err := LoadPosts(dir, LoadOptions{})
	if err != nil {
		t.Fatal(err)
	}
	byPath := map[string]Post{}
	for _, p := range posts {
		byPath[p.RelPath] = p
	}
	if byPath["heading.md"].Title != "From Heading" {
		t.Errorf("heading title = %q", byPath["heading.md"].Title)
	}
	if byPath["bare.md"].Title != "bare" {
		t.Errorf("fallback title = %q, want file name", byPath["bare.md"].Title)
	}
}

func TestLoadPostsFilters(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "keep.md", "# Keep\n")
	writePost(t, dir, "drafts/skip.md", "# Skip\n")
	writePost(t, dir, "_notes.md", "# Notes\n")

	posts, _, err := LoadPosts(dir, LoadOptions{
		Include: []string{"**/*.md"},
		Exclude: []string{"drafts/**", "**/_*.md"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(posts) != 1 || posts[0].RelPath != "keep.md" {
		t.Errorf("posts = %+v, want only keep.md", posts)
	}
}

func TestMatchesGlobs(t *testing.T) {
	tests := []struct {
		path    string
		pattern string
		want    bool
	}{
		{"a/b/c.md", "**/*.md", true},
		{"a/b/c.md", "a/**", true},
		{"c.md", "**/*.md", true}, // **/ matches zero segments
		{"a/b/c.md", "*.md", false},
		{"a/b/c.txt", "**/*.md", false},
	}
	for _, tt := range tests {
		if got := matchesAny(tt.path, []string{tt.pattern}); got != tt.want {
			t.Errorf("matchesAny(%q, %q) = %v, want %v", tt.path, tt.pattern, got, tt.want)
		}
	}
}

func TestLoadPostsOutPath(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "notes/2026/trip.md", "# Trip\n")

	posts, _, err := LoadPosts(dir, LoadOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if posts[0].OutPath != "notes/2026/trip.html" {
		t.Errorf("OutPath = %q", posts[0].OutPath)
	}
}
