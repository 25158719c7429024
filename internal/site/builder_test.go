package site

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hzidan/blogsmith/internal/config"
	"github.com/hzidan/blogsmith/internal/theme"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Title = "Test Blog"
	cfg.Author = "Tester"
	cfg.ContentDir = filepath.Join(t.TempDir(), "content")
	cfg.OutputDir = filepath.Join(t.TempDir(), "public")
	if err := os.MkdirAll(cfg.ContentDir, 0o755); err != nil {
		t.Fatal(err)
	}
	return cfg
}

func writeContent(t *testing.T, cfg *config.Config, rel, body string) {
	t.Helper()
	path := filepath.Join(cfg.ContentDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func readOutput(t *testing.T, cfg *config.Config, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(cfg.OutputDir, filepath.FromSlash(rel)))
	if err != nil {
		t.Fatalf("reading %s: %v", rel, err)
	}
	return string(data)
}

func TestBuildWritesSite(t *testing.T) {
	cfg := testConfig(t)
	writeContent(t, cfg, "hello.md", "---\ntitle: Hello\ndate: 2026-02-01\n---\nShort post.\n")

	b := New(cfg, theme.Preference{Mode: theme.ModeDark, Palette: "forest"})
	pages, warnings, err := b.Build()
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %v", warnings)
	}
	if pages != 3 { // post + index + error page
		t.Errorf("pages = %d, want 3", pages)
	}

	post := readOutput(t, cfg, "hello.html")
	if !strings.Contains(post, `data-theme="dark"`) || !strings.Contains(post, `data-palette="forest"`) {
		t.Error("baked preference missing from root element")
	}
	if !strings.HasPrefix(post, "<!DOCTYPE html>") {
		t.Error("missing doctype")
	}
	if n := strings.Count(strings.ToLower(post), "<!doctype"); n != 1 {
		t.Errorf("doctype count = %d, want exactly 1", n)
	}
	if !strings.Contains(post, `aria-label="Switch to light theme"`) {
		t.Error("toggle label not reflected for dark mode")
	}

	index := readOutput(t, cfg, "index.html")
	if !strings.Contains(index, `href="hello.html"`) || !strings.Contains(index, "Hello") {
		t.Error("index does not link the post")
	}

	if !strings.Contains(readOutput(t, cfg, "error.html"), "Something went wrong") {
		t.Error("error page missing")
	}

	css := readOutput(t, cfg, "style.css")
	if !strings.Contains(css, `[data-palette="forest"]`) {
		t.Error("palette CSS not appended")
	}
	js := readOutput(t, cfg, "script.js")
	if strings.Contains(js, "/livereload") {
		t.Error("livereload client must not ship in plain builds")
	}
}

func TestBuildCollapsesLongCodeBlocks(t *testing.T) {
	cfg := testConfig(t)
	var lines []string
	for i := 0; i < 20; i++ {
		lines = append(lines, "line")
	}
	writeContent(t, cfg, "code.md", "# Code\n\n```\n"+strings.Join(lines, "\n")+"\n```\n")

	b := New(cfg, theme.Preference{Mode: theme.ModeLight, Palette: theme.DefaultPalette})
	if _, _, err := b.Build(); err != nil {
		t.Fatal(err)
	}

	page := readOutput(t, cfg, "code.html")
	if !strings.Contains(page, "Show 6 more lines") {
		t.Error("collapse toggle missing")
	}
	if !strings.Contains(page, "--preview-lines:14") {
		t.Error("preview-lines property missing")
	}
	if !strings.Contains(page, `aria-expanded="false"`) {
		t.Error("toggle should start collapsed")
	}
}

func TestBuildNestedPostBasePath(t *testing.T) {
	cfg := testConfig(t)
	writeContent(t, cfg, "notes/2026/trip.md", "# Trip\n")

	b := New(cfg, theme.Preference{Mode: theme.ModeLight, Palette: theme.DefaultPalette})
	if _, _, err := b.Build(); err != nil {
		t.Fatal(err)
	}

	page := readOutput(t, cfg, "notes/2026/trip.html")
	if !strings.Contains(page, `href="../../style.css"`) {
		t.Error("nested page should reference assets relative to its depth")
	}
}

func TestBuildProfileFromFile(t *testing.T) {
	cfg := testConfig(t)
	src := filepath.Join(t.TempDir(), "profile.json")
	data := `{
		"personalInfo": {"name": "Dana", "title": "Engineer"},
		"summary": "Hi.",
		"skills": [{"sn": 2, "name": "SQL"}, {"sn": 1, "name": "Go"}],
		"projects": [], "experince": [], "educations": [], "profileLinks": [], "likes": []
	}`
	if err := os.WriteFile(src, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg.ProfileSource = src

	b := New(cfg, theme.Preference{Mode: theme.ModeLight, Palette: theme.DefaultPalette})
	_, warnings, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %v", warnings)
	}

	page := readOutput(t, cfg, "profile.html")
	if !strings.Contains(page, "Dana") {
		t.Error("profile name missing")
	}
	if strings.Index(page, ">Go<") > strings.Index(page, ">SQL<") {
		t.Error("skills not sorted by sn")
	}
	if !strings.Contains(page, `href="profile.html"`) {
		t.Error("nav should link the profile page when a source is configured")
	}
}

func TestBuildProfileRedirectsOnFetchFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	cfg := testConfig(t)
	cfg.ProfileSource = srv.URL + "/profile.json"

	b := New(cfg, theme.Preference{Mode: theme.ModeLight, Palette: theme.DefaultPalette})
	_, warnings, err := b.Build()
	if err != nil {
		t.Fatalf("fetch failure must not fail the build: %v", err)
	}
	if len(warnings) == 0 {
		t.Error("expected a warning for the failed profile fetch")
	}

	page := readOutput(t, cfg, "profile.html")
	if !strings.Contains(page, `http-equiv="refresh"`) || !strings.Contains(page, "error.html") {
		t.Errorf("profile.html should redirect to the error page, got %q", page)
	}
	if strings.Contains(page, "Dana") || strings.Contains(page, "profile-content") {
		t.Error("no partial profile content should be written on failure")
	}
}

func TestBuildLiveReloadScript(t *testing.T) {
	cfg := testConfig(t)
	b := New(cfg, theme.Preference{Mode: theme.ModeLight, Palette: theme.DefaultPalette})
	b.LiveReload = true
	if _, _, err := b.Build(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(readOutput(t, cfg, "script.js"), "/livereload") {
		t.Error("livereload client missing from dev build")
	}
}

func TestBuildSearchIndex(t *testing.T) {
	cfg := testConfig(t)
	writeContent(t, cfg, "first.md", "---\ntitle: First\ndescription: Opening post\n---\nSome searchable words.\n")

	b := New(cfg, theme.Preference{Mode: theme.ModeLight, Palette: theme.DefaultPalette})
	if _, _, err := b.Build(); err != nil {
		t.Fatal(err)
	}

	var entries []SearchEntry
	if err := json.Unmarshal([]byte(readOutput(t, cfg, "search-index.json")), &entries); err != nil {
		t.Fatalf("search index is not valid JSON: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	e := entries[0]
	if e.Path != "first.html" || e.Title != "First" || e.Summary != "Opening post" {
		t.Errorf("entry = %+v", e)
	}
	if !strings.Contains(e.Content, "searchable") {
		t.Error("entry content should carry the markdown source")
	}
}
