// Package site builds the static blog: posts, index, profile page,
// embedded assets, and the search index.
package site

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/hzidan/blogsmith/internal/config"
	"github.com/hzidan/blogsmith/internal/content"
	"github.com/hzidan/blogsmith/internal/enhance"
	"github.com/hzidan/blogsmith/internal/profile"
	"github.com/hzidan/blogsmith/internal/progress"
	"github.com/hzidan/blogsmith/internal/theme"
)

// Builder renders the whole site into the output directory.
type Builder struct {
	cfg  *config.Config
	pref theme.Preference

	// LiveReload appends the reload client to script.js; dev builds only.
	LiveReload bool
	Reporter   progress.Reporter
	Client     *http.Client
}

// New creates a Builder. pref is the preference baked onto every page
// so the first paint carries the right theme before any script runs.
func New(cfg *config.Config, pref theme.Preference) *Builder {
	return &Builder{
		cfg:      cfg,
		pref:     pref,
		Reporter: progress.Discard{},
		Client:   http.DefaultClient,
	}
}

var (
	pageTmpl = template.Must(template.New("page").Parse(pageTemplate))
	listTmpl = template.Must(template.New("list").Parse(listTemplate))
	postTmpl = template.Must(template.New("post").Parse(`<article class="post-content">
  <header>
    <h1>{{.Title}}</h1>
    {{if not .Date.IsZero}}<p class="post-date">{{.Date.Format "January 2, 2006"}}</p>{{end}}
  </header>
{{.Body}}
</article>`))
)

type pageData struct {
	Title          string
	SiteTitle      string
	Author         string
	Content        template.HTML
	BasePath       string
	DefaultTheme   string
	DefaultPalette string
	Palettes       []theme.Palette
	HasProfile     bool
	Bootstrap      template.JS
}

// Build renders every page and asset. It returns the number of pages
// written plus content warnings; warnings never fail a build.
func (b *Builder) Build() (int, []string, error) {
	posts, warnings, err := content.LoadPosts(b.cfg.ContentDir, content.LoadOptions{
		Include:       b.cfg.Include,
		Exclude:       b.cfg.Exclude,
		IncludeDrafts: b.cfg.Drafts,
	})
	if err != nil {
		return 0, warnings, err
	}

	if err := os.MkdirAll(b.cfg.OutputDir, 0o755); err != nil {
		return 0, warnings, err
	}

	hasProfile := b.cfg.ProfileSource != ""
	total := len(posts) + 2 // + index + error page
	if hasProfile {
		total++
	}
	b.Reporter.Start(total, "Building site")
	defer b.Reporter.Finish()

	if err := b.writeAssets(); err != nil {
		return 0, warnings, err
	}

	pages := 0
	for _, p := range posts {
		b.Reporter.Step(p.RelPath)
		if err := b.writePost(p); err != nil {
			return pages, warnings, fmt.Errorf("rendering %s: %w", p.RelPath, err)
		}
		pages++
	}

	b.Reporter.Step("index.html")
	if err := b.writeIndex(posts); err != nil {
		return pages, warnings, err
	}
	pages++

	b.Reporter.Step("error.html")
	if err := b.writePage("error.html", "Error", template.HTML(errorContent)); err != nil {
		return pages, warnings, err
	}
	pages++

	if hasProfile {
		b.Reporter.Step("profile.html")
		if warn := b.writeProfile(); warn != "" {
			warnings = append(warnings, warn)
		}
		pages++
	}

	entries := BuildSearchIndex(posts)
	if err := WriteSearchIndex(entries, filepath.Join(b.cfg.OutputDir, "search-index.json")); err != nil {
		return pages, warnings, fmt.Errorf("writing search index: %w", err)
	}

	return pages, warnings, nil
}

func (b *Builder) writePost(p content.Post) error {
	var frag bytes.Buffer
	err := postTmpl.Execute(&frag, struct {
		content.Post
		Body template.HTML
	}{Post: p, Body: template.HTML(p.HTML)})
	if err != nil {
		return err
	}
	return b.writePage(p.OutPath, p.Title, template.HTML(frag.String()))
}

func (b *Builder) writeIndex(posts []content.Post) error {
	var frag bytes.Buffer
	if err := listTmpl.Execute(&frag, posts); err != nil {
		return err
	}
	return b.writePage("index.html", b.cfg.Title, template.HTML(frag.String()))
}

// writeProfile renders the profile page from the configured source. A
// fetch failure is not a build failure: per the page's error contract
// the output becomes a redirect to the error page, and the cause is
// surfaced as a warning.
func (b *Builder) writeProfile() (warning string) {
	doc, err := b.LoadProfile(context.Background())
	if err != nil {
		out := filepath.Join(b.cfg.OutputDir, "profile.html")
		redirect := fmt.Sprintf(redirectTemplate, "error.html")
		if werr := os.WriteFile(out, []byte(redirect), 0o644); werr != nil {
			return fmt.Sprintf("profile: %v (and writing redirect failed: %v)", err, werr)
		}
		return fmt.Sprintf("profile: %v; wrote redirect to error page", err)
	}

	page, err := b.RenderProfilePage(doc)
	if err != nil {
		return fmt.Sprintf("profile: %v", err)
	}
	if err := os.WriteFile(filepath.Join(b.cfg.OutputDir, "profile.html"), []byte(page), 0o644); err != nil {
		return fmt.Sprintf("profile: %v", err)
	}
	return ""
}

// LoadProfile reads the profile document from the configured source,
// over HTTP for URLs and from disk otherwise.
func (b *Builder) LoadProfile(ctx context.Context) (*profile.Document, error) {
	src := b.cfg.ProfileSource
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		return profile.Fetch(ctx, b.Client, src)
	}
	return profile.Load(src)
}

// RenderProfilePage renders the full profile page (shell included).
// The dev server uses it for live profile serving.
func (b *Builder) RenderProfilePage(doc *profile.Document) (string, error) {
	frag, err := profile.Render(doc)
	if err != nil {
		return "", err
	}
	return b.renderPage("Profile", template.HTML(`<article class="profile-content">`+string(frag)+`</article>`), "")
}

// writePage renders one page into the output tree.
func (b *Builder) writePage(outRel, title string, content template.HTML) error {
	basePath := strings.Repeat("../", strings.Count(outRel, "/"))

	page, err := b.renderPage(title, content, basePath)
	if err != nil {
		return err
	}

	outPath := filepath.Join(b.cfg.OutputDir, filepath.FromSlash(outRel))
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(outPath, []byte(page), 0o644)
}

// renderPage executes the page template and post-processes the result
// as a DOM: the code-block pass runs, and the baked preference is
// reflected onto the document.
func (b *Builder) renderPage(title string, content template.HTML, basePath string) (string, error) {
	data := pageData{
		Title:          title,
		SiteTitle:      b.cfg.Title,
		Author:         b.cfg.Author,
		Content:        content,
		BasePath:       basePath,
		DefaultTheme:   b.cfg.DefaultTheme,
		DefaultPalette: theme.ResolvePalette("", b.cfg.DefaultPalette),
		Palettes:       theme.Palettes(),
		HasProfile:     b.cfg.ProfileSource != "",
		Bootstrap:      template.JS(bootstrapJS),
	}

	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing page template: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(&buf)
	if err != nil {
		return "", fmt.Errorf("parsing rendered page: %w", err)
	}
	enhance.CodeBlocks(doc)
	theme.Reflect(doc, b.pref)

	// The serialized document already carries the doctype parsed from
	// the template.
	out, err := doc.Html()
	if err != nil {
		return "", fmt.Errorf("serializing page: %w", err)
	}
	return out, nil
}

// writeAssets writes the stylesheet and runtime script. The palette
// variable blocks come from the Go palette catalogue, so the CSS and
// the theme-color computation always agree.
func (b *Builder) writeAssets() error {
	css := cssContent + paletteCSS()
	if err := os.WriteFile(filepath.Join(b.cfg.OutputDir, "style.css"), []byte(css), 0o644); err != nil {
		return err
	}

	js := jsContent
	if b.LiveReload {
		js += livereloadJS
	}
	return os.WriteFile(filepath.Join(b.cfg.OutputDir, "script.js"), []byte(js), 0o644)
}

func paletteCSS() string {
	var sb strings.Builder
	for _, p := range theme.Palettes() {
		fmt.Fprintf(&sb, "\n[data-palette=%q] { --surface: %s; --accent: %s; }\n", p.Name, p.LightSurface, p.Accent)
		fmt.Fprintf(&sb, "[data-palette=%q][data-theme=\"dark\"] { --surface: %s; }\n", p.Name, p.DarkSurface)
	}
	return sb.String()
}
