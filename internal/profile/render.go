package profile

import (
	"bytes"
	"fmt"
	"html/template"
	"sort"
)

// Row-chunk sizes. These are presentation constants carried over from
// the page layout, not semantic contracts.
const (
	SkillsPerRow = 6
	LinksPerRow  = 5
	LikesPerRow  = 6
)

// renderData is the structured input to the profile template: the
// sn-sorted document plus the pre-chunked grid rows.
type renderData struct {
	Doc       *Document
	SkillRows [][]Skill
	LinkRows  [][]ProfileLink
	LikeRows  [][]Like
}

// Render produces the profile page content fragment. Every collection
// is rendered in ascending sn order; skills, links and likes are laid
// out in fixed-size rows. The markup is built through template
// composition, never string concatenation, so item fields are escaped.
func Render(doc *Document) (template.HTML, error) {
	d := sorted(doc)

	data := renderData{
		Doc:       d,
		SkillRows: chunk(d.Skills, SkillsPerRow),
		LinkRows:  chunk(d.ProfileLinks, LinksPerRow),
		LikeRows:  chunk(d.Likes, LikesPerRow),
	}

	var buf bytes.Buffer
	if err := profileTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering profile: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// sorted returns a copy of doc with every collection stably sorted by
// ascending sn. The input document is not mutated.
func sorted(doc *Document) *Document {
	d := *doc
	d.Skills = sortBySN(d.Skills, func(s Skill) int { return s.SN })
	d.Projects = sortBySN(d.Projects, func(p Project) int { return p.SN })
	d.Experience = sortBySN(d.Experience, func(e Experience) int { return e.SN })
	d.Educations = sortBySN(d.Educations, func(e Education) int { return e.SN })
	for i, edu := range d.Educations {
		d.Educations[i].Courses = sortBySN(edu.Courses, func(c Course) int { return c.SN })
	}
	d.ProfileLinks = sortBySN(d.ProfileLinks, func(l ProfileLink) int { return l.SN })
	d.Likes = sortBySN(d.Likes, func(l Like) int { return l.SN })
	return &d
}

func sortBySN[T any](items []T, sn func(T) int) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool { return sn(out[i]) < sn(out[j]) })
	return out
}

func chunk[T any](items []T, size int) [][]T {
	if size <= 0 || len(items) == 0 {
		return nil
	}
	rows := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		rows = append(rows, items[start:end])
	}
	return rows
}

// placeholderLink is the literal value that suppresses the external-link
// affordance on an item.
const placeholderLink = "#"

var profileTmpl = template.Must(template.New("profile").Funcs(template.FuncMap{
	"renderLink": func(link string) bool {
		return link != "" && link != placeholderLink
	},
}).Parse(`<section class="profile-header">
  {{with .Doc.PersonalInfo}}
  {{if .Photo}}<img class="profile-photo" src="{{.Photo}}" alt="{{.Name}}">{{end}}
  <h1>{{.Name}}</h1>
  <p class="profile-title">{{.Title}}</p>
  <p class="profile-meta">{{.Location}}{{if .Email}} · <a href="mailto:{{.Email}}">{{.Email}}</a>{{end}}</p>
  {{end}}
  {{if .Doc.Summary}}<p class="profile-summary">{{.Doc.Summary}}</p>{{end}}
</section>
{{if .SkillRows}}<section id="skills">
  <h2>Skills</h2>
  {{range .SkillRows}}<div class="row">
    {{range .}}<div class="cell skill">{{if .Icon}}<img src="{{.Icon}}" alt="">{{end}}<span>{{.Name}}</span></div>
    {{end}}</div>
  {{end}}</section>
{{end}}{{if .Doc.Projects}}<section id="projects">
  <h2>Projects</h2>
  {{range .Doc.Projects}}<article class="project">
    <h3>{{.Name}}{{if renderLink .Link}} <a class="ext-link" href="{{.Link}}" rel="noopener">&#8599;</a>{{end}}</h3>
    <p>{{.Description}}</p>
    {{if .Stack}}<p class="project-stack">{{.Stack}}</p>{{end}}
  </article>
  {{end}}</section>
{{end}}{{if .Doc.Experience}}<section id="experience">
  <h2>Experience</h2>
  {{range .Doc.Experience}}<article class="experience">
    <h3>{{.Role}} — {{.Company}}{{if renderLink .Link}} <a class="ext-link" href="{{.Link}}" rel="noopener">&#8599;</a>{{end}}</h3>
    <p class="period">{{.Period}}</p>
    <p>{{.Description}}</p>
  </article>
  {{end}}</section>
{{end}}{{if .Doc.Educations}}<section id="education">
  <h2>Education</h2>
  {{range .Doc.Educations}}<article class="education">
    <h3>{{.Degree}} — {{.Institution}}</h3>
    <p class="period">{{.Period}}</p>
    {{if .Courses}}<ul class="courses">{{range .Courses}}<li>{{.Name}}</li>{{end}}</ul>{{end}}
  </article>
  {{end}}</section>
{{end}}{{if .LinkRows}}<section id="profile-links">
  <h2>Links</h2>
  {{range .LinkRows}}<div class="row">
    {{range .}}<div class="cell">{{if renderLink .Link}}<a href="{{.Link}}" rel="noopener">{{.Name}}</a>{{else}}<span>{{.Name}}</span>{{end}}</div>
    {{end}}</div>
  {{end}}</section>
{{end}}{{if .LikeRows}}<section id="likes">
  <h2>Likes</h2>
  {{range .LikeRows}}<div class="row">
    {{range .}}<div class="cell">{{.Name}}</div>
    {{end}}</div>
  {{end}}</section>
{{end}}`))
