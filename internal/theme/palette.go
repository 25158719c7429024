package theme

import "sort"

// Palette is a named color scheme. Each palette carries one surface
// color per mode; the surface is what the browser chrome (the
// theme-color meta tag) should show, standing in for the computed
// background color of the page body.
type Palette struct {
	Name         string
	Label        string
	LightSurface string
	DarkSurface  string
	Accent       string
}

// Surface returns the body surface color for the given mode.
func (p Palette) Surface(m Mode) string {
	if m == ModeDark {
		return p.DarkSurface
	}
	return p.LightSurface
}

var catalogue = map[string]Palette{
	"slate": {
		Name:         "slate",
		Label:        "Slate",
		LightSurface: "#f8f9fa",
		DarkSurface:  "#1a1b26",
		Accent:       "#228be6",
	},
	"forest": {
		Name:         "forest",
		Label:        "Forest",
		LightSurface: "#f4f9f4",
		DarkSurface:  "#121a14",
		Accent:       "#2f9e44",
	},
	"ember": {
		Name:         "ember",
		Label:        "Ember",
		LightSurface: "#fdf6f0",
		DarkSurface:  "#1f1512",
		Accent:       "#e8590c",
	},
	"violet": {
		Name:         "violet",
		Label:        "Violet",
		LightSurface: "#f8f5ff",
		DarkSurface:  "#171321",
		Accent:       "#7048e8",
	},
}

// Lookup returns the palette registered under name, falling back to the
// default palette for unknown identifiers.
func Lookup(name string) Palette {
	if p, ok := catalogue[name]; ok {
		return p
	}
	return catalogue[DefaultPalette]
}

// Known reports whether name identifies a registered palette.
func Known(name string) bool {
	_, ok := catalogue[name]
	return ok
}

// Palettes returns all registered palettes, sorted by name, for
// rendering a selection control.
func Palettes() []Palette {
	out := make([]Palette, 0, len(catalogue))
	for _, p := range catalogue {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
