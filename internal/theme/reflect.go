package theme

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"
)

// Control element IDs in the page template.
const (
	ToggleButtonID  = "theme-btn"
	PaletteSelectID = "palette-select"
)

// Reflect applies the preference to a parsed document: data attributes
// on the root element, the toggle button's accessibility label, the
// palette select value, and the browser chrome color. Every lookup is
// guarded, so documents missing controls (or a body entirely) are fine.
func Reflect(doc *goquery.Document, pref Preference) {
	pal := Lookup(pref.Palette)

	if root := doc.Find("html").First(); root.Length() > 0 {
		root.SetAttr("data-theme", string(pref.Mode))
		root.SetAttr("data-palette", pref.Palette)
	}

	if btn := doc.Find("#" + ToggleButtonID).First(); btn.Length() > 0 {
		btn.SetAttr("aria-label", toggleLabel(pref.Mode))
	}

	if sel := doc.Find("#" + PaletteSelectID).First(); sel.Length() > 0 {
		sel.SetAttr("value", pref.Palette)
		sel.Find("option").RemoveAttr("selected")
		sel.Find(fmt.Sprintf(`option[value=%q]`, pref.Palette)).SetAttr("selected", "selected")
	}

	if meta := doc.Find(`meta[name="theme-color"]`).First(); meta.Length() > 0 {
		meta.SetAttr("content", pal.Surface(pref.Mode))
	}
}

// toggleLabel names the action the toggle button performs next.
func toggleLabel(current Mode) string {
	if current == ModeDark {
		return "Switch to light theme"
	}
	return "Switch to dark theme"
}
