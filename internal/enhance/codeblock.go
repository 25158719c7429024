// Package enhance post-processes rendered post documents, wrapping long
// code blocks behind a "show more" toggle. The same flip is performed in
// the browser by the emitted runtime script; this package is the
// build-time pass plus the reference toggle semantics.
package enhance

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PreviewLines is the number of lines shown while a block is collapsed.
// Blocks at or under this length are never made collapsible.
const PreviewLines = 14

// Marker classes on the code block container.
const (
	ClassCollapsible = "code-collapse" // enhancement marker, makes the pass idempotent
	ClassOptOut      = "no-collapse"   // authored opt-out
	ClassExpanded    = "expanded"
	ClassToggle      = "code-toggle"
)

// ContentSelector scopes the pass to post content.
const ContentSelector = ".post-content"

const expandedLabel = "Show less"

// CodeBlocks walks every code element inside post content and collapses
// the ones longer than PreviewLines behind a toggle button inserted
// right after the container. Containers already enhanced or opted out
// are skipped, so running the pass again is a no-op.
func CodeBlocks(doc *goquery.Document) {
	doc.Find(ContentSelector + " pre > code").Each(func(_ int, code *goquery.Selection) {
		pre := code.Parent()
		if pre.HasClass(ClassCollapsible) || pre.HasClass(ClassOptOut) {
			return
		}

		lines := countLines(code.Text())
		if lines <= PreviewLines {
			return
		}

		pre.AddClass(ClassCollapsible)
		pre.SetAttr("style", appendStyle(pre, fmt.Sprintf("--preview-lines:%d", PreviewLines)))
		pre.AfterHtml(fmt.Sprintf(
			`<button class=%q aria-expanded="false">%s</button>`,
			ClassToggle, collapsedLabel(lines)))
	})
}

// Toggle flips the collapsed/expanded state of the container belonging
// to btn, updating the label and aria-expanded to match. It is fully
// reversible: collapsing restores the exact initial label.
func Toggle(btn *goquery.Selection) {
	pre := btn.Prev()
	if !pre.HasClass(ClassCollapsible) {
		return
	}

	if pre.HasClass(ClassExpanded) {
		pre.RemoveClass(ClassExpanded)
		btn.SetText(collapsedLabel(countLines(pre.Find("code").Text())))
		btn.SetAttr("aria-expanded", "false")
		return
	}

	pre.AddClass(ClassExpanded)
	btn.SetText(expandedLabel)
	btn.SetAttr("aria-expanded", "true")
}

func collapsedLabel(lines int) string {
	return fmt.Sprintf("Show %d more lines", lines-PreviewLines)
}

// countLines counts newline-separated lines; a trailing newline does
// not count as an extra line.
func countLines(s string) int {
	parts := strings.Split(s, "\n")
	if len(parts) > 1 && parts[len(parts)-1] == "" {
		return len(parts) - 1
	}
	return len(parts)
}

// appendStyle adds a declaration to the container's existing inline
// style (the highlighter already sets one for its colors).
func appendStyle(sel *goquery.Selection, decl string) string {
	style, _ := sel.Attr("style")
	style = strings.TrimSpace(style)
	if style != "" && !strings.HasSuffix(style, ";") {
		style += ";"
	}
	return style + decl
}
