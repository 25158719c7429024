// Package progress provides build progress feedback for the CLI.
package progress

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
)

// Reporter receives page-by-page feedback during a site build.
type Reporter interface {
	Start(total int, label string)
	Step(message string)
	Finish()
}

// New returns a TerminalReporter for interactive runs, or a CIReporter
// when running under CI.
func New() Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &CIReporter{}
	}
	return &TerminalReporter{}
}

// Discard is a Reporter that swallows all updates, for embedding the
// builder in servers and tests.
type Discard struct{}

func (Discard) Start(int, string) {}
func (Discard) Step(string)       {}
func (Discard) Finish()           {}

// TerminalReporter displays a progress bar in the terminal.
type TerminalReporter struct {
	bar *progressbar.ProgressBar
}

func (r *TerminalReporter) Start(total int, label string) {
	r.bar = progressbar.NewOptions(total,
		progressbar.OptionSetDescription(label),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *TerminalReporter) Step(message string) {
	if r.bar != nil {
		r.bar.Describe(message)
		_ = r.bar.Add(1)
	}
}

func (r *TerminalReporter) Finish() {
	if r.bar != nil {
		_ = r.bar.Finish()
	}
}

// CIReporter prints line-by-line progress suitable for CI logs.
type CIReporter struct {
	total   int
	current int
}

func (r *CIReporter) Start(total int, label string) {
	r.total = total
	r.current = 0
	fmt.Fprintf(os.Stderr, "%s: %d pages\n", label, total)
}

func (r *CIReporter) Step(message string) {
	r.current++
	fmt.Fprintf(os.Stderr, "[%d/%d] %s\n", r.current, r.total, message)
}

func (r *CIReporter) Finish() {
	fmt.Fprintln(os.Stderr, "done")
}
