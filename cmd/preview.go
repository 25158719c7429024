package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview <post.md>",
	Short: "Read a post in the terminal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(80),
		)
		if err != nil {
			return fmt.Errorf("creating renderer: %w", err)
		}
		rendered, err := renderer.Render(string(src))
		if err != nil {
			return fmt.Errorf("rendering markdown: %w", err)
		}

		m := previewModel{title: args[0], content: rendered}
		p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
		_, err = p.Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
}

var (
	previewTitleStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	previewHelpStyle  = lipgloss.NewStyle().Faint(true).Padding(0, 1)
)

type previewModel struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
}

func (m previewModel) Init() tea.Cmd { return nil }

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		headerHeight := lipgloss.Height(m.headerView())
		footerHeight := lipgloss.Height(m.footerView())
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight - footerHeight
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m previewModel) View() string {
	if !m.ready {
		return "loading..."
	}
	return m.headerView() + "\n" + m.viewport.View() + "\n" + m.footerView()
}

func (m previewModel) headerView() string {
	return previewTitleStyle.Render(m.title)
}

func (m previewModel) footerView() string {
	pct := fmt.Sprintf("%3.f%%", m.viewport.ScrollPercent()*100)
	return previewHelpStyle.Render("↑/↓ scroll · q quit · " + pct)
}
