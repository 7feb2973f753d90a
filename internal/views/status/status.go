package status

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/portrait-studio/tui/internal/client"
	"github.com/portrait-studio/tui/internal/theme"
)

// Model holds the status bar state.
type Model struct {
	Connected bool
	Demo      bool
	Credits   int
	Job       *client.Job
	Width     int
}

// New creates a status bar model.
func New() Model {
	return Model{}
}

// View renders the status bar.
func (m Model) View() string {
	width := m.Width
	if width < 40 {
		width = 40
	}

	var connStr string
	switch {
	case m.Demo:
		connStr = theme.StyleAccent.Render("◆ Demo")
	case m.Connected:
		connStr = lipgloss.NewStyle().Foreground(theme.ColorHealthy).Render("● Connected")
	default:
		connStr = lipgloss.NewStyle().Foreground(theme.ColorDanger).Render("○ Connecting...")
	}

	credits := lipgloss.NewStyle().Foreground(theme.ColorBright).
		Render(fmt.Sprintf("%d credits", m.Credits))

	sep := lipgloss.NewStyle().Foreground(theme.ColorBorder).Render(" | ")
	content := connStr + sep + credits

	if j := m.Job; j != nil && !j.Status.Terminal() {
		jobStr := lipgloss.NewStyle().Foreground(theme.StatusColor(string(j.Status))).
			Render(fmt.Sprintf("%s %s %3.0f%%",
				theme.StatusGlyph(string(j.Status)), j.Status, j.Progress*100))
		content += sep + jobStr
	}

	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 1).
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(theme.ColorBorder).
		Render(content)
}
