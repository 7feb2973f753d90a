// Package help renders the gesture cheat sheet overlay from Markdown.
package help

import (
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/portrait-studio/tui/internal/theme"
)

const helpMarkdown = `# Portrait Studio

## Gestures

* **Swipe** the carousel left/right to move between portraits; a quick
  flick changes slides even on a short drag.
* Drag past the first or last portrait and the strip stretches elastically,
  then springs back.
* **Drag** the sheet handle up or down to move between its resting heights.
* Drag the sheet down past its smallest height (or flick down) to close it.
* Click an indicator **dot** to jump straight to that portrait.

## Keys

| Key | Action |
| --- | ------ |
| h/l, ←/→ | previous / next portrait |
| enter | open portrait sheet |
| g | generate a new render |
| d | download selected portrait |
| r | resync with the server |
| esc | close sheet / overlay |
| q | quit |
`

// Model caches the rendered help text.
type Model struct {
	rendered string
}

// New renders the help Markdown once. On render failure the raw Markdown is
// shown instead; help must never be unavailable.
func New() Model {
	out, err := glamour.Render(helpMarkdown, "dark")
	if err != nil {
		out = helpMarkdown
	}
	return Model{rendered: out}
}

// View renders the overlay panel.
func (m Model) View(width int) string {
	w := width - 4
	if w < 40 {
		w = 40
	}
	footer := theme.StyleDimmed.Render("esc:close")
	content := lipgloss.JoinVertical(lipgloss.Left, m.rendered, footer)
	return lipgloss.NewStyle().
		Width(w).
		Padding(0, 2).
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(theme.ColorBorder).
		Render(content)
}
