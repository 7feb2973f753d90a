// Package sheet implements the draggable bottom sheet: portrait details and
// actions resting at discrete snap heights, dragged between them by the
// handle/header region, flicked down to dismiss.
package sheet

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/portrait-studio/tui/internal/client"
	"github.com/portrait-studio/tui/internal/gesture"
	"github.com/portrait-studio/tui/internal/haptics"
	"github.com/portrait-studio/tui/internal/theme"
)

// FrameMsg advances the settle animation by one frame.
type FrameMsg struct{}

// handleRows is the height of the interactive drag region at the top of the
// sheet (grip line plus header).
const handleRows = 2

// viewState is shared mutable state the engine callbacks write into, kept
// behind a pointer so Bubble Tea's model copies all see the same data.
type viewState struct {
	offset    float64
	extent    int
	dismissed bool
}

// Model is the bottom sheet view.
type Model struct {
	Width  int
	Height int // full terminal height; snap heights derive from it

	open bool

	eng    *gesture.Engine
	st     *viewState
	settle *gesture.Settle

	snapPoints []float64 // ascending fractions of terminal height

	portrait *client.Portrait
	job      *client.Job

	fps       int
	now       func() time.Time
	statusMsg string
}

// New creates a sheet resting at the smallest of snapPoints when opened.
func New(snapPoints []float64, velocityThreshold, distanceFraction, resistance, overshootCap float64, fps int, pulser haptics.Pulser) Model {
	st := &viewState{}
	m := Model{
		st:         st,
		settle:     new(gesture.Settle),
		snapPoints: snapPoints,
		fps:        fps,
		now:        time.Now,
	}
	*m.settle = gesture.NewSettle(fps)

	cfg := gesture.Config{
		Axis:              gesture.Vertical,
		DistanceFraction:  distanceFraction,
		VelocityThreshold: velocityThreshold,
		Resistance:        resistance,
		OvershootCap:      overshootCap,
		Dismissible:       true,
	}
	m.eng = gesture.New(cfg, len(snapPoints), 0, gesture.Callbacks{
		Extent:    func(int) float64 { return float64(st.extent) },
		OnOffset:  func(o float64) { st.offset = o },
		OnDismiss: func() { st.dismissed = true },
		OnHaptic:  pulser.Pulse,
	})
	return m
}

// Open shows the sheet at the smallest snap point for the given portrait.
func (m *Model) Open(p *client.Portrait, job *client.Job) {
	m.open = true
	m.portrait = p
	m.job = job
	m.statusMsg = ""
	m.st.dismissed = false
	m.st.offset = 0
	m.settle.Stop()
	m.eng.JumpTo(0)
}

// Close hides the sheet immediately (escape key path).
func (m *Model) Close() {
	m.open = false
	if m.eng.Active() {
		m.eng.Cancel()
	}
	m.settle.Stop()
	m.st.offset = 0
}

// IsOpen reports whether the sheet is visible.
func (m Model) IsOpen() bool { return m.open }

// Dragging reports whether the pointer currently owns the sheet.
func (m Model) Dragging() bool { return m.eng.Active() }

// SetStatus shows a transient status line (download result, errors).
func (m *Model) SetStatus(s string) { m.statusMsg = s }

// snapHeight is the sheet height in rows at snap index i.
func (m Model) snapHeight(i int) int {
	if i < 0 || i >= len(m.snapPoints) || m.Height <= 0 {
		return 0
	}
	h := int(math.Round(m.snapPoints[i] * float64(m.Height)))
	if h < handleRows+2 {
		h = handleRows + 2
	}
	return h
}

// VisibleRows is the number of terminal rows the sheet currently covers,
// including mid-drag and settle offsets. Positive offsets (downward) shrink
// it, negative grow it.
func (m Model) VisibleRows() int {
	if !m.open {
		return 0
	}
	rows := m.snapHeight(m.eng.Index()) - int(math.Round(m.st.offset))
	if rows < 0 {
		rows = 0
	}
	if rows > m.Height {
		rows = m.Height
	}
	return rows
}

// InHandle reports whether a row within the sheet (0 = its top row) is part
// of the drag region. Only the handle and header start a drag; the body
// scrolls its own content.
func (m Model) InHandle(localY int) bool {
	return localY >= 0 && localY < handleRows
}

// Update handles mouse and frame messages routed by the app. Mouse
// coordinates are global; the sheet only needs Y.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case FrameMsg:
		m.st.offset = m.settle.Step()
		if m.settle.Active() {
			return m, m.frame()
		}
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		localY := msg.Y - (m.Height - m.VisibleRows())
		if !m.InHandle(localY) {
			return m, nil
		}
		m.settle.Stop()
		m.st.extent = m.snapHeight(m.eng.Index())
		m.eng.Begin(float64(msg.Y), m.now())

	case tea.MouseActionMotion:
		// The sheet owns vertical motion once the handle is grabbed; there
		// is no orthogonal scroller underneath it to protect.
		m.eng.Move(float64(msg.Y), m.now())

	case tea.MouseActionRelease:
		if m.eng.Active() {
			return m.release(false)
		}
	}
	return m, nil
}

// CancelDrag aborts an in-flight gesture, e.g. on terminal focus loss.
func (m Model) CancelDrag() (Model, tea.Cmd) {
	if !m.eng.Active() {
		return m, nil
	}
	return m.release(true)
}

func (m Model) release(cancelled bool) (Model, tea.Cmd) {
	off := m.eng.Offset()
	vel := m.eng.Velocity()
	before := m.eng.Index()

	if cancelled {
		m.eng.Cancel()
	} else {
		m.eng.End()
	}

	if m.st.dismissed {
		m.open = false
		m.st.dismissed = false
		m.st.offset = 0
		return m, nil
	}

	// Re-express the released offset relative to the resolved snap height so
	// the sheet doesn't jump when the index changes under it.
	residual := off + float64(m.snapHeight(m.eng.Index())-m.snapHeight(before))
	m.st.offset = residual
	m.settle.Start(residual, vel)
	if m.settle.Active() {
		return m, m.frame()
	}
	m.st.offset = 0
	return m, nil
}

func (m Model) frame() tea.Cmd {
	fps := m.fps
	if fps <= 0 {
		fps = 60
	}
	return tea.Tick(time.Second/time.Duration(fps), func(time.Time) tea.Msg {
		return FrameMsg{}
	})
}

// View renders the sheet's visible rows, top row first.
func (m Model) View() string {
	rows := m.VisibleRows()
	if rows <= 0 {
		return ""
	}
	w := m.Width
	if w < 40 {
		w = 40
	}

	grip := theme.StyleDimmed.Render(strings.Repeat("─", 8))
	header := theme.StyleHeader.Render(" Portrait ")
	lines := []string{
		lipgloss.PlaceHorizontal(w, lipgloss.Center, grip),
		lipgloss.PlaceHorizontal(w, lipgloss.Center, header),
	}
	lines = append(lines, m.bodyLines(w)...)

	if len(lines) > rows {
		lines = lines[:rows]
	}
	for len(lines) < rows {
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

func (m Model) bodyLines(w int) []string {
	label := func(k, v string) string {
		return theme.StyleDimmed.Render(fmt.Sprintf("  %-10s", k)) +
			lipgloss.NewStyle().Foreground(theme.ColorBright).Render(v)
	}

	var lines []string
	if m.portrait != nil {
		p := m.portrait
		style := client.StyleByID(p.StyleID)
		lines = append(lines,
			"",
			label("Style", style.Name),
			label("Size", fmt.Sprintf("%d×%d", p.Width, p.Height)),
			label("Seed", fmt.Sprintf("%d", p.Seed)),
			label("Created", p.CreatedAt.Format("Jan 2 2006 15:04")),
		)
	}
	if m.job != nil && !m.job.Status.Terminal() {
		j := m.job
		glyph := lipgloss.NewStyle().Foreground(theme.StatusColor(string(j.Status))).
			Render(theme.StatusGlyph(string(j.Status)))
		lines = append(lines, "",
			label("Render", fmt.Sprintf("%s %s %3.0f%%", glyph, j.Status, j.Progress*100)))
	}
	if m.statusMsg != "" {
		lines = append(lines, "", theme.StyleAccent.Render("  "+m.statusMsg))
	}
	lines = append(lines, "",
		theme.StyleDimmed.Render("  d:download  g:regenerate  drag ↓ to close"))
	return lines
}
