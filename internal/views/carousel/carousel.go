// Package carousel implements the swipeable portrait strip: one slide per
// finished render, dragged or flicked horizontally, with indicator dots and
// elastic resistance at both ends.
package carousel

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

// edgeMargin is the blank strip kept on each side so boundary overshoot has
// somewhere to render.
const edgeMargin = 20

// viewState is shared mutable state the engine callbacks write into. It
// lives behind a pointer so Bubble Tea's model copies all see the same data.
type viewState struct {
	offset float64
	extent int
}

// Model is the carousel view.
type Model struct {
	Width int

	eng    *gesture.Engine
	st     *viewState
	settle *gesture.Settle
	lock   *gesture.DirectionLock

	portraits []*client.Portrait

	fps int
	now func() time.Time

	// Press origin in screen cells, for the direction lock.
	pressX, pressY int
}

// New creates a carousel. Thresholds come from the gesture section of the
// app config; pulser receives the resolution haptics.
func New(velocityThreshold, distanceFraction, resistance float64, fps int, pulser haptics.Pulser) Model {
	st := &viewState{}
	lock := gesture.NewDirectionLock(gesture.Horizontal)
	m := Model{
		st:     st,
		settle: new(gesture.Settle),
		lock:   &lock,
		fps:    fps,
		now:    time.Now,
	}
	*m.settle = gesture.NewSettle(fps)

	cfg := gesture.Config{
		Axis:              gesture.Horizontal,
		DistanceFraction:  distanceFraction,
		VelocityThreshold: velocityThreshold,
		Resistance:        resistance,
	}
	eng := gesture.New(cfg, 0, 0, gesture.Callbacks{
		Extent:   func(int) float64 { return float64(st.extent) },
		OnOffset: func(o float64) { st.offset = o },
		OnHaptic: pulser.Pulse,
	})
	m.eng = eng
	return m
}

// SetPortraits replaces the slide set, keeping the current index when it is
// still in range.
func (m *Model) SetPortraits(portraits []*client.Portrait) {
	m.portraits = portraits
	m.eng.SetCount(len(portraits))
}

// Append adds a freshly completed portrait as the last slide.
func (m *Model) Append(p *client.Portrait) {
	m.portraits = append(m.portraits, p)
	m.eng.SetCount(len(m.portraits))
}

// Selected returns the portrait under the cursor, if any.
func (m Model) Selected() *client.Portrait {
	if i := m.eng.Index(); i >= 0 && i < len(m.portraits) {
		return m.portraits[i]
	}
	return nil
}

// Index returns the current slide index.
func (m Model) Index() int { return m.eng.Index() }

// Dragging reports whether the pointer currently owns the strip.
func (m Model) Dragging() bool { return m.eng.Active() }

// Jump moves to the given slide without a gesture (dot click, arrow key).
func (m *Model) Jump(index int) {
	m.eng.JumpTo(index)
	m.settle.Stop()
	m.st.offset = 0
}

// Update handles mouse and frame messages. The app routes only events inside
// the carousel's hit region here, with coordinates already local.
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
		if dot, ok := m.dotAt(msg.X, msg.Y); ok {
			m.Jump(dot)
			return m, nil
		}
		m.settle.Stop()
		m.lock.Reset()
		m.pressX, m.pressY = msg.X, msg.Y
		m.st.extent = m.innerWidth()
		m.eng.Begin(float64(msg.X), m.now())

	case tea.MouseActionMotion:
		if !m.eng.Active() {
			return m, nil
		}
		state := m.lock.Update(float64(msg.X-m.pressX), float64(msg.Y-m.pressY))
		if state == gesture.LockOrthogonal {
			// The drag belongs to whatever scrolls vertically around us.
			return m.release(true)
		}
		m.eng.Move(float64(msg.X), m.now())

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

	var res gesture.Resolution
	if cancelled {
		res = m.eng.Cancel()
	} else {
		res = m.eng.End()
	}

	// Re-express the released offset relative to the resolved slide so the
	// strip doesn't jump when the index changes under it.
	residual := off
	switch res {
	case gesture.Advance:
		residual = off + float64(m.innerWidth())
	case gesture.Retreat:
		residual = off - float64(m.innerWidth())
	}
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

// slideWidth is the full outer width of the strip in cells.
func (m Model) slideWidth() int {
	w := m.Width
	if w < 20 {
		w = 20
	}
	return w
}

// innerWidth is the stride of one slide: the strip width inside the border.
// The drag extent, the residual re-expression on index change, and the render
// window all use this same stride.
func (m Model) innerWidth() int {
	w := m.slideWidth() - 4
	if w < 10 {
		w = 10
	}
	return w
}

// dotAt maps a click to an indicator dot index.
func (m Model) dotAt(x, y int) (int, bool) {
	if y != m.dotRow() || len(m.portraits) == 0 {
		return 0, false
	}
	start := (m.slideWidth() - m.dotRowWidth()) / 2
	rel := x - start
	if rel < 0 || rel >= m.dotRowWidth() {
		return 0, false
	}
	return rel / 2, true // dots are one cell plus one gap
}

func (m Model) dotRow() int {
	return m.previewHeight() + 2 // border top + preview rows
}

func (m Model) dotRowWidth() int {
	if len(m.portraits) == 0 {
		return 0
	}
	return len(m.portraits)*2 - 1
}

func (m Model) previewHeight() int {
	h := 0
	for _, p := range m.portraits {
		if len(p.Preview) > h {
			h = len(p.Preview)
		}
	}
	if h == 0 {
		h = 8
	}
	return h
}

// View renders the strip: the visible window over all slides at the current
// drag/settle offset, then the dot row and caption.
func (m Model) View() string {
	w := m.slideWidth()
	if len(m.portraits) == 0 {
		empty := theme.StyleDimmed.Render("No portraits yet — press g to generate one")
		return lipgloss.Place(w, m.previewHeight()+4, lipgloss.Center, lipgloss.Center, empty)
	}

	rows := m.stripWindow()
	body := strings.Join(rows, "\n")
	framed := theme.StyleBorder.Width(w - 2).Render(body)

	sections := []string{
		framed,
		lipgloss.PlaceHorizontal(w, lipgloss.Center, m.renderDots()),
		lipgloss.PlaceHorizontal(w, lipgloss.Center, m.renderCaption()),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// stripWindow slices the visible rows out of the concatenated slide strip.
func (m Model) stripWindow() []string {
	inner := m.innerWidth()
	h := m.previewHeight()

	// Window origin in strip coordinates. Positive offset (drag right)
	// reveals the previous slide, so it shifts the window left.
	start := m.eng.Index()*inner - int(math.Round(m.st.offset)) + edgeMargin

	rows := make([]string, h)
	for y := 0; y < h; y++ {
		var b strings.Builder
		b.Grow(edgeMargin * 2)
		b.WriteString(strings.Repeat(" ", edgeMargin))
		for _, p := range m.portraits {
			b.WriteString(padRow(rowOf(p.Preview, y), inner))
		}
		b.WriteString(strings.Repeat(" ", edgeMargin))
		strip := []rune(b.String())

		from := start
		if from < 0 {
			from = 0
		}
		if from > len(strip)-inner {
			from = len(strip) - inner
		}
		rows[y] = string(strip[from : from+inner])
	}
	return rows
}

func rowOf(preview []string, y int) string {
	if y < len(preview) {
		return preview[y]
	}
	return ""
}

// padRow centers a preview row in the slide width.
func padRow(row string, width int) string {
	runes := []rune(row)
	if len(runes) >= width {
		return string(runes[:width])
	}
	left := (width - len(runes)) / 2
	right := width - len(runes) - left
	return strings.Repeat(" ", left) + string(runes) + strings.Repeat(" ", right)
}

func (m Model) renderDots() string {
	var b strings.Builder
	for i := range m.portraits {
		if i > 0 {
			b.WriteByte(' ')
		}
		if i == m.eng.Index() {
			b.WriteString(theme.StyleAccent.Render("●"))
		} else {
			b.WriteString(theme.StyleDimmed.Render("○"))
		}
	}
	return b.String()
}

func (m Model) renderCaption() string {
	p := m.Selected()
	if p == nil {
		return ""
	}
	style := client.StyleByID(p.StyleID)
	name := lipgloss.NewStyle().Foreground(theme.StyleColor(p.StyleID)).Render(style.Name)
	meta := theme.StyleDimmed.Render(fmt.Sprintf("  %d/%d  %s",
		m.eng.Index()+1, len(m.portraits), p.CreatedAt.Format("Jan 2 15:04")))
	return name + meta
}
