package sheet

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/portrait-studio/tui/internal/client"
	"github.com/portrait-studio/tui/internal/haptics"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) tick() time.Time {
	c.t = c.t.Add(16 * time.Millisecond)
	return c.t
}

func testPortrait() *client.Portrait {
	return &client.Portrait{
		ID:        "p-0",
		StyleID:   "watercolor",
		Seed:      42,
		Width:     1024,
		Height:    1280,
		CreatedAt: time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC),
	}
}

// newSheet returns an open sheet on a 60x20 terminal: snap heights 10 and 18
// rows, handle on rows 10-11 counted from the top of the screen.
func newSheet(velocityThreshold float64) Model {
	m := New([]float64{0.5, 0.9}, velocityThreshold, 0.30, 0.3, 6, 60, haptics.Silent{})
	m.Width = 60
	m.Height = 20
	m.now = (&fakeClock{t: time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)}).tick
	m.Open(testPortrait(), nil)
	return m
}

func press(y int) tea.MouseMsg {
	return tea.MouseMsg{X: 5, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func motion(y int) tea.MouseMsg {
	return tea.MouseMsg{X: 5, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
}

func release(y int) tea.MouseMsg {
	return tea.MouseMsg{X: 5, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
}

func settleOut(t *testing.T, m Model) Model {
	t.Helper()
	var cmd tea.Cmd
	for i := 0; i < 10000; i++ {
		m, cmd = m.Update(FrameMsg{})
		if cmd == nil {
			return m
		}
	}
	t.Fatal("settle animation never finished")
	return m
}

func TestOpenRestsAtSmallestSnap(t *testing.T) {
	m := newSheet(0.5)
	if !m.IsOpen() {
		t.Fatal("sheet should be open")
	}
	if got := m.VisibleRows(); got != 10 {
		t.Errorf("expected 10 visible rows at the first snap, got %d", got)
	}
}

func TestDragUpExpands(t *testing.T) {
	m := newSheet(0.5)

	m, _ = m.Update(press(10))
	if !m.Dragging() {
		t.Fatal("handle press should start a drag")
	}
	m, _ = m.Update(motion(3)) // 7 rows up, past 30% of the 10-row extent
	m, _ = m.Update(release(3))

	if !m.IsOpen() {
		t.Fatal("expanding drag closed the sheet")
	}
	m = settleOut(t, m)
	if got := m.VisibleRows(); got != 18 {
		t.Errorf("expected 18 visible rows at the second snap, got %d", got)
	}
}

func TestDragDownDismisses(t *testing.T) {
	m := newSheet(0.5)

	m, _ = m.Update(press(10))
	m, _ = m.Update(motion(17)) // 7 rows down from the smallest snap
	m, _ = m.Update(release(17))

	if m.IsOpen() {
		t.Error("downward drag past the threshold should dismiss")
	}
	if m.VisibleRows() != 0 {
		t.Errorf("dismissed sheet still covers %d rows", m.VisibleRows())
	}
}

func TestFlickDismisses(t *testing.T) {
	m := newSheet(0.1) // low threshold so a 2-row frame step reads as a flick

	m, _ = m.Update(press(10))
	m, _ = m.Update(motion(12)) // short drag, but fast
	m, _ = m.Update(release(12))

	if m.IsOpen() {
		t.Error("fast downward flick should dismiss despite the short distance")
	}
}

func TestShortDragSnapsBack(t *testing.T) {
	m := newSheet(0.5)

	m, _ = m.Update(press(10))
	m, _ = m.Update(motion(12)) // 2 rows, under the 3-row threshold
	m, _ = m.Update(release(12))

	if !m.IsOpen() {
		t.Fatal("short drag dismissed the sheet")
	}
	m = settleOut(t, m)
	if got := m.VisibleRows(); got != 10 {
		t.Errorf("expected snap back to 10 rows, got %d", got)
	}
}

func TestOvershootThenReturnStays(t *testing.T) {
	m := newSheet(0.5)

	m, _ = m.Update(press(10))
	m, _ = m.Update(motion(3)) // past the threshold...
	m, _ = m.Update(motion(9)) // ...then back within it
	m, _ = m.Update(release(9))

	m = settleOut(t, m)
	if got := m.VisibleRows(); got != 10 {
		t.Errorf("returned drag should stay at the first snap, got %d rows", got)
	}
}

func TestCancelSnapsBack(t *testing.T) {
	m := newSheet(0.5)

	m, _ = m.Update(press(10))
	m, _ = m.Update(motion(17)) // would dismiss on release
	m, _ = m.CancelDrag()

	if !m.IsOpen() {
		t.Error("cancelled drag must never dismiss")
	}
	if m.Dragging() {
		t.Error("cancel should end the drag")
	}
	m = settleOut(t, m)
	if got := m.VisibleRows(); got != 10 {
		t.Errorf("expected snap back to 10 rows, got %d", got)
	}
}

func TestBodyPressIgnored(t *testing.T) {
	m := newSheet(0.5)

	m, _ = m.Update(press(15)) // inside the body, below the handle
	if m.Dragging() {
		t.Error("body press should not start a drag")
	}
}

func TestInHandle(t *testing.T) {
	m := newSheet(0.5)
	for localY, want := range map[int]bool{-1: false, 0: true, 1: true, 2: false} {
		if got := m.InHandle(localY); got != want {
			t.Errorf("InHandle(%d) = %v, want %v", localY, got, want)
		}
	}
}

func TestCloseResets(t *testing.T) {
	m := newSheet(0.5)
	m.Close()
	if m.IsOpen() || m.VisibleRows() != 0 {
		t.Error("closed sheet should be hidden")
	}
}

func TestView(t *testing.T) {
	m := newSheet(0.5)
	v := m.View()
	if got := len(strings.Split(v, "\n")); got != 10 {
		t.Errorf("view should render exactly 10 rows, got %d", got)
	}
	if !strings.Contains(v, "Watercolor") {
		t.Error("view should show the style name")
	}
	if !strings.Contains(v, "1024×1280") {
		t.Error("view should show the render size")
	}

	m.SetStatus("saved ./p-0.png")
	v = m.View()
	if !strings.Contains(v, "saved ./p-0.png") {
		t.Error("view should show the status line")
	}
}
