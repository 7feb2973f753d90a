package app

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/portrait-studio/tui/internal/client"
	"github.com/portrait-studio/tui/internal/config"
	"github.com/portrait-studio/tui/internal/haptics"
	"github.com/portrait-studio/tui/internal/theme"
	"github.com/portrait-studio/tui/internal/views/carousel"
	"github.com/portrait-studio/tui/internal/views/help"
	"github.com/portrait-studio/tui/internal/views/sheet"
	"github.com/portrait-studio/tui/internal/views/status"
)

// Overlay identifies which modal is active.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayHelp
)

// GenerateResultMsg is returned after a generate request.
type GenerateResultMsg struct {
	Job *client.Job
	Err error
}

// DownloadResultMsg is returned after a portrait download.
type DownloadResultMsg struct {
	Path string
	Err  error
}

// Model is the root Bubble Tea model.
type Model struct {
	ws     *client.WSClient
	http   *client.HTTPClient
	ctx    context.Context
	cancel context.CancelFunc

	cfg  *config.Config
	demo bool

	keys   KeyMap
	width  int
	height int

	credits   int
	activeJob *client.Job

	statusBar status.Model
	carousel  carousel.Model
	sheet     sheet.Model
	help      help.Model
	overlay   Overlay

	connected bool
}

// New creates the root model.
func New(ws *client.WSClient, http *client.HTTPClient, cfg *config.Config, demo bool) Model {
	ctx, cancel := context.WithCancel(context.Background())

	var pulser haptics.Pulser = haptics.Silent{}
	if cfg.UI.Haptics {
		pulser = haptics.Bell{W: os.Stderr}
	}

	g := cfg.Gesture
	return Model{
		ws:     ws,
		http:   http,
		ctx:    ctx,
		cancel: cancel,
		cfg:    cfg,
		demo:   demo,
		keys:   DefaultKeyMap(),
		statusBar: status.Model{
			Demo: demo,
		},
		carousel: carousel.New(
			g.VelocityThreshold, g.CarouselDistanceFraction, g.Resistance,
			cfg.UI.FPS, pulser),
		sheet: sheet.New(
			cfg.UI.SheetSnapPoints,
			g.VelocityThreshold, g.SheetDistanceFraction, g.Resistance,
			g.SheetOvershootCap, cfg.UI.FPS, pulser),
		help: help.New(),
	}
}

// Init connects to the backend, or loads the demo snapshot when offline.
func (m Model) Init() tea.Cmd {
	if m.demo {
		return func() tea.Msg {
			return client.WSSnapshotMsg{Payload: client.DemoSnapshot()}
		}
	}
	return m.ws.Listen(m.ctx)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.statusBar.Width = msg.Width
		m.carousel.Width = msg.Width
		m.sheet.Width = msg.Width
		m.sheet.Height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.routeMouse(msg)

	case tea.BlurMsg:
		// Terminal focus loss plays touch-cancel: an interrupted drag must
		// snap back, never commit.
		var cmds []tea.Cmd
		var cmd tea.Cmd
		m.carousel, cmd = m.carousel.CancelDrag()
		cmds = append(cmds, cmd)
		m.sheet, cmd = m.sheet.CancelDrag()
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)

	case carousel.FrameMsg:
		var cmd tea.Cmd
		m.carousel, cmd = m.carousel.Update(msg)
		return m, cmd

	case sheet.FrameMsg:
		var cmd tea.Cmd
		m.sheet, cmd = m.sheet.Update(msg)
		return m, cmd

	case client.WSConnectedMsg:
		m.connected = true
		m.statusBar.Connected = true
		return m, m.ws.ReadLoop(m.ctx)

	case client.WSDisconnectedMsg:
		m.connected = false
		m.statusBar.Connected = false
		return m, m.ws.Listen(m.ctx)

	case client.WSSnapshotMsg:
		m.carousel.SetPortraits(msg.Payload.Portraits)
		m.credits = msg.Payload.Credits
		m.statusBar.Credits = m.credits
		m.activeJob = firstLiveJob(msg.Payload.Jobs)
		m.statusBar.Job = m.activeJob
		return m, m.readCmd()

	case client.WSJobUpdateMsg:
		m.activeJob = msg.Payload.Job
		m.statusBar.Job = m.activeJob
		return m, m.readCmd()

	case client.WSCompletionMsg:
		if m.activeJob != nil && msg.Payload.Job != nil && m.activeJob.ID == msg.Payload.Job.ID {
			m.activeJob = nil
			m.statusBar.Job = nil
		}
		m.credits = msg.Payload.Credits
		m.statusBar.Credits = m.credits
		if p := msg.Payload.Portrait; p != nil {
			m.carousel.Append(p)
			m.carousel.Jump(m.carousel.Index() + 1)
		}
		return m, m.readCmd()

	case client.WSCreditsMsg:
		m.credits = msg.Payload.Balance
		m.statusBar.Credits = m.credits
		return m, m.readCmd()

	case client.WSErrorMsg:
		return m, m.readCmd()

	case GenerateResultMsg:
		if msg.Err != nil {
			m.sheet.SetStatus(fmt.Sprintf("generate failed: %v", msg.Err))
			return m, nil
		}
		m.activeJob = msg.Job
		m.statusBar.Job = msg.Job
		return m, nil

	case DownloadResultMsg:
		if msg.Err != nil {
			m.sheet.SetStatus(fmt.Sprintf("download failed: %v", msg.Err))
		} else {
			m.sheet.SetStatus("saved " + msg.Path)
		}
		return m, nil
	}

	return m, nil
}

// readCmd continues the WebSocket read loop, or does nothing in demo mode.
func (m Model) readCmd() tea.Cmd {
	if m.demo {
		return nil
	}
	return m.ws.ReadLoop(m.ctx)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.overlay == OverlayHelp {
		if key.Matches(msg, m.keys.Escape) || key.Matches(msg, m.keys.Help) {
			m.overlay = OverlayNone
		}
		return m, nil
	}

	if m.sheet.IsOpen() {
		switch {
		case key.Matches(msg, m.keys.Escape):
			m.sheet.Close()
			return m, nil
		case key.Matches(msg, m.keys.Download):
			return m, m.downloadCmd()
		case key.Matches(msg, m.keys.Generate):
			return m, m.generateCmd()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.cancel()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Prev):
		m.carousel.Jump(m.carousel.Index() - 1)
		return m, nil

	case key.Matches(msg, m.keys.Next):
		m.carousel.Jump(m.carousel.Index() + 1)
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		if p := m.carousel.Selected(); p != nil {
			m.sheet.Open(p, m.activeJob)
		}
		return m, nil

	case key.Matches(msg, m.keys.Generate):
		return m, m.generateCmd()

	case key.Matches(msg, m.keys.Download):
		return m, m.downloadCmd()

	case key.Matches(msg, m.keys.Help):
		m.overlay = OverlayHelp
		return m, nil

	case key.Matches(msg, m.keys.Resync):
		if !m.demo {
			m.ws.Resync()
		}
		return m, nil
	}

	return m, nil
}

// routeMouse sends a mouse event to whichever surface owns it: an active
// drag keeps the pointer, then the open sheet's rows, then the carousel.
func (m Model) routeMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.overlay != OverlayNone {
		return m, nil
	}

	var cmd tea.Cmd
	switch {
	case m.sheet.Dragging():
		m.sheet, cmd = m.sheet.Update(msg)
	case m.carousel.Dragging():
		m.carousel, cmd = m.carousel.Update(m.toCarousel(msg))
	case m.sheet.IsOpen() && msg.Y >= m.height-m.sheet.VisibleRows():
		m.sheet, cmd = m.sheet.Update(msg)
	case m.sheet.IsOpen():
		// Clicks outside an open sheet are swallowed; it is modal.
	default:
		m.carousel, cmd = m.carousel.Update(m.toCarousel(msg))
	}
	return m, cmd
}

// toCarousel translates global mouse coordinates into carousel-local ones.
func (m Model) toCarousel(msg tea.MouseMsg) tea.MouseMsg {
	msg.Y -= lipgloss.Height(m.statusBar.View())
	return msg
}

func (m Model) generateCmd() tea.Cmd {
	styleID := "classic"
	if p := m.carousel.Selected(); p != nil {
		styleID = p.StyleID
	}
	if m.demo {
		return func() tea.Msg {
			p := client.DemoPortrait(styleID)
			return client.WSCompletionMsg{Payload: client.CompletionPayload{
				Portrait: p,
				Credits:  m.credits - 1,
			}}
		}
	}
	http := m.http
	return func() tea.Msg {
		job, err := http.Generate(styleID)
		return GenerateResultMsg{Job: job, Err: err}
	}
}

func (m Model) downloadCmd() tea.Cmd {
	p := m.carousel.Selected()
	if p == nil {
		return nil
	}
	if m.demo {
		return func() tea.Msg {
			return DownloadResultMsg{Err: fmt.Errorf("demo mode has no full-resolution renders")}
		}
	}
	http := m.http
	id := p.ID
	return func() tea.Msg {
		dir, err := os.Getwd()
		if err != nil {
			return DownloadResultMsg{Err: err}
		}
		path, err := http.Download(id, dir)
		return DownloadResultMsg{Path: path, Err: err}
	}
}

// View renders the full TUI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	if m.overlay == OverlayHelp {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.help.View(m.width))
	}

	base := lipgloss.JoinVertical(lipgloss.Left,
		m.statusBar.View(),
		m.carousel.View(),
		theme.StyleDimmed.Render("  h/l:swipe  enter:details  g:generate  ?:help  q:quit"),
	)

	if !m.sheet.IsOpen() {
		return base
	}
	return overlayBottom(base, m.sheet.View(), m.width, m.height)
}

// overlayBottom replaces the bottom rows of base with the sheet.
func overlayBottom(base, sheetView string, width, height int) string {
	if sheetView == "" {
		return base
	}
	baseLines := splitLines(base, height)
	sheetLines := splitLines(sheetView, 0)
	if len(sheetLines) >= height {
		sheetLines = sheetLines[:height]
	}
	keep := height - len(sheetLines)
	out := append(baseLines[:keep:keep], sheetLines...)
	return strings.Join(out, "\n")
}

func splitLines(s string, minLines int) []string {
	lines := []string{}
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	lines = append(lines, s[start:])
	for len(lines) < minLines {
		lines = append(lines, "")
	}
	return lines
}

func firstLiveJob(jobs []*client.Job) *client.Job {
	for _, j := range jobs {
		if !j.Status.Terminal() {
			return j
		}
	}
	return nil
}
