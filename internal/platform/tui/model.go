package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Model is the Bubble Tea model for one snake session. It owns no game
// state: keys are forwarded to the Controller and the view is drawn from
// the latest snapshot the Controller published.
type Model struct {
	ctrl       *snake.Controller
	scores     ScoreSource
	snap       snake.Snapshot
	screen     *core.Screen
	keys       GameKeyMap
	help       help.Model
	scoreboard *ScoreboardModel // Non-nil while the scoreboard is shown
	width      int
	height     int
	quitting   bool
}

// NewModel creates a model driving ctrl. store may be nil.
func NewModel(ctrl *snake.Controller, store *storage.Store, width, height int) Model {
	var scores ScoreSource
	if store != nil {
		scores = store
	}

	m := Model{
		ctrl:   ctrl,
		scores: scores,
		snap:   ctrl.Snapshot(),
		keys:   DefaultGameKeyMap(),
		help:   help.New(),
	}
	m.resize(width, height)
	return m
}

// Init starts listening for snapshots.
func (m Model) Init() tea.Cmd {
	return waitForSnapshot(m.ctrl.Updates())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SnapshotMsg:
		// Snapshots can arrive out of order with direct reads after a key.
		if msg.Seq >= m.snap.Seq {
			m.snap = snake.Snapshot(msg)
		}
		return m, waitForSnapshot(m.ctrl.Updates())

	case updatesClosedMsg:
		return m, nil

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		if m.scoreboard != nil {
			sb, _ := m.scoreboard.Update(msg)
			board := sb.(ScoreboardModel)
			m.scoreboard = &board
		}
		return m, nil

	case tea.KeyMsg:
		if m.scoreboard != nil {
			return m.updateScoreboard(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionStart:
		m.ctrl.Start()

	case core.ActionPause:
		m.ctrl.TogglePause()

	case core.ActionScores:
		// Never leave a game running behind the scoreboard.
		if m.ctrl.State() == snake.StatePlaying {
			m.ctrl.TogglePause()
		}
		board := NewScoreboardModel(m.scores, m.width, m.height)
		m.scoreboard = &board

	default:
		if dir, ok := DirectionFor(action); ok {
			m.ctrl.Submit(dir)
		}
		return m, nil
	}

	m.snap = m.ctrl.Snapshot()
	return m, nil
}

// updateScoreboard forwards input to the scoreboard until it is closed.
func (m Model) updateScoreboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	board := next.(ScoreboardModel)

	switch {
	case board.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case board.IsGoingBack():
		m.scoreboard = nil
		return m, nil
	}

	m.scoreboard = &board
	return m, cmd
}

// resize adapts the drawing buffer to the terminal, keeping one line for
// the help bar.
func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width
	m.screen = core.NewScreen(width, max(height-1, 0))
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scoreboard != nil {
		return m.scoreboard.View()
	}

	DrawSnapshot(m.screen, m.snap)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + centerText(helpStyle.Render(m.help.View(m.keys)), m.width)
}

// Snapshot returns the snapshot the model last drew.
func (m Model) Snapshot() snake.Snapshot {
	return m.snap
}

// Run plays ctrl in the local terminal until the player quits, then
// closes the controller so a pending score report can finish.
func Run(ctrl *snake.Controller, store *storage.Store, width, height int) error {
	p := tea.NewProgram(
		NewModel(ctrl, store, width, height),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	if closeErr := ctrl.Close(); err == nil {
		err = closeErr
	}
	return err
}
