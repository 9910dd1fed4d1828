package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

// heldScheduler never fires, so the game only advances when a test says so.
type heldScheduler struct {
	fn func()
}

func (s *heldScheduler) Arm(_ time.Duration, fn func()) { s.fn = fn }
func (s *heldScheduler) Stop()                          { s.fn = nil }

func newTestModel(t *testing.T, source ScoreSource) (Model, *snake.Controller, *heldScheduler) {
	t.Helper()

	sched := &heldScheduler{}
	ctrl, err := snake.New(snake.DefaultConfig(),
		snake.WithScheduler(sched),
		snake.WithSeed(7),
	)
	if err != nil {
		t.Fatalf("snake.New: %v", err)
	}
	t.Cleanup(func() { ctrl.Close() })

	m := NewModel(ctrl, nil, 80, 25)
	m.scores = source
	return m, ctrl, sched
}

func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestModelStartsAndPauses(t *testing.T) {
	m, ctrl, _ := newTestModel(t, nil)

	if !strings.Contains(m.View(), "S N A K E") {
		t.Error("ready screen not shown")
	}

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEnter})
	if ctrl.State() != snake.StatePlaying {
		t.Fatalf("state = %v after start, want playing", ctrl.State())
	}
	if m.Snapshot().State != snake.StatePlaying {
		t.Error("model did not pick up the new snapshot")
	}

	m, _ = update(m, runeKey('p'))
	if ctrl.State() != snake.StatePaused {
		t.Fatalf("state = %v after p, want paused", ctrl.State())
	}
	if !strings.Contains(m.View(), "Paused") {
		t.Error("pause overlay not shown")
	}
}

func TestModelForwardsDirections(t *testing.T) {
	m, ctrl, sched := newTestModel(t, nil)

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEnter})
	_, _ = update(m, tea.KeyMsg{Type: tea.KeyUp})

	if sched.fn == nil {
		t.Fatal("no tick armed")
	}
	sched.fn()

	if got := ctrl.Snapshot().Direction; got != snake.DirUp {
		t.Errorf("direction = %v after tick, want up", got)
	}
}

func TestModelScoreboardPausesGame(t *testing.T) {
	m, ctrl, _ := newTestModel(t, sampleScores())

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyTab})

	if ctrl.State() != snake.StatePaused {
		t.Errorf("state = %v with scoreboard open, want paused", ctrl.State())
	}
	if !strings.Contains(m.View(), "HIGH SCORES") {
		t.Fatal("scoreboard not shown")
	}

	// Movement keys scroll the table instead of steering.
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyDown})
	if m.scoreboard == nil {
		t.Fatal("scoreboard closed by a scroll key")
	}

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.scoreboard != nil {
		t.Error("tab did not close the scoreboard")
	}
	if ctrl.State() != snake.StatePaused {
		t.Error("closing the scoreboard resumed the game")
	}
}

func TestModelAppliesNewerSnapshotsOnly(t *testing.T) {
	m, _, _ := newTestModel(t, nil)

	newer := m.Snapshot()
	newer.Seq += 5
	newer.Score = 90
	m, _ = update(m, SnapshotMsg(newer))

	stale := newer
	stale.Seq -= 2
	stale.Score = 10
	m, _ = update(m, SnapshotMsg(stale))

	if m.Snapshot().Score != 90 {
		t.Errorf("score = %d, stale snapshot replaced a newer one", m.Snapshot().Score)
	}
}

func TestModelQuit(t *testing.T) {
	m, _, _ := newTestModel(t, nil)

	m, cmd := update(m, runeKey('q'))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("command is not tea.Quit")
	}
	if m.View() != "" {
		t.Error("view not cleared after quit")
	}
}

func TestModelResize(t *testing.T) {
	m, _, _ := newTestModel(t, nil)

	m, _ = update(m, tea.WindowSizeMsg{Width: 30, Height: 12})
	if !strings.Contains(m.View(), "Window too small") {
		t.Error("expected too-small message after shrinking")
	}
}
