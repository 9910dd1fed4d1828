// Package tui provides the Bubble Tea integration for the snake game.
// It renders engine snapshots, maps keys to controller calls and serves
// the game over SSH.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

// SnapshotMsg carries a new engine snapshot to the model.
type SnapshotMsg snake.Snapshot

// updatesClosedMsg is sent once the controller has been closed.
type updatesClosedMsg struct{}

// waitForSnapshot returns a command that blocks until the controller
// publishes the next snapshot.
func waitForSnapshot(updates <-chan snake.Snapshot) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-updates
		if !ok {
			return updatesClosedMsg{}
		}
		return SnapshotMsg(s)
	}
}
