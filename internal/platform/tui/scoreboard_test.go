package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

type fakeScores struct {
	records []storage.RankedRecord
	stats   storage.Stats
	err     error
	loads   int
}

func (f *fakeScores) Leaderboard(limit int) ([]storage.RankedRecord, error) {
	f.loads++
	if f.err != nil {
		return nil, f.err
	}
	if limit < len(f.records) {
		return f.records[:limit], nil
	}
	return f.records, nil
}

func (f *fakeScores) Stats() (storage.Stats, error) {
	return f.stats, f.err
}

func sampleScores() *fakeScores {
	played := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return &fakeScores{
		records: []storage.RankedRecord{
			{Rank: 1, Record: storage.Record{PlayerName: "ann", Score: 120, SnakeLength: 15, DurationSeconds: 80, CreatedAt: played}},
			{Rank: 2, Record: storage.Record{PlayerName: "bob", Score: 40, SnakeLength: 7, DurationSeconds: 30, CreatedAt: played}},
		},
		stats: storage.Stats{TotalGames: 2, BestScore: 120, AverageScore: 80, TotalPlayTimeSeconds: 110, LongestSnake: 15},
	}
}

func TestScoreboardShowsRecords(t *testing.T) {
	for _, width := range []int{60, 100} {
		m := NewScoreboardModel(sampleScores(), width, 30)
		out := m.View()

		for _, want := range []string{"HIGH SCORES", "ann", "bob", "120", "1:20", "Games"} {
			if !strings.Contains(out, want) {
				t.Errorf("width %d: view missing %q:\n%s", width, want, out)
			}
		}
	}
}

func TestScoreboardMessages(t *testing.T) {
	tests := []struct {
		name   string
		source ScoreSource
		want   string
	}{
		{"no database", nil, "No database is open"},
		{"load error", &fakeScores{err: errors.New("disk on fire")}, "disk on fire"},
		{"empty", &fakeScores{}, "No scores recorded yet"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewScoreboardModel(tt.source, 100, 30)
			if out := m.View(); !strings.Contains(out, tt.want) {
				t.Errorf("view missing %q:\n%s", tt.want, out)
			}
		})
	}
}

func TestScoreboardRefresh(t *testing.T) {
	src := sampleScores()
	m := NewScoreboardModel(src, 100, 30)

	m.Update(runeKey('r'))
	if src.loads != 2 {
		t.Errorf("expected reload, got %d loads", src.loads)
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	tests := []struct {
		name       string
		msg        tea.KeyMsg
		standalone bool
		back       bool
		quit       bool
		cmd        bool
	}{
		{"tab goes back", tea.KeyMsg{Type: tea.KeyTab}, false, true, false, false},
		{"esc goes back", tea.KeyMsg{Type: tea.KeyEsc}, false, true, false, false},
		{"standalone back quits program", tea.KeyMsg{Type: tea.KeyEsc}, true, true, false, true},
		{"q quits", runeKey('q'), false, false, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewScoreboardModel(sampleScores(), 100, 30)
			m.standalone = tt.standalone

			next, cmd := m.Update(tt.msg)
			board := next.(ScoreboardModel)

			if board.IsGoingBack() != tt.back {
				t.Errorf("IsGoingBack() = %v, want %v", board.IsGoingBack(), tt.back)
			}
			if board.IsQuitting() != tt.quit {
				t.Errorf("IsQuitting() = %v, want %v", board.IsQuitting(), tt.quit)
			}
			if (cmd != nil) != tt.cmd {
				t.Errorf("cmd = %v, want non-nil %v", cmd, tt.cmd)
			}
		})
	}
}

func TestScoreboardResizeTogglesSidebar(t *testing.T) {
	m := NewScoreboardModel(sampleScores(), 60, 30)
	if m.showSidebar {
		t.Fatal("sidebar shown on a narrow terminal")
	}

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	if !next.(ScoreboardModel).showSidebar {
		t.Error("sidebar hidden after widening")
	}
}
