package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pacman/internal/storage"
)

type sourceCall struct {
	gameID, difficulty string
	limit              int
}

type fakeSource struct {
	calls  []sourceCall
	scores []storage.ScoreEntry
	err    error
}

func (s *fakeSource) TopScores(gameID, difficulty string, limit int) ([]storage.ScoreEntry, error) {
	s.calls = append(s.calls, sourceCall{gameID, difficulty, limit})
	return s.scores, s.err
}

func (s *fakeSource) last() sourceCall { return s.calls[len(s.calls)-1] }

func boardKey(t *testing.T, m ScoreboardModel, msg tea.KeyMsg) ScoreboardModel {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(ScoreboardModel)
}

func TestScoreboardLoadsFirstGame(t *testing.T) {
	src := &fakeSource{scores: []storage.ScoreEntry{
		{Score: 900, Level: 3, Difficulty: "hard", CreatedAt: time.Now()},
		{Score: 400, Level: 1, CreatedAt: time.Now()},
	}}
	m := NewScoreboardModel(src, 100, 30)

	if len(src.calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(src.calls))
	}
	if got := src.last(); got != (sourceCall{"stub_a", "", maxScores}) {
		t.Errorf("call = %+v", got)
	}
	if len(m.Scores()) != 2 {
		t.Errorf("scores = %d, want 2", len(m.Scores()))
	}

	rows := m.table.Rows()
	if rows[0][1] != "900" || rows[0][2] != "3" || rows[0][3] != "hard" {
		t.Errorf("first row = %v", rows[0])
	}
	if rows[1][3] != "-" {
		t.Errorf("missing difficulty shown as %q", rows[1][3])
	}
}

func TestScoreboardDifficultyFilter(t *testing.T) {
	src := &fakeSource{}
	m := NewScoreboardModel(src, 100, 30)

	want := []string{"easy", "normal", "hard", "chaos", "fixed", ""}
	for _, w := range want {
		m = boardKey(t, m, runeKey("d"))
		if m.Filter() != w {
			t.Errorf("filter = %q, want %q", m.Filter(), w)
		}
		if src.last().difficulty != w {
			t.Errorf("queried difficulty %q, want %q", src.last().difficulty, w)
		}
	}
}

func TestScoreboardSwitchGame(t *testing.T) {
	src := &fakeSource{}
	m := NewScoreboardModel(src, 100, 30)

	m = boardKey(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if src.last().gameID != "stub_b" {
		t.Errorf("gameID = %q, want stub_b", src.last().gameID)
	}
	m = boardKey(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if src.last().gameID != "stub_a" {
		t.Errorf("gameID after wrap = %q, want stub_a", src.last().gameID)
	}
	boardKey(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if src.last().gameID != "stub_b" {
		t.Errorf("gameID after left = %q, want stub_b", src.last().gameID)
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)
	back := boardKey(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !back.IsGoingBack() || back.IsQuitting() {
		t.Error("esc should go back")
	}
	quit := boardKey(t, m, runeKey("q"))
	if !quit.IsQuitting() || quit.IsGoingBack() {
		t.Error("q should quit")
	}
	if quit.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestScoreboardView(t *testing.T) {
	tests := []struct {
		name  string
		src   ScoreSource
		width int
		want  string
	}{
		{"nil source", nil, 100, "No scores recorded yet"},
		{"error", &fakeSource{err: errors.New("locked")}, 100, "locked"},
		{"narrow", &fakeSource{}, 60, "< Stub A >"},
		{"wide", &fakeSource{}, 100, "Modes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := NewScoreboardModel(tt.src, tt.width, 30).View()
			if !strings.Contains(view, tt.want) {
				t.Errorf("view missing %q:\n%s", tt.want, view)
			}
			if !strings.Contains(view, "Difficulty: ALL") {
				t.Error("view missing filter label")
			}
		})
	}
}
