package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/target-practice/internal/highscore"
	"github.com/vovakirdan/target-practice/internal/storage"
)

func sampleData() ScoreboardData {
	at := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	return ScoreboardData{
		Record: highscore.Record{Score: 15, AchievedAt: "2026-03-14 15:09:26 +0000"},
		Stats:  &storage.GameStats{GameID: "targetpractice", GamesCount: 2, HighScore: 15, AvgScore: 10, LastPlayed: at},
		Top: []storage.SessionEntry{
			{ID: 2, Score: 15, Platform: "tui", PlayedAt: at},
			{ID: 1, Score: 5, Platform: "ssh", PlayedAt: at.Add(-time.Hour)},
		},
		Recent: []storage.SessionEntry{
			{ID: 1, Score: 5, Platform: "ssh", PlayedAt: at.Add(-time.Hour)},
		},
	}
}

func TestPlainScoreboard(t *testing.T) {
	out := PlainScoreboard(sampleData(), 0)

	for _, want := range []string{
		"High score: 15 (2026-03-14 15:09:26 +0000)",
		"Sessions: 2 | Best: 15 | Average: 10.0",
		"RANK",
		"tui",
		"ssh",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("plain scoreboard missing %q:\n%s", want, out)
		}
	}

	if strings.Contains(out, "\x1b") {
		t.Errorf("plain scoreboard should carry no escape codes:\n%q", out)
	}

	// Columns line up between the header and the rows
	var header, first string
	for _, line := range strings.Split(out, "\n") {
		switch {
		case strings.Contains(line, "RANK"):
			header = line
		case header != "" && first == "" && strings.Contains(line, "tui"):
			first = line
		}
	}
	if header == "" || first == "" {
		t.Fatalf("header or first row missing:\n%s", out)
	}
	if strings.Index(header, "WHERE") != strings.Index(first, "tui") {
		t.Errorf("columns not aligned:\n%s\n%s", header, first)
	}

	limited := PlainScoreboard(sampleData(), 1)
	if strings.Contains(limited, "ssh") {
		t.Errorf("limit should cut the list:\n%s", limited)
	}
}

func TestPlainScoreboardEmpty(t *testing.T) {
	out := PlainScoreboard(ScoreboardData{}, 10)

	if !strings.Contains(out, "High score: 0") || !strings.Contains(out, "No sessions recorded yet.") {
		t.Errorf("unexpected empty scoreboard:\n%s", out)
	}
}

func TestScoreboardToggleView(t *testing.T) {
	m := NewScoreboardModel(sampleData(), 100, 30)

	if len(m.table.Rows()) != 2 {
		t.Fatalf("top view rows = %d, expected 2", len(m.table.Rows()))
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.view != ViewRecent || len(m.table.Rows()) != 1 {
		t.Errorf("view = %v with %d rows, expected recent with 1", m.view, len(m.table.Rows()))
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if m.view != ViewTop {
		t.Errorf("view = %v, expected top", m.view)
	}

	if !strings.Contains(m.View(), "High score: 15") {
		t.Error("view should show the persisted record")
	}

	next, cmd := m.Update(runeKey("q"))
	m = next.(ScoreboardModel)
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit the scoreboard")
	}
}

func TestScoreboardNarrowDropsDate(t *testing.T) {
	m := NewScoreboardModel(sampleData(), 30, 20)

	if cols := len(m.table.Columns()); cols != 3 {
		t.Errorf("narrow table has %d columns, expected 3", cols)
	}
	if row := m.table.Rows()[0]; len(row) != 3 {
		t.Errorf("narrow row has %d cells, expected 3", len(row))
	}
}

func TestLoadScoreboard(t *testing.T) {
	dir := t.TempDir()

	store, err := storage.Open(filepath.Join(dir, "sessions.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()
	store.SaveSession(storage.SessionEntry{GameID: "targetpractice", Score: 4, Platform: "tui"})
	store.SaveSession(storage.SessionEntry{GameID: "targetpractice", Score: 9, Platform: "tui"})

	records, err := highscore.NewFileStore(filepath.Join(dir, "high-score.txt"))
	if err != nil {
		t.Fatal(err)
	}
	records.Save(highscore.NewRecord(9, time.Now()))

	data, err := LoadScoreboard(store, records, "targetpractice")
	if err != nil {
		t.Fatalf("LoadScoreboard() failed: %v", err)
	}
	if data.Record.Score != 9 || data.Stats.GamesCount != 2 || len(data.Top) != 2 || len(data.Recent) != 2 {
		t.Errorf("unexpected data: %+v", data)
	}
	if data.Top[0].Score != 9 {
		t.Errorf("top session = %d, expected 9", data.Top[0].Score)
	}

	empty, err := LoadScoreboard(nil, nil, "targetpractice")
	if err != nil || empty.Stats != nil || empty.Top != nil {
		t.Errorf("nil sources should give empty data, got %+v, %v", empty, err)
	}
}
