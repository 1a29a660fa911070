package main

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/target-practice/internal/games/targetpractice"
	"github.com/vovakirdan/target-practice/internal/highscore"
	"github.com/vovakirdan/target-practice/internal/storage"
)

func seedScores(t *testing.T) (*highscore.FileStore, *storage.Store) {
	t.Helper()
	dir := t.TempDir()

	records, err := highscore.NewFileStore(filepath.Join(dir, "high-score.txt"))
	if err != nil {
		t.Fatalf("NewFileStore() failed: %v", err)
	}
	if err := records.Save(highscore.NewRecord(12, time.Now())); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	store, err := storage.Open(filepath.Join(dir, "sessions.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	if _, err := store.SaveSession(storage.SessionEntry{GameID: targetpractice.GameID, Score: 12, Platform: "tui"}); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}
	return records, store
}

func TestResetScores(t *testing.T) {
	tests := []struct {
		name         string
		history      bool
		wantSessions int
	}{
		{name: "record only", history: false, wantSessions: 1},
		{name: "with history", history: true, wantSessions: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, store := seedScores(t)

			var target *storage.Store
			if tt.history {
				target = store
			}
			if err := resetScores(records, target); err != nil {
				t.Fatalf("resetScores() failed: %v", err)
			}

			rec, err := records.Load()
			if err != nil || rec.Score != 0 {
				t.Errorf("record = %+v, %v after reset", rec, err)
			}
			sessions, err := store.TopScores(targetpractice.GameID, 10)
			if err != nil {
				t.Fatalf("TopScores() failed: %v", err)
			}
			if len(sessions) != tt.wantSessions {
				t.Errorf("sessions = %d, expected %d", len(sessions), tt.wantSessions)
			}
		})
	}
}
