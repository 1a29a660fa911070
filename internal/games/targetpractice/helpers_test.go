package targetpractice

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/target-practice/internal/core"
	"github.com/vovakirdan/target-practice/internal/highscore"
)

// memStore is an in-memory HighScoreStore.
type memStore struct {
	rec     highscore.Record
	loadErr error
	saveErr error
	saves   int
}

func (m *memStore) Load() (highscore.Record, error) {
	if m.loadErr != nil {
		return highscore.Record{}, m.loadErr
	}
	return m.rec, nil
}

func (m *memStore) Save(r highscore.Record) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.rec = r
	m.saves++
	return nil
}

var testNow = time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

func newTestEnv(seed int64, store HighScoreStore) Env {
	return Env{
		Width:    1280,
		Height:   720,
		TickRate: 60,
		Rand:     rand.New(rand.NewSource(seed)),
		Now:      func() time.Time { return testNow },
		Scores:   store,
	}
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// gameplaySession returns a session that has just started gameplay.
func gameplaySession(env Env) Session {
	s := startGameplay(NewSession(), env)
	s.Scene = SceneGameplay
	s.MusicStarted = true
	return s
}
