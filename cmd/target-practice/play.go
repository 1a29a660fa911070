package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/target-practice/internal/audio"
	"github.com/vovakirdan/target-practice/internal/config"
	"github.com/vovakirdan/target-practice/internal/games/targetpractice"
	"github.com/vovakirdan/target-practice/internal/platform/tui"
	"github.com/vovakirdan/target-practice/internal/platform/window"
	"github.com/vovakirdan/target-practice/internal/registry"
	"github.com/vovakirdan/target-practice/internal/storage"
)

var flagMute bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a session",
	Long: `Start a game of Target Practice.

Controls:
  Arrows/WASD  - Move the dragon
  Z/J          - Breathe a fireball (also starts and restarts)
  Gamepad      - D-pad or left stick to move, A to fire (window only)
  Ctrl+S       - Save a text screenshot (terminal only)
  Q/Ctrl+C/Esc - Quit

Examples:
  target-practice play
  target-practice play --platform window
  target-practice play --seed 42 --mute`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(cmd *cobra.Command, args []string) {
	s, err := loadSettings()
	if err != nil {
		fail("%v", err)
	}
	logger, closeLog, err := playLogger(s)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()
	logger.Debug("config loaded", "source", s.Source)

	if _, err := openHighScores(s.Storage.HighScoreFile); err != nil {
		fail("%v", err)
	}

	game, err := registry.Create(targetpractice.GameID)
	if err != nil {
		fail("creating game: %v", err)
	}

	// The game still works without history
	store, err := storage.Open(s.Storage.Database)
	if err != nil {
		logger.Warn("could not open session history", "path", s.Storage.Database, "error", err)
		store = nil
	}

	var mixer *audio.Mixer
	if s.Audio.Enabled && !flagMute {
		mixer = audio.New(s.Assets.Dir, s.Audio.Volume, logger.WithPrefix("audio"))
		if err := mixer.Initialize(); err != nil {
			logger.Warn("audio unavailable, playing silently", "error", err)
		}
	}

	switch s.Display.Platform {
	case config.PlatformWindow:
		err = window.Run(game, s.runtimeConfig(), window.Options{
			AssetsDir: s.Assets.Dir,
			Scale:     s.Display.Scale,
			Store:     store,
			Audio:     mixer,
			Logger:    logger.WithPrefix("window"),
		})
	default:
		err = tui.Run(game, s.runtimeConfig(), tui.Options{
			Store:  store,
			Audio:  mixer,
			Logger: logger.WithPrefix("tui"),
		})
	}

	if mixer != nil {
		mixer.Cleanup()
	}
	if store != nil {
		store.Close()
	}

	if err != nil {
		fail("running game: %v", err)
	}
}
