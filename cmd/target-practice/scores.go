package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/target-practice/internal/games/targetpractice"
	"github.com/vovakirdan/target-practice/internal/platform/tui"
	"github.com/vovakirdan/target-practice/internal/storage"
)

var flagPlain bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high score and session history",
	Long: `Display the stored high score, aggregate stats and the best and most
recent sessions. On a terminal the list is interactive (Tab switches
between top and recent); otherwise plain text is printed.

Examples:
  target-practice scores
  target-practice scores --plain > scores.txt`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print plain text even on a terminal")
}

func runScores(cmd *cobra.Command, args []string) {
	s, err := loadSettings()
	if err != nil {
		fail("%v", err)
	}
	logger := newLogger(os.Stderr, s.Log.Level)

	records, err := openHighScores(s.Storage.HighScoreFile)
	if err != nil {
		fail("%v", err)
	}

	store, err := storage.Open(s.Storage.Database)
	if err != nil {
		logger.Warn("could not open session history", "path", s.Storage.Database, "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	data, err := tui.LoadScoreboard(store, records, targetpractice.GameID)
	if err != nil {
		logger.Warn("scoreboard incomplete", "error", err)
	}

	fd := int(os.Stdout.Fd())
	if flagPlain || !term.IsTerminal(fd) {
		fmt.Print(tui.PlainScoreboard(data, 10))
		return
	}

	width, height := 80, 24
	if w, h, sizeErr := term.GetSize(fd); sizeErr == nil {
		width, height = w, h
	}
	if err := tui.RunScoreboard(data, width, height); err != nil {
		fail("%v", err)
	}
}
