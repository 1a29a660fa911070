package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/target-practice/internal/games/targetpractice"
	"github.com/vovakirdan/target-practice/internal/highscore"
	"github.com/vovakirdan/target-practice/internal/storage"
)

var (
	flagYes     bool
	flagHistory bool
)

var resetCmd = &cobra.Command{
	Use:   "reset-high-score",
	Short: "Remove the stored high score",
	Long: `Delete the high score file so the next game starts from zero.
Session history is kept unless --history is given. Requires --yes.

Examples:
  target-practice reset-high-score --yes
  target-practice reset-high-score --yes --history`,
	Args: cobra.NoArgs,
	Run:  runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&flagYes, "yes", false, "Confirm removal")
	resetCmd.Flags().BoolVar(&flagHistory, "history", false, "Also delete the session history")
}

func runReset(cmd *cobra.Command, args []string) {
	s, err := loadSettings()
	if err != nil {
		fail("%v", err)
	}

	records, err := openHighScores(s.Storage.HighScoreFile)
	if err != nil {
		fail("%v", err)
	}

	if !flagYes {
		what := records.Path()
		if flagHistory {
			what += " and the sessions in " + s.Storage.Database
		}
		fmt.Printf("This removes %s. Run again with --yes to confirm.\n", what)
		return
	}

	var store *storage.Store
	if flagHistory {
		store, err = storage.Open(s.Storage.Database)
		if err != nil {
			fail("%v", err)
		}
		defer store.Close()
	}

	if err := resetScores(records, store); err != nil {
		fail("%v", err)
	}
	fmt.Printf("High score removed (%s)\n", records.Path())
	if store != nil {
		fmt.Printf("Session history cleared (%s)\n", s.Storage.Database)
	}
}

// resetScores removes the record and, when store is set, the logged sessions.
func resetScores(records *highscore.FileStore, store *storage.Store) error {
	if err := records.Clear(); err != nil {
		return err
	}
	if store == nil {
		return nil
	}
	return store.ClearScores(targetpractice.GameID)
}
