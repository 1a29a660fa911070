// target-practice is a small arcade game: steer a dragon, shoot fireballs
// at targets before the clock runs out and try to beat the high score.
//
// Usage:
//
//	target-practice                    - Play (same as play)
//	target-practice play               - Play in the terminal or a window
//	target-practice scores             - Show the high score and session history
//	target-practice serve              - Start SSH server for remote play
//	target-practice reset-high-score   - Remove the stored high score
//
// Global flags:
//
//	--config <path>     - Config file (default: search order, see internal/config)
//	--fps <rate>        - Tick rate (default: 60)
//	--seed <value>      - RNG seed for reproducible gameplay
//	--db <path>         - Session history database
//	--high-score <path> - High score file
//	--platform <name>   - tui or window
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/target-practice/internal/config"
	"github.com/vovakirdan/target-practice/internal/core"
	"github.com/vovakirdan/target-practice/internal/games/targetpractice"
	"github.com/vovakirdan/target-practice/internal/highscore"
)

var (
	// Global flags
	flagConfig    string
	flagFPS       int
	flagSeed      int64
	flagDBPath    string
	flagHighScore string
	flagPlatform  string
	flagLogLevel  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "target-practice",
	Short: "Target Practice - shoot fireballs at targets against the clock",
	Long: `Target Practice puts you in control of a dragon. Hit as many targets
as you can in 30 seconds and beat the stored high score.

Available commands:
  play              - Play a session (default)
  scores            - View the high score and session history
  serve             - Start SSH server for remote play
  reset-high-score  - Remove the stored high score

Examples:
  target-practice
  target-practice play --platform window
  target-practice scores --plain
  target-practice serve --ssh :2222`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, 0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to session history database")
	rootCmd.PersistentFlags().StringVar(&flagHighScore, "high-score", "", "Path to high score file")
	rootCmd.PersistentFlags().StringVar(&flagPlatform, "platform", "", "Platform: tui or window")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(resetCmd)
}

// settings is the loaded config with command line overrides applied.
type settings struct {
	config.Config
	Seed int64
}

// loadSettings reads the config and applies the global flags on top.
func loadSettings() (settings, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return settings{}, err
	}
	s := applyFlags(cfg, flagOverrides{
		FPS:       flagFPS,
		DBPath:    flagDBPath,
		HighScore: flagHighScore,
		Platform:  flagPlatform,
		LogLevel:  flagLogLevel,
	})
	s.Seed = flagSeed
	if err := s.Validate(); err != nil {
		return settings{}, err
	}
	return s, nil
}

// flagOverrides holds flag values; zero values leave the config alone.
type flagOverrides struct {
	FPS       int
	DBPath    string
	HighScore string
	Platform  string
	LogLevel  string
}

func applyFlags(cfg config.Config, f flagOverrides) settings {
	if f.FPS > 0 {
		cfg.Display.TickRate = f.FPS
	}
	if f.DBPath != "" {
		cfg.Storage.Database = config.ExpandHome(f.DBPath)
	}
	if f.HighScore != "" {
		cfg.Storage.HighScoreFile = config.ExpandHome(f.HighScore)
	}
	if f.Platform != "" {
		cfg.Display.Platform = f.Platform
	}
	if f.LogLevel != "" {
		cfg.Log.Level = f.LogLevel
	}
	return settings{Config: cfg}
}

// runtimeConfig converts settings into the config handed to games.
func (s settings) runtimeConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  s.Display.Width,
		ScreenH:  s.Display.Height,
		TickRate: s.Display.TickRate,
		Seed:     s.Seed,
	}
}

// newLogger builds the root logger. An unknown level falls back to info.
func newLogger(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "target-practice",
	})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", level)
		lvl = log.InfoLevel
	}
	logger.SetLevel(lvl)
	return logger
}

// playLogger returns the logger for a play session and a func that closes
// its output. The terminal host draws on stdout and stderr, so it logs to
// log.file instead.
func playLogger(s settings) (*log.Logger, func(), error) {
	if s.Display.Platform != config.PlatformTUI {
		return newLogger(os.Stderr, s.Log.Level), func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(s.Log.File), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(s.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return newLogger(f, s.Log.Level), func() { f.Close() }, nil
}

// openHighScores opens the record file and shares it with every game.
func openHighScores(path string) (*highscore.FileStore, error) {
	records, err := highscore.NewFileStore(path)
	if err != nil {
		return nil, err
	}
	targetpractice.SetHighScoreStore(records)
	return records, nil
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
