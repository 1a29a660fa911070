// Package config provides YAML-based configuration loading for the
// Target Practice hosts: display, assets, audio, storage, server and logging.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Platform names accepted in display.platform.
const (
	PlatformTUI    = "tui"
	PlatformWindow = "window"
)

// Config contains all runtime configuration. Gameplay tunables are fixed
// in the game package and are not part of it.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Assets  AssetsConfig  `yaml:"assets"`
	Audio   AudioConfig   `yaml:"audio"`
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`

	// Source is the file the config was read from, "embedded" or "default".
	Source string `yaml:"-"`
}

// DisplayConfig defines the world size and how it is shown.
type DisplayConfig struct {
	Width    int     `yaml:"width"`     // World width
	Height   int     `yaml:"height"`    // World height
	TickRate int     `yaml:"tick_rate"` // Frames per second
	Platform string  `yaml:"platform"`  // "tui" or "window"
	Scale    float64 `yaml:"scale"`     // Window size relative to the world
}

// AssetsConfig defines where sprites and sounds are read from.
type AssetsConfig struct {
	Dir string `yaml:"dir"`
}

// AudioConfig defines sound output.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 - 1.0
}

// StorageConfig defines where scores are kept.
type StorageConfig struct {
	HighScoreFile string `yaml:"high_score_file"` // Flat file with the best record
	Database      string `yaml:"database"`        // SQLite session history
}

// ServerConfig defines the SSH server.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// LogConfig defines logging output.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Used while the terminal host owns the screen
}

// Validate checks that the config can drive a host.
func (c Config) Validate() error {
	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		return fmt.Errorf("config: display size must be positive, got %dx%d", c.Display.Width, c.Display.Height)
	}
	if c.Display.TickRate <= 0 {
		return fmt.Errorf("config: tick_rate must be positive, got %d", c.Display.TickRate)
	}
	switch c.Display.Platform {
	case PlatformTUI, PlatformWindow:
	default:
		return fmt.Errorf("config: unknown platform %q (want %s or %s)", c.Display.Platform, PlatformTUI, PlatformWindow)
	}
	if c.Display.Scale <= 0 {
		return fmt.Errorf("config: scale must be positive, got %g", c.Display.Scale)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("config: volume must be within 0..1, got %g", c.Audio.Volume)
	}
	if c.Storage.HighScoreFile == "" {
		return fmt.Errorf("config: storage.high_score_file is empty")
	}
	return nil
}

// ExpandPaths replaces a leading ~ in every path setting with the home directory.
func (c *Config) ExpandPaths() {
	c.Assets.Dir = ExpandHome(c.Assets.Dir)
	c.Storage.HighScoreFile = ExpandHome(c.Storage.HighScoreFile)
	c.Storage.Database = ExpandHome(c.Storage.Database)
	c.Server.HostKey = ExpandHome(c.Server.HostKey)
	c.Log.File = ExpandHome(c.Log.File)
}

// ExpandHome expands "~" and "~/..." to the user's home directory.
// Other paths, and all paths when home is unknown, are returned unchanged.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
