package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/target-practice.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Display: DisplayConfig{
			Width:    1280,
			Height:   720,
			TickRate: 60,
			Platform: PlatformTUI,
			Scale:    1.0,
		},
		Assets: AssetsConfig{
			Dir: "assets",
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.8,
		},
		Storage: StorageConfig{
			HighScoreFile: "high-score.txt",
			Database:      "~/.target-practice/sessions.db",
		},
		Server: ServerConfig{
			Address:     ":23234",
			HostKey:     "~/.target-practice/ssh_host_ed25519",
			IdleTimeout: 10 * time.Minute,
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.target-practice/target-practice.log",
		},
		Source: "default",
	}
}
