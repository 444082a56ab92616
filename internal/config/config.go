package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

type GameConfig struct {
	NumPlayers          int    `json:"num_players"`
	TurnDurationSeconds int    `json:"turn_duration_seconds"`
	BotLevel            string `json:"bot_level"`
	// BotMinDelaySeconds and BotMaxDelaySeconds bound the artificial pause
	// before an automated seat acts, so bot turns read naturally in a client.
	BotMinDelaySeconds float64 `json:"bot_min_delay_seconds"`
	BotMaxDelaySeconds float64 `json:"bot_max_delay_seconds"`
}

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadGameConfig loads the game configuration from the given path.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read game config: %w", err)
			return
		}

		var c GameConfig
		if err := json.Unmarshal(data, &c); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal game config: %w", err)
			return
		}
		cfg = &c
	})
	return loadErr
}

// GetGameConfig returns the global game configuration with defaults filled
// in when no file was loaded.
func GetGameConfig() GameConfig {
	out := GameConfig{
		NumPlayers:          4,
		TurnDurationSeconds: 25,
		BotLevel:            "smart",
		BotMinDelaySeconds:  0.6,
		BotMaxDelaySeconds:  1.8,
	}
	if cfg == nil {
		return out
	}
	if cfg.NumPlayers >= 2 {
		out.NumPlayers = cfg.NumPlayers
	}
	if cfg.TurnDurationSeconds > 0 {
		out.TurnDurationSeconds = cfg.TurnDurationSeconds
	}
	if cfg.BotLevel != "" {
		out.BotLevel = cfg.BotLevel
	}
	if cfg.BotMinDelaySeconds > 0 {
		out.BotMinDelaySeconds = cfg.BotMinDelaySeconds
	}
	if cfg.BotMaxDelaySeconds >= out.BotMinDelaySeconds {
		out.BotMaxDelaySeconds = cfg.BotMaxDelaySeconds
	}
	return out
}
