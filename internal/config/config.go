package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/joeshaw/envdecode"
)

// GameConfig carries the tunable rules parameters. Zero values are
// replaced with playable defaults on load.
type GameConfig struct {
	// PointsPerCard is the penalty per card left in a losing hand.
	PointsPerCard int `json:"points_per_card"`
	// DeuceMultiplier scales the penalty for each leftover Two.
	DeuceMultiplier int `json:"deuce_multiplier"`
	// TurnDurationSeconds bounds how long a seat may think on a server match.
	TurnDurationSeconds int `json:"turn_duration_seconds"`
	// BotThinkDelayMs is the artificial pause before a bot acts, so console
	// games stay readable.
	BotThinkDelayMs int `json:"bot_think_delay_ms"`
}

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

func defaults() *GameConfig {
	return &GameConfig{
		PointsPerCard:       1,
		DeuceMultiplier:     2,
		TurnDurationSeconds: 30,
		BotThinkDelayMs:     600,
	}
}

// LoadGameConfig loads the game configuration from the given path. The
// first call wins; later calls return the first result.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read game config: %w", err)
			return
		}

		c := defaults()
		if err := json.Unmarshal(data, c); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal game config: %w", err)
			return
		}
		cfg = c
	})
	return loadErr
}

// GetGameConfig returns the global game configuration, falling back to
// defaults when no file was loaded.
func GetGameConfig() *GameConfig {
	if cfg == nil {
		return defaults()
	}
	return cfg
}

// ConsoleEnv holds console-session settings read from the environment.
type ConsoleEnv struct {
	PlayerName string `env:"BIGTWO_NAME,default=You"`
	Seed       int64  `env:"BIGTWO_SEED,default=0"`
	LogLevel   string `env:"BIGTWO_LOG_LEVEL,default=info"`
}

// LoadConsoleEnv decodes console settings from the process environment.
func LoadConsoleEnv() (ConsoleEnv, error) {
	var env ConsoleEnv
	if err := envdecode.Decode(&env); err != nil {
		return ConsoleEnv{}, fmt.Errorf("failed to decode environment: %w", err)
	}
	return env, nil
}
