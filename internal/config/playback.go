package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// PlaybackConfig tunes the two schedulers owned by the controller: the
// scripted tick and the live advance cadence. Durations are milliseconds so
// tests can shrink them without touching code.
type PlaybackConfig struct {
	TickPeriodMS int `env:"PLAYBACK_TICK_MS" envDefault:"2000"`
	StepDelayMS  int `env:"PLAYBACK_STEP_DELAY_MS" envDefault:"1500"`
	PlayerCount  int `env:"PLAYBACK_PLAYER_COUNT" envDefault:"4"`
}

func LoadPlayback() (PlaybackConfig, error) {
	var cfg PlaybackConfig
	if err := env.Parse(&cfg); err != nil {
		return PlaybackConfig{}, err
	}
	if cfg.PlayerCount < 2 {
		return PlaybackConfig{}, fmt.Errorf("PLAYBACK_PLAYER_COUNT must be >= 2, got %d", cfg.PlayerCount)
	}
	if cfg.TickPeriodMS < 1 || cfg.StepDelayMS < 1 {
		return PlaybackConfig{}, fmt.Errorf("playback periods must be positive")
	}
	return cfg, nil
}
