package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type ServerConfig struct {
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`

	GameAPIBaseURL   string `env:"GAME_API_BASE_URL" envDefault:"http://localhost:8000"`
	GameAPITimeoutMS int    `env:"GAME_API_TIMEOUT_MS" envDefault:"10000"`
}

func LoadServer() (ServerConfig, error) {
	var cfg ServerConfig
	if err := env.Parse(&cfg); err != nil {
		return ServerConfig{}, err
	}
	if cfg.GameAPIBaseURL == "" {
		return ServerConfig{}, fmt.Errorf("GAME_API_BASE_URL must not be empty")
	}
	if cfg.GameAPITimeoutMS < 1 {
		return ServerConfig{}, fmt.Errorf("GAME_API_TIMEOUT_MS must be positive, got %d", cfg.GameAPITimeoutMS)
	}
	return cfg, nil
}
