package main

import (
	"net/http"
	"time"

	"impostor-sim/internal/config"
	"impostor-sim/internal/gameclient"
	"impostor-sim/internal/logging"
	"impostor-sim/internal/playback"
	"impostor-sim/internal/scenario"
	httptransport "impostor-sim/internal/transport/http"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadApp()
	if err != nil {
		panic(err)
	}
	logging.Init(cfg.Log)

	client := gameclient.New(cfg.Server.GameAPIBaseURL, time.Duration(cfg.Server.GameAPITimeoutMS)*time.Millisecond)
	ctrl := playback.New(client, playback.Config{
		TickPeriod:       time.Duration(cfg.Playback.TickPeriodMS) * time.Millisecond,
		StepDelay:        time.Duration(cfg.Playback.StepDelayMS) * time.Millisecond,
		CallTimeout:      time.Duration(cfg.Server.GameAPITimeoutMS) * time.Millisecond,
		PlayerCount:      cfg.Playback.PlayerCount,
		HandoffThreshold: scenario.HandoffThreshold(),
	})

	r := httptransport.NewRouter(ctrl, client)
	httptransport.LogRoutes(r)

	server := &http.Server{
		Addr:              cfg.Server.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	log.Info().
		Str("addr", cfg.Server.HTTPAddr).
		Str("engine", cfg.Server.GameAPIBaseURL).
		Int("handoff_threshold", scenario.HandoffThreshold()).
		Msg("http listening")
	log.Fatal().Err(server.ListenAndServe()).Msg("server stopped")
}
