package main

import (
	"hospital-gin/internal/config"
	"hospital-gin/internal/database"
	"hospital-gin/internal/handlers"
	"hospital-gin/internal/logging"
	"hospital-gin/internal/router"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	logging.Init(cfg.Environment)

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate schema")
	}
	if err := database.Seed(db); err != nil {
		log.Fatal().Err(err).Msg("failed to seed reference data")
	}

	h := handlers.New(db, cfg.JWTSecret)
	r := router.New(h)

	log.Info().Str("port", cfg.ListenPort).Msg("listening")
	if err := r.Run(":" + cfg.ListenPort); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
