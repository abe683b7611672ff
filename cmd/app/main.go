package main

import (
	"journal/config"
	"journal/di"
	"journal/helper"
	"journal/shared/logger"
	"journal/shared/timezone"

	"github.com/rs/zerolog/log"
)

// @title						Journal API
// @version					1.0
// @description				Photo journal with push notifications for new photos.
// @BasePath					/
// @securityDefinitions.basic	BasicAuth
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	if err := timezone.Init(cfg); err != nil {
		log.Warn().Err(err).Msg("Falling back to UTC")
	}

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate database")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
