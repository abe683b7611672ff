package handler

import (
	"journal/config"
	"journal/di"
	"journal/shared/logger"
	"journal/shared/timezone"
	"net/http"

	"github.com/rs/zerolog/log"
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger(cfg)

	if err := timezone.Init(cfg); err != nil {
		log.Warn().Err(err).Msg("Falling back to UTC")
	}

	handler := di.InitializeService().Handler()
	handler.ServeHTTP(w, r)
}
