package main

import (
	"context"
	"flag"
	"journal/config"
	"journal/helper"
	"journal/shared/logger"
	"journal/shared/timezone"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
)

func main() {
	username := flag.String("username", "", "htpasswd admin user, prompted when empty")
	generateKeys := flag.Bool("vapid", false, "generate VAPID keys when none are configured")
	flag.Parse()

	cfg := config.Get()

	logger.InitLogger(cfg)

	if err := timezone.Init(cfg); err != nil {
		log.Warn().Err(err).Msg("Falling back to UTC")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	results, err := helper.NewBootstrapper(cfg, os.Stdin, os.Stdout).Run(ctx, helper.BootstrapOptions{
		Username:     *username,
		GenerateKeys: *generateKeys,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Bootstrap failed")
	}

	changed := 0

	for _, result := range results {
		if result.Changed {
			changed++
		}
	}

	log.Info().Int("changed", changed).Int("steps", len(results)).Msg("Bootstrap completed")
}
