package main

import (
	"courtbook/config"
	"courtbook/di"
	"courtbook/shared/logger"
	"courtbook/shared/timezone"

	"github.com/rs/zerolog/log"
)

// @title Courtbook API
// @version 1.0
// @description Court search, booking checkout and payment reconciliation.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger(cfg.Server.Env)

	logger.SetLogLevel(cfg)

	timezone.Init(cfg.App.Timezone)

	http, err := di.InitializeService()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize service")
	}

	http.Serve()
}
