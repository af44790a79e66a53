package handler

import (
	"courtbook/config"
	"courtbook/di"
	"courtbook/shared/logger"
	"courtbook/shared/timezone"
	"courtbook/transport/http/response"
	"net/http"
	"sync"

	"github.com/rs/zerolog/log"
)

var (
	once    sync.Once
	handler http.Handler
	initErr error
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger(cfg.Server.Env)
		logger.SetLogLevel(cfg)
		timezone.Init(cfg.App.Timezone)

		server, err := di.InitializeService()
		if err != nil {
			initErr = err

			return
		}

		handler = server.Handler()
	})

	if initErr != nil {
		log.Error().Err(initErr).Msg("failed to initialize service")
		response.WithUnhealthy(w)

		return
	}

	handler.ServeHTTP(w, r)
}
