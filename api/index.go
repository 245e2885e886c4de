package handler

import (
	"net/http"
	"sync"

	"tie/config"
	"tie/di"
	"tie/shared/logger"
	"tie/transport/http/response"

	"github.com/rs/zerolog/log"
)

var (
	once    sync.Once
	handler http.Handler
	initErr error
)

// Handler is the serverless entrypoint. The service graph is built on the first request and reused while the instance is warm.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		server, err := di.InitializeService()
		if err != nil {
			log.Error().Err(err).Msg("Failed to initialize service")

			initErr = err

			return
		}

		handler = server.Handler()
	})

	if initErr != nil {
		response.WithUnhealthy(w)

		return
	}

	r.RequestURI = r.URL.String()

	handler.ServeHTTP(w, r)
}
