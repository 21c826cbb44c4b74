package handler

import (
	"net/http"
	"sync"

	"hotel/config"
	"hotel/di"
	"hotel/shared/logger"
	transportHTTP "hotel/transport/http"
)

var (
	once    sync.Once
	service *transportHTTP.HTTP
)

// Handler is the serverless entrypoint. Warm invocations share one service so
// bookings survive between requests on the same instance.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger(cfg.Server.Env)

		logger.SetLogLevel(cfg)

		service = di.InitializeService()
	})

	service.ServeHTTP(w, r)
}
