package handler

import (
	"net/http"
	"sync"

	_ "meetslot/docs"

	"meetslot/config"
	"meetslot/di"
	"meetslot/shared/logger"
	appHTTP "meetslot/transport/http"
)

var (
	once   sync.Once
	server *appHTTP.HTTP
)

// Handler serves the API from a serverless runtime. The service graph is built once per
// instance so the in-memory slot store and cached tokens survive between invocations.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)
		logger.SetOutput(cfg)

		server = di.InitializeService()
	})

	server.ServeHTTP(w, r)
}
