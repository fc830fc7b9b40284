package main

import (
	_ "meetslot/docs"

	"meetslot/config"
	"meetslot/di"
	"meetslot/shared/logger"
)

// @title Meetslot API
// @version 1.0
// @description Discovery call scheduling: slot availability, booking and notification.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)
	logger.SetOutput(cfg)

	http := di.InitializeService()
	http.Serve()
}
