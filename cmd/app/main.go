package main

import (
	"farhatna/config"
	"farhatna/di"
	"farhatna/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
