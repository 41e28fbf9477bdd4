package main

import (
	"flag"
	"net/http"
	"time"

	"github.com/joho/godotenv"

	"github.com/villafrance/frontend/internal/config"
	"github.com/villafrance/frontend/internal/logger"
	"github.com/villafrance/frontend/internal/router"
	"github.com/villafrance/frontend/internal/setup"
)

func main() {
	// a missing .env is fine; the yaml config carries the defaults
	_ = godotenv.Load()

	var configFolder string
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	deps, err := setup.SetupDependencies(cfg)
	if err != nil {
		logger.Log.Error("failed to setup dependencies", "error", err)
		return
	}

	r := router.SetupRouter(deps)

	httpPort := cfg.Public.Port
	if httpPort == "" {
		httpPort = "8081"
	}

	srv := &http.Server{
		Addr:         ":" + httpPort,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	logger.Log.Info("frontend started", "port", httpPort, "backend", cfg.Public.BackendOrigin)
	if err := srv.ListenAndServe(); err != nil {
		logger.Log.Error("server stopped", "error", err)
	}
}
