package main

import (
	"log"
	"net/http"

	"go.uber.org/zap"

	"github.com/hamed0406/endpointprobe/internal/config"
	"github.com/hamed0406/endpointprobe/internal/httpapi"
	"github.com/hamed0406/endpointprobe/internal/logging"
	"github.com/hamed0406/endpointprobe/internal/repo/memory"
)

func main() {
	cfg := config.FromEnv()
	logger, err := logging.NewLogger(cfg.LogDir)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	api := httpapi.NewServer(logger, memory.NewSeeded())

	logger.Info("fixture_listen", zap.String("addr", cfg.FixtureAddr))
	if err := http.ListenAndServe(cfg.FixtureAddr, api.Router()); err != nil {
		log.Fatal(err)
	}
}
