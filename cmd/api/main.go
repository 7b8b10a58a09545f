package main

import (
	"log"

	"go.uber.org/zap"

	"github.com/cyphera/wallet-display/internal/config"
	"github.com/cyphera/wallet-display/internal/logger"
	"github.com/cyphera/wallet-display/internal/rates"
	"github.com/cyphera/wallet-display/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.InitLogger(cfg.Stage)
	defer logger.Sync()

	var provider rates.Provider
	if cfg.CMCAPIKey != "" {
		provider = rates.NewCache(rates.NewClient(cfg.CMCAPIKey), cfg.RateCacheTTL)
	} else {
		logger.Warn("CMC_API_KEY not set, fiat conversion will be unavailable")
	}

	router := server.NewRouter(cfg, provider)

	logger.Info("Starting wallet-display API",
		zap.String("stage", cfg.Stage),
		zap.String("port", cfg.Port))

	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Server exited", zap.Error(err))
	}
}
