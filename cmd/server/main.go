// Package main implements the entry point for the EvoMind API server, the
// demo backend for information sources, cognition cards, discussions,
// challenges, subscriptions and orders.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/evomind/evomind-api/internal/config"
	"github.com/evomind/evomind-api/internal/platform/logger"
	"github.com/joho/godotenv"
)

func main() {
	// A missing .env file is fine; the environment may already be set.
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// initializeApp loads configuration and sets up structured logging. An empty
// configPath falls back to config.Load's search path.
// Returns the loaded config, the logger and any initialization error.
func initializeApp(configPath string) (*config.Config, *slog.Logger, error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"log_format", cfg.Server.LogFormat)

	return cfg, l, nil
}

func loadConfig(configPath string) (*config.Config, error) {
	if configPath == "" {
		return config.Load()
	}
	return config.LoadFromFile(configPath)
}
