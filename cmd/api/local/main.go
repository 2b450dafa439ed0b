//go:build !lambda
// +build !lambda

package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/subsync/subsync-api/internal/config"
	"github.com/subsync/subsync-api/internal/logger"
	"github.com/subsync/subsync-api/internal/server"
)

func main() {
	// A missing .env file is fine in deployed environments where
	// variables are set directly.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = "local"
	}
	logger.InitLogger(stage)
	defer func() {
		_ = logger.Sync()
	}()

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	srv, err := server.New(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to initialize server", zap.Error(err))
	}
	defer srv.Close()

	if err := srv.Run(); err != nil {
		logger.Fatal("Server stopped", zap.Error(err))
	}
}
