package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pageza/dapur-ai/backend/config"
	"github.com/pageza/dapur-ai/backend/internal/logger"
	"github.com/pageza/dapur-ai/backend/internal/server"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLog := logger.New(cfg)

	// Stop on interrupt or terminate signal
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx, cfg, appLog); err != nil {
		appLog.WithError(err).Fatal("server error")
	}
	appLog.Info("server stopped")
}
