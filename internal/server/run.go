package server

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/pageza/dapur-ai/backend/config"
	"github.com/pageza/dapur-ai/backend/internal/service"
)

// Run wires the Gemini-backed recipe service into a Server and serves until
// ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config, log *logrus.Logger) error {
	gemini := service.NewGeminiClient(cfg.GeminiAPIURL, cfg.GeminiModel, cfg.UpstreamTimeout)
	recipes := service.NewRecipeService(gemini, config.APIKey, log.WithField("component", "recipe"))

	if config.APIKey() == "" {
		log.Warn("GEMINI_API_KEY is not set; generate requests will fail until it is")
	}

	log.WithFields(logrus.Fields{
		"env":    cfg.Environment,
		"model":  cfg.GeminiModel,
		"locale": cfg.DefaultLocale,
	}).Info("starting Dapur AI")

	return New(cfg, log, recipes).Start(ctx)
}
