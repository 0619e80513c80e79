package main

import (
	"log"

	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"github.com/jch254/muzo-fulfillment-handler/internal/app"
	"github.com/jch254/muzo-fulfillment-handler/internal/config"
	"github.com/jch254/muzo-fulfillment-handler/internal/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("FATAL: %v", err)
	}

	logger, err := observability.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("FATAL: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	// No scrape endpoint inside Lambda, so provider metrics are off.
	dispatcher := app.NewDispatcher(cfg, logger, nil)

	logger.Info("lambda handler ready", zap.Bool("strict_title_match", cfg.StrictTitleMatch))
	lambda.Start(dispatcher.Dispatch)
}
