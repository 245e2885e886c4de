package main

import (
	"context"
	"os"
	"time"

	"tie/config"
	"tie/di"
	"tie/shared/logger"

	"github.com/rs/zerolog/log"
)

const (
	argLength   = 3
	commandPush = "push"
	pushTimeout = time.Minute
)

// Uploads a catalog document to the configured bucket: catalog push <file>
func main() {
	logger.InitLogger()

	if len(os.Args) < argLength || os.Args[1] != commandPush {
		log.Fatal().Msg("Usage: catalog push <file>")
	}

	cfg := config.Get()

	if cfg.Catalog.Bucket == "" {
		log.Fatal().Msg("CATALOG_BUCKET is not set")
	}

	data, err := os.ReadFile(os.Args[2])
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read catalog file")
	}

	ctx, cancel := context.WithTimeout(context.Background(), pushTimeout)
	defer cancel()

	if err := di.InitializeCatalogPublisher().Publish(ctx, data); err != nil {
		log.Fatal().Err(err).Msg("Failed to publish catalog")
	}

	log.Info().Str("bucket", cfg.Catalog.Bucket).Str("key", cfg.Catalog.Key).Msg("Catalog published")
}
