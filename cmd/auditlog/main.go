package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"tie/config"
	"tie/di"
	"tie/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer := di.InitializeAuditConsumer()

	log.Info().Str("topic", cfg.Kafka.AuditTopic).Str("group", cfg.Kafka.ConsumerGroup).Msg("Starting audit log consumer.")

	if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Msg("Audit log consumer stopped")
	}

	log.Info().Msg("Audit log consumer stopped.")
}
