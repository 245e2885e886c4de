package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"tie/config"
	"tie/infras/kafka"
	"tie/infras/otel"
	"tie/internal/domains/audit/model"
	"tie/internal/domains/audit/repository"
	"tie/shared"
	"tie/shared/constant"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

const publishTimeout = 5 * time.Second

// Log receives audit events after a reservation write. Failures are logged and never returned.
type Log interface {
	Record(ctx context.Context, event model.Event)
}

// Consumer stores audit events read from kafka.
type Consumer interface {
	Run(ctx context.Context) error
	Handle(ctx context.Context, msg kafkaGo.Message) error
}

type logImpl struct {
	kafka kafka.Client
	cfg   *config.Config
	otel  otel.Otel
}

func New(kafka kafka.Client, cfg *config.Config, otel otel.Otel) Log {
	return &logImpl{
		kafka: kafka,
		cfg:   cfg,
		otel:  otel,
	}
}

func (l *logImpl) Record(ctx context.Context, event model.Event) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	ctx, scope := l.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".audit.Record")
	defer scope.End()

	err := l.kafka.SendMessages(ctx, l.cfg.Kafka.AuditTopic, kafka.Message{Key: event.BookingID, Value: event})
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("booking_id", event.BookingID).Str("action", string(event.Action)).Msg("failed to publish audit event")

		return
	}

	log.Debug().Str("booking_id", event.BookingID).Str("action", string(event.Action)).Msg("audit event published")
}

type consumerImpl struct {
	kafka kafka.Client
	repo  repository.Audit
	cfg   *config.Config
	otel  otel.Otel
}

func NewConsumer(kafka kafka.Client, repo repository.Audit, cfg *config.Config, otel otel.Otel) Consumer {
	return &consumerImpl{
		kafka: kafka,
		repo:  repo,
		cfg:   cfg,
		otel:  otel,
	}
}

func (c *consumerImpl) Run(ctx context.Context) error {
	log.Info().Str("topic", c.cfg.Kafka.AuditTopic).Msg("Audit consumer started")

	if err := c.kafka.Consume(ctx, c.cfg.Kafka.ConsumerGroup, c.cfg.Kafka.AuditTopic, c.Handle); err != nil {
		return fmt.Errorf("failed to consume audit events: %w", err)
	}

	return nil
}

// Handle stores one event. Redelivered events are skipped, and undecodable ones are dropped since they can never succeed.
func (c *consumerImpl) Handle(ctx context.Context, msg kafkaGo.Message) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".audit.Handle")
	defer scope.End()
	defer scope.TraceIfError(err)

	event, err := kafka.Decode[model.Event](msg)
	if err != nil {
		log.Warn().Err(err).Str("key", string(msg.Key)).Msg("dropping undecodable audit event")

		return nil
	}

	if event.ID == "" {
		log.Warn().Str("key", string(msg.Key)).Msg("dropping audit event without id")

		return nil
	}

	exist, err := c.repo.Exist(ctx, shared.FilterByID(event.ID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check audit event")

		return fmt.Errorf("failed to check audit event: %w", err)
	}

	if exist {
		log.Debug().Str("id", event.ID).Msg("audit event already stored")

		return nil
	}

	if err = c.repo.Insert(ctx, event); err != nil {
		log.Error().Err(err).Msg("failed to store audit event")

		return fmt.Errorf("failed to store audit event: %w", err)
	}

	return nil
}
