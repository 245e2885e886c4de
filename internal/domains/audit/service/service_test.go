package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tie/config"
	tieKafka "tie/infras/kafka"
	kafkaMocks "tie/infras/kafka/mocks"
	"tie/infras/otel/mocks"
	auditMocks "tie/internal/domains/audit/mocks"
	"tie/internal/domains/audit/model"
	"tie/internal/domains/audit/service"
)

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Kafka.AuditTopic = "reservation.audit"
	cfg.Kafka.ConsumerGroup = "auditlog"

	return cfg
}

func TestNewEvent(t *testing.T) {
	at := time.Date(2025, 10, 24, 9, 30, 0, 0, time.UTC)

	event := model.NewEvent("frontdesk-1", model.ActionCreate, "TIE20251024001", at)

	assert.NotEmpty(t, event.ID)
	assert.Equal(t, "frontdesk-1 created reservation TIE20251024001", event.Message)
	assert.Equal(t, at, event.OccurredAt)
}

func TestAuditLog_Record(t *testing.T) {
	event := model.NewEvent("manager-1", model.ActionUpdate, "TIE20251024001", time.Now())

	t.Run("publishes keyed by booking id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := kafkaMocks.NewMockClient(ctrl)

		client.EXPECT().
			SendMessages(gomock.Any(), "reservation.audit", tieKafka.Message{Key: "TIE20251024001", Value: event}).
			Return(nil)

		service.New(client, newConfig(), mocks.NewOtel()).Record(context.Background(), event)
	})

	t.Run("publish failure is swallowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := kafkaMocks.NewMockClient(ctrl)

		client.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

		assert.NotPanics(t, func() {
			service.New(client, newConfig(), mocks.NewOtel()).Record(context.Background(), event)
		})
	})

	t.Run("cancelled caller context still publishes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := kafkaMocks.NewMockClient(ctrl)

		client.EXPECT().
			SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ string, _ tieKafka.Message) error {
				assert.NoError(t, ctx.Err())

				return nil
			})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		service.New(client, newConfig(), mocks.NewOtel()).Record(ctx, event)
	})
}

func TestAuditConsumer_Handle(t *testing.T) {
	event := model.NewEvent("manager-1", model.ActionCreate, "TIE20251024002", time.Now().UTC())

	payload, err := json.Marshal(event)
	require.NoError(t, err)

	tests := []struct {
		name      string
		msg       kafka.Message
		setupMock func(repo *auditMocks.MockAudit)
		wantErr   bool
	}{
		{
			name: "stores new event",
			msg:  kafka.Message{Key: []byte(event.BookingID), Value: payload},
			setupMock: func(repo *auditMocks.MockAudit) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, stored model.Event) error {
						assert.Equal(t, event.ID, stored.ID)
						assert.Equal(t, event.BookingID, stored.BookingID)

						return nil
					})
			},
		},
		{
			name: "skips redelivered event",
			msg:  kafka.Message{Value: payload},
			setupMock: func(repo *auditMocks.MockAudit) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
		},
		{
			name:      "drops undecodable payload",
			msg:       kafka.Message{Value: []byte("{not json")},
			setupMock: func(_ *auditMocks.MockAudit) {},
		},
		{
			name:      "drops event without id",
			msg:       kafka.Message{Value: []byte(`{"booking_id":"TIE20251024003"}`)},
			setupMock: func(_ *auditMocks.MockAudit) {},
		},
		{
			name: "store failure is retried",
			msg:  kafka.Message{Value: payload},
			setupMock: func(repo *auditMocks.MockAudit) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := auditMocks.NewMockAudit(ctrl)
			tt.setupMock(repo)

			consumer := service.NewConsumer(kafkaMocks.NewMockClient(ctrl), repo, newConfig(), mocks.NewOtel())
			err := consumer.Handle(context.Background(), tt.msg)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuditConsumer_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := kafkaMocks.NewMockClient(ctrl)

	client.EXPECT().Consume(gomock.Any(), "auditlog", "reservation.audit", gomock.Any()).Return(nil)

	consumer := service.NewConsumer(client, auditMocks.NewMockAudit(ctrl), newConfig(), mocks.NewOtel())

	assert.NoError(t, consumer.Run(context.Background()))
}
