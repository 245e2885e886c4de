package kafka

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v5"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleUntilDone_RetriesSameMessage(t *testing.T) {
	var offsets []int64

	handler := func(_ context.Context, msg kafkaGo.Message) error {
		offsets = append(offsets, msg.Offset)
		if len(offsets) == 1 {
			return errors.New("connection refused")
		}

		return nil
	}

	err := handleUntilDone(context.Background(), kafkaGo.Message{Topic: "audit", Offset: 7}, handler,
		backoff.NewConstantBackOff(time.Millisecond))

	require.NoError(t, err)
	assert.Equal(t, []int64{7, 7}, offsets)
}

func TestHandleUntilDone_StopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	handler := func(_ context.Context, _ kafkaGo.Message) error {
		calls++
		if calls == 3 {
			cancel()
		}

		return errors.New("connection refused")
	}

	err := handleUntilDone(ctx, kafkaGo.Message{Topic: "audit", Offset: 7}, handler,
		backoff.NewConstantBackOff(time.Millisecond))

	require.Error(t, err)
	assert.GreaterOrEqual(t, calls, 3)
}
