package kafka_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meetslot/config"
	"meetslot/infras/kafka"
	otelMocks "meetslot/infras/otel/mocks"
)

func TestMessage_ToKafkaMessage(t *testing.T) {
	msg := kafka.Message{Key: "booking-1", Value: map[string]any{"date": "2025-09-08", "time": "14:00"}}

	got, err := msg.ToKafkaMessage()

	require.NoError(t, err)
	assert.Equal(t, []byte("booking-1"), got.Key)
	assert.JSONEq(t, `{"date":"2025-09-08","time":"14:00"}`, string(got.Value))
}

func TestMessage_ToKafkaMessageInvalidValue(t *testing.T) {
	msg := kafka.Message{Key: "bad", Value: make(chan int)}

	_, err := msg.ToKafkaMessage()

	assert.Error(t, err)
}

func TestNew_DisabledDropsMessages(t *testing.T) {
	cfg := &config.Config{}

	client := kafka.New(cfg, otelMocks.NewOtel())

	assert.NoError(t, client.SendMessages(context.Background(), "booking.confirmed", kafka.Message{Key: "k", Value: 1}))
}
