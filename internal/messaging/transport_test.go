package messaging_test

import (
	"context"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/serroba/shortlink/internal/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInProcessTransport(t *testing.T) {
	transport := messaging.NewInProcessTransport(watermill.NopLogger{})

	received := make(chan *testEvent, 1)
	consumer := messaging.NewConsumer(
		transport.Subscriber,
		"test.topic",
		func(_ context.Context, event *testEvent) error {
			received <- event

			return nil
		},
		zap.NewNop(),
	)

	require.NoError(t, consumer.Start(context.Background()))

	publish := messaging.NewPublishFunc[testEvent](transport.Publisher, "test.topic")
	require.NoError(t, publish(context.Background(), &testEvent{ID: "42", Name: "answer"}))

	select {
	case event := <-received:
		assert.Equal(t, "42", event.ID)
		assert.Equal(t, "answer", event.Name)
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for event")
	}

	require.NoError(t, consumer.Shutdown())
	require.NoError(t, transport.Publisher.Close())
}
