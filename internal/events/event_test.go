package events_test

import (
	"context"
	"testing"
	"time"

	"github.com/serroba/shortlink/internal/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestAuditLog_HandleURLCreated(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	audit := events.NewAuditLog(zap.New(core))

	err := audit.HandleURLCreated(context.Background(), &events.URLCreatedEvent{
		ShortID:     "abc1234",
		OriginalURL: "https://example.com/page",
		ShortURL:    "http://localhost:3000/abc1234",
		CreatedAt:   time.Now(),
		ClientIP:    "10.0.0.1",
	})

	require.NoError(t, err)

	entries := logs.FilterMessage("short url created").All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	assert.Equal(t, "abc1234", fields["shortId"])
	assert.Equal(t, "https://example.com/page", fields["originalUrl"])
	assert.Equal(t, "10.0.0.1", fields["clientIp"])
}
