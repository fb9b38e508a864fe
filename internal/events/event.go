// Package events defines the events emitted by the shortener service.
package events

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// TopicURLCreated carries URLCreatedEvent.
const TopicURLCreated = "url.created"

// URLCreatedEvent is emitted after a short URL has been stored.
type URLCreatedEvent struct {
	ShortID     string    `json:"shortId"`
	OriginalURL string    `json:"originalUrl"`
	ShortURL    string    `json:"shortUrl"`
	CreatedAt   time.Time `json:"createdAt"`
	ClientIP    string    `json:"clientIp,omitempty"`
	UserAgent   string    `json:"userAgent,omitempty"`
}

// AuditLog records creation events in the service log.
type AuditLog struct {
	logger *zap.Logger
}

// NewAuditLog creates an audit log writing to logger.
func NewAuditLog(logger *zap.Logger) *AuditLog {
	return &AuditLog{logger: logger}
}

// HandleURLCreated has the messaging.Handler signature.
func (a *AuditLog) HandleURLCreated(_ context.Context, event *URLCreatedEvent) error {
	a.logger.Info("short url created",
		zap.String("shortId", event.ShortID),
		zap.String("originalUrl", event.OriginalURL),
		zap.String("shortUrl", event.ShortURL),
		zap.Time("createdAt", event.CreatedAt),
		zap.String("clientIp", event.ClientIP),
	)

	return nil
}
