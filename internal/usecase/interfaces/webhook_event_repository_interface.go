package interfaces

import (
	"context"

	"quickgigs/internal/domain/entities"
)

// IWebhookEventRepository keeps one row per (provider, provider event id).
type IWebhookEventRepository interface {
	// RecordIfNotExists returns the stored event and created=false when the
	// event was already recorded.
	RecordIfNotExists(ctx context.Context, e entities.WebhookEvent) (entities.WebhookEvent, bool, error)
	MarkProcessed(ctx context.Context, id string, processingError string) error
}
