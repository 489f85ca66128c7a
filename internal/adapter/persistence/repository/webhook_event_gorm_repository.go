package repository

import (
	"context"

	"quickgigs/internal/domain/entities"
	"quickgigs/internal/usecase/interfaces"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WebhookEventGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IWebhookEventRepository = (*WebhookEventGormRepository)(nil)

func NewWebhookEventGormRepository(db *gorm.DB) *WebhookEventGormRepository {
	return &WebhookEventGormRepository{db: db}
}

func (r *WebhookEventGormRepository) RecordIfNotExists(ctx context.Context, e entities.WebhookEvent) (entities.WebhookEvent, bool, error) {
	rec := toWebhookEventRecord(e)
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&rec)
	if res.Error != nil {
		return entities.WebhookEvent{}, false, res.Error
	}
	if res.RowsAffected > 0 {
		return fromWebhookEventRecord(rec), true, nil
	}

	var existing webhookEventRecord
	if err := r.db.WithContext(ctx).
		Where("provider = ? AND provider_event_id = ?", e.Provider, e.ProviderEventID).
		First(&existing).Error; err != nil {
		return entities.WebhookEvent{}, false, err
	}
	return fromWebhookEventRecord(existing), false, nil
}

// MarkProcessed stamps processed_at on success. A processing error is stored
// without the stamp so that the gateway's redelivery is handled again.
func (r *WebhookEventGormRepository) MarkProcessed(ctx context.Context, id string, processingError string) error {
	updates := map[string]any{"processing_error": processingError}
	if processingError == "" {
		updates["processed_at"] = nowUTC()
	}
	return r.db.WithContext(ctx).Model(&webhookEventRecord{}).Where("id = ?", id).Updates(updates).Error
}
