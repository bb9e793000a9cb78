package repository

import (
	"context"

	"bigcommerce-carecloud-sync/internal/model"

	"gorm.io/gorm"
)

type SyncEventRepository interface {
	Record(ctx context.Context, eventType string, entityID int, outcome string) error
	CountByType(ctx context.Context, eventType string) (int64, error)
}

type syncEventRepositoryImpl struct {
	db *gorm.DB
}

func NewSyncEventRepository(db *gorm.DB) SyncEventRepository {
	return &syncEventRepositoryImpl{db: db}
}

func (r *syncEventRepositoryImpl) Record(ctx context.Context, eventType string, entityID int, outcome string) error {
	return r.db.WithContext(ctx).Create(&model.SyncEvent{
		EventType: eventType,
		EntityID:  entityID,
		Outcome:   outcome,
	}).Error
}

func (r *syncEventRepositoryImpl) CountByType(ctx context.Context, eventType string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.SyncEvent{}).
		Where("event_type = ?", eventType).
		Count(&count).Error

	return count, err
}
