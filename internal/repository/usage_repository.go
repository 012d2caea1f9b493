package repository

import (
	"context"
	"quotagate/internal/errors"
	"quotagate/internal/models"
	"quotagate/internal/window"
	"time"

	"gorm.io/gorm"
)

// UsageRepository is the append-only admission ledger. There is deliberately
// no update or delete: records are immutable once written.
type UsageRepository interface {
	Append(ctx context.Context, credentialKey, endpoint string, outcome models.Outcome) (*models.UsageRecord, error)
	CountAdmittedInWindow(ctx context.Context, credentialKey string, w window.Window) (int64, error)
	Recent(ctx context.Context, credentialKey string, limit int) ([]models.UsageRecord, error)
}

type usageRepository struct {
	db *gorm.DB
}

func NewUsageRepository(db *gorm.DB) UsageRepository {
	return &usageRepository{db: db}
}

func (r *usageRepository) Append(ctx context.Context, credentialKey, endpoint string, outcome models.Outcome) (*models.UsageRecord, error) {
	record := &models.UsageRecord{
		CredentialKey: credentialKey,
		Timestamp:     time.Now(),
		Endpoint:      endpoint,
		Outcome:       outcome,
	}
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, errors.Wrap(err, "failed to append usage record")
	}
	return record, nil
}

func (r *usageRepository) CountAdmittedInWindow(ctx context.Context, credentialKey string, w window.Window) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.UsageRecord{}).
		Where("credential_key = ? AND outcome = ? AND timestamp >= ? AND timestamp < ?",
			credentialKey, models.OutcomeAdmitted, w.Start, w.End).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count usage records")
	}
	return count, nil
}

func (r *usageRepository) Recent(ctx context.Context, credentialKey string, limit int) ([]models.UsageRecord, error) {
	var records []models.UsageRecord
	err := r.db.WithContext(ctx).
		Where("credential_key = ?", credentialKey).
		Order("timestamp desc, id desc").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list usage records")
	}
	return records, nil
}
