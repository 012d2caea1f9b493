package repository

import (
	"context"
	"quotagate/internal/errors"
	"quotagate/internal/models"

	"gorm.io/gorm"
)

type CredentialRepository interface {
	Create(ctx context.Context, credential *models.Credential) error
	GetByKey(ctx context.Context, key string) (*models.Credential, error)
	GetByOwner(ctx context.Context, ownerEmail string) (*models.Credential, error)
}

type credentialRepository struct {
	db *gorm.DB
}

func NewCredentialRepository(db *gorm.DB) CredentialRepository {
	return &credentialRepository{db: db}
}

func (r *credentialRepository) Create(ctx context.Context, credential *models.Credential) error {
	result := r.db.WithContext(ctx).Create(credential)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return errors.ErrDuplicateOwner
		}
		return errors.Wrap(result.Error, "failed to create credential")
	}
	return nil
}

func (r *credentialRepository) GetByKey(ctx context.Context, key string) (*models.Credential, error) {
	var credential models.Credential
	result := r.db.WithContext(ctx).First(&credential, "key = ?", key)

	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, errors.ErrNotFound
		}
		return nil, errors.Wrap(result.Error, "failed to get credential by key")
	}

	return &credential, nil
}

func (r *credentialRepository) GetByOwner(ctx context.Context, ownerEmail string) (*models.Credential, error) {
	var credential models.Credential
	result := r.db.WithContext(ctx).First(&credential, "owner_email = ?", ownerEmail)

	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, errors.ErrNotFound
		}
		return nil, errors.Wrap(result.Error, "failed to get credential by owner")
	}

	return &credential, nil
}
