package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"quotagate/internal/config"
	"quotagate/internal/errors"
	"quotagate/internal/logger"
	"quotagate/internal/models"
	"quotagate/internal/repository"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// CredentialService is the credential directory: registration plus lookup.
// Credentials are immutable once issued, which is what makes the cache in
// front of Lookup safe — a cached hit can never be stale, and misses always
// consult the store.
type CredentialService interface {
	Register(ctx context.Context, ownerEmail string, quota int) (*models.Credential, error)
	Lookup(ctx context.Context, key string) (*models.Credential, error)
}

type credentialService struct {
	credentialRepo repository.CredentialRepository
	cache          CacheService
	quotaConfig    *config.QuotaConfig
}

// NewCredentialService wires the directory. cache may be nil, in which case
// every lookup goes straight to the store.
func NewCredentialService(credentialRepo repository.CredentialRepository, cache CacheService, quotaConfig *config.QuotaConfig) CredentialService {
	return &credentialService{
		credentialRepo: credentialRepo,
		cache:          cache,
		quotaConfig:    quotaConfig,
	}
}

// generateKey returns an opaque "sk_" secret. 24 random bytes gives 192 bits
// of entropy; collisions are not a practical concern, and the unique index on
// key backstops them regardless.
func generateKey() (string, error) {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to generate credential key")
	}
	return "sk_" + base64.RawURLEncoding.EncodeToString(buf), nil
}

func (s *credentialService) Register(ctx context.Context, ownerEmail string, quota int) (*models.Credential, error) {
	if ownerEmail == "" {
		return nil, errors.ErrInvalidInput
	}
	if quota < 0 {
		return nil, errors.ErrInvalidInput
	}
	if quota == 0 {
		quota = s.quotaConfig.DefaultQuota
	}

	if _, err := s.credentialRepo.GetByOwner(ctx, ownerEmail); err == nil {
		return nil, errors.ErrDuplicateOwner
	} else if !errors.Is(err, errors.ErrNotFound) {
		return nil, err
	}

	key, err := generateKey()
	if err != nil {
		return nil, err
	}

	credential := &models.Credential{
		ID:         uuid.New(),
		Key:        key,
		OwnerEmail: ownerEmail,
		Quota:      quota,
		CreatedAt:  time.Now(),
	}

	// The unique index on owner_email closes the race between the pre-check
	// and the insert; the repository maps the violation to ErrDuplicateOwner.
	if err := s.credentialRepo.Create(ctx, credential); err != nil {
		return nil, err
	}

	logger.Logger.WithFields(logrus.Fields{
		"owner": ownerEmail,
		"quota": quota,
	}).Info("Credential registered")

	return credential, nil
}

func (s *credentialService) Lookup(ctx context.Context, key string) (*models.Credential, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey(key)); err == nil {
			var credential models.Credential
			if err := json.Unmarshal([]byte(cached), &credential); err == nil {
				return &credential, nil
			}
		}
	}

	credential, err := s.credentialRepo.GetByKey(ctx, key)
	if err != nil {
		if errors.Is(err, errors.ErrNotFound) {
			return nil, errors.ErrInvalidCredential
		}
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey(key), credential, 0); err != nil {
			logger.Logger.WithFields(logrus.Fields{
				"error": err,
			}).Warn("Failed to cache credential")
		}
	}

	return credential, nil
}

func cacheKey(key string) string {
	return "credential:" + key
}
