package services

import (
	"context"
	"quotagate/internal/config"
	"quotagate/internal/models"
	"quotagate/internal/repository"
)

// UsageLogService exposes the ledger for display: the recent decisions made
// for one credential, newest first.
type UsageLogService interface {
	ListUsage(ctx context.Context, credentialKey string, limit int) ([]models.UsageRecord, error)
}

type usageLogService struct {
	credentialService CredentialService
	usageRepo         repository.UsageRepository
	quotaConfig       *config.QuotaConfig
}

func NewUsageLogService(credentialService CredentialService, usageRepo repository.UsageRepository, quotaConfig *config.QuotaConfig) UsageLogService {
	return &usageLogService{
		credentialService: credentialService,
		usageRepo:         usageRepo,
		quotaConfig:       quotaConfig,
	}
}

func (s *usageLogService) ListUsage(ctx context.Context, credentialKey string, limit int) ([]models.UsageRecord, error) {
	// Listing requires a known credential; unknown keys get
	// ErrInvalidCredential rather than an empty list.
	if _, err := s.credentialService.Lookup(ctx, credentialKey); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = s.quotaConfig.DefaultLogLimit
	}

	return s.usageRepo.Recent(ctx, credentialKey, limit)
}
