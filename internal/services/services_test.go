package services

import (
	"context"
	"path/filepath"
	"quotagate/internal/config"
	"quotagate/internal/models"
	"quotagate/internal/repository"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_busy_timeout=5000"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Credential{}, &models.UsageRecord{}))

	return db
}

func testQuotaConfig() *config.QuotaConfig {
	return &config.QuotaConfig{
		DefaultQuota:    100,
		DefaultLogLimit: 50,
	}
}

type testEnv struct {
	db                *gorm.DB
	usageRepo         repository.UsageRepository
	credentialService CredentialService
	admissionService  AdmissionService
	usageLogService   UsageLogService
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()

	db := setupTestDB(t)
	credentialRepo := repository.NewCredentialRepository(db)
	usageRepo := repository.NewUsageRepository(db)
	credentialService := NewCredentialService(credentialRepo, nil, testQuotaConfig())

	return &testEnv{
		db:                db,
		usageRepo:         usageRepo,
		credentialService: credentialService,
		admissionService:  NewAdmissionService(credentialService, usageRepo),
		usageLogService:   NewUsageLogService(credentialService, usageRepo, testQuotaConfig()),
	}
}

func (e *testEnv) register(t *testing.T, owner string, quota int) *models.Credential {
	t.Helper()

	credential, err := e.credentialService.Register(context.Background(), owner, quota)
	require.NoError(t, err)
	return credential
}

func (e *testEnv) ledgerCount(t *testing.T) int64 {
	t.Helper()

	var count int64
	require.NoError(t, e.db.Model(&models.UsageRecord{}).Count(&count).Error)
	return count
}
