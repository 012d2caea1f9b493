package services

import (
	"context"
	"quotagate/internal/errors"
	"quotagate/internal/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListUsage_NewestFirst(t *testing.T) {
	env := setupEnv(t)
	credential := env.register(t, "a@x.com", 3)
	ctx := context.Background()
	now := time.Now()

	// 3 admitted + 2 denied = 5 records.
	for i := 0; i < 5; i++ {
		_, err := env.admissionService.Check(ctx, credential.Key, "/check-limit", now)
		require.NoError(t, err)
	}

	records, err := env.usageLogService.ListUsage(ctx, credential.Key, 0)
	require.NoError(t, err)
	require.Len(t, records, 5)

	// Newest first: the two denials precede the three admissions.
	assert.Equal(t, models.OutcomeDenied, records[0].Outcome)
	assert.Equal(t, models.OutcomeDenied, records[1].Outcome)
	for _, record := range records[2:] {
		assert.Equal(t, models.OutcomeAdmitted, record.Outcome)
	}
	for i := 1; i < len(records); i++ {
		assert.False(t, records[i].Timestamp.After(records[i-1].Timestamp))
	}
}

func TestListUsage_RespectsLimit(t *testing.T) {
	env := setupEnv(t)
	credential := env.register(t, "a@x.com", 10)
	ctx := context.Background()
	now := time.Now()

	for i := 0; i < 4; i++ {
		_, err := env.admissionService.Check(ctx, credential.Key, "/check-limit", now)
		require.NoError(t, err)
	}

	records, err := env.usageLogService.ListUsage(ctx, credential.Key, 2)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestListUsage_UnknownCredential(t *testing.T) {
	env := setupEnv(t)

	_, err := env.usageLogService.ListUsage(context.Background(), "sk_unknown", 10)
	assert.ErrorIs(t, err, errors.ErrInvalidCredential)
}
