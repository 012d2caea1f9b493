package repository

import (
	"context"
	"quotagate/internal/models"
	"quotagate/internal/window"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsageRepository_AppendSetsTimestamp(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUsageRepository(db)

	before := time.Now()
	record, err := repo.Append(context.Background(), "sk_test_1", "/check-limit", models.OutcomeAdmitted)
	require.NoError(t, err)

	assert.NotZero(t, record.ID)
	assert.False(t, record.Timestamp.Before(before))
	assert.Equal(t, models.OutcomeAdmitted, record.Outcome)
}

func TestUsageRepository_CountAdmittedInWindow(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUsageRepository(db)
	ctx := context.Background()

	_, err := repo.Append(ctx, "sk_test_1", "/a", models.OutcomeAdmitted)
	require.NoError(t, err)
	_, err = repo.Append(ctx, "sk_test_1", "/b", models.OutcomeAdmitted)
	require.NoError(t, err)
	_, err = repo.Append(ctx, "sk_test_1", "/c", models.OutcomeDenied)
	require.NoError(t, err)
	_, err = repo.Append(ctx, "sk_other", "/a", models.OutcomeAdmitted)
	require.NoError(t, err)

	w := window.Current(time.Now())

	// Denied rows and other credentials are not counted.
	count, err := repo.CountAdmittedInWindow(ctx, "sk_test_1", w)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// A different day's window sees nothing.
	yesterday := window.Current(time.Now().AddDate(0, 0, -1))
	count, err = repo.CountAdmittedInWindow(ctx, "sk_test_1", yesterday)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestUsageRepository_RecentNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUsageRepository(db)
	ctx := context.Background()

	endpoints := []string{"/one", "/two", "/three"}
	for _, endpoint := range endpoints {
		_, err := repo.Append(ctx, "sk_test_1", endpoint, models.OutcomeAdmitted)
		require.NoError(t, err)
	}

	records, err := repo.Recent(ctx, "sk_test_1", 10)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "/three", records[0].Endpoint)
	assert.Equal(t, "/two", records[1].Endpoint)
	assert.Equal(t, "/one", records[2].Endpoint)

	limited, err := repo.Recent(ctx, "sk_test_1", 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, "/three", limited[0].Endpoint)
}
