package window

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentAlignsToLocalMidnight(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	now := time.Date(2024, 3, 15, 13, 45, 30, 0, loc)
	w := Current(now)

	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, loc), w.Start)
	assert.Equal(t, time.Date(2024, 3, 16, 0, 0, 0, 0, loc), w.End)
}

func TestCurrentIsHalfOpen(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	w := Current(now)

	assert.True(t, w.Contains(w.Start))
	assert.True(t, w.Contains(now))
	assert.False(t, w.Contains(w.End))
	assert.False(t, w.Contains(w.Start.Add(-time.Nanosecond)))
}

func TestCurrentRollsOverAtMidnight(t *testing.T) {
	justBefore := time.Date(2024, 3, 15, 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC)
	justAfter := time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)

	before := Current(justBefore)
	after := Current(justAfter)

	assert.Equal(t, before.End, after.Start)
	assert.False(t, before.Contains(justAfter))
	assert.False(t, after.Contains(justBefore))
}

func TestCurrentIsDeterministic(t *testing.T) {
	now := time.Date(2024, 7, 1, 8, 30, 0, 0, time.UTC)
	assert.Equal(t, Current(now), Current(now))
}
