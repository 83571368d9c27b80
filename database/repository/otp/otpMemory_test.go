package otpRepo

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"staffhub/database"
	"staffhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecord(email, hash string) *models.OTPRecord {
	return &models.OTPRecord{Email: email, CodeHash: hash, ExpiresAt: time.Now().Add(time.Minute)}
}

func TestReplaceKeepsOneRecordPerEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryOTPRepo()

	first := newRecord("a@b.co", "h1")
	require.NoError(t, repo.Replace(ctx, first))
	second := newRecord("a@b.co", "h2")
	require.NoError(t, repo.Replace(ctx, second))
	assert.Equal(t, first.ID, second.ID)

	got, err := repo.FindByEmail(ctx, "a@b.co")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "h2", got.CodeHash)
	assert.Zero(t, got.Attempts)

	missing, err := repo.FindByEmail(ctx, "x@b.co")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestIncrementAttemptsStopsAtMax(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryOTPRepo()
	rec := newRecord("a@b.co", "h1")
	require.NoError(t, repo.Replace(ctx, rec))

	for want := 1; want <= 3; want++ {
		n, err := repo.IncrementAttempts(ctx, rec, 3)
		require.NoError(t, err)
		assert.Equal(t, want, n)
	}
	_, err := repo.IncrementAttempts(ctx, rec, 3)
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestStaleRecordCannotBeUsed(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryOTPRepo()
	old := newRecord("a@b.co", "h1")
	require.NoError(t, repo.Replace(ctx, old))
	require.NoError(t, repo.Replace(ctx, newRecord("a@b.co", "h2")))

	_, err := repo.IncrementAttempts(ctx, old, 3)
	assert.ErrorIs(t, err, database.ErrNotFound)
	ok, err := repo.Consume(ctx, old)
	require.NoError(t, err)
	assert.False(t, ok)

	current, err := repo.FindByEmail(ctx, "a@b.co")
	require.NoError(t, err)
	assert.NotNil(t, current)
}

func TestConsumeOnce(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryOTPRepo()
	rec := newRecord("a@b.co", "h1")
	require.NoError(t, repo.Replace(ctx, rec))

	var wins int32
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, err := repo.Consume(ctx, rec); err == nil && ok {
				atomic.AddInt32(&wins, 1)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), wins)

	got, err := repo.FindByEmail(ctx, "a@b.co")
	require.NoError(t, err)
	assert.Nil(t, got)
}
