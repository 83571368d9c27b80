package sessionRepo

import (
	"context"
	"testing"
	"time"

	"staffhub/models"
	"staffhub/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisRepo(t *testing.T) (*RedisSessionRepo, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisSessionRepo(client), mr
}

func sampleSession(ttl time.Duration) models.Session {
	now := time.Now()
	return models.Session{
		ID:        "c0ffee00-0000-4000-8000-000000000001",
		User:      models.SessionUser{ID: "u1", Username: "admin", Email: "admin@company.com", Role: models.RoleAdmin},
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

func TestRedisSessionRepo_SaveGetDelete(t *testing.T) {
	repo, mr := newRedisRepo(t)
	ctx := context.Background()
	s := sampleSession(time.Hour)

	require.NoError(t, repo.Save(ctx, s))
	assert.True(t, mr.Exists(utils.SessionKeyPrefix+s.ID))

	ttl := mr.TTL(utils.SessionKeyPrefix + s.ID)
	assert.InDelta(t, time.Hour.Seconds(), ttl.Seconds(), 5)

	got, err := repo.Get(ctx, s.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, s.User, got.User)

	require.NoError(t, repo.Delete(ctx, s.ID))
	got, err = repo.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	// Deleting twice is fine.
	assert.NoError(t, repo.Delete(ctx, s.ID))
}

func TestRedisSessionRepo_ExpiresWithTTL(t *testing.T) {
	repo, mr := newRedisRepo(t)
	ctx := context.Background()
	s := sampleSession(time.Minute)

	require.NoError(t, repo.Save(ctx, s))
	mr.FastForward(2 * time.Minute)

	got, err := repo.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisSessionRepo_RejectsExpiredSession(t *testing.T) {
	repo, _ := newRedisRepo(t)
	assert.Error(t, repo.Save(context.Background(), sampleSession(-time.Second)))
}

func TestMemorySessionRepo_DropsExpired(t *testing.T) {
	repo := NewMemorySessionRepo()
	now := time.Now()
	repo.now = func() time.Time { return now }
	ctx := context.Background()
	s := sampleSession(time.Minute)

	require.NoError(t, repo.Save(ctx, s))
	got, err := repo.Get(ctx, s.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	repo.now = func() time.Time { return now.Add(time.Hour) }
	got, err = repo.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
