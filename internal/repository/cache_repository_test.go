package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/bqviet86/cmict-server/config"
	"github.com/bqviet86/cmict-server/internal/model"
	"github.com/bqviet86/cmict-server/internal/repository"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*repository.CacheRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return repository.NewCacheRepository(&config.RedisClient{Client: client}, time.Minute), mr
}

func TestCacheRepository_SetGetDelete(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()
	user := testUser()

	require.NoError(t, cache.SetUser(ctx, user))
	assert.True(t, mr.Exists("user:"+user.UUID))
	assert.Equal(t, time.Minute, mr.TTL("user:"+user.UUID))

	cached, err := cache.GetUser(ctx, user.UUID)
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, user.Username, cached.Username)
	assert.Empty(t, cached.PasswordHash)

	require.NoError(t, cache.DeleteUser(ctx, user.UUID))
	cached, err = cache.GetUser(ctx, user.UUID)
	require.NoError(t, err)
	assert.Nil(t, cached)
}

func TestCacheRepository_Miss(t *testing.T) {
	cache, _ := newTestCache(t)

	user, err := cache.GetUser(context.Background(), "absent")

	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestCacheRepository_Expiry(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()
	user := &model.User{UUID: "u1", Username: "a"}

	require.NoError(t, cache.SetUser(ctx, user))
	mr.FastForward(2 * time.Minute)

	cached, err := cache.GetUser(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, cached)
}

func TestCacheRepository_RedisDown(t *testing.T) {
	cache, mr := newTestCache(t)
	mr.Close()

	_, err := cache.GetUser(context.Background(), "u1")

	assert.Error(t, err)
}
