// File: utils/cache.go
package utils

import (
	"context"
	"fmt"
	"time"

	"staffhub/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

var (
	// SessionCacheClient is the dedicated client for login sessions.
	SessionCacheClient *redis.Client
)

// NewRedisClient connects to the configured Redis server on the given DB and
// verifies the connection.
func NewRedisClient(db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis db %d: %w", db, err)
	}
	return client, nil
}

// InitSessionCache initializes the Redis client used by the session store.
func InitSessionCache() {
	client, err := NewRedisClient(config.AppConfig.RedisSessionDB)
	if err != nil {
		GetLogger().Fatal("Failed to connect to Redis (Sessions)", zap.Error(err))
	}
	SessionCacheClient = client
}

// GetSessionCacheClient returns the Redis client for sessions.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		InitSessionCache()
	}
	return SessionCacheClient
}
