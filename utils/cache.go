// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"trustcheck/config"
)

// QuotaCacheClient is the Redis client backing the "redis" quota store.
var QuotaCacheClient *redis.Client

// InitQuotaCache initializes the Redis client for the quota backend.
func InitQuotaCache() {
	QuotaCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQuotaDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := QuotaCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Quota): %v", err)
	}
}

// GetQuotaCacheClient returns the Redis client for the quota backend.
func GetQuotaCacheClient() *redis.Client {
	if QuotaCacheClient == nil {
		InitQuotaCache()
	}
	return QuotaCacheClient
}
