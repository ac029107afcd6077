package utils

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"tutorgo/config"
)

var (
	// CacheClient is the generic cache client.
	CacheClient *redis.Client
	// AuthCacheClient is the dedicated client for auth token caching.
	AuthCacheClient *redis.Client
	// BookingFlowClient holds in-progress booking flows.
	BookingFlowClient *redis.Client
)

func newRedisClient(db int) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (db %d): %v", db, err)
	}
	return client
}

// InitRedis initializes all Redis clients eagerly at startup.
func InitRedis() {
	CacheClient = newRedisClient(config.AppConfig.RedisCacheDB)
	AuthCacheClient = newRedisClient(config.AppConfig.RedisAuthDB)
	BookingFlowClient = newRedisClient(config.AppConfig.RedisBookingFlowDB)
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		CacheClient = newRedisClient(config.AppConfig.RedisCacheDB)
	}
	return CacheClient
}

// GetAuthCacheClient returns the Redis client for auth token caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		AuthCacheClient = newRedisClient(config.AppConfig.RedisAuthDB)
	}
	return AuthCacheClient
}

// GetBookingFlowClient returns the Redis client holding booking flow state.
func GetBookingFlowClient() *redis.Client {
	if BookingFlowClient == nil {
		BookingFlowClient = newRedisClient(config.AppConfig.RedisBookingFlowDB)
	}
	return BookingFlowClient
}
