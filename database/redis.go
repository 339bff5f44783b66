package database

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type RedisConfig struct {
	URL          string
	PoolSize     int
	DialTimeout  time.Duration
	MinIdleConns int
	ReadTimeout  time.Duration
	MaxRetries   int
}

// LoadRedisConfig builds the client settings for url, taking pool tuning
// from the environment with default fallbacks.
func LoadRedisConfig(url string, log zerolog.Logger) (RedisConfig, error) {
	if url == "" {
		return RedisConfig{}, errors.New("redis URL is empty")
	}

	return RedisConfig{
		URL:          url,
		PoolSize:     getEnvAsInt(log, "REDIS_POOL_SIZE", 10),
		DialTimeout:  getEnvAsDuration(log, "REDIS_DIAL_TIMEOUT", 30*time.Second),
		MinIdleConns: getEnvAsInt(log, "REDIS_MIN_IDLE_CONNS", 5),
		ReadTimeout:  getEnvAsDuration(log, "REDIS_READ_TIMEOUT", 10*time.Second),
		MaxRetries:   getEnvAsInt(log, "REDIS_MAX_RETRIES", 3),
	}, nil
}

func getEnvAsInt(log zerolog.Logger, name string, defaultValue int) int {
	if value, exists := os.LookupEnv(name); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
		log.Warn().Str("var", name).Int("default", defaultValue).Msg("invalid integer value, using default")
	}
	return defaultValue
}

func getEnvAsDuration(log zerolog.Logger, name string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(name); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
		log.Warn().Str("var", name).Dur("default", defaultValue).Msg("invalid duration value, using default")
	}
	return defaultValue
}

// NewRedisClient creates a Redis client with the provided configuration
func NewRedisClient(ctx context.Context, config RedisConfig) (*redis.Client, error) {
	opt, err := redis.ParseURL(config.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	opt.PoolSize = config.PoolSize
	opt.MinIdleConns = config.MinIdleConns
	opt.DialTimeout = config.DialTimeout
	opt.ReadTimeout = config.ReadTimeout
	opt.MaxRetries = config.MaxRetries

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping Redis server: %w", err)
	}
	return client, nil
}

const releaseLockScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
else
	return 0
end
`

// RedisLocker hands out short-lived distributed locks backed by SETNX.
type RedisLocker struct {
	client     *redis.Client
	ttl        time.Duration
	maxRetries int
	retryDelay time.Duration
	release    *redis.Script
}

func NewRedisLocker(client *redis.Client) *RedisLocker {
	return &RedisLocker{
		client:     client,
		ttl:        15 * time.Second,
		maxRetries: 3,
		retryDelay: 200 * time.Millisecond,
		release:    redis.NewScript(releaseLockScript),
	}
}

// Lock acquires key, retrying a few times before giving up. The returned
// function releases the lock only if it is still held by this caller.
func (l *RedisLocker) Lock(ctx context.Context, key string) (func(context.Context) error, error) {
	value := uuid.New().String()

	var locked bool
	var err error
	for i := 0; i < l.maxRetries; i++ {
		locked, err = l.client.SetNX(ctx, key, value, l.ttl).Result()
		if err == nil && locked {
			break
		}
		if i < l.maxRetries-1 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(l.retryDelay):
			}
		}
	}
	if !locked {
		if err == nil {
			err = errors.New("lock is held by another request")
		}
		return nil, fmt.Errorf("failed to acquire lock after retries: %w", err)
	}

	unlock := func(ctx context.Context) error {
		result, err := l.release.Run(ctx, l.client, []string{key}, value).Int64()
		if err != nil {
			return fmt.Errorf("failed to release lock: %w", err)
		}
		if result == 0 {
			return errors.New("lock release failed: not the lock owner")
		}
		return nil
	}
	return unlock, nil
}
