package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/joshuarp/image-derivative-api/internal/shared/config"
	sharedratelimit "github.com/joshuarp/image-derivative-api/internal/shared/ratelimit"
)

func provideRedisClient(cfg config.ConfigProvider) *redis.Client {
	host := strings.TrimSpace(cfg.GetString("redis.host"))
	if host == "" {
		host = "localhost"
	}

	port := cfg.GetInt("redis.port")
	if port == 0 {
		port = 6379
	}

	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", host, port),
		Password: cfg.GetString("redis.password"),
		DB:       cfg.GetInt("redis.db"),
	})
}

// provideDeliverRateLimiter returns nil when rate limiting is disabled; the
// middleware then lets every request through.
func provideDeliverRateLimiter(cfg config.ConfigProvider, redisClient *redis.Client, logger *slog.Logger) (sharedratelimit.Limiter, error) {
	if !cfg.GetBool("ratelimit.enabled") {
		return nil, nil
	}
	if redisClient == nil {
		return nil, fmt.Errorf("app: redis client is required for delivery rate limiter")
	}

	limit := cfg.GetInt("ratelimit.limit")
	if limit <= 0 {
		limit = 120
	}

	window := cfg.GetDuration("ratelimit.window")
	if window <= 0 {
		window = time.Minute
	}

	burst := cfg.GetInt("ratelimit.burst")
	if burst <= 0 {
		burst = limit
	}

	algorithm := parseRateLimitAlgorithm(cfg.GetString("ratelimit.algorithm"))
	store := sharedratelimit.NewRedisStore(redisClient, sharedratelimit.WithRedisPrefix("image-derivative-api:deliver"))

	return sharedratelimit.New(store, sharedratelimit.Config{
		Algorithm: algorithm,
		Limit:     int64(limit),
		Window:    window,
		Burst:     int64(burst),
		OnLimited: func(_ context.Context, key string, result sharedratelimit.Result) {
			if logger != nil {
				logger.Warn("rate limit exceeded", "scope", "deliver", "key", key, "limit", result.Limit)
			}
		},
	})
}

func parseRateLimitAlgorithm(value string) sharedratelimit.Algorithm {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "fixed_window":
		return sharedratelimit.AlgorithmFixedWindow
	default:
		return sharedratelimit.AlgorithmTokenBucket
	}
}
