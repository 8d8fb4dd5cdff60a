// Package ratelimit throttles derivative requests per client across processes.
package ratelimit

import (
	"context"
	"fmt"
	"time"
)

// Algorithm defines the rate limiting algorithm to use.
type Algorithm string

const (
	// AlgorithmTokenBucket refills at Limit/Window and allows bursts up to Burst.
	AlgorithmTokenBucket Algorithm = "token_bucket"

	// AlgorithmFixedWindow counts requests per Window. Bursts are possible at window edges.
	AlgorithmFixedWindow Algorithm = "fixed_window"
)

// Result contains the rate limit decision and metadata.
type Result struct {
	Allowed    bool
	Limit      int64
	Remaining  int64
	ResetAt    time.Time
	RetryAfter time.Duration
}

// Config configures the rate limiter.
type Config struct {
	Algorithm Algorithm
	Limit     int64
	Window    time.Duration

	// Burst is the token bucket capacity; zero means Limit.
	Burst int64

	// OnLimited is called for every rejected request.
	OnLimited func(ctx context.Context, key string, result Result)
}

// Store keeps the counters. Implementations must be safe for concurrent use.
type Store interface {
	Allow(ctx context.Context, key string, config Config) (Result, error)
	Reset(ctx context.Context, key string) error
}

// Limiter decides whether the caller identified by key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) (Result, error)
	Reset(ctx context.Context, key string) error
}

type limiter struct {
	store  Store
	config Config
}

// New validates config and returns a Limiter backed by store.
func New(store Store, config Config) (Limiter, error) {
	if store == nil {
		return nil, fmt.Errorf("ratelimit: store is required")
	}
	if config.Limit <= 0 {
		return nil, fmt.Errorf("ratelimit: limit must be positive")
	}
	if config.Window <= 0 {
		return nil, fmt.Errorf("ratelimit: window must be positive")
	}

	switch config.Algorithm {
	case "":
		config.Algorithm = AlgorithmTokenBucket
	case AlgorithmTokenBucket, AlgorithmFixedWindow:
	default:
		return nil, fmt.Errorf("ratelimit: unknown algorithm %q", config.Algorithm)
	}

	if config.Burst <= 0 {
		config.Burst = config.Limit
	}

	return &limiter{store: store, config: config}, nil
}

func (l *limiter) Allow(ctx context.Context, key string) (Result, error) {
	result, err := l.store.Allow(ctx, key, l.config)
	if err != nil {
		return Result{}, fmt.Errorf("ratelimit: store error: %w", err)
	}

	if !result.Allowed && l.config.OnLimited != nil {
		l.config.OnLimited(ctx, key, result)
	}

	return result, nil
}

func (l *limiter) Reset(ctx context.Context, key string) error {
	return l.store.Reset(ctx, key)
}
