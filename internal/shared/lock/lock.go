// Package lock provides named, non-blocking, cross-process mutual exclusion.
// Every successful Acquire returns a Lease carrying a fresh owner token;
// Refresh and Release act only while the store still holds that token.
package lock

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Backend selects the shared store behind a Locker.
type Backend string

const (
	BackendRedis    Backend = "redis"
	BackendPostgres Backend = "postgres"
)

const defaultTTL = 30 * time.Second

var (
	// ErrNotHeld is returned by Release when the lease expired or now belongs
	// to another holder.
	ErrNotHeld = errors.New("lock: not held")

	errEmptyName = errors.New("lock: name is required")
)

// Lease is one successful acquisition of a named lock.
type Lease struct {
	Name  string
	Token string
}

// Locker acquires named locks without waiting.
// Implementations must be safe for concurrent use.
type Locker interface {
	// Acquire returns false, nil when another holder owns name.
	Acquire(ctx context.Context, name string, ttl time.Duration) (Lease, bool, error)

	// Refresh extends the lease to ttl from now. It returns false when the
	// lease was lost.
	Refresh(ctx context.Context, lease Lease, ttl time.Duration) (bool, error)

	Release(ctx context.Context, lease Lease) error
}

func normalizeTTL(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return defaultTTL
	}
	return ttl
}

func validateLease(lease Lease) error {
	if err := validateName(lease.Name); err != nil {
		return err
	}
	if lease.Token == "" {
		return ErrNotHeld
	}
	return nil
}

func validateName(name string) error {
	if name == "" {
		return errEmptyName
	}
	if len(name) > 255 {
		return fmt.Errorf("lock: name longer than 255 bytes: %q", name[:32])
	}
	return nil
}
