package hash

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Strategy defines which hashing algorithm to use.
type Strategy string

const (
	StrategyBcrypt Strategy = "bcrypt"
)

// Options configures the hasher.
type Options struct {
	Strategy Strategy

	// Cost is the bcrypt work factor. Zero uses bcrypt.DefaultCost.
	Cost int
}

// Hasher hashes and checks admin passwords.
// Implementations must be safe for concurrent use.
type Hasher interface {
	Hash(ctx context.Context, plaintext string) (string, error)

	// Compare returns nil when plaintext matches hashed.
	Compare(ctx context.Context, hashed, plaintext string) error
}

// New creates a Hasher based on the provided options.
func New(opts Options) (Hasher, error) {
	switch opts.Strategy {
	case StrategyBcrypt, "":
		return NewBcrypt(opts.Cost)
	default:
		return nil, fmt.Errorf("hash: unknown strategy %q", opts.Strategy)
	}
}

var _ Hasher = (*bcryptHasher)(nil)

type bcryptHasher struct {
	cost int
}

func NewBcrypt(cost int) (Hasher, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("hash: bcrypt cost %d out of range [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return &bcryptHasher{cost: cost}, nil
}

func (h *bcryptHasher) Hash(_ context.Context, plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash: bcrypt hashing failed: %w", err)
	}
	return string(hashed), nil
}

func (h *bcryptHasher) Compare(_ context.Context, hashed, plaintext string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext)); err != nil {
		return fmt.Errorf("hash: bcrypt comparison failed: %w", err)
	}
	return nil
}
