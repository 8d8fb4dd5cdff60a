package uid

import (
	"context"
	"fmt"
	"sync"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
)

// Strategy defines which UID generation algorithm to use.
type Strategy string

const (
	StrategySnowflake Strategy = "snowflake"
	StrategyUUIDv7    Strategy = "uuidv7"
)

// Options configures the UID generator.
type Options struct {
	Strategy Strategy

	// NodeID identifies this process (Snowflake only, 0-1023).
	NodeID int64
}

// UIDGenerator hands out unique identifiers. Lock owner tokens and temporary
// file suffixes both come from here. Implementations must be safe for concurrent use.
type UIDGenerator interface {
	Generate(ctx context.Context) (string, error)
}

// New creates a UIDGenerator based on the provided options.
func New(opts Options) (UIDGenerator, error) {
	switch opts.Strategy {
	case StrategySnowflake:
		return NewSnowflake(opts.NodeID)
	case StrategyUUIDv7, "":
		return NewUUIDv7(), nil
	default:
		return nil, fmt.Errorf("uid: unknown strategy %q", opts.Strategy)
	}
}

var (
	_ UIDGenerator = (*snowflakeGenerator)(nil)
	_ UIDGenerator = (*uuidv7Generator)(nil)
)

type snowflakeGenerator struct {
	node *snowflake.Node
	mu   sync.Mutex
}

func NewSnowflake(nodeID int64) (UIDGenerator, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("uid: failed to create snowflake node: %w", err)
	}
	return &snowflakeGenerator{node: node}, nil
}

func (g *snowflakeGenerator) Generate(context.Context) (string, error) {
	g.mu.Lock()
	id := g.node.Generate()
	g.mu.Unlock()
	return id.Base36(), nil
}

type uuidv7Generator struct{}

func NewUUIDv7() UIDGenerator {
	return uuidv7Generator{}
}

func (uuidv7Generator) Generate(context.Context) (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("uid: failed to generate uuid v7: %w", err)
	}
	return id.String(), nil
}
