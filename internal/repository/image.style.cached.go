package repository

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/joshuarp/image-derivative-api/internal/domain"
)

const defaultStyleCacheSize = 128

type StyleSource interface {
	GetStyle(ctx context.Context, id string) (domain.ImageStyle, error)
	ListStyles(ctx context.Context) ([]domain.ImageStyle, error)
}

// CachedStyleRepository keeps recently delivered styles in memory. Misses and
// errors go to the source; listings are never cached.
type CachedStyleRepository struct {
	source StyleSource
	cache  *lru.Cache[string, domain.ImageStyle]
}

func NewCachedStyleRepository(source StyleSource, size int) (*CachedStyleRepository, error) {
	if size <= 0 {
		size = defaultStyleCacheSize
	}
	cache, err := lru.New[string, domain.ImageStyle](size)
	if err != nil {
		return nil, fmt.Errorf("repository: create style cache failed: %w", err)
	}
	return &CachedStyleRepository{source: source, cache: cache}, nil
}

func (r *CachedStyleRepository) GetStyle(ctx context.Context, id string) (domain.ImageStyle, error) {
	if style, ok := r.cache.Get(id); ok {
		return style, nil
	}

	style, err := r.source.GetStyle(ctx, id)
	if err != nil {
		return domain.ImageStyle{}, err
	}
	r.cache.Add(id, style)
	return style, nil
}

func (r *CachedStyleRepository) ListStyles(ctx context.Context) ([]domain.ImageStyle, error) {
	return r.source.ListStyles(ctx)
}

func (r *CachedStyleRepository) Invalidate(id string) {
	r.cache.Remove(id)
}

// Purge drops every cached style, e.g. after a config reload.
func (r *CachedStyleRepository) Purge() {
	r.cache.Purge()
}
