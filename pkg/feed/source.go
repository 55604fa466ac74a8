package feed

import (
	"context"
	"fmt"

	"github.com/slr71/dashboard-aggregator/pkg/domain"
)

// Source is a named upstream of feed items. Items are returned in upstream order, oldest first.
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]domain.FeedItem, error)
}

// Strategy is a Source made of a raw fetch and a transform of the raw payload
type Strategy[R any] struct {
	Label     string
	FetchRaw  func(ctx context.Context) (R, error)
	Transform func(raw R) []domain.FeedItem
}

// Name returns the source label
func (s Strategy[R]) Name() string { return s.Label }

// Fetch pulls the raw payload and transforms it
func (s Strategy[R]) Fetch(ctx context.Context) ([]domain.FeedItem, error) {
	raw, err := s.FetchRaw(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", s.Label, err)
	}
	return s.Transform(raw), nil
}
