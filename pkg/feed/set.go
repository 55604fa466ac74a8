package feed

import (
	"context"
	"sync"

	"github.com/samber/lo"

	"github.com/slr71/dashboard-aggregator/pkg/domain"
)

// Set is an ordered collection of named caches
type Set struct {
	caches []*Cache
	byName map[string]*Cache
}

// NewSet makes a set of caches. A later cache with a duplicate name replaces the earlier one.
func NewSet(caches ...*Cache) *Set {
	res := &Set{byName: make(map[string]*Cache, len(caches))}
	for _, c := range caches {
		if _, dup := res.byName[c.Name()]; dup {
			res.caches = lo.Reject(res.caches, func(old *Cache, _ int) bool { return old.Name() == c.Name() })
		}
		res.caches = append(res.caches, c)
		res.byName[c.Name()] = c
	}
	return res
}

// Get returns the cache by name
func (s *Set) Get(name string) (*Cache, bool) {
	c, ok := s.byName[name]
	return c, ok
}

// Names returns cache names in registration order
func (s *Set) Names() []string {
	return lo.Map(s.caches, func(c *Cache, _ int) string { return c.Name() })
}

// Caches returns all caches in registration order
func (s *Set) Caches() []*Cache {
	return append([]*Cache(nil), s.caches...)
}

// Snapshot reads every cache concurrently, so cold caches bootstrap in parallel
func (s *Set) Snapshot(ctx context.Context) map[string][]domain.FeedItem {
	return s.snapshot(ctx, s.caches)
}

// SnapshotOf reads the named caches concurrently, unknown names are skipped
func (s *Set) SnapshotOf(ctx context.Context, names ...string) map[string][]domain.FeedItem {
	caches := lo.FilterMap(names, func(name string, _ int) (*Cache, bool) { return s.Get(name) })
	return s.snapshot(ctx, caches)
}

// Stats returns counters of every cache
func (s *Set) Stats() []Stats {
	return lo.Map(s.caches, func(c *Cache, _ int) Stats { return c.Stats() })
}

func (s *Set) snapshot(ctx context.Context, caches []*Cache) map[string][]domain.FeedItem {
	items := make([][]domain.FeedItem, len(caches))
	var wg sync.WaitGroup
	for i, c := range caches {
		wg.Add(1)
		go func() {
			defer wg.Done()
			items[i] = c.Items(ctx)
		}()
	}
	wg.Wait()

	res := make(map[string][]domain.FeedItem, len(caches))
	for i, c := range caches {
		res[c.Name()] = items[i]
	}
	return res
}
