package feed

import (
	"context"
	"fmt"
	"slices"
	"sync/atomic"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/singleflight"

	"github.com/slr71/dashboard-aggregator/pkg/domain"
)

//go:generate moq -out mocks/source.go -pkg mocks -skip-ensure -fmt goimports . Source

// State is the lifecycle state of a cache
type State int32

// cache states
const (
	StateEmpty State = iota
	StatePopulating
	StatePopulated
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StatePopulating:
		return "populating"
	case StatePopulated:
		return "populated"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

const defaultFetchTimeout = 30 * time.Second

// Cache keeps a bounded newest-first snapshot of items pulled from one source.
// The snapshot is replaced as a whole on every successful refresh and kept as is on failure.
type Cache struct {
	source       Source
	maxItems     int
	fetchTimeout time.Duration
	now          func() time.Time

	snapshot atomic.Pointer[[]domain.FeedItem]
	state    atomic.Int32
	flight   singleflight.Group

	fetches     atomic.Int64
	failures    atomic.Int64
	lastRefresh atomic.Pointer[time.Time]
	lastErr     atomic.Pointer[string]
}

// Stats reports cache counters
type Stats struct {
	Name        string    `json:"name"`
	State       string    `json:"state"`
	Items       int       `json:"items"`
	Fetches     int64     `json:"fetches"`
	Failures    int64     `json:"failures"`
	LastRefresh time.Time `json:"last_refresh,omitzero"`
	LastError   string    `json:"last_error,omitempty"`
}

// CacheOption customizes a Cache
type CacheOption func(c *Cache)

// WithClock sets the clock used to stamp DateAdded
func WithClock(now func() time.Time) CacheOption {
	return func(c *Cache) { c.now = now }
}

// WithFetchTimeout bounds every upstream fetch made by the cache
func WithFetchTimeout(d time.Duration) CacheOption {
	return func(c *Cache) {
		if d > 0 {
			c.fetchTimeout = d
		}
	}
}

// NewCache makes an empty cache for the source keeping at most maxItems items.
// maxItems <= 0 keeps everything the source returns.
func NewCache(src Source, maxItems int, opts ...CacheOption) *Cache {
	res := &Cache{
		source:       src,
		maxItems:     maxItems,
		fetchTimeout: defaultFetchTimeout,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

// Name returns the source name
func (c *Cache) Name() string { return c.source.Name() }

// State returns the current lifecycle state
func (c *Cache) State() State { return State(c.state.Load()) }

// Items returns the current snapshot, newest first. The first read of a never populated cache
// blocks on a bootstrap fetch shared with all concurrent readers. Fetch errors are not returned,
// the caller gets whatever snapshot is available (possibly empty).
func (c *Cache) Items(ctx context.Context) []domain.FeedItem {
	if items := c.snapshot.Load(); items != nil {
		return *items
	}
	if err := c.bootstrap(ctx); err != nil {
		lgr.Printf("[DEBUG] cold read of feed %s served empty: %v", c.Name(), err)
	}
	if items := c.snapshot.Load(); items != nil {
		return *items
	}
	return []domain.FeedItem{}
}

// Refresh fetches the source and replaces the snapshot. If a fetch is already in flight
// the call joins it instead of starting another one.
func (c *Cache) Refresh(ctx context.Context) error {
	return c.load(ctx)
}

// Stats returns counters for the cache
func (c *Cache) Stats() Stats {
	res := Stats{
		Name:     c.Name(),
		State:    c.State().String(),
		Fetches:  c.fetches.Load(),
		Failures: c.failures.Load(),
	}
	if items := c.snapshot.Load(); items != nil {
		res.Items = len(*items)
	}
	if ts := c.lastRefresh.Load(); ts != nil {
		res.LastRefresh = *ts
	}
	if msg := c.lastErr.Load(); msg != nil {
		res.LastError = *msg
	}
	return res
}

// load runs one shared fetch. The fetch itself is detached from the caller's cancellation
// and bounded by the fetch timeout; the caller stops waiting when its own context is done.
func (c *Cache) load(ctx context.Context) error {
	return wait(ctx, c.flight.DoChan(c.Name(), func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.fetchTimeout)
		defer cancel()
		return nil, c.fetch(fetchCtx)
	}))
}

// bootstrap populates a cache nobody has filled yet. Cold readers share one bootstrap flight
// under its own key: it is a no-op if a snapshot got published meanwhile and joins the fetch
// flight otherwise. Refresh never joins a bootstrap flight.
func (c *Cache) bootstrap(ctx context.Context) error {
	return wait(ctx, c.flight.DoChan(c.bootstrapKey(), func() (any, error) {
		if c.snapshot.Load() != nil {
			return nil, nil
		}
		return nil, c.load(context.WithoutCancel(ctx))
	}))
}

func (c *Cache) bootstrapKey() string { return c.Name() + "/bootstrap" }

func wait(ctx context.Context, ch <-chan singleflight.Result) error {
	select {
	case res := <-ch:
		return res.Err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *Cache) fetch(ctx context.Context) error {
	prev := State(c.state.Swap(int32(StatePopulating)))
	c.fetches.Add(1)

	items, err := c.source.Fetch(ctx)
	if err != nil {
		c.state.Store(int32(prev))
		c.failures.Add(1)
		msg := err.Error()
		c.lastErr.Store(&msg)
		kept := 0
		if old := c.snapshot.Load(); old != nil {
			kept = len(*old)
		}
		lgr.Printf("[WARN] refresh of feed %s failed, keeping %d cached items: %v", c.Name(), kept, err)
		return fmt.Errorf("refresh feed %s: %w", c.Name(), err)
	}

	ts := c.now()
	snapshot := newestFirst(items, c.maxItems, ts)
	c.snapshot.Store(&snapshot)
	c.lastRefresh.Store(&ts)
	c.state.Store(int32(StatePopulated))
	lgr.Printf("[INFO] feed %s refreshed, %d of %d items kept", c.Name(), len(snapshot), len(items))
	return nil
}

// newestFirst reverses source order (oldest first) and keeps at most maxItems entries.
// The result is a new slice, the input is not modified.
func newestFirst(items []domain.FeedItem, maxItems int, added time.Time) []domain.FeedItem {
	res := slices.Clone(items)
	if res == nil {
		res = []domain.FeedItem{}
	}
	slices.Reverse(res)
	if maxItems > 0 && len(res) > maxItems {
		res = slices.Clip(res[:maxItems])
	}
	for i := range res {
		res[i].DateAdded = added
	}
	return res
}
