package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/samber/lo"
)

//go:generate moq -out mocks/refresher.go -pkg mocks -skip-ensure -fmt goimports . Refresher

// ErrUnknownFeed is returned by RefreshNow for a name no feed has
var ErrUnknownFeed = errors.New("unknown feed")

// Refresher is a feed cache the scheduler keeps fresh
type Refresher interface {
	Name() string
	Refresh(ctx context.Context) error
}

// Params holds scheduler dependencies and configuration
type Params struct {
	Feeds    []Refresher
	Interval time.Duration // time between refreshes of each feed
	WarmUp   bool          // refresh every feed right after Start instead of waiting for the first tick
}

// Scheduler refreshes every feed on its own ticker. A failing feed is logged and keeps its schedule.
type Scheduler struct {
	feeds    []Refresher
	byName   map[string]Refresher
	interval time.Duration
	warmUp   bool

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// New creates a scheduler. Interval defaults to one hour.
func New(params Params) *Scheduler {
	if params.Interval <= 0 {
		params.Interval = time.Hour
	}
	return &Scheduler{
		feeds:    params.Feeds,
		byName:   lo.SliceToMap(params.Feeds, func(r Refresher) (string, Refresher) { return r.Name(), r }),
		interval: params.Interval,
		warmUp:   params.WarmUp,
	}
}

// Start launches one worker per feed
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)
	for _, f := range s.feeds {
		s.wg.Add(1)
		go s.feedWorker(ctx, f)
	}
	lgr.Printf("[INFO] scheduler started for %d feeds, refresh interval %v, warm-up %v", len(s.feeds), s.interval, s.warmUp)
}

// Stop cancels the workers and waits for them to exit
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// RefreshNow refreshes one feed immediately, outside its schedule
func (s *Scheduler) RefreshNow(ctx context.Context, name string) error {
	f, ok := s.byName[name]
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownFeed, name)
	}
	return f.Refresh(ctx)
}

func (s *Scheduler) feedWorker(ctx context.Context, f Refresher) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	if s.warmUp {
		s.refresh(ctx, f)
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.refresh(ctx, f)
		}
	}
}

func (s *Scheduler) refresh(ctx context.Context, f Refresher) {
	st := time.Now()
	if err := f.Refresh(ctx); err != nil {
		if ctx.Err() != nil {
			return
		}
		lgr.Printf("[WARN] scheduled refresh of feed %s failed: %v", f.Name(), err)
		return
	}
	lgr.Printf("[DEBUG] scheduled refresh of feed %s done in %v", f.Name(), time.Since(st))
}
