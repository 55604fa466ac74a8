package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/hashicorp/go-multierror"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

// fanOut runs named branches of one operation concurrently. Each branch gets its own upstream
// timeout. In strict mode the first failure cancels the rest and is returned by Wait. In partial
// mode failures are collected and Wait succeeds.
type fanOut struct {
	ctx     context.Context
	g       *errgroup.Group
	timeout time.Duration
	partial bool
	span    trace.Span

	mu   sync.Mutex
	errs *multierror.Error
}

func (s *Service) newFanOut(ctx context.Context, name string, partial bool, attrs ...attribute.KeyValue) *fanOut {
	ctx, span := tracer.Start(ctx, name, trace.WithAttributes(attrs...))
	g, gctx := errgroup.WithContext(ctx)
	return &fanOut{ctx: gctx, g: g, timeout: s.cfg.UpstreamTimeout, partial: partial, span: span}
}

// Go starts a branch. Branches may start more branches.
func (f *fanOut) Go(name string, fn func(ctx context.Context) error) {
	f.g.Go(func() error {
		ctx, cancel := context.WithTimeout(f.ctx, f.timeout)
		defer cancel()

		st := time.Now()
		err := fn(ctx)
		if err == nil {
			lgr.Printf("[DEBUG] %s done in %v", name, time.Since(st))
			return nil
		}

		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			err = fmt.Errorf("%s timed out after %v: %w", name, f.timeout, err)
		} else {
			err = fmt.Errorf("%s: %w", name, err)
		}
		f.span.RecordError(err)
		if !f.partial {
			return err
		}
		lgr.Printf("[WARN] %v", err)
		f.mu.Lock()
		f.errs = multierror.Append(f.errs, err)
		f.mu.Unlock()
		return nil
	})
}

// Wait waits for all branches and ends the span. It returns the first failure in strict mode
// and the messages of all failures in partial mode.
func (f *fanOut) Wait() ([]string, error) {
	defer f.span.End()
	if err := f.g.Wait(); err != nil {
		f.span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.errs == nil {
		return nil, nil
	}
	f.span.SetStatus(codes.Error, "partial result")
	return lo.Map(f.errs.Errors, func(err error, _ int) string { return err.Error() }), nil
}
