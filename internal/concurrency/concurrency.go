package concurrency

import (
	"context"

	"github.com/sourcegraph/conc/pool"
)

// NewPool returns a new pool where each task respects context cancellation.
// Wait() will only return the first error seen.
func NewPool(ctx context.Context, maxGoroutines int) *pool.ContextPool {
	return pool.New().
		WithContext(ctx).
		WithCancelOnError().
		WithFirstError().
		WithMaxGoroutines(maxGoroutines)
}

// ForEach calls fn once for every worker index in [0, n), running at most
// maxGoroutines calls at a time. Workers not yet started when the context is
// canceled, or when an earlier call failed, are skipped. It returns the first
// error seen.
func ForEach(ctx context.Context, n, maxGoroutines int, fn func(ctx context.Context, worker int) error) error {
	if n <= 0 {
		return nil
	}
	if maxGoroutines <= 0 || maxGoroutines > n {
		maxGoroutines = n
	}

	p := NewPool(ctx, maxGoroutines)
	for worker := range n {
		p.Go(func(ctx context.Context) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return fn(ctx, worker)
		})
	}
	return p.Wait()
}
