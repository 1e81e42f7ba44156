package concurrency

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestForEach(t *testing.T) {
	t.Cleanup(func() {
		goleak.VerifyNone(t)
	})

	t.Run("visits_every_worker", func(t *testing.T) {
		var seen [16]atomic.Int32

		err := ForEach(context.Background(), len(seen), 4, func(_ context.Context, worker int) error {
			seen[worker].Add(1)
			return nil
		})
		require.NoError(t, err)

		for i := range seen {
			require.Equal(t, int32(1), seen[i].Load(), "worker %d", i)
		}
	})

	t.Run("limits_concurrency", func(t *testing.T) {
		var running, peak atomic.Int32

		err := ForEach(context.Background(), 32, 3, func(_ context.Context, _ int) error {
			n := running.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			running.Add(-1)
			return nil
		})
		require.NoError(t, err)
		require.LessOrEqual(t, peak.Load(), int32(3))
	})

	t.Run("returns_first_error", func(t *testing.T) {
		errBoom := errors.New("boom")

		err := ForEach(context.Background(), 8, 1, func(_ context.Context, worker int) error {
			if worker == 2 {
				return errBoom
			}
			return nil
		})
		require.ErrorIs(t, err, errBoom)
	})

	t.Run("canceled_context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var calls atomic.Int32
		err := ForEach(ctx, 4, 2, func(_ context.Context, _ int) error {
			calls.Add(1)
			return nil
		})
		require.ErrorIs(t, err, context.Canceled)
		require.Equal(t, int32(0), calls.Load())
	})

	t.Run("no_workers", func(t *testing.T) {
		err := ForEach(context.Background(), 0, 4, func(_ context.Context, _ int) error {
			return errors.New("unexpected call")
		})
		require.NoError(t, err)
	})
}
