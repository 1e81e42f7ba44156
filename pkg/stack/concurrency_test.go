package stack

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/nathanfaucett/persistent-list/internal/concurrency"
)

func TestConcurrentSharing(t *testing.T) {
	t.Cleanup(func() {
		goleak.VerifyNone(t)
	})

	const (
		size    = 256
		workers = 32
	)

	t.Run("readers_on_clones", func(t *testing.T) {
		base := New[int]()
		for i := range size {
			next := base.Push(i)
			base.Release()
			base = next
		}

		clones := make([]Stack[int], workers)
		for i := range clones {
			clones[i] = base.Clone()
		}

		err := concurrency.ForEach(context.Background(), workers, workers, func(_ context.Context, worker int) error {
			s := clones[worker]
			defer s.Release()

			pushed := s.Push(-worker)
			defer pushed.Release()

			want := size - 1
			it := s.Iter()
			for v, ok := it.Next(); ok; v, ok = it.Next() {
				if v != want {
					t.Errorf("worker %d: got %d, want %d", worker, v, want)
					return nil
				}
				want--
			}

			popped := pushed.Pop()
			defer popped.Release()
			if popped.Len() != size {
				t.Errorf("worker %d: popped len %d, want %d", worker, popped.Len(), size)
			}
			return nil
		})
		require.NoError(t, err)

		// every clone and derived Stack has been released again.
		require.True(t, base.Exclusive())
		require.Equal(t, size, base.Len())

		bottom := base.root
		for bottom.next != nil {
			bottom = bottom.next
		}
		base.Release()
		require.Equal(t, int64(0), bottom.refs.Load())
	})

	t.Run("at_most_one_unwrap_moves", func(t *testing.T) {
		for range 100 {
			base := Of(1, 2)
			tail := base.root.next
			handles := [2]Stack[int]{base.Clone(), base}

			var outcomes [2]Outcome
			err := concurrency.ForEach(context.Background(), 2, 2, func(_ context.Context, worker int) error {
				rest, _, outcome := handles[worker].PopUnwrap()
				outcomes[worker] = outcome
				rest.Release()
				return nil
			})
			require.NoError(t, err)

			var moved int
			for _, o := range outcomes {
				require.NotEqual(t, Empty, o)
				if o == Moved {
					moved++
				}
			}
			require.LessOrEqual(t, moved, 1)
			require.Equal(t, int64(0), tail.refs.Load())
		}
	})
}
