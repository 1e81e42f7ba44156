package stack

import "iter"

// Iter is a forward-only cursor over a Stack, from top to bottom. It borrows
// the Stack's chain and takes no reference of its own.
type Iter[T any] struct {
	pos       *node[T]
	remaining int
}

// Iter returns a new cursor positioned at the top of the Stack. Each call
// returns an independent cursor.
func (s Stack[T]) Iter() *Iter[T] {
	return &Iter[T]{pos: s.root, remaining: s.len}
}

// Next returns the value under the cursor and advances it. Once the cursor is
// exhausted every call returns false.
func (it *Iter[T]) Next() (T, bool) {
	if it.remaining == 0 || it.pos == nil {
		it.remaining = 0
		var zero T
		return zero, false
	}

	value := it.pos.value
	it.pos = it.pos.next
	it.remaining--
	return value, true
}

// Len returns the number of values Next has yet to return.
func (it *Iter[T]) Len() int {
	return it.remaining
}

// All returns an iter.Seq[T] of the Stack's values from top to bottom.
func (s Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := s.Iter()
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
