package stack

import (
	"fmt"
	"sync/atomic"
)

// node is one link of a chain. value and next are never written after
// construction except by the owner that brings refs to zero.
type node[T any] struct {
	value T
	next  *node[T]
	refs  atomic.Int64
}

// newNode returns a node holding one reference, owned by the caller. The new
// node takes over the caller's reference to next.
func newNode[T any](value T, next *node[T]) *node[T] {
	n := &node[T]{value: value, next: next}
	n.refs.Store(1)
	return n
}

// retain adds a reference to n and returns it. It is a no-op on nil.
func (n *node[T]) retain() *node[T] {
	if n != nil {
		n.refs.Add(1)
	}
	return n
}

// exclusive reports whether the caller holds the only reference to n.
func (n *node[T]) exclusive() bool {
	return n != nil && n.refs.Load() == 1
}

// release drops one reference to n. A node whose count reaches zero drops its
// reference to the tail in turn; the walk is a loop so long chains do not grow
// the call stack.
func release[T any](n *node[T]) {
	for n != nil {
		remaining := n.refs.Add(-1)
		if remaining > 0 {
			return
		}
		if remaining < 0 {
			panic(fmt.Sprintf("stack: node released %d more time(s) than it was retained", -remaining))
		}

		next := n.next
		n.clear()
		n = next
	}
}

// clear drops the value and tail of a node nobody references anymore.
func (n *node[T]) clear() {
	var zero T
	n.value = zero
	n.next = nil
}
