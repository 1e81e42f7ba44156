package stack

import (
	"fmt"
	"strings"
)

// Stack is a persistent stack backed by a shared, reference-counted linked list.
//
// *Important*: Push, Pop, PopAndTop and Clone return a new Stack and leave the
// receiver untouched, so previously obtained Stacks stay valid. The zero value
// is an empty Stack ready to use.
type Stack[T any] struct {
	root *node[T]
	len  int
}

// New returns an empty Stack.
func New[T any]() Stack[T] {
	return Stack[T]{}
}

// Of returns a Stack whose top is values[0]. Iterating it yields values in
// the given order.
func Of[T any](values ...T) Stack[T] {
	var root *node[T]
	for i := len(values) - 1; i >= 0; i-- {
		root = newNode(values[i], root)
	}
	return Stack[T]{root: root, len: len(values)}
}

// Len returns the number of values in the Stack.
func (s Stack[T]) Len() int {
	return s.len
}

// IsEmpty reports whether the Stack holds no values.
func (s Stack[T]) IsEmpty() bool {
	return s.root == nil
}

// Push returns a new Stack with value on top of the receiver's values.
func (s Stack[T]) Push(value T) Stack[T] {
	return Stack[T]{
		root: newNode(value, s.root.retain()),
		len:  s.len + 1,
	}
}

// Pop returns a new Stack without the receiver's top value. Popping an empty
// Stack returns an empty Stack.
func (s Stack[T]) Pop() Stack[T] {
	if s.root == nil {
		return New[T]()
	}
	return Stack[T]{
		root: s.root.next.retain(),
		len:  s.len - 1,
	}
}

// Top returns the value on top of the Stack, or false when it is empty.
func (s Stack[T]) Top() (T, bool) {
	if s.root == nil {
		var zero T
		return zero, false
	}
	return s.root.value, true
}

// PopAndTop returns the result of Pop together with the top value the receiver
// held before popping.
func (s Stack[T]) PopAndTop() (Stack[T], T, bool) {
	value, ok := s.Top()
	return s.Pop(), value, ok
}

// Clone returns a Stack sharing the receiver's chain. It copies no node.
func (s Stack[T]) Clone() Stack[T] {
	s.root.retain()
	return s
}

// Exclusive reports whether the receiver is, right now, the only owner of its
// top node. An empty Stack is never exclusive.
func (s Stack[T]) Exclusive() bool {
	return s.root.exclusive()
}

// Outcome tells how PopUnwrap handled its receiver.
type Outcome int

const (
	// Empty means the receiver held no values.
	Empty Outcome = iota
	// Moved means the top value was moved out and the Stack popped.
	Moved
	// Shared means the top node has other owners; the receiver is returned
	// unchanged and the value must be read with Top instead.
	Shared
)

func (o Outcome) String() string {
	switch o {
	case Empty:
		return "empty"
	case Moved:
		return "moved"
	case Shared:
		return "shared"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// PopUnwrap consumes the receiver. When the receiver is the only owner of its
// top node the value is moved out without being retained anywhere else and
// the popped Stack is returned with Moved. Otherwise the receiver is returned
// as is, with Shared (or Empty), and the caller still owns it.
func (s Stack[T]) PopUnwrap() (Stack[T], T, Outcome) {
	var zero T
	if s.root == nil {
		return s, zero, Empty
	}

	root := s.root
	if !root.refs.CompareAndSwap(1, 0) {
		return s, zero, Shared
	}

	// root's reference to its tail moves to the popped Stack.
	value, next := root.value, root.next
	root.clear()

	return Stack[T]{root: next, len: s.len - 1}, value, Moved
}

// Release drops the receiver's reference to its chain and resets it to an
// empty Stack. Nodes no other Stack references are freed. Releasing an empty
// Stack is a no-op. Release panics if the chain has already been released by
// every Stack that owned it, as happens when releasing a plain copy of a
// released Stack.
func (s *Stack[T]) Release() {
	release(s.root)
	s.root = nil
	s.len = 0
}

// String formats the Stack as its values from top to bottom, e.g. "(3 2 1)".
func (s Stack[T]) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, it := 0, s.Iter(); it.Len() > 0; i++ {
		v, _ := it.Next()
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, v)
	}
	b.WriteByte(')')
	return b.String()
}
