package bench

import (
	"container/list"
	"fmt"

	"github.com/emirpasic/gods/lists/singlylinkedlist"

	"github.com/nathanfaucett/persistent-list/pkg/stack"
)

// ListKind names a list implementation under test.
type ListKind string

const (
	// KindPersistent is the persistent stack from pkg/stack.
	KindPersistent ListKind = "persistent"
	// KindSinglyLinkedList is the mutable singly linked list from gods.
	KindSinglyLinkedList ListKind = "singlylinkedlist"
	// KindContainerList is the standard library's container/list.
	KindContainerList ListKind = "containerlist"
)

var listKinds = []ListKind{KindPersistent, KindSinglyLinkedList, KindContainerList}

// benchList is what the harness drives. push adds at the front and walk
// visits values front to back until fn returns false.
type benchList interface {
	push(v int)
	walk(fn func(int) bool)
	release()
}

func newList(kind ListKind) (benchList, error) {
	switch kind {
	case KindPersistent:
		return &persistentList{}, nil
	case KindSinglyLinkedList:
		return &singlyLinkedList{l: singlylinkedlist.New()}, nil
	case KindContainerList:
		return &containerList{l: list.New()}, nil
	default:
		return nil, fmt.Errorf("%w: unknown list kind %q", ErrUnknownScenario, kind)
	}
}

// fill pushes 0..size-1 onto l, so that walking it yields size-1 first.
func fill(l benchList, size int) {
	for i := range size {
		l.push(i)
	}
}

type persistentList struct {
	s stack.Stack[int]
}

func (l *persistentList) push(v int) {
	next := l.s.Push(v)
	l.s.Release()
	l.s = next
}

func (l *persistentList) walk(fn func(int) bool) {
	for v := range l.s.All() {
		if !fn(v) {
			return
		}
	}
}

func (l *persistentList) release() {
	l.s.Release()
}

type singlyLinkedList struct {
	l *singlylinkedlist.List
}

func (l *singlyLinkedList) push(v int) {
	l.l.Prepend(v)
}

func (l *singlyLinkedList) walk(fn func(int) bool) {
	it := l.l.Iterator()
	for it.Next() {
		if !fn(it.Value().(int)) {
			return
		}
	}
}

func (l *singlyLinkedList) release() {
	l.l.Clear()
}

type containerList struct {
	l *list.List
}

func (l *containerList) push(v int) {
	l.l.PushFront(v)
}

func (l *containerList) walk(fn func(int) bool) {
	for e := l.l.Front(); e != nil; e = e.Next() {
		if !fn(e.Value.(int)) {
			return
		}
	}
}

func (l *containerList) release() {
	l.l.Init()
}
