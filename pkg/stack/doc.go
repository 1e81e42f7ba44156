// Package stack implements a persistent singly-linked stack.
//
// Push and Pop never modify the Stack they are called on; they return a new
// Stack that shares the unchanged tail with the original. Nodes are reference
// counted with atomic operations so a node knows whether a single Stack owns
// it, which is what PopUnwrap relies on to move a value out instead of copying
// it.
//
// Ownership rules:
//
//   - Every Stack returned by New, Of, Push, Pop, PopAndTop, PopUnwrap or Clone
//     owns one reference to its chain and should be released exactly once with
//     Release, or handed to PopUnwrap. Releasing a chain more often than it was
//     referenced panics. Memory of a Stack that is never released is still
//     reclaimed by the garbage collector, but its nodes keep counting it as an
//     owner, so PopUnwrap on a Stack sharing them reports Shared.
//   - Assigning a Stack to another variable does not take a reference. Use
//     Clone to share a Stack with another owner, such as another goroutine.
//   - Cursors returned by Iter and All borrow the chain and must not be used
//     after every Stack sharing that chain has been released. Top returns a
//     copy of the value and has no such restriction.
package stack
