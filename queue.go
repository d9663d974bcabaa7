// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pqueue

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Queue is a priority queue ordered by a LessThan function. A Queue should
// be created with New or NewOrdered. The zero value is an empty queue with
// no LessThan function: it reports itself as empty, can be encoded and
// cleared, but Push, Append and Assign panic with ErrNoComparator.
type Queue[T any] struct {
	less    LessThan[T]
	binding Binding
	s       Storage[T]
}

// New creates a new, empty, Queue ordered by less. It panics if less
// is nil.
func New[T any](less LessThan[T], opts ...Option[T]) *Queue[T] {
	if less == nil {
		panic("pqueue: nil LessThan function")
	}
	var o options[T]
	for _, fn := range opts {
		fn(&o)
	}
	return &Queue[T]{
		less:    less,
		binding: o.binding,
		s:       newStorage(o.binding, less, o.elements()),
	}
}

// NewOrdered creates a new Queue using the natural order of T, ie. the
// largest element is at the top of the queue.
func NewOrdered[T constraints.Ordered](opts ...Option[T]) *Queue[T] {
	return New(Less[T](), opts...)
}

// Binding returns the storage binding used by the queue.
func (q *Queue[T]) Binding() Binding {
	return q.binding
}

// LessThan returns the function used to order the queue.
func (q *Queue[T]) LessThan() LessThan[T] {
	return q.less
}

func (q *Queue[T]) len() int {
	if q.s == nil {
		return 0
	}
	return q.s.Len()
}

func (q *Queue[T]) elements() []T {
	if q.s == nil {
		return nil
	}
	return q.s.Elements()
}

func (q *Queue[T]) storage() Storage[T] {
	if q.s == nil {
		panic(ErrNoComparator)
	}
	return q.s
}

// Len returns the number of elements in the queue.
func (q *Queue[T]) Len() int {
	return q.len()
}

// Empty returns true if the queue contains no elements.
func (q *Queue[T]) Empty() bool {
	return q.len() == 0
}

// Top returns the highest priority element without removing it.
// It panics with ErrEmpty if the queue is empty.
func (q *Queue[T]) Top() T {
	if q.len() == 0 {
		panic(emptyError())
	}
	return q.s.Top()
}

// Push adds v to the queue.
func (q *Queue[T]) Push(v T) {
	q.storage().Push(v)
}

// Pop removes the highest priority element. It panics with ErrEmpty
// if the queue is empty.
func (q *Queue[T]) Pop() {
	if q.len() == 0 {
		panic(emptyError())
	}
	q.s.Pop()
}

// Clear removes all elements from the queue. The LessThan function
// and binding are retained.
func (q *Queue[T]) Clear() {
	if q.s != nil {
		q.s.Clear()
	}
}

// Dequeue removes and returns the highest priority element. It panics
// with ErrEmpty if the queue is empty.
func (q *Queue[T]) Dequeue() T {
	if q.len() == 0 {
		panic(emptyError())
	}
	return q.s.Pop()
}

// TryTop is like Top but returns ErrEmpty rather than panicking.
func (q *Queue[T]) TryTop() (T, error) {
	if q.len() == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return q.s.Top(), nil
}

// TryDequeue is like Dequeue but returns ErrEmpty rather than panicking.
func (q *Queue[T]) TryDequeue() (T, error) {
	if q.len() == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return q.s.Pop(), nil
}

// DequeueN removes at most the top most n elements from the queue and
// returns them in priority order.
func (q *Queue[T]) DequeueN(n int) []T {
	n = min(max(n, 0), q.len())
	out := make([]T, n)
	for i := range out {
		out[i] = q.s.Pop()
	}
	return out
}

// Drain returns an iterator that removes elements from the queue in
// priority order until it is empty or the caller stops iterating.
func (q *Queue[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for q.len() > 0 {
			if !yield(q.s.Pop()) {
				return
			}
		}
	}
}

// Append pushes each of vals onto the queue in turn.
func (q *Queue[T]) Append(vals ...T) {
	s := q.storage()
	for _, v := range vals {
		s.Push(v)
	}
}

// Clone returns a copy of the queue that shares no storage with
// the original.
func (q *Queue[T]) Clone() *Queue[T] {
	c := &Queue[T]{
		less:    q.less,
		binding: q.binding,
	}
	if q.s != nil {
		c.s = q.s.Clone()
	}
	return c
}

// Assign replaces the contents of q with a copy of the elements of src.
// q retains its own LessThan function and binding.
func (q *Queue[T]) Assign(src *Queue[T]) {
	if q == src {
		return
	}
	if q.less == nil {
		panic(ErrNoComparator)
	}
	var o options[T]
	o.data = src.elements()
	q.s = newStorage(q.binding, q.less, o.elements())
}

// Enqueue is the same as Push.
func (q *Queue[T]) Enqueue(v T) { q.Push(v) }

// The aliases below that can panic check for an empty queue themselves
// so that ErrEmpty is annotated with their caller's location.

// TakeFirst is the same as Dequeue.
func (q *Queue[T]) TakeFirst() T {
	if q.len() == 0 {
		panic(emptyError())
	}
	return q.s.Pop()
}

// Head is the same as Top.
func (q *Queue[T]) Head() T {
	if q.len() == 0 {
		panic(emptyError())
	}
	return q.s.Top()
}

// First is the same as Top.
func (q *Queue[T]) First() T {
	if q.len() == 0 {
		panic(emptyError())
	}
	return q.s.Top()
}

// RemoveFirst is the same as Pop.
func (q *Queue[T]) RemoveFirst() {
	if q.len() == 0 {
		panic(emptyError())
	}
	q.s.Pop()
}

// Size is the same as Len.
func (q *Queue[T]) Size() int { return q.Len() }

// Length is the same as Len.
func (q *Queue[T]) Length() int { return q.Len() }

// IsEmpty is the same as Empty.
func (q *Queue[T]) IsEmpty() bool { return q.Empty() }

// StartsWith returns true if the queue is not empty and its top
// element is equivalent to v.
func (q *Queue[T]) StartsWith(v T) bool {
	return q.len() > 0 && Equivalent(q.less, q.s.Top(), v)
}
