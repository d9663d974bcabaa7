// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pqueue

type options[T any] struct {
	binding  Binding
	sliceCap int
	data     []T
}

// Option represents the options that can be passed to New and NewOrdered.
type Option[T any] func(*options[T])

// WithBinding selects the storage binding used by the queue, the default
// is SiftBinding.
func WithBinding[T any](b Binding) Option[T] {
	return func(o *options[T]) {
		o.binding = b
	}
}

// WithSliceCap sets the initial capacity of the slice used to hold
// the queue's elements.
func WithSliceCap[T any](n int) Option[T] {
	return func(o *options[T]) {
		o.sliceCap = n
	}
}

// WithData sets the initial contents of the queue. The values are copied
// and then heapified in O(n) rather than being pushed one at a time.
func WithData[T any](vals []T) Option[T] {
	return func(o *options[T]) {
		o.data = vals
	}
}

func (o options[T]) elements() []T {
	n := max(o.sliceCap, len(o.data))
	elems := make([]T, len(o.data), n)
	copy(elems, o.data)
	return elems
}
