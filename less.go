// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pqueue

import "golang.org/x/exp/constraints"

// LessThan defines the priority order of a Queue. It must implement a
// strict weak ordering and returns true if a has lower priority than b.
type LessThan[T any] func(a, b T) bool

// Less returns the natural ascending order for T. A Queue using it
// returns its largest element first.
func Less[T constraints.Ordered]() LessThan[T] {
	return func(a, b T) bool { return a < b }
}

// Greater returns the natural descending order for T. A Queue using it
// returns its smallest element first.
func Greater[T constraints.Ordered]() LessThan[T] {
	return func(a, b T) bool { return a > b }
}

// Reverse returns a LessThan that inverts less.
func Reverse[T any](less LessThan[T]) LessThan[T] {
	return func(a, b T) bool { return less(b, a) }
}

// By returns a LessThan that orders values of type T by applying less
// to the keys extracted from them.
func By[T, K any](key func(T) K, less LessThan[K]) LessThan[T] {
	return func(a, b T) bool { return less(key(a), key(b)) }
}

// Equivalent returns true if neither a nor b is less than the other.
func Equivalent[T any](less LessThan[T], a, b T) bool {
	return !less(a, b) && !less(b, a)
}
