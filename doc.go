// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package pqueue provides a generic priority queue ordered by a caller
// supplied LessThan function. The element for which no other element is
// 'less' is always at the top of the queue, ie. the queue is a max-heap
// with respect to LessThan; use Greater or Reverse to obtain smallest-first
// retrieval.
//
// Top is O(1), Push and Pop are O(log n). The queue can be backed by one of
// two storage bindings: SiftBinding, the default, maintains a binary heap
// over an owned slice using the sift-up and sift-down algorithms in this
// package, whereas StdBinding delegates to the standard library's
// container/heap. Both produce the same extraction order for the same
// sequence of operations.
//
// Top, Pop and their aliases panic with an error that satisfies
// errors.Is(err, ErrEmpty) when called on an empty queue; callers should
// test Empty first or use TryTop and TryDequeue.
//
// A Queue is not safe for concurrent use; callers must provide their own
// synchronization. Elements are stored and returned by value, so element
// types that contain pointers, slices or maps share their referents with
// the caller.
package pqueue
