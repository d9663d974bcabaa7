// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pqueue

import "slices"

// siftHeap is a binary max-heap stored in a slice, index 0 is the root.
type siftHeap[T any] struct {
	less  LessThan[T]
	elems []T
}

func newSiftHeap[T any](less LessThan[T], elems []T) *siftHeap[T] {
	h := &siftHeap[T]{less: less, elems: elems}
	h.heapify()
	return h
}

func parent(i int) int { return (i - 1) / 2 }
func left(i int) int   { return (2 * i) + 1 }
func right(i int) int  { return (2 * i) + 2 }

func (h *siftHeap[T]) heapify() {
	for i := len(h.elems)/2 - 1; i >= 0; i-- {
		h.siftDown(i)
	}
}

func (h *siftHeap[T]) Len() int {
	return len(h.elems)
}

func (h *siftHeap[T]) Top() T {
	return h.elems[0]
}

func (h *siftHeap[T]) Elements() []T {
	return h.elems
}

func (h *siftHeap[T]) Clone() Storage[T] {
	return &siftHeap[T]{less: h.less, elems: slices.Clone(h.elems)}
}

func (h *siftHeap[T]) Clear() {
	clear(h.elems)
	h.elems = h.elems[:0]
}

// Push appends v and moves it towards the root for as long as it is not
// lower priority than its parent. The append happens before any swap so
// a failure to grow the slice leaves the heap untouched.
func (h *siftHeap[T]) Push(v T) {
	i := len(h.elems)
	h.elems = append(h.elems, v)
	for i != 0 && !h.less(h.elems[i], h.elems[parent(i)]) {
		p := parent(i)
		h.swap(i, p)
		i = p
	}
}

// Pop removes and returns the root, replacing it with the last element
// and then sifting that element down.
func (h *siftHeap[T]) Pop() T {
	top := h.elems[0]
	if len(h.elems) == 1 {
		h.Clear()
		return top
	}
	last := len(h.elems) - 1
	h.elems[0] = h.elems[last]
	var zero T
	h.elems[last] = zero
	h.elems = h.elems[:last]
	h.siftDown(0)
	return top
}

// siftDown moves the element at i towards the leaves, exchanging it with
// its higher priority child. When the two children are equivalent the
// right child is chosen.
func (h *siftHeap[T]) siftDown(i int) {
	n := len(h.elems)
	for {
		l, r := left(i), right(i)
		validLeft, validRight := l < n, r < n
		var next int
		switch {
		case validLeft && h.less(h.elems[i], h.elems[l]):
			next = l
			if validRight && !h.less(h.elems[r], h.elems[l]) {
				next = r
			}
		case validRight && h.less(h.elems[i], h.elems[r]):
			next = r
		default:
			return
		}
		h.swap(i, next)
		i = next
	}
}

func (h *siftHeap[T]) swap(i, j int) {
	h.elems[i], h.elems[j] = h.elems[j], h.elems[i]
}
