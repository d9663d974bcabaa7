// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pqueue

import (
	"container/heap"
	"slices"
)

// StdHeap adapts a slice and LessThan function to container/heap.Interface.
// Its orientation matches Queue: the element for which no other element is
// less is at index 0. StdHeap is used both as the StdBinding storage and
// to convert a Queue to and from a form that can be manipulated directly
// with the container/heap functions.
type StdHeap[T any] struct {
	Elems    []T
	LessThan LessThan[T]
}

// Len implements sort.Interface.
func (h *StdHeap[T]) Len() int { return len(h.Elems) }

// Less implements sort.Interface. It is inverted with respect to LessThan
// since container/heap maintains a min-heap.
func (h *StdHeap[T]) Less(i, j int) bool { return h.LessThan(h.Elems[j], h.Elems[i]) }

// Swap implements sort.Interface.
func (h *StdHeap[T]) Swap(i, j int) { h.Elems[i], h.Elems[j] = h.Elems[j], h.Elems[i] }

// Push implements heap.Interface.
func (h *StdHeap[T]) Push(x any) {
	h.Elems = append(h.Elems, x.(T))
}

// Pop implements heap.Interface.
func (h *StdHeap[T]) Pop() any {
	n := len(h.Elems) - 1
	x := h.Elems[n]
	var zero T
	h.Elems[n] = zero
	h.Elems = h.Elems[:n]
	return x
}

// stdStorage implements Storage by forwarding to container/heap.
type stdStorage[T any] struct {
	h *StdHeap[T]
}

func newStdStorage[T any](less LessThan[T], elems []T) *stdStorage[T] {
	s := &stdStorage[T]{h: &StdHeap[T]{Elems: elems, LessThan: less}}
	heap.Init(s.h)
	return s
}

func (s *stdStorage[T]) Len() int      { return s.h.Len() }
func (s *stdStorage[T]) Top() T        { return s.h.Elems[0] }
func (s *stdStorage[T]) Push(v T)      { heap.Push(s.h, v) }
func (s *stdStorage[T]) Pop() T        { return heap.Pop(s.h).(T) }
func (s *stdStorage[T]) Elements() []T { return s.h.Elems }

func (s *stdStorage[T]) Clear() {
	clear(s.h.Elems)
	s.h.Elems = s.h.Elems[:0]
}

func (s *stdStorage[T]) Clone() Storage[T] {
	return &stdStorage[T]{h: &StdHeap[T]{Elems: slices.Clone(s.h.Elems), LessThan: s.h.LessThan}}
}

// ToStd returns a copy of the queue's elements as a StdHeap that can be
// used with container/heap. The elements are already in heap order.
func (q *Queue[T]) ToStd() *StdHeap[T] {
	return &StdHeap[T]{
		Elems:    slices.Clone(q.elements()),
		LessThan: q.less,
	}
}

// FromStd creates a new Queue from a copy of the elements in h, ordered
// by h.LessThan. The elements are heapified, so h need not have been
// initialized with heap.Init.
func FromStd[T any](h *StdHeap[T], opts ...Option[T]) *Queue[T] {
	opts = append(slices.Clone(opts), WithData(h.Elems))
	return New(h.LessThan, opts...)
}
