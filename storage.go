// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pqueue

import (
	"fmt"
	"strings"
)

// Binding selects the heap implementation that backs a Queue.
type Binding int

const (
	// SiftBinding maintains a binary heap using the sift-up and
	// sift-down algorithms implemented in this package.
	SiftBinding Binding = iota
	// StdBinding delegates to the standard library's container/heap.
	StdBinding
)

// String implements fmt.Stringer.
func (b Binding) String() string {
	switch b {
	case SiftBinding:
		return "sift"
	case StdBinding:
		return "std"
	}
	return fmt.Sprintf("Binding(%d)", int(b))
}

// ParseBinding returns the Binding named by s, which must be one of
// "sift" or "std".
func ParseBinding(s string) (Binding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sift", "":
		return SiftBinding, nil
	case "std":
		return StdBinding, nil
	}
	return SiftBinding, fmt.Errorf("unknown binding %q: must be one of sift or std", s)
}

// MarshalText implements encoding.TextMarshaler.
func (b Binding) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Binding) UnmarshalText(text []byte) error {
	nb, err := ParseBinding(string(text))
	if err != nil {
		return err
	}
	*b = nb
	return nil
}

// Storage represents the sequence of elements that backs a Queue together
// with the heap algorithm that maintains it. Top and Pop must only be
// called on non-empty storage.
type Storage[T any] interface {
	Len() int
	Top() T
	Push(v T)
	Pop() T
	Clear()
	// Clone returns a copy of the storage that shares no elements
	// with the original.
	Clone() Storage[T]
	// Elements returns the backing slice in heap order. It is not a copy.
	Elements() []T
}

// newStorage takes ownership of elems, which need not be in heap order.
func newStorage[T any](b Binding, less LessThan[T], elems []T) Storage[T] {
	if b == StdBinding {
		return newStdStorage(less, elems)
	}
	return newSiftHeap(less, elems)
}
