// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pqueue

import (
	"fmt"
	"path/filepath"
	"runtime"

	"cloudeng.io/errors"
)

var (
	// ErrEmpty is the precondition violation raised when the top of an
	// empty queue is accessed or removed.
	ErrEmpty = errors.New("pqueue: queue is empty")

	// ErrNoComparator is returned when decoding into a Queue that was
	// not created by New and hence has no LessThan function.
	ErrNoComparator = errors.New("pqueue: queue has no LessThan function")

	// ErrSizeMismatch is returned when decoding an encoded queue whose
	// recorded size differs from the number of elements it contains.
	ErrSizeMismatch = errors.New("pqueue: encoded size does not match number of elements")
)

// emptyError returns ErrEmpty annotated with the location of the code
// that called the public method that detected the empty queue. It must
// be called directly from that method.
func emptyError() error {
	return fmt.Errorf("%v: %w", callerLocation(3), ErrEmpty)
}

// callerLocation returns dir/file:line for the caller at depth, where
// depth is as for runtime.Caller.
func callerLocation(depth int) string {
	_, file, line, ok := runtime.Caller(depth)
	if !ok {
		return "???"
	}
	return fmt.Sprintf("%v:%v", filepath.Join(filepath.Base(filepath.Dir(file)), filepath.Base(file)), line)
}
