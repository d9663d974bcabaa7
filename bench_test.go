// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pqueue_test

import (
	"math/rand"
	"testing"

	"cloudeng.io/pqueue"
)

func benchmarkPushPop(b *testing.B, binding pqueue.Binding, n int) {
	rnd := rand.New(rand.NewSource(1))
	vals := make([]int, n)
	for i := range vals {
		vals[i] = rnd.Int()
	}
	q := pqueue.NewOrdered(pqueue.WithBinding[int](binding), pqueue.WithSliceCap[int](n))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, v := range vals {
			q.Push(v)
		}
		for !q.Empty() {
			q.Pop()
		}
	}
}

func BenchmarkSift1000(b *testing.B) { benchmarkPushPop(b, pqueue.SiftBinding, 1000) }
func BenchmarkStd1000(b *testing.B)  { benchmarkPushPop(b, pqueue.StdBinding, 1000) }

func BenchmarkDup(b *testing.B) {
	const n = 10000
	for _, binding := range bindings {
		b.Run(binding.String(), func(b *testing.B) {
			q := pqueue.NewOrdered(pqueue.WithBinding[int](binding), pqueue.WithSliceCap[int](n))
			for i := 0; i < b.N; i++ {
				for j := 0; j < n; j++ {
					q.Push(0) // all elements are the same
				}
				for q.Len() > 0 {
					q.Pop()
				}
			}
		})
	}
}
