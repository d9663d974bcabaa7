// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pqueue_test

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"cloudeng.io/pqueue"
)

func TestJSON(t *testing.T) {
	forEachBinding(t, func(t *testing.T, b pqueue.Binding) {
		q := newInts(b)
		q.Append(4, 16, 8, 23, 15, 42)
		buf, err := json.Marshal(q)
		require.NoError(t, err)

		nq := pqueue.New(pqueue.Greater[int](), pqueue.WithBinding[int](b))
		nq.Push(1000)
		require.NoError(t, json.Unmarshal(buf, nq))
		nq.Verify(t)
		require.Equal(t, 6, nq.Len())
		require.Equal(t, []int{4, 8, 15, 16, 23, 42}, slices.Collect(nq.Drain()))

		empty := newInts(b)
		buf, err = json.Marshal(empty)
		require.NoError(t, err)
		require.JSONEq(t, `{"size":0,"elements":[]}`, string(buf))
		require.NoError(t, json.Unmarshal(buf, nq))
		require.True(t, nq.Empty())
	})
}

func TestJSONReheapifies(t *testing.T) {
	q := pqueue.NewOrdered[int]()
	require.NoError(t, json.Unmarshal([]byte(`{"size":5,"elements":[1,2,3,4,5]}`), q))
	q.Verify(t)
	require.Equal(t, 5, q.Top())
}

func TestGob(t *testing.T) {
	forEachBinding(t, func(t *testing.T, b pqueue.Binding) {
		q := pqueue.New(pqueue.Less[string](), pqueue.WithBinding[string](b))
		q.Append("kiwi", "banana", "mango", "apple")
		buf := &bytes.Buffer{}
		require.NoError(t, gob.NewEncoder(buf).Encode(q))

		nq := pqueue.New(pqueue.Less[string](), pqueue.WithBinding[string](b))
		require.NoError(t, gob.NewDecoder(buf).Decode(nq))
		nq.Verify(t)
		require.Equal(t, q.Elements(), nq.Elements())
		require.Equal(t, []string{"mango", "kiwi", "banana", "apple"}, slices.Collect(nq.Drain()))
	})
}

func TestDecodeWithoutComparator(t *testing.T) {
	var q pqueue.Queue[int]
	err := json.Unmarshal([]byte(`{"size":1,"elements":[1]}`), &q)
	require.True(t, errors.Is(err, pqueue.ErrNoComparator), "got %v", err)

	src := pqueue.NewOrdered[int]()
	src.Push(3)
	data, err := src.GobEncode()
	require.NoError(t, err)
	err = q.GobDecode(data)
	require.True(t, errors.Is(err, pqueue.ErrNoComparator), "got %v", err)
}

func TestDecodeSizeMismatch(t *testing.T) {
	forEachBinding(t, func(t *testing.T, b pqueue.Binding) {
		for _, tc := range []string{
			`{"size":9223372036854775807,"elements":[1]}`,
			`{"size":-1,"elements":[1]}`,
			`{"size":3,"elements":[1,2]}`,
		} {
			q := newInts(b)
			q.Push(7)
			err := json.Unmarshal([]byte(tc), q)
			require.True(t, errors.Is(err, pqueue.ErrSizeMismatch), "%v: got %v", tc, err)
			require.Equal(t, []int{7}, q.Elements(), tc)
		}

		for _, size := range []int{1 << 62, -5, 0} {
			buf := &bytes.Buffer{}
			enc := gob.NewEncoder(buf)
			require.NoError(t, enc.Encode(size))
			require.NoError(t, enc.Encode([]int{1}))
			q := newInts(b)
			err := q.GobDecode(buf.Bytes())
			require.True(t, errors.Is(err, pqueue.ErrSizeMismatch), "%v: got %v", size, err)
			require.True(t, q.Empty())
		}
	})
}

func TestZeroValue(t *testing.T) {
	var q pqueue.Queue[int]
	require.Equal(t, 0, q.Len())
	require.True(t, q.Empty())
	require.False(t, q.StartsWith(0))
	require.Empty(t, q.DequeueN(3))
	require.Empty(t, slices.Collect(q.Drain()))
	q.Clear()
	require.Equal(t, 0, q.Clone().Len())
	require.Empty(t, q.ToStd().Elems)

	_, err := q.TryTop()
	require.ErrorIs(t, err, pqueue.ErrEmpty)
	assertPanicsEmpty(t, "Top", func() { q.Top() })
	assertPanicsEmpty(t, "Dequeue", func() { q.Dequeue() })

	buf, err := json.Marshal(&q)
	require.NoError(t, err)
	require.JSONEq(t, `{"size":0,"elements":[]}`, string(buf))
	_, err = q.GobEncode()
	require.NoError(t, err)

	require.PanicsWithValue(t, pqueue.ErrNoComparator, func() { q.Push(1) })
	require.PanicsWithValue(t, pqueue.ErrNoComparator, func() { q.Append(1, 2) })
	require.PanicsWithValue(t, pqueue.ErrNoComparator, func() { q.Assign(pqueue.NewOrdered[int]()) })
}
