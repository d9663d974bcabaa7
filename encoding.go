// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pqueue

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"fmt"

	"cloudeng.io/errors"
)

type jsonEncoding struct {
	Size     int             `json:"size"`
	Elements json.RawMessage `json:"elements"`
}

func (q *Queue[T]) elementsOrEmpty() []T {
	if elems := q.elements(); elems != nil {
		return elems
	}
	return []T{}
}

// MarshalJSON implements json.Marshaler. The elements are written in
// storage order; the LessThan function and binding are not encoded.
func (q *Queue[T]) MarshalJSON() ([]byte, error) {
	errs := errors.M{}
	valbuf := &bytes.Buffer{}
	enc := json.NewEncoder(valbuf)
	errs.Append(enc.Encode(q.elementsOrEmpty()))
	buf := &bytes.Buffer{}
	enc = json.NewEncoder(buf)
	errs.Append(enc.Encode(jsonEncoding{
		Size:     q.len(),
		Elements: valbuf.Bytes(),
	}))
	return buf.Bytes(), errs.Err()
}

// UnmarshalJSON implements json.Unmarshaler. The receiver must have been
// created by New since the LessThan function cannot be decoded; the
// decoded elements replace any existing contents and are heapified using
// the receiver's LessThan function and binding.
func (q *Queue[T]) UnmarshalJSON(buf []byte) error {
	if q.less == nil {
		return ErrNoComparator
	}
	dec := json.NewDecoder(bytes.NewBuffer(buf))
	hdr := jsonEncoding{}
	if err := dec.Decode(&hdr); err != nil {
		return err
	}
	var elems []T
	if err := json.Unmarshal(hdr.Elements, &elems); err != nil {
		return err
	}
	if err := checkSize(hdr.Size, len(elems)); err != nil {
		return err
	}
	q.s = newStorage(q.binding, q.less, elems)
	return nil
}

// GobEncode implements gob.GobEncoder.
func (q *Queue[T]) GobEncode() ([]byte, error) {
	errs := errors.M{}
	buf := &bytes.Buffer{}
	enc := gob.NewEncoder(buf)
	errs.Append(enc.Encode(q.len()))
	errs.Append(enc.Encode(q.elementsOrEmpty()))
	return buf.Bytes(), errs.Err()
}

// GobDecode implements gob.GobDecoder. The same restrictions as for
// UnmarshalJSON apply.
func (q *Queue[T]) GobDecode(buf []byte) error {
	if q.less == nil {
		return ErrNoComparator
	}
	dec := gob.NewDecoder(bytes.NewBuffer(buf))
	errs := errors.M{}
	var size int
	errs.Append(dec.Decode(&size))
	var elems []T
	errs.Append(dec.Decode(&elems))
	if err := errs.Err(); err != nil {
		return err
	}
	if err := checkSize(size, len(elems)); err != nil {
		return err
	}
	q.s = newStorage(q.binding, q.less, elems)
	return nil
}

// checkSize validates the size recorded in an encoded queue, which is
// never used to allocate storage.
func checkSize(size, n int) error {
	if size != n {
		return fmt.Errorf("%w: size %v, elements %v", ErrSizeMismatch, size, n)
	}
	return nil
}
