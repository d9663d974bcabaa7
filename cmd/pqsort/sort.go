// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"

	"cloudeng.io/cmdutil/profiling"
	"cloudeng.io/errors"
	"cloudeng.io/pqueue"
)

type command struct {
	stdin  io.Reader
	stdout io.Writer
}

type line struct {
	text string
	num  float64
}

func lessThan(s settings) pqueue.LessThan[line] {
	var less pqueue.LessThan[line]
	if s.numeric {
		less = pqueue.By(func(l line) float64 { return l.num }, pqueue.Less[float64]())
	} else {
		less = pqueue.By(func(l line) string { return l.text }, pqueue.Less[string]())
	}
	if !s.descending {
		less = pqueue.Reverse(less)
	}
	return less
}

func (c *command) sort(_ context.Context, values any, args []string) error {
	return c.run(values.(*sortFlags), args, -1)
}

func (c *command) top(_ context.Context, values any, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		return fmt.Errorf("invalid number of lines %q: must be a non-negative integer", args[0])
	}
	return c.run(values.(*sortFlags), args[1:], n)
}

func (c *command) run(fv *sortFlags, files []string, limit int) error {
	s, err := resolve(fv)
	if err != nil {
		return err
	}
	logger, err := s.logging.NewLogger()
	if err != nil {
		return err
	}
	defer logger.Close()
	log := logger.Logger

	if len(fv.Profile) > 0 {
		var pf profiling.ProfileFlag
		if err := pf.Set(fv.Profile); err != nil {
			return err
		}
		save, err := profiling.StartFromSpecs(pf.Profiles...)
		if err != nil {
			return err
		}
		defer save()
	}

	log.Info("pqsort", "descending", s.descending, "numeric", s.numeric, "binding", s.binding.String(), "files", len(files), "limit", limit)

	q := pqueue.New(lessThan(s), pqueue.WithBinding[line](s.binding))
	if len(files) == 0 {
		if err := readLines(log, q, "stdin", c.stdin, s.numeric); err != nil {
			return err
		}
	}
	for _, file := range files {
		if err := readFile(log, q, file, s.numeric); err != nil {
			return err
		}
	}
	return writeLines(log, c.stdout, q, limit)
}

func readFile(log *slog.Logger, q *pqueue.Queue[line], name string, numeric bool) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	errs := errors.M{}
	errs.Append(readLines(log, q, name, f, numeric))
	errs.Append(f.Close())
	return errs.Err()
}

func readLines(log *slog.Logger, q *pqueue.Queue[line], name string, rd io.Reader, numeric bool) error {
	sc := bufio.NewScanner(rd)
	n := 0
	for sc.Scan() {
		n++
		l := line{text: sc.Text()}
		if numeric {
			v, err := strconv.ParseFloat(strings.TrimSpace(l.text), 64)
			if err != nil {
				return fmt.Errorf("%v:%v: %w", name, n, err)
			}
			l.num = v
		}
		q.Push(l)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("%v: %w", name, err)
	}
	log.Debug("read input", "name", name, "lines", n, "queued", q.Len())
	return nil
}

// writeLines writes at most limit lines from q, or all of them if
// limit is negative.
func writeLines(log *slog.Logger, out io.Writer, q *pqueue.Queue[line], limit int) error {
	wr := bufio.NewWriter(out)
	next := q.Drain()
	if limit >= 0 {
		next = slices.Values(q.DequeueN(limit))
	}
	n := 0
	for l := range next {
		if _, err := fmt.Fprintln(wr, l.text); err != nil {
			return err
		}
		n++
	}
	log.Debug("wrote output", "lines", n, "remaining", q.Len())
	return wr.Flush()
}
