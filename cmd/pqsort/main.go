// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command pqsort writes lines of text in priority order using a
// pqueue.Queue.
package main

import (
	"context"
	"os"

	"cloudeng.io/cmdutil/subcmd"
)

const commands = `name: pqsort
summary: write lines of text in priority order
commands:
  - name: sort
    summary: write all input lines in priority order, input is read from the named files or stdin
    arguments:
      - ...
  - name: top
    summary: write the n highest priority input lines
    arguments:
      - <n>
      - ...
`

func newCommandSet(cmd *command) *subcmd.CommandSetYAML {
	cmdSet := subcmd.MustFromYAML(commands)
	cmdSet.Set("sort").MustRunner(cmd.sort, &sortFlags{})
	cmdSet.Set("top").MustRunner(cmd.top, &sortFlags{})
	return cmdSet
}

func main() {
	cmd := &command{stdin: os.Stdin, stdout: os.Stdout}
	subcmd.Dispatch(context.Background(), newCommandSet(cmd))
}
