// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package bfvm

import (
	"fmt"
	"io"
	"os"
	"strconv"
)

// loggingRunner is a runner that logs the execution of a program to a
// writer. It is used for debugging purposes.
type loggingRunner struct {
	log io.Writer
}

// newLoggingRunner creates a new logging runner.
func newLoggingRunner(writer io.Writer) loggingRunner {
	return loggingRunner{log: writer}
}

func (l loggingRunner) run(c *context) {
	out := l.log
	if out == nil {
		out = os.Stderr
	}
	runRounds(c, func(c *context) {
		// log format: (<x>,<y>), <instruction>, <top-of-stack>\n
		top := "-empty-"
		if c.ip.stack.toss().len() > 0 {
			top = strconv.FormatInt(int64(c.ip.stack.pick(1)), 10)
		}
		fmt.Fprintf(out, "(%d,%d), %v, %v\n",
			c.ip.x, c.ip.y, instructionName(c.space.get(c.ip.x, c.ip.y)), top)
	})
}
