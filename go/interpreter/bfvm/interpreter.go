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

	"github.com/Fantom-foundation/Funge/go/funge"
	"pgregory.net/rand"
)

type status byte

const (
	statusRunning     status = iota
	statusStopped            // all pointers are dead
	statusQuit               // the program supplied an exit code
	statusInterrupted        // the tick budget is exhausted
)

func (s status) String() string {
	switch s {
	case statusRunning:
		return "running"
	case statusStopped:
		return "stopped"
	case statusQuit:
		return "quit"
	case statusInterrupted:
		return "interrupted"
	default:
		return fmt.Sprintf("status(%d)", byte(s))
	}
}

// context is the complete state of one program run: the shared funge-space,
// the ordered collection of live instruction pointers, and the run outcome.
type context struct {
	// Context instances
	params  funge.Parameters
	console funge.Console

	// Execution state
	space *fungeSpace
	ips   []*pointer
	ip    *pointer // the pointer being ticked
	rnd   *rand.Rand

	// Outputs
	ticks    int64
	status   status
	exitCode funge.Cell
}

// Run executes the program loaded into the given funge-space.
func Run(
	params funge.Parameters,
	space *fungeSpace,
	withStatistics bool,
	withLogging bool,
) (funge.Result, error) {
	// Don't bother with the execution if there's no program.
	if len(space.cells) == 0 {
		return funge.Result{}, nil
	}

	console := params.Console
	if console == nil {
		console = funge.NewConsole(io.Discard)
	}
	var rnd *rand.Rand
	if params.Seed == 0 {
		rnd = rand.New()
	} else {
		rnd = rand.New(params.Seed)
	}

	// Set up execution context.
	ctxt := context{
		params:  params,
		console: console,
		space:   space,
		rnd:     rnd,
		status:  statusRunning,
	}
	ctxt.ips = []*pointer{newPointer(space)}

	// Run interpreter.
	if withStatistics {
		defaultStatistics.run(&ctxt)
	} else if withLogging {
		loggingRunner{}.run(&ctxt)
	} else {
		vanillaRunner{}.run(&ctxt)
	}

	return generateResult(&ctxt)
}

func generateResult(ctxt *context) (funge.Result, error) {
	switch ctxt.status {
	case statusStopped:
		return funge.Result{
			Ticks: ctxt.ticks,
		}, nil
	case statusQuit:
		return funge.Result{
			ExitCode: ctxt.exitCode,
			Quit:     true,
			Ticks:    ctxt.ticks,
		}, nil
	case statusInterrupted:
		return funge.Result{
			Interrupted: true,
			Ticks:       ctxt.ticks,
		}, nil
	default:
		return funge.Result{}, fmt.Errorf("unexpected error in interpreter, unknown status: %v", ctxt.status)
	}
}

// vanillaRunner drives the scheduler loop without any observation.
type vanillaRunner struct{}

func (vanillaRunner) run(c *context) {
	runRounds(c, nil)
}

// runRounds advances every live pointer one tick per round, in order, until
// no pointer is alive, the program quits, or the tick budget is exhausted.
// Survivors keep their relative order across rounds.
func runRounds(c *context, observe func(c *context)) {
	for c.status == statusRunning {
		if len(c.ips) == 0 {
			c.status = statusStopped
			return
		}
		survivors := make([]*pointer, 0, len(c.ips))
		for _, ip := range c.ips {
			c.ip = ip
			if observe != nil {
				observe(c)
			}
			c.tick()
			c.ticks++
			if ip.alive {
				survivors = append(survivors, ip)
			}
			if c.status != statusRunning {
				return
			}
			if c.params.TickLimit > 0 && c.ticks >= c.params.TickLimit {
				c.status = statusInterrupted
				return
			}
		}
		c.ips = survivors
	}
}

// tick executes the cell under the current pointer and advances it, with
// toroidal wrapping, unless the instruction suppressed the move. In string
// mode cells are pushed verbatim, except that runs of spaces collapse into
// a single pushed space.
func (c *context) tick() {
	cell := c.space.get(c.ip.x, c.ip.y)

	if c.ip.stringmode {
		switch cell {
		case '"':
			c.ip.stringmode = false
		case funge.Space:
			c.ip.stack.push(cell)
			c.ip.skipSpaces()
			return
		default:
			c.ip.stack.push(cell)
		}
		c.ip.moveTryWrap()
		return
	}

	suppressMove := c.execute(cell)
	if !suppressMove && c.status == statusRunning {
		c.ip.moveTryWrap()
	}
}
