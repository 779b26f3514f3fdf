// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/Fantom-foundation/Funge/go/funge"
	"github.com/Fantom-foundation/Funge/go/interpreter/bfvm"
	"github.com/dsnet/golib/unitconv"
	"github.com/urfave/cli/v2"
	"golang.org/x/exp/maps"
)

var RunCmd = cli.Command{
	Action:    doRun,
	Name:      "run",
	Usage:     "Run a Befunge-98 program",
	ArgsUsage: "<source-file>",
	Flags:     runFlags,
}

var runFlags = []cli.Flag{
	&cli.StringFlag{
		Name:  "interpreter",
		Usage: "the interpreter implementation to use",
		Value: "bfvm",
	},
	&cli.Uint64Flag{
		Name:  "seed",
		Usage: "seed for the random number generator",
	},
	&cli.Int64Flag{
		Name:  "tick-limit",
		Usage: "aborts execution after the given number of ticks",
	},
	&cli.BoolFlag{
		Name:  "dump",
		Usage: "print the loaded funge-space before execution",
	},
	&cli.BoolFlag{
		Name:  "stats",
		Usage: "collect and report instruction statistics",
	},
}

func doRun(context *cli.Context) error {
	if context.Args().Len() < 1 {
		fmt.Printf("Usage: %s <source-file>\n", context.App.Name)
		return cli.Exit("", 1)
	}
	path := context.Args().Get(0)

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("failed to read %s: %v\n", path, err)
		return cli.Exit("", 1)
	}

	interpreterName := context.String("interpreter")
	if interpreterName == "" {
		interpreterName = "bfvm"
	}
	if context.Bool("stats") && interpreterName == "bfvm" {
		interpreterName = "bfvm-stats"
	}

	interpreter, err := funge.NewInterpreter(interpreterName)
	if err != nil {
		return fmt.Errorf("invalid interpreter identifier %q, use one of: %v",
			interpreterName, maps.Keys(funge.GetAllRegisteredInterpreters()))
	}

	if context.Bool("dump") {
		fmt.Print(bfvm.DumpSource(source))
	}

	hash := bfvm.HashSource(source)
	params := funge.Parameters{
		Source:     source,
		SourceHash: &hash,
		Console:    funge.NewConsole(os.Stdout),
		Seed:       context.Uint64("seed"),
		TickLimit:  context.Int64("tick-limit"),
	}

	start := time.Now()
	res, err := interpreter.Run(params)
	if err != nil {
		return err
	}

	if context.Bool("stats") {
		duration := time.Since(start).Seconds()
		rate := float64(res.Ticks) / duration
		fmt.Printf("executed %d ticks in %.2fs (%s ticks/s)\n",
			res.Ticks, duration, unitconv.FormatPrefix(rate, unitconv.SI, 0))
		if profiler, ok := interpreter.(funge.ProfilingInterpreter); ok {
			profiler.DumpProfile()
		}
	}

	if res.Interrupted {
		return cli.Exit(fmt.Sprintf("tick limit of %d exceeded", params.TickLimit), 1)
	}
	if res.Quit {
		return cli.Exit("", int(res.ExitCode))
	}
	return nil
}
