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

	"github.com/Fantom-foundation/Funge/go/interpreter/bfvm"
	"github.com/urfave/cli/v2"
)

var DumpCmd = cli.Command{
	Action:    doDump,
	Name:      "dump",
	Usage:     "Print the funge-space of a program without executing it",
	ArgsUsage: "<source-file>",
}

func doDump(context *cli.Context) error {
	if context.Args().Len() < 1 {
		fmt.Printf("Usage: %s dump <source-file>\n", context.App.Name)
		return cli.Exit("", 1)
	}
	path := context.Args().Get(0)

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("failed to read %s: %v\n", path, err)
		return cli.Exit("", 1)
	}

	fmt.Print(bfvm.DumpSource(source))
	return nil
}
