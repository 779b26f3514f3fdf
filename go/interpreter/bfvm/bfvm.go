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

import "github.com/Fantom-foundation/Funge/go/funge"

// Registers the Befunge VM as a possible interpreter implementation.
func init() {
	funge.RegisterInterpreter("bfvm", &VM{})
	funge.RegisterInterpreter("bfvm-stats", &VM{withStatistics: true})
	funge.RegisterInterpreter("bfvm-logging", &VM{withLogging: true})
	funge.RegisterInterpreter("bfvm-no-program-cache", &VM{noProgramCache: true})
}

type VM struct {
	withStatistics bool
	withLogging    bool
	noProgramCache bool
}

func (v *VM) Run(params funge.Parameters) (funge.Result, error) {
	space := convert(params.Source, v.noProgramCache, params.SourceHash)
	return Run(params, space, v.withStatistics, v.withLogging)
}

func (v *VM) DumpProfile() {
	if v.withStatistics {
		printCollectedInstructionStatistics()
	}
}

func (v *VM) ResetProfile() {
	if v.withStatistics {
		resetCollectedInstructionStatistics()
	}
}
