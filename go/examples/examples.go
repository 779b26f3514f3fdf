// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package examples

import (
	"bytes"
	"fmt"

	"github.com/Fantom-foundation/Funge/go/funge"
	"golang.org/x/crypto/sha3"
)

// Example is an executable description of a funge program together with the
// output it is expected to produce.
type Example struct {
	exampleSpec
	sourceHash funge.Hash // the hash of the program source
}

// exampleSpec specifies a program, its expected output, and a tick budget
// the program is known to terminate within.
type exampleSpec struct {
	Name   string
	source []byte
	want   string
	ticks  int64
}

func (s exampleSpec) build() Example {
	hasher := sha3.NewLegacyKeccak256()
	hasher.Write(s.source)
	var hash funge.Hash
	hasher.Sum(hash[0:0])
	return Example{
		exampleSpec: s,
		sourceHash:  hash,
	}
}

// Result of running an example program.
type Result struct {
	Output string
	Ticks  int64
}

// RunOn runs this example on the given interpreter and returns the produced
// output.
func (e *Example) RunOn(interpreter funge.Interpreter) (Result, error) {
	var output bytes.Buffer
	params := funge.Parameters{
		Source:     e.source,
		SourceHash: &e.sourceHash,
		Console:    funge.NewConsole(&output),
		Seed:       1,
		TickLimit:  e.ticks,
	}

	res, err := interpreter.Run(params)
	if err != nil {
		return Result{}, err
	}
	if res.Interrupted {
		return Result{}, fmt.Errorf("example %q exceeded its budget of %d ticks", e.Name, e.ticks)
	}
	return Result{
		Output: output.String(),
		Ticks:  res.Ticks,
	}, nil
}

// RunRef returns the reference output of this example.
func (e *Example) RunRef() string {
	return e.want
}

// GetAllExamples returns all examples bundled with this package.
func GetAllExamples() []Example {
	return []Example{
		GetHelloExample(),
		GetArithmeticExample(),
		GetCounterExample(),
	}
}
