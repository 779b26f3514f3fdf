// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package funge

// Interpreter is a component capable of executing funge programs. To obtain
// an Interpreter instance, client code should use NewInterpreter() provided
// by the registry file in this package.
type Interpreter interface {
	// Run executes the program provided by the parameters and returns the
	// processing result. The resulting error is nil whenever the program was
	// correctly executed, even if the program ended itself with a non-zero
	// exit code. The error is not nil if a host-level issue prevented the
	// interpreter from processing the program; in that case the result is
	// undefined. Interpreters are required to be thread-safe, so multiple
	// runs may be conducted in parallel.
	Run(Parameters) (Result, error)
}

// ProfilingInterpreter is an optional extension of the Interpreter interface
// implemented by interpreters collecting profiling data during execution.
type ProfilingInterpreter interface {
	Interpreter

	// DumpProfile prints the profile collected since the last reset.
	DumpProfile()

	// ResetProfile discards all profiling data collected so far.
	ResetProfile()
}

// Parameters summarizes the list of inputs required for executing a program.
type Parameters struct {
	// Source is the program text. Lines are separated by newline characters;
	// carriage return and form feed bytes are dropped, and every other byte
	// becomes a funge-space cell.
	Source []byte

	// SourceHash optionally identifies the source for program caching.
	// Interpreters may re-parse the source on every run if it is nil.
	SourceHash *Hash

	// Console receives the program's output. A nil console discards it.
	Console Console

	// Seed initializes the random number generator backing the random
	// direction instruction. The zero value selects an unpredictable seed;
	// any other value makes the instruction deterministic.
	Seed uint64

	// TickLimit bounds the number of ticks the run may execute. Zero means
	// unlimited. A run ending due to an exhausted budget is reported as
	// interrupted, not as an error.
	TickLimit int64
}

// Result summarizes the outcome of a program run.
type Result struct {
	// ExitCode is zero after a natural termination, or the code the program
	// supplied when it ended itself.
	ExitCode Cell

	// Quit is true when the program ended itself with an explicit exit code
	// rather than by running out of live instruction pointers.
	Quit bool

	// Interrupted is true when the run was stopped by the tick budget.
	Interrupted bool

	// Ticks is the number of ticks executed.
	Ticks int64
}
