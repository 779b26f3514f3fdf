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

import (
	"fmt"
	"io"
)

//go:generate mockgen -source console.go -destination console_mock.go -package funge

// Console is the output channel between a running program and its host.
// Interpreters route every observable effect of the output instructions
// through this interface, so hosts can redirect or capture program output.
type Console interface {
	// WriteDecimal prints the decimal representation of the given value,
	// followed by a single space character.
	WriteDecimal(value Cell)

	// WriteCharacter prints the low byte of the given value verbatim.
	WriteCharacter(value Cell)
}

// NewConsole returns a Console printing to the given writer. Write errors
// are ignored; a program has no way to observe or react to them.
func NewConsole(out io.Writer) Console {
	return &writerConsole{out: out}
}

type writerConsole struct {
	out io.Writer
}

func (c *writerConsole) WriteDecimal(value Cell) {
	fmt.Fprintf(c.out, "%d ", value)
}

func (c *writerConsole) WriteCharacter(value Cell) {
	_, _ = c.out.Write([]byte{byte(value)})
}
