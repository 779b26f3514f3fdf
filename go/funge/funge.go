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

// Cell is the value stored in a single funge-space location. Programs are
// free to store arbitrary signed values; only the ASCII range is meaningful
// as an instruction. Arithmetic wraps around in two's complement.
type Cell int64

const (
	// Space is the value of every funge-space location that was never
	// written. A run of spaces is traversed in a single tick.
	Space Cell = ' '

	// Semicolon delimits comment blocks, which are traversed in a single
	// tick.
	Semicolon Cell = ';'
)

// Hash is the identity of a program source, used as the key of the program
// cache maintained by interpreter implementations.
type Hash [32]byte
