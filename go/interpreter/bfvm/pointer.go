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
	"github.com/Fantom-foundation/Funge/go/funge"
)

// pointer is a single instruction pointer: a position and delta in the
// shared funge-space, a storage offset, a string-mode flag, and an owned
// stack stack. The space handle is non-owning; all pointers of a run share
// one space.
type pointer struct {
	space *fungeSpace
	stack *stackStack

	x, y   int
	dx, dy int

	xSoffset, ySoffset int

	stringmode bool
	alive      bool
}

// newPointer creates a live pointer at the origin, heading east, with a
// single empty stack.
func newPointer(space *fungeSpace) *pointer {
	return &pointer{
		space: space,
		stack: newStackStack(),
		dx:    1,
		alive: true,
	}
}

// move advances the pointer one step along its delta without any bounds
// check.
func (p *pointer) move() {
	p.x += p.dx
	p.y += p.dy
}

// wrap re-enters the bounding rectangle on the opposite side along the
// current travel line: turn around, march back through the rectangle until
// leaving it on the far side, then turn around again and step back in.
func (p *pointer) wrap() {
	p.reflect()
	p.move()
	for p.space.inBoundsRect(p.x, p.y) {
		p.move()
	}
	p.reflect()
	p.move()
}

// moveTryWrap advances one step, wrapping when the step leaves the
// bounding rectangle.
func (p *pointer) moveTryWrap() {
	p.move()
	if !p.space.inBoundsRect(p.x, p.y) {
		p.wrap()
	}
}

// skipSpaces advances until the current cell is not a space.
func (p *pointer) skipSpaces() {
	for p.space.get(p.x, p.y) == funge.Space {
		p.moveTryWrap()
	}
}

// skipSemicolonBlock advances until the current cell is a semicolon. The
// terminating semicolon itself is stepped past by the caller.
func (p *pointer) skipSemicolonBlock() {
	for p.space.get(p.x, p.y) != funge.Semicolon {
		p.moveTryWrap()
	}
}

// findNextInstruction advances over spaces and semicolon-delimited blocks
// and returns the first executable cell, leaving the pointer on it.
func (p *pointer) findNextInstruction() funge.Cell {
	for {
		v := p.space.get(p.x, p.y)
		switch v {
		case funge.Space:
			p.skipSpaces()
		case funge.Semicolon:
			p.moveTryWrap()
			p.skipSemicolonBlock()
			p.moveTryWrap()
		default:
			return v
		}
	}
}

// reflect turns the pointer around.
func (p *pointer) reflect() {
	p.dx, p.dy = -p.dx, -p.dy
}

// turnLeft rotates the delta 90 degrees counterclockwise.
func (p *pointer) turnLeft() {
	p.dx, p.dy = p.dy, -p.dx
}

// turnRight rotates the delta 90 degrees clockwise.
func (p *pointer) turnRight() {
	p.dx, p.dy = -p.dy, p.dx
}
