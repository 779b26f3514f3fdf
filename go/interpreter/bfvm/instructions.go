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

	"github.com/Fantom-foundation/Funge/go/funge"
)

func opGoEast(c *context) {
	c.ip.dx, c.ip.dy = 1, 0
}

func opGoWest(c *context) {
	c.ip.dx, c.ip.dy = -1, 0
}

func opGoNorth(c *context) {
	c.ip.dx, c.ip.dy = 0, -1
}

func opGoSouth(c *context) {
	c.ip.dx, c.ip.dy = 0, 1
}

var cardinalDeltas = [4][2]int{{1, 0}, {-1, 0}, {0, -1}, {0, 1}}

func opGoAway(c *context) {
	d := cardinalDeltas[c.rnd.Intn(len(cardinalDeltas))]
	c.ip.dx, c.ip.dy = d[0], d[1]
}

func opTurnRight(c *context) {
	c.ip.turnRight()
}

func opTurnLeft(c *context) {
	c.ip.turnLeft()
}

func opReflect(c *context) {
	c.ip.reflect()
}

func opAbsoluteDelta(c *context) {
	dy := c.ip.stack.pop()
	dx := c.ip.stack.pop()
	c.ip.dx, c.ip.dy = int(dx), int(dy)
}

func opTrampoline(c *context) {
	c.ip.moveTryWrap()
}

func opStop(c *context) {
	c.ip.alive = false
}

func opSkipComment(c *context) {
	c.ip.moveTryWrap()
	c.ip.skipSemicolonBlock()
}

func opJumpForward(c *context) {
	v := c.ip.stack.pop()

	turnAround := v < 0
	if turnAround {
		c.ip.reflect()
		v = -v
	}
	for i := funge.Cell(0); i < v; i++ {
		c.ip.moveTryWrap()
	}
	if turnAround {
		c.ip.reflect()
	}
}

func opQuit(c *context) {
	c.exitCode = c.ip.stack.pop()
	c.status = statusQuit
}

func opIterate(c *context) {
	v := c.ip.stack.pop()

	savedX, savedY := c.ip.x, c.ip.y
	c.ip.moveTryWrap()
	instruction := c.ip.findNextInstruction()
	if v != 0 {
		c.ip.x, c.ip.y = savedX, savedY
	}

	for i := funge.Cell(0); i < v && c.status == statusRunning; i++ {
		c.execute(instruction)
	}
}

func opNot(c *context) {
	v := c.ip.stack.pop()
	if v == 0 {
		c.ip.stack.push(1)
	} else {
		c.ip.stack.push(0)
	}
}

func opGreaterThan(c *context) {
	a := c.ip.stack.pop()
	b := c.ip.stack.pop()
	if b > a {
		c.ip.stack.push(1)
	} else {
		c.ip.stack.push(0)
	}
}

func opHorizontalIf(c *context) {
	if c.ip.stack.pop() == 0 {
		c.ip.dx, c.ip.dy = 1, 0
	} else {
		c.ip.dx, c.ip.dy = -1, 0
	}
}

func opVerticalIf(c *context) {
	if c.ip.stack.pop() == 0 {
		c.ip.dx, c.ip.dy = 0, 1
	} else {
		c.ip.dx, c.ip.dy = 0, -1
	}
}

func opCompare(c *context) {
	b := c.ip.stack.pop()
	a := c.ip.stack.pop()
	if a > b {
		c.ip.turnRight()
	} else if b > a {
		c.ip.turnLeft()
	}
}

func opAdd(c *context) {
	a := c.ip.stack.pop()
	b := c.ip.stack.pop()
	c.ip.stack.push(b + a)
}

func opMultiply(c *context) {
	a := c.ip.stack.pop()
	b := c.ip.stack.pop()
	c.ip.stack.push(b * a)
}

func opSubtract(c *context) {
	a := c.ip.stack.pop()
	b := c.ip.stack.pop()
	c.ip.stack.push(b - a)
}

func opDivide(c *context) {
	a := c.ip.stack.pop()
	b := c.ip.stack.pop()
	if a == 0 {
		c.ip.stack.push(0)
	} else {
		c.ip.stack.push(floorDiv(b, a))
	}
}

func opModulo(c *context) {
	a := c.ip.stack.pop()
	b := c.ip.stack.pop()
	if a == 0 {
		c.ip.stack.push(0)
	} else {
		c.ip.stack.push(floorMod(b, a))
	}
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(b, a funge.Cell) funge.Cell {
	q := b / a
	if b%a != 0 && (b < 0) != (a < 0) {
		q--
	}
	return q
}

// floorMod is the remainder matching floorDiv; its sign follows the
// divisor.
func floorMod(b, a funge.Cell) funge.Cell {
	m := b % a
	if m != 0 && (m < 0) != (a < 0) {
		m += a
	}
	return m
}

func opToggleStringMode(c *context) {
	c.ip.stringmode = true
}

func opFetchCharacter(c *context) {
	c.ip.moveTryWrap()
	c.ip.stack.push(c.space.get(c.ip.x, c.ip.y))
}

func opStoreCharacter(c *context) {
	c.ip.moveTryWrap()
	c.space.put(c.ip.x, c.ip.y, c.ip.stack.pop())
}

func opPop(c *context) {
	c.ip.stack.pop()
}

func opDuplicate(c *context) {
	v := c.ip.stack.pop()
	c.ip.stack.push(v)
	c.ip.stack.push(v)
}

func opSwap(c *context) {
	b := c.ip.stack.pop()
	a := c.ip.stack.pop()
	c.ip.stack.push(b)
	c.ip.stack.push(a)
}

func opClearStack(c *context) {
	c.ip.stack.clear()
}

func opBeginBlock(c *context) {
	c.ip.stack.beginBlock(c.ip.xSoffset, c.ip.ySoffset)
	c.ip.xSoffset = c.ip.x + c.ip.dx
	c.ip.ySoffset = c.ip.y + c.ip.dy
}

func opEndBlock(c *context) {
	reflect, xSoffset, ySoffset := c.ip.stack.endBlock()
	if reflect {
		c.ip.reflect()
		return
	}
	c.ip.xSoffset, c.ip.ySoffset = xSoffset, ySoffset
}

func opStackUnderStack(c *context) {
	if c.ip.stack.transferUnder() {
		c.ip.reflect()
	}
}

func opGet(c *context) {
	y := int(c.ip.stack.pop()) + c.ip.ySoffset
	x := int(c.ip.stack.pop()) + c.ip.xSoffset
	c.ip.stack.push(c.space.get(x, y))
}

func opPut(c *context) {
	y := int(c.ip.stack.pop()) + c.ip.ySoffset
	x := int(c.ip.stack.pop()) + c.ip.xSoffset
	v := c.ip.stack.pop()
	c.space.put(x, y, v)
}

func opOutputDecimal(c *context) {
	c.console.WriteDecimal(c.ip.stack.pop())
}

func opOutputCharacter(c *context) {
	c.console.WriteCharacter(c.ip.stack.pop())
}

func opGetSysInfo(c *context) {
	v := c.ip.stack.pop()

	info := c.sysInfo()
	c.ip.stack.pushAll(info)

	if v > 0 {
		tmp := c.ip.stack.pick(int(v))
		for range info {
			c.ip.stack.pop()
		}
		c.ip.stack.push(tmp)
	}
}

// buildFingerprint folds the popped cells into a fingerprint id. There is
// no fingerprint registry, so the result is discarded by the callers.
func buildFingerprint(c *context) funge.Cell {
	v := c.ip.stack.pop()

	fingerprint := funge.Cell(0)
	for i := funge.Cell(0); i < v; i++ {
		fingerprint = fingerprint*256 + c.ip.stack.pop()
	}
	return fingerprint
}

func opLoadFingerprint(c *context) {
	_ = buildFingerprint(c)
	c.ip.reflect()
}

func opUnloadFingerprint(c *context) {
	_ = buildFingerprint(c)
	c.ip.reflect()
}

// execute runs a single instruction against the current pointer and reports
// whether the post-tick move must be suppressed. Every cell value without a
// case, including the reserved input and file instructions, reflects.
func (c *context) execute(cell funge.Cell) (suppressMove bool) {
	switch cell {
	case '>':
		opGoEast(c)
	case '<':
		opGoWest(c)
	case '^':
		opGoNorth(c)
	case 'v':
		opGoSouth(c)
	case '?':
		opGoAway(c)
	case ']':
		opTurnRight(c)
	case '[':
		opTurnLeft(c)
	case 'r':
		opReflect(c)
	case 'x':
		opAbsoluteDelta(c)
	case '#':
		opTrampoline(c)
	case '@':
		opStop(c)
	case ';':
		opSkipComment(c)
	case 'j':
		opJumpForward(c)
	case 'q':
		opQuit(c)
	case 'k':
		opIterate(c)
	case '!':
		opNot(c)
	case '`':
		opGreaterThan(c)
	case '_':
		opHorizontalIf(c)
	case '|':
		opVerticalIf(c)
	case 'w':
		opCompare(c)
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		c.ip.stack.push(cell - '0')
	case 'a', 'b', 'c', 'd', 'e', 'f':
		c.ip.stack.push(cell - 'a' + 10)
	case '+':
		opAdd(c)
	case '*':
		opMultiply(c)
	case '-':
		opSubtract(c)
	case '/':
		opDivide(c)
	case '%':
		opModulo(c)
	case '"':
		opToggleStringMode(c)
	case '\'':
		opFetchCharacter(c)
	case 's':
		opStoreCharacter(c)
	case '$':
		opPop(c)
	case ':':
		opDuplicate(c)
	case '\\':
		opSwap(c)
	case 'n':
		opClearStack(c)
	case '{':
		opBeginBlock(c)
	case '}':
		opEndBlock(c)
	case 'u':
		opStackUnderStack(c)
	case 'g':
		opGet(c)
	case 'p':
		opPut(c)
	case '.':
		opOutputDecimal(c)
	case ',':
		opOutputCharacter(c)
	case 'y':
		opGetSysInfo(c)
	case '(':
		opLoadFingerprint(c)
	case ')':
		opUnloadFingerprint(c)
	case ' ':
		c.ip.skipSpaces()
		return true
	case 'z':
		// noop
	default:
		opReflect(c)
	}
	return false
}

// instructionName renders a cell value for diagnostics.
func instructionName(v funge.Cell) string {
	if v >= '!' && v <= '~' {
		return string(rune(v))
	}
	return fmt.Sprintf("<%d>", v)
}
