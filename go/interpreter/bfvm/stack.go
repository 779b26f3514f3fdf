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
	"strconv"
	"strings"

	"github.com/Fantom-foundation/Funge/go/funge"
)

// stack is a single LIFO cell stack with a soft bottom: popping an empty
// stack yields 0 and never fails. Stacks grow without a hard cap.
type stack struct {
	data []funge.Cell
}

func (s *stack) push(v funge.Cell) {
	s.data = append(s.data, v)
}

func (s *stack) pop() funge.Cell {
	if len(s.data) == 0 {
		return 0
	}
	v := s.data[len(s.data)-1]
	s.data = s.data[:len(s.data)-1]
	return v
}

func (s *stack) clear() {
	s.data = s.data[:0]
}

func (s *stack) len() int {
	return len(s.data)
}

// stackStack is the nonempty ordered sequence of stacks owned by one
// instruction pointer. The stack at index 0 is the TOSS, the top of the
// stack stack; the one at index 1, when present, is the SOSS.
type stackStack struct {
	stacks []*stack
}

func newStackStack() *stackStack {
	return &stackStack{stacks: []*stack{{}}}
}

func (s *stackStack) toss() *stack {
	return s.stacks[0]
}

func (s *stackStack) soss() *stack {
	return s.stacks[1]
}

// depth returns the number of stacks.
func (s *stackStack) depth() int {
	return len(s.stacks)
}

func (s *stackStack) push(v funge.Cell) {
	s.toss().push(v)
}

func (s *stackStack) pop() funge.Cell {
	return s.toss().pop()
}

func (s *stackStack) clear() {
	s.toss().clear()
}

// pushAll pushes the given values in reverse order, leaving the first one
// on top of the TOSS.
func (s *stackStack) pushAll(values []funge.Cell) {
	for i := len(values) - 1; i >= 0; i-- {
		s.push(values[i])
	}
}

// pick returns the n-th element from the top of the TOSS without removing
// it; n=1 is the top. An out-of-range n yields 0.
func (s *stackStack) pick(n int) funge.Cell {
	data := s.toss().data
	if n < 1 || n > len(data) {
		return 0
	}
	return data[len(data)-n]
}

func (s *stackStack) pushSoss(v funge.Cell) {
	s.soss().push(v)
}

func (s *stackStack) popSoss() funge.Cell {
	return s.soss().pop()
}

// beginBlock pushes a new TOSS and transfers elements according to the
// count popped off the old TOSS: a positive count moves that many values
// from the SOSS to the new TOSS preserving their order, a negative count
// pushes that many zeros onto the SOSS. The caller's storage offset is
// recorded on the SOSS, x first.
func (s *stackStack) beginBlock(xSoffset, ySoffset int) {
	n := s.pop()

	s.stacks = append([]*stack{{}}, s.stacks...)
	if n > 0 {
		tmp := make([]funge.Cell, 0, n)
		for i := funge.Cell(0); i < n; i++ {
			tmp = append(tmp, s.popSoss())
		}
		for i := len(tmp) - 1; i >= 0; i-- {
			s.push(tmp[i])
		}
	} else if n < 0 {
		for i := n; i < 0; i++ {
			s.pushSoss(0)
		}
	}

	s.pushSoss(funge.Cell(xSoffset))
	s.pushSoss(funge.Cell(ySoffset))
}

// endBlock drops the TOSS and restores the storage offset recorded by the
// matching beginBlock, transferring elements according to the count popped
// off the TOSS first. With a single stack left there is nothing to drop;
// the first result is true and the caller must reflect.
func (s *stackStack) endBlock() (reflect bool, xSoffset, ySoffset int) {
	if len(s.stacks) == 1 {
		return true, 0, 0
	}

	n := s.pop()
	y := s.popSoss()
	x := s.popSoss()

	if n > 0 {
		tmp := make([]funge.Cell, 0, n)
		for i := funge.Cell(0); i < n; i++ {
			tmp = append(tmp, s.pop())
		}
		for i := len(tmp) - 1; i >= 0; i-- {
			s.pushSoss(tmp[i])
		}
	} else if n < 0 {
		for i := n; i < 0; i++ {
			s.popSoss()
		}
	}
	s.stacks = s.stacks[1:]

	return false, int(x), int(y)
}

// transferUnder moves elements between SOSS and TOSS one at a time,
// reversing their order: a positive count popped off the TOSS moves that
// many values SOSS to TOSS, a negative count the other way around. With a
// single stack the first result is true and the caller must reflect.
func (s *stackStack) transferUnder() (reflect bool) {
	if len(s.stacks) == 1 {
		return true
	}

	n := s.pop()
	if n > 0 {
		for i := funge.Cell(0); i < n; i++ {
			s.push(s.popSoss())
		}
	} else if n < 0 {
		for i := n; i < 0; i++ {
			s.pushSoss(s.pop())
		}
	}
	return false
}

// stackSizes returns the element count of every stack, top to bottom.
func (s *stackStack) stackSizes() []funge.Cell {
	sizes := make([]funge.Cell, 0, len(s.stacks))
	for _, st := range s.stacks {
		sizes = append(sizes, funge.Cell(st.len()))
	}
	return sizes
}

// String renders the TOSS bottom to top.
func (s *stackStack) String() string {
	parts := make([]string, 0, s.toss().len())
	for _, v := range s.toss().data {
		parts = append(parts, strconv.FormatInt(int64(v), 10))
	}
	return "[" + strings.Join(parts, " ") + "]"
}
