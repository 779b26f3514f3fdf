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
	"strings"

	"github.com/Fantom-foundation/Funge/go/funge"
)

// fungeSpace is the sparse, unbounded, mutable 2-D cell grid shared by all
// instruction pointers of a run. Rows are stored as a jagged array indexed
// by a pair of offsets, so negative logical coordinates become addressable
// by growing the offsets instead of shifting the whole grid. A missing cell
// reads as a space.
type fungeSpace struct {
	cells   [][]funge.Cell
	xOffset int
	yOffset int
	maxCols int
}

// inBoundsRect reports whether the position lies within the bounding
// rectangle spanned by the populated region. Wrapping uses this rectangle.
func (s *fungeSpace) inBoundsRect(x, y int) bool {
	gx, gy := x+s.xOffset, y+s.yOffset
	return gy >= 0 && gy < len(s.cells) && gx >= 0 && gx < s.maxCols
}

// inBounds reports whether the position holds an actually stored cell in
// the jagged array.
func (s *fungeSpace) inBounds(x, y int) bool {
	gx, gy := x+s.xOffset, y+s.yOffset
	return gy >= 0 && gy < len(s.cells) && gx >= 0 && gx < len(s.cells[gy])
}

// get returns the cell at the given logical position, or a space if the
// position was never written. It never fails.
func (s *fungeSpace) get(x, y int) funge.Cell {
	if !s.inBounds(x, y) {
		return funge.Space
	}
	return s.cells[y+s.yOffset][x+s.xOffset]
}

// put writes the given value at the given logical position, growing the
// storage as needed. Negative positions grow the offsets; rows that are
// still empty are not padded on the left, they get padded lazily by later
// writes.
func (s *fungeSpace) put(x, y int, v funge.Cell) {
	gy := y + s.yOffset
	if gy < 0 {
		rows := make([][]funge.Cell, -gy, -gy+len(s.cells))
		s.cells = append(rows, s.cells...)
		s.yOffset += -gy
	}
	gx := x + s.xOffset
	if gx < 0 {
		pad := -gx
		for i, row := range s.cells {
			if len(row) == 0 {
				continue
			}
			padded := make([]funge.Cell, pad+len(row))
			for j := 0; j < pad; j++ {
				padded[j] = funge.Space
			}
			copy(padded[pad:], row)
			s.cells[i] = padded
		}
		s.xOffset += pad
	}

	gx, gy = x+s.xOffset, y+s.yOffset
	for gy >= len(s.cells) {
		s.cells = append(s.cells, nil)
	}
	row := s.cells[gy]
	for gx >= len(row) {
		row = append(row, funge.Space)
	}
	row[gx] = v
	s.cells[gy] = row

	if len(row) > s.maxCols {
		s.maxCols = len(row)
	}
}

// leastPoint returns the logical coordinates of the lower bound of the
// populated region.
func (s *fungeSpace) leastPoint() (x, y int) {
	return -s.xOffset, -s.yOffset
}

// greatestPoint returns the logical coordinates of the upper bound of the
// populated region.
func (s *fungeSpace) greatestPoint() (x, y int) {
	return s.maxCols, len(s.cells) - s.yOffset + 1
}

// clone produces an independent deep copy of this space.
func (s *fungeSpace) clone() *fungeSpace {
	cells := make([][]funge.Cell, len(s.cells))
	for i, row := range s.cells {
		if len(row) == 0 {
			continue
		}
		cells[i] = append([]funge.Cell(nil), row...)
	}
	return &fungeSpace{
		cells:   cells,
		xOffset: s.xOffset,
		yOffset: s.yOffset,
		maxCols: s.maxCols,
	}
}

// String renders the populated region row by row with a line-number gutter.
func (s *fungeSpace) String() string {
	justify := len(fmt.Sprintf("%d", len(s.cells))) + 3
	b := strings.Builder{}
	for i, row := range s.cells {
		b.WriteString(fmt.Sprintf("%*s", justify, fmt.Sprintf("%d | ", i)))
		for _, c := range row {
			b.WriteRune(rune(c))
		}
		b.WriteString("\n")
	}
	return b.String()
}
